package geometry

import (
	"math"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/material"
)

// Plane is the infinite surface {x : dot(normal, x) = d} (spec 3, 4.2).
type Plane struct {
	Normal   core.Vec3 // unit
	D        float64
	Material material.Material
}

// NewPlane builds a plane from a point on the plane and its normal.
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	n := normal.Normalize()
	return &Plane{Normal: n, D: n.Dot(point), Material: mat}
}

// NewPlaneFromEquation builds a plane directly from its normal and offset.
func NewPlaneFromEquation(normal core.Vec3, d float64, mat material.Material) *Plane {
	return &Plane{Normal: normal.Normalize(), D: d, Material: mat}
}

func (p *Plane) Intersect(ray core.Ray, tmin float64) (material.HitRecord, bool) {
	denom := ray.Direction.Dot(p.Normal)
	if math.Abs(denom) <= 1e-5 {
		return material.HitRecord{}, false
	}

	t := (p.D - ray.Origin.Dot(p.Normal)) / denom
	if t <= tmin {
		return material.HitRecord{}, false
	}

	return material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   p.Normal,
		Material: p.Material,
	}, true
}

// BoundingBox returns a very large finite box; planes are infinite and are
// not meant to live inside a KD tree (spec 4.3 only covers meshes/photons).
func (p *Plane) BoundingBox() core.AABB {
	const inf = 1e15
	return core.NewAABB(core.NewVec3(-inf, -inf, -inf), core.NewVec3(inf, inf, inf))
}
