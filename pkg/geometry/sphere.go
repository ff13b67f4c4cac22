package geometry

import (
	"math"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/material"
)

// Sphere is {material, center, radius > 0} (spec 3).
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a sphere. Panics if radius <= 0 (malformed scene).
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	if radius <= 0 {
		panic("geometry: sphere radius must be > 0")
	}
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Intersect solves the quadratic |o + t*d - c|^2 = r^2 (spec 4.2).
func (s *Sphere) Intersect(ray core.Ray, tmin float64) (material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tmin {
		root = (-halfB + sqrtD) / a
		if root <= tmin {
			return material.HitRecord{}, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return material.HitRecord{
		T:        root,
		Point:    point,
		Normal:   normal,
		Material: s.Material,
	}, true
}

func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}
