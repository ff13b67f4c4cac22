package geometry

import (
	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/material"
)

// Transform wraps a child primitive with a cached 4x4 affine matrix and its
// inverse (spec 3, 4.2).
type Transform struct {
	Child    Primitive
	M        core.Matrix4
	Inverse  core.Matrix4
	inverseT core.Matrix4
}

// NewTransform caches M's inverse and the inverse transpose (used for
// normals) up front so every Intersect call avoids recomputing them.
func NewTransform(child Primitive, m core.Matrix4) *Transform {
	inv := m.Inverse()
	return &Transform{
		Child:    child,
		M:        m,
		Inverse:  inv,
		inverseT: inv.Transpose(),
	}
}

// Intersect transforms the ray into the child's local space by M^-1 without
// renormalizing the direction, so that the parametric t returned by the
// child intersection is valid unchanged in world space (spec 4.2, 9): for a
// purely linear direction map, point_local(t) = M^-1(o) + t*M^-1(d).
func (tr *Transform) Intersect(ray core.Ray, tmin float64) (material.HitRecord, bool) {
	localRay := core.Ray{
		Origin:    tr.Inverse.MultiplyPoint3(ray.Origin),
		Direction: tr.Inverse.MultiplyDirection3(ray.Direction),
		Flux:      ray.Flux,
	}

	hit, ok := tr.Child.Intersect(localRay, tmin)
	if !ok {
		return material.HitRecord{}, false
	}

	hit.Point = ray.At(hit.T)
	hit.Normal = tr.inverseT.MultiplyDirection3(hit.Normal).Normalize()
	return hit, true
}

func (tr *Transform) BoundingBox() core.AABB {
	local := tr.Child.BoundingBox()
	corners := [8]core.Vec3{}
	for i := 0; i < 8; i++ {
		x := local.Min.X
		if i&1 != 0 {
			x = local.Max.X
		}
		y := local.Min.Y
		if i&2 != 0 {
			y = local.Max.Y
		}
		z := local.Min.Z
		if i&4 != 0 {
			z = local.Max.Z
		}
		corners[i] = tr.M.MultiplyPoint3(core.NewVec3(x, y, z))
	}
	return core.NewAABBFromPoints(corners[:]...)
}
