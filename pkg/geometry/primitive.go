package geometry

import (
	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/material"
)

// Primitive is the single ray/object intersection contract shared by every
// geometric variant (spec 4.2): plane, sphere, triangle, group, transform,
// mesh.
type Primitive interface {
	// Intersect returns the nearest hit with t > tmin, or ok=false if none
	// exists.
	Intersect(ray core.Ray, tmin float64) (hit material.HitRecord, ok bool)
	BoundingBox() core.AABB
}

// setFaceNormal orients normal so dot(normal, ray.Direction) <= 0, matching
// the Hit invariant in spec 3. Triangles use this; spheres and planes report
// the geometric normal as-is per spec 4.2/4.1.
func setFaceNormal(ray core.Ray, outwardNormal core.Vec3) core.Vec3 {
	if ray.Direction.Dot(outwardNormal) <= 0 {
		return outwardNormal
	}
	return outwardNormal.Negate()
}
