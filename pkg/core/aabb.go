package core

import "math"

// AABB is an axis-aligned bounding box, shared by the mesh KD tree and the
// photon KD tree (spec 4.3).
type AABB struct {
	Min, Max Vec3
}

// NewAABB creates an AABB from explicit min/max corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoint creates a degenerate, zero-volume AABB at a single point -
// used for photon KD-tree nodes, whose items are points rather than volumes.
func NewAABBFromPoint(p Vec3) AABB {
	return AABB{Min: p, Max: p}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	result := NewAABBFromPoint(points[0])
	for _, p := range points[1:] {
		result = result.Extend(p)
	}
	return result
}

// Union returns an AABB that bounds both this AABB and another.
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Extend grows the AABB to include a point.
func (b AABB) Extend(p Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Center returns the midpoint of the AABB.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// LongestAxis returns 0/1/2 for the axis (X/Y/Z) with the largest extent.
func (b AABB) LongestAxis() int {
	size := b.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Hit performs a ray/AABB slab test and returns the intersection interval,
// per spec 4.3: "componentwise (aabb-o)/d, reducing over dimensions with
// nonzero direction components".
func (b AABB) Hit(ray Ray, tMin, tMax float64) (lo, hi float64, ok bool) {
	lo, hi = tMin, tMax
	mins := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	origins := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dirs := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		d := dirs[axis]
		if math.Abs(d) < 1e-12 {
			if origins[axis] < mins[axis] || origins[axis] > maxs[axis] {
				return 0, 0, false
			}
			continue
		}
		invD := 1.0 / d
		t1 := (mins[axis] - origins[axis]) * invD
		t2 := (maxs[axis] - origins[axis]) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		lo = math.Max(lo, t1)
		hi = math.Min(hi, t2)
		if lo > hi {
			return 0, 0, false
		}
	}
	return lo, hi, true
}

// ClampedDistanceSquared returns the squared distance from p to the closest
// point of the AABB, clamping p onto the box componentwise. Used by the
// photon KD-tree range-search pruning test (spec 4.3 step 1).
func (b AABB) ClampedDistanceSquared(p Vec3) float64 {
	dx := p.X - clampComponent(p.X, b.Min.X, b.Max.X)
	dy := p.Y - clampComponent(p.Y, b.Min.Y, b.Max.Y)
	dz := p.Z - clampComponent(p.Z, b.Min.Z, b.Max.Z)
	return dx*dx + dy*dy + dz*dz
}

func clampComponent(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
