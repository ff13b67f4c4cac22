package geometry

import (
	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/material"
)

// Triangle is {material, v[3], optional vn[3], face_normal} (spec 3).
type Triangle struct {
	V0, V1, V2    core.Vec3
	N0, N1, N2    core.Vec3 // per-vertex normals, only meaningful if HasVertexNormals
	HasVertexNormals bool
	Material      material.Material

	faceNormal core.Vec3
	bbox       core.AABB
}

// NewTriangle builds a triangle with only a face normal (no shading normals).
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
	t.faceNormal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

// NewTriangleWithNormals builds a triangle carrying per-vertex shading normals.
func NewTriangleWithNormals(v0, v1, v2, n0, n1, n2 core.Vec3, mat material.Material) *Triangle {
	t := NewTriangle(v0, v1, v2, mat)
	t.N0, t.N1, t.N2 = n0.Normalize(), n1.Normalize(), n2.Normalize()
	t.HasVertexNormals = true
	return t
}

// Intersect solves the 3x3 linear system with columns (d, v0-v1, v0-v2) for
// (t, beta, gamma), per spec 4.2. Barycentric weights are (1-beta-gamma, beta,
// gamma) for (v0, v1, v2).
func (tr *Triangle) Intersect(ray core.Ray, tmin float64) (material.HitRecord, bool) {
	e1 := tr.V0.Subtract(tr.V1)
	e2 := tr.V0.Subtract(tr.V2)
	b := tr.V0.Subtract(ray.Origin)

	m := core.NewMatrix3Columns(ray.Direction, e1, e2)
	x, ok := m.SolveVec(b)
	if !ok {
		return material.HitRecord{}, false
	}

	t, beta, gamma := x.X, x.Y, x.Z
	if t <= tmin || beta < 0 || gamma < 0 || beta+gamma > 1 {
		return material.HitRecord{}, false
	}

	var normal core.Vec3
	if tr.HasVertexNormals {
		alpha := 1 - beta - gamma
		normal = tr.N0.Multiply(alpha).Add(tr.N1.Multiply(beta)).Add(tr.N2.Multiply(gamma)).Normalize()
	} else {
		normal = tr.faceNormal
	}

	return material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   setFaceNormal(ray, normal),
		Material: tr.Material,
	}, true
}

func (tr *Triangle) BoundingBox() core.AABB {
	return tr.bbox
}

// Bounds implements core.KDItem.
func (tr *Triangle) Bounds() core.AABB {
	return tr.bbox
}

// AxisValue implements core.KDItem for the mesh KD tree: the minimum
// coordinate of the triangle's vertices along axis (spec 4.3 step 2).
func (tr *Triangle) AxisValue(axis int) float64 {
	switch axis {
	case 0:
		return min3(tr.V0.X, tr.V1.X, tr.V2.X)
	case 1:
		return min3(tr.V0.Y, tr.V1.Y, tr.V2.Y)
	default:
		return min3(tr.V0.Z, tr.V1.Z, tr.V2.Z)
	}
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
