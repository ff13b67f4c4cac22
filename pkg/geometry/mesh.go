package geometry

import (
	"fmt"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/material"
)

// Mesh is {material, vertices, triangles, optional vertex-normals, KD tree
// root} (spec 3). It owns a MeshKDTree built once at construction.
type Mesh struct {
	Material material.Material
	triangles []*Triangle
	tree      *MeshKDTree
	bbox      core.AABB
}

// NewMesh builds a mesh from a flat vertex list, a flat triangle-index list
// (a multiple of 3 long), and an optional per-vertex normal list of the same
// length as vertices. mat is applied to every triangle (spec: meshes carry a
// single default material).
func NewMesh(vertices []core.Vec3, indices []int, normals []core.Vec3, mat material.Material) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("geometry: mesh face index count %d is not a multiple of 3", len(indices))
	}
	if normals != nil && len(normals) != len(vertices) {
		return nil, fmt.Errorf("geometry: mesh has %d vertices but %d normals", len(vertices), len(normals))
	}

	triangles := make([]*Triangle, len(indices)/3)
	for i := range triangles {
		i0, i1, i2 := indices[i*3], indices[i*3+1], indices[i*3+2]
		for _, idx := range [3]int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("geometry: mesh face index %d out of range [0,%d)", idx, len(vertices))
			}
		}

		if normals != nil {
			triangles[i] = NewTriangleWithNormals(
				vertices[i0], vertices[i1], vertices[i2],
				normals[i0], normals[i1], normals[i2],
				mat,
			)
		} else {
			triangles[i] = NewTriangle(vertices[i0], vertices[i1], vertices[i2], mat)
		}
	}

	var bbox core.AABB
	if len(triangles) > 0 {
		bbox = triangles[0].BoundingBox()
		for _, t := range triangles[1:] {
			bbox = bbox.Union(t.BoundingBox())
		}
	}

	return &Mesh{
		Material:  mat,
		triangles: triangles,
		tree:      NewMeshKDTree(triangles),
		bbox:      bbox,
	}, nil
}

func (m *Mesh) Intersect(ray core.Ray, tmin float64) (material.HitRecord, bool) {
	return m.tree.Intersect(ray, tmin)
}

func (m *Mesh) BoundingBox() core.AABB {
	return m.bbox
}

func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}
