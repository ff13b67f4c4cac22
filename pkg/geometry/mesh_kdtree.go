package geometry

import (
	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/material"
)

// MeshKDTree is the triangle-mesh KD tree of spec 4.3, built over
// core.KDNode[*Triangle].
type MeshKDTree struct {
	root *core.KDNode[*Triangle]
}

// NewMeshKDTree builds a fresh tree. triangles is copied before partitioning
// so the caller's slice is left untouched.
func NewMeshKDTree(triangles []*Triangle) *MeshKDTree {
	items := make([]*Triangle, len(triangles))
	copy(items, triangles)
	return &MeshKDTree{root: core.BuildKDTree(items)}
}

// Intersect implements the ray query of spec 4.3: slab-test the node AABB,
// intersect the median triangle, recurse into both children, and return the
// minimum-t hit among the three. Each child's slab test is bounded by the
// best t found so far, so a child whose box lies beyond it is skipped.
func (tree *MeshKDTree) Intersect(ray core.Ray, tmin float64) (material.HitRecord, bool) {
	if tree.root == nil {
		return material.HitRecord{}, false
	}
	return queryMeshNode(tree.root, ray, tmin, 1e308)
}

func queryMeshNode(node *core.KDNode[*Triangle], ray core.Ray, tmin, tmax float64) (material.HitRecord, bool) {
	if node == nil {
		return material.HitRecord{}, false
	}

	_, _, ok := node.AABB.Hit(ray, tmin, tmax)
	if !ok {
		return material.HitRecord{}, false
	}

	best, found := material.HitRecord{}, false
	closest := tmax

	if hit, ok := node.Item.Intersect(ray, tmin); ok && hit.T < closest {
		best, found, closest = hit, true, hit.T
	}
	if hit, ok := queryMeshNode(node.Left, ray, tmin, closest); ok && hit.T < closest {
		best, found, closest = hit, true, hit.T
	}
	if hit, ok := queryMeshNode(node.Right, ray, tmin, closest); ok && hit.T < closest {
		best, found, closest = hit, true, hit.T
	}

	return best, found
}

func (tree *MeshKDTree) BoundingBox() core.AABB {
	if tree.root == nil {
		return core.AABB{}
	}
	return tree.root.AABB
}
