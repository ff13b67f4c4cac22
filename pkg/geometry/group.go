package geometry

import (
	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/material"
)

// Group is {children: sequence of primitives} (spec 3, 4.2): intersect each
// child and keep the hit of minimum t.
type Group struct {
	Children []Primitive
}

func NewGroup(children ...Primitive) *Group {
	return &Group{Children: children}
}

func (g *Group) Intersect(ray core.Ray, tmin float64) (material.HitRecord, bool) {
	best, found := material.HitRecord{}, false

	// The primitive contract only returns the smallest t > tmin, so each
	// child is queried against the original tmin and results are compared,
	// not chained: passing a tightened lower bound would skip over closer
	// hits rather than find them.
	for _, child := range g.Children {
		if hit, ok := child.Intersect(ray, tmin); ok && (!found || hit.T < best.T) {
			best, found = hit, true
		}
	}
	return best, found
}

func (g *Group) BoundingBox() core.AABB {
	if len(g.Children) == 0 {
		return core.AABB{}
	}
	box := g.Children[0].BoundingBox()
	for _, child := range g.Children[1:] {
		box = box.Union(child.BoundingBox())
	}
	return box
}
