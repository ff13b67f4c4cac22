package geometry

import (
	"math"
	"testing"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

func TestGroup_ReturnsNearestChildHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, 0), 1, dummyMaterial{})
	far := NewSphere(core.NewVec3(0, 0, 10), 1, dummyMaterial{})
	g := NewGroup(far, near)

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	hit, ok := g.Intersect(ray, 0.001)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("expected nearest hit at t=4, got %v", hit.T)
	}
}

func TestGroup_MissWhenAllChildrenMiss(t *testing.T) {
	s := NewSphere(core.NewVec3(10, 10, 10), 1, dummyMaterial{})
	g := NewGroup(s)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if _, ok := g.Intersect(ray, 0.001); ok {
		t.Error("expected miss")
	}
}

func TestGroup_BoundingBoxUnionsChildren(t *testing.T) {
	a := NewSphere(core.NewVec3(-5, 0, 0), 1, dummyMaterial{})
	b := NewSphere(core.NewVec3(5, 0, 0), 1, dummyMaterial{})
	g := NewGroup(a, b)

	bbox := g.BoundingBox()
	if bbox.Min.X > -6+1e-9 || bbox.Max.X < 6-1e-9 {
		t.Errorf("expected bounding box to span both spheres, got %v", bbox)
	}
}
