package core

import (
	"math"
	"testing"
)

func TestVec3_NormalizeUnitLength(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-9 {
		t.Fatalf("expected unit length, got %v", v.Length())
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	v := Vec3{}.Normalize()
	if v != (Vec3{}) {
		t.Fatalf("expected zero vector to normalize to itself, got %v", v)
	}
}

func TestVec3_DotCross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	if got := x.Dot(y); got != 0 {
		t.Fatalf("expected orthogonal dot=0, got %v", got)
	}
	z := x.Cross(y)
	if z != (Vec3{0, 0, 1}) {
		t.Fatalf("expected x cross y = z, got %v", z)
	}
}

func TestVec3_MaxComponent(t *testing.T) {
	v := NewVec3(0.2, 0.9, 0.5)
	if got := v.MaxComponent(); got != 0.9 {
		t.Fatalf("expected 0.9, got %v", got)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-1, 0.5, 2).Clamp(0, 1)
	if v != (Vec3{0, 0.5, 1}) {
		t.Fatalf("unexpected clamp result: %v", v)
	}
}
