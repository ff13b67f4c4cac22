package core

import (
	"math"
	"testing"
)

func TestMatrix4_InverseIsIdentity(t *testing.T) {
	m := Translate4(NewVec3(1, 2, 3)).Multiply(RotateY4(math.Pi / 3)).Multiply(UniformScale4(2))
	inv := m.Inverse()
	roundTrip := m.Multiply(inv)

	p := NewVec3(5, -1, 2)
	got := roundTrip.MultiplyPoint3(p)
	if got.Subtract(p).Length() > 1e-9 {
		t.Fatalf("M * M^-1 should be identity on points: got %v want %v", got, p)
	}
}

func TestMatrix4_TransformRoundTrip(t *testing.T) {
	m := Translate4(NewVec3(2, 0, -3)).Multiply(RotateX4(0.7)).Multiply(Scale4(NewVec3(1, 2, 3)))
	inv := m.Inverse()

	p := NewVec3(1, 1, 1)
	transformed := m.MultiplyPoint3(p)
	back := inv.MultiplyPoint3(transformed)
	if back.Subtract(p).Length() > 1e-9 {
		t.Fatalf("Transform(M) then Transform(M^-1) should be identity, got %v want %v", back, p)
	}
}

func TestMatrix4_DirectionIgnoresTranslation(t *testing.T) {
	m := Translate4(NewVec3(100, 100, 100))
	d := NewVec3(1, 0, 0)
	got := m.MultiplyDirection3(d)
	if got.Subtract(d).Length() > 1e-9 {
		t.Fatalf("translation should not affect direction vectors, got %v", got)
	}
}

func TestMatrix3_SolveVec(t *testing.T) {
	// x + y = 3, x - y = 1, z = 5 -> x=2, y=1, z=5
	m := NewMatrix3Columns(NewVec3(1, 1, 0), NewVec3(1, -1, 0), NewVec3(0, 0, 1))
	sol, ok := m.SolveVec(NewVec3(3, 1, 5))
	if !ok {
		t.Fatal("expected solvable system")
	}
	want := NewVec3(2, 1, 5)
	if sol.Subtract(want).Length() > 1e-9 {
		t.Fatalf("got %v want %v", sol, want)
	}
}

func TestMatrix3_SolveVecSingular(t *testing.T) {
	m := NewMatrix3Columns(NewVec3(1, 1, 0), NewVec3(1, 1, 0), NewVec3(0, 0, 1))
	_, ok := m.SolveVec(NewVec3(1, 2, 3))
	if ok {
		t.Fatal("expected singular system to report not-ok")
	}
}
