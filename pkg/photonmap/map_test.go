package photonmap

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

func randomPhoton(rng *rand.Rand) Photon {
	pos := core.NewVec3(rng.Float64()*10-5, rng.Float64()*10-5, rng.Float64()*10-5)
	inDir := core.RandomOnUnitSphere(rng)
	normal := core.NewVec3(0, 1, 0)
	flux := core.NewVec3(1, 1, 1)
	return Photon{Pos: pos, InDir: inDir, SurfaceNormal: normal, Flux: flux}
}

func bruteForceCount(photons []Photon, center core.Vec3, radius float64) int {
	r2 := radius * radius
	n := 0
	for _, p := range photons {
		if p.Pos.Subtract(center).LengthSquared() <= r2 {
			n++
		}
	}
	return n
}

func TestMap_SearchMatchesBruteForceCount(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	photons := make([]Photon, 500)
	for i := range photons {
		photons[i] = randomPhoton(rng)
	}
	m := Build(append([]Photon(nil), photons...))

	for trial := 0; trial < 20; trial++ {
		center := core.NewVec3(rng.Float64()*10-5, rng.Float64()*10-5, rng.Float64()*10-5)
		radius := rng.Float64()*3 + 0.5

		hp := &HitPointQuery{Pos: center, Radius: radius}
		// normal facing straight down so dot(normal, q.InDir) < 0 is
		// possible but irrelevant to the reported count, only to tau.
		m.Search(hp, core.NewVec3(1, 1, 1), core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1))

		expected := bruteForceCount(photons, center, radius)
		if hp.N != expected {
			t.Fatalf("trial %d: expected %d photons within radius %v of %v, got %d", trial, expected, radius, center, hp.N)
		}
	}
}

func TestMap_SearchOnlyAccumulatesTauForCorrectSideArrivals(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	wrongSide := Photon{Pos: core.NewVec3(0, 0, 0), InDir: core.NewVec3(0, 1, 0), SurfaceNormal: normal, Flux: core.NewVec3(1, 1, 1)}
	rightSide := Photon{Pos: core.NewVec3(0, 0, 0), InDir: core.NewVec3(0, -1, 0), SurfaceNormal: normal, Flux: core.NewVec3(1, 1, 1)}

	m := Build([]Photon{wrongSide, rightSide})
	hp := &HitPointQuery{Pos: core.NewVec3(0, 0, 0), Radius: 0.01}
	m.Search(hp, core.NewVec3(1, 1, 1), normal, core.NewVec3(1, 1, 1))

	if hp.N != 2 {
		t.Fatalf("expected both photons reported (count is side-agnostic), got %d", hp.N)
	}
	expectedTau := core.NewVec3(1, 1, 1).Multiply(1 / math.Pi)
	if hp.Tau.Subtract(expectedTau).Length() > 1e-9 {
		t.Fatalf("expected tau contribution only from the correct-side photon, got %v want %v", hp.Tau, expectedTau)
	}
}

func TestMap_SearchSkipsPhotonsOutsideRadius(t *testing.T) {
	far := Photon{Pos: core.NewVec3(100, 0, 0), InDir: core.NewVec3(0, -1, 0), SurfaceNormal: core.NewVec3(0, 1, 0), Flux: core.NewVec3(1, 1, 1)}
	m := Build([]Photon{far})
	hp := &HitPointQuery{Pos: core.NewVec3(0, 0, 0), Radius: 1}
	m.Search(hp, core.NewVec3(1, 1, 1), core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1))

	if hp.N != 0 {
		t.Fatalf("expected no photons within radius, got %d", hp.N)
	}
	if !hp.Tau.IsZero() {
		t.Fatalf("expected zero tau, got %v", hp.Tau)
	}
}

func TestMap_EmptyMapIsSafe(t *testing.T) {
	m := Build(nil)
	if m.Count() != 0 {
		t.Fatalf("expected empty map, got count %d", m.Count())
	}
	hp := &HitPointQuery{Pos: core.NewVec3(0, 0, 0), Radius: 1}
	m.Search(hp, core.NewVec3(1, 1, 1), core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1))
	if hp.N != 0 {
		t.Fatalf("expected no photons reported against an empty map, got %d", hp.N)
	}
}
