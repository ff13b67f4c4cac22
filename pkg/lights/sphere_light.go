package lights

import (
	"math/rand"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

// SphereLight emits from a fixed position, isotropically (spec 4.6).
type SphereLight struct {
	Position core.Vec3
	Flux     core.Vec3
	Scale    float64
}

// NewSphereLight creates a sphere light.
func NewSphereLight(position, flux core.Vec3, scale float64) *SphereLight {
	return &SphereLight{Position: position, Flux: flux, Scale: scale}
}

// SampleEmit draws an isotropic direction — the same sampling used for
// diffuse scattering (spec 4.6).
func (l *SphereLight) SampleEmit(rng *rand.Rand) core.Ray {
	dir := core.RandomOnUnitSphere(rng)
	return core.NewRayWithFlux(l.Position, dir, l.Flux.Multiply(l.Scale))
}
