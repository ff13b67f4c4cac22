package lights

import (
	"math/rand"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

// ConeLight emits within a cone of half-angle Angle around Normal (spec 4.6).
// A "HalfSphereLight" in the scene file is just a ConeLight with Angle =
// pi/2 (spec 6); there is no separate implementation.
type ConeLight struct {
	Position core.Vec3
	Normal   core.Vec3 // unit axis
	Angle    float64   // half-angle, radians
	Flux     core.Vec3
	Scale    float64
}

// NewConeLight creates a cone light. Normal is normalized.
func NewConeLight(position, normal core.Vec3, angle float64, flux core.Vec3, scale float64) *ConeLight {
	return &ConeLight{Position: position, Normal: normal.Normalize(), Angle: angle, Flux: flux, Scale: scale}
}

func (l *ConeLight) SampleEmit(rng *rand.Rand) core.Ray {
	local := core.RandomInCone(l.Angle, rng)
	dir := core.AlignToNormal(local, l.Normal)
	return core.NewRayWithFlux(l.Position, dir, l.Flux.Multiply(l.Scale))
}
