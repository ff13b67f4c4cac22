package lights

import (
	"math/rand"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

// DirectionCircleLight is a collimated disk emitter: origin uniform on a
// disk of radius Radius in the plane through Position perpendicular to
// Normal, direction fixed to Normal (spec 4.6).
type DirectionCircleLight struct {
	Position core.Vec3
	Normal   core.Vec3 // unit
	Radius   float64
	Flux     core.Vec3
	Scale    float64
}

// NewDirectionCircleLight creates a direction-circle light. Normal is
// normalized.
func NewDirectionCircleLight(position, normal core.Vec3, radius float64, flux core.Vec3, scale float64) *DirectionCircleLight {
	return &DirectionCircleLight{Position: position, Normal: normal.Normalize(), Radius: radius, Flux: flux, Scale: scale}
}

func (l *DirectionCircleLight) SampleEmit(rng *rand.Rand) core.Ray {
	x, y := core.RandomOnUnitDisk(rng)
	tangent, bitangent := core.OrthonormalBasis(l.Normal)
	origin := l.Position.Add(tangent.Multiply(x * l.Radius)).Add(bitangent.Multiply(y * l.Radius))
	return core.NewRayWithFlux(origin, l.Normal, l.Flux.Multiply(l.Scale))
}
