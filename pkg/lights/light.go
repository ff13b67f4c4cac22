// Package lights implements the photon-emitting light variants of spec 4.6:
// sphere, cone, and direction-circle emitters. Each produces a photon ray
// carrying the light's flux, scaled by its configured scale factor.
package lights

import (
	"math/rand"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

// Light is the emission contract shared by every light variant (spec 4.6).
type Light interface {
	// SampleEmit draws a single emitted photon ray using rng.
	SampleEmit(rng *rand.Rand) core.Ray
}
