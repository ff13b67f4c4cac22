// Package material implements the three BSDF variants SPPM scatters light
// through: diffuse (Lambertian-ish, but see Diffuse's uniform-sphere note),
// specular, and refractive (spec 3, 4.4).
package material

import (
	"math/rand"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

// HitRecord describes a ray/primitive intersection (spec 3). Normal
// orientation conventions differ per primitive (spec 3): triangles flip the
// interpolated normal to face the ray; spheres and planes report the
// geometric normal as computed.
type HitRecord struct {
	T        float64
	Point    core.Vec3
	Normal   core.Vec3
	Material Material
}

// Material is the shared sampling contract for the three BSDF variants
// (spec 4.4). Sample mutates ray in place to the scattered ray, or returns
// false to terminate the path. russianRoulette requests the shared
// Russian-roulette survival step before scattering.
type Material interface {
	Sample(ray *core.Ray, hit HitRecord, rng *rand.Rand, russianRoulette bool) bool
	// IsDiffuse reports whether this material is a measurement-point surface:
	// photons are recorded here before scattering on (spec 4.7), eye rays stop here.
	IsDiffuse() bool
	// Color returns the material's base reflectance, used by the photon
	// search to weight accumulated flux (spec 4.3 step 2, 4.7 eye loop step 2).
	Color() core.Vec3
}

// russianRoulette implements the shared survival step from spec 4.4: survive
// with probability h = max(color channels); on survival, divide ray.Flux by
// h (unbiased rescale). Returns false if the path should terminate.
func russianRoulette(ray *core.Ray, color core.Vec3, rng *rand.Rand) bool {
	h := color.MaxComponent()
	if h <= 0 || rng.Float64() > h {
		return false
	}
	ray.Flux = ray.Flux.Multiply(1.0 / h)
	return true
}
