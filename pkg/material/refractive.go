package material

import (
	"math"
	"math/rand"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

// Refractive is a dielectric material (glass-like) that both reflects and
// refracts, chosen stochastically via Schlick's Fresnel approximation
// (spec 4.4).
type Refractive struct {
	color core.Vec3
	eta   float64
}

// DefaultRefractiveEta is used when a scene omits Eta (spec 3).
const DefaultRefractiveEta = 1.5

// NewRefractive creates a refractive material. eta must be >= 1; values
// below 1 (including an omitted 0) fall back to DefaultRefractiveEta.
func NewRefractive(color core.Vec3, eta float64) *Refractive {
	if eta < 1 {
		eta = DefaultRefractiveEta
	}
	return &Refractive{color: color.Clamp(0, 1), eta: eta}
}

func (r *Refractive) Color() core.Vec3 { return r.color }

func (r *Refractive) IsDiffuse() bool { return false }

// refractionBranch is the deterministic half of spec 4.4's refraction
// algorithm: given the incoming direction and normal, compute the reflected
// direction, whether total internal reflection occurs, the refracted
// direction (meaningful only when !tir), and the Schlick reflectance
// probability used to choose between them. Split out from Sample so the
// physics can be tested without controlling the RNG.
func refractionBranch(d, n core.Vec3, eta float64) (reflected, refracted core.Vec3, tir bool, reflectance float64) {
	reflected = reflect(d, n)

	var nl core.Vec3
	if n.Dot(d) < 0 {
		nl = n
	} else {
		nl = n.Negate()
	}
	into := n.Dot(nl) > 0

	etaPrime := eta
	if into {
		etaPrime = 1.0 / eta
	}

	proj := d.Dot(nl)
	cos2Out := 1 - etaPrime*etaPrime*(1-proj*proj)
	if cos2Out < 0 {
		return reflected, core.Vec3{}, true, 1.0
	}

	sign := -1.0
	if into {
		sign = 1.0
	}
	refracted = d.Multiply(etaPrime).Subtract(n.Multiply(sign * (etaPrime*proj + math.Sqrt(cos2Out)))).Normalize()

	r0 := (eta - 1) / (eta + 1)
	r0 *= r0
	var c float64
	if into {
		c = 1 + proj
	} else {
		c = 1 - refracted.Dot(n)
	}
	reflectance = r0 + (1-r0)*math.Pow(c, 5)

	return reflected, refracted, false, reflectance
}

// Sample implements Material per spec 4.4's refraction algorithm.
func (r *Refractive) Sample(ray *core.Ray, hit HitRecord, rng *rand.Rand, rr bool) bool {
	if rr && !russianRoulette(ray, r.color, rng) {
		return false
	}

	reflected, refracted, tir, reflectance := refractionBranch(ray.Direction, hit.Normal, r.eta)

	direction := reflected
	if !tir && rng.Float64() >= reflectance {
		direction = refracted
	}

	flux := ray.Flux.MultiplyVec(r.color)
	ray.Set(hit.Point, direction, flux)
	return true
}
