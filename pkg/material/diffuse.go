package material

import (
	"math/rand"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

// Diffuse is a perfectly matte material. Per spec 4.4 and the open question
// in spec 9, its scatter direction is sampled uniformly over the unit sphere
// centered at the hit normal - not cosine-weighted hemisphere sampling, which
// would be the standard choice for a Lambertian BRDF. This is intentional:
// the spec flags it as a known, non-standard source of bias rather than
// asking for it to be silently corrected.
type Diffuse struct {
	color core.Vec3
}

// NewDiffuse creates a diffuse material with channels clamped to [0,1]
// (spec 3 invariant).
func NewDiffuse(color core.Vec3) *Diffuse {
	return &Diffuse{color: color.Clamp(0, 1)}
}

func (d *Diffuse) Color() core.Vec3 { return d.color }

func (d *Diffuse) IsDiffuse() bool { return true }

// Sample implements Material.
func (d *Diffuse) Sample(ray *core.Ray, hit HitRecord, rng *rand.Rand, rr bool) bool {
	if rr && !russianRoulette(ray, d.color, rng) {
		return false
	}
	dir := core.AlignToNormal(core.RandomOnUnitSphere(rng), hit.Normal)
	flux := ray.Flux.MultiplyVec(d.color)
	ray.Set(hit.Point, dir, flux)
	return true
}
