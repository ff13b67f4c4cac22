package material

import (
	"math/rand"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

// Specular is a perfect-mirror material (spec 3, 4.4).
type Specular struct {
	color core.Vec3
}

// NewSpecular creates a specular material.
func NewSpecular(color core.Vec3) *Specular {
	return &Specular{color: color.Clamp(0, 1)}
}

func (s *Specular) Color() core.Vec3 { return s.color }

func (s *Specular) IsDiffuse() bool { return false }

// Sample implements Material: d <- d - 2(n.d)n, flux *= color (spec 4.4).
func (s *Specular) Sample(ray *core.Ray, hit HitRecord, rng *rand.Rand, rr bool) bool {
	if rr && !russianRoulette(ray, s.color, rng) {
		return false
	}
	reflected := reflect(ray.Direction, hit.Normal)
	flux := ray.Flux.MultiplyVec(s.color)
	ray.Set(hit.Point, reflected, flux)
	return true
}

func reflect(d, n core.Vec3) core.Vec3 {
	return d.Subtract(n.Multiply(2 * n.Dot(d)))
}
