package renderer

import (
	"math/rand"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/geometry"
	"github.com/kestrelray/sppm-raytracer/pkg/photonmap"
)

// tracePhoton implements the photon trace loop (spec 4.7): repeat until
// depth exceeds the cap, the ray misses, or the material's Sample call
// terminates the path. Every diffuse hit is recorded as a photon before the
// path continues scattering.
func tracePhoton(ray core.Ray, root geometry.Primitive, cfg Config, rng *rand.Rand, out *[]photonmap.Photon) {
	for depth := 0; depth <= cfg.DepthCap; depth++ {
		hit, ok := root.Intersect(ray, cfg.TMin)
		if !ok {
			return
		}
		if hit.Material.IsDiffuse() {
			*out = append(*out, photonmap.Photon{
				Pos:           hit.Point,
				InDir:         ray.Direction,
				SurfaceNormal: hit.Normal,
				Flux:          ray.Flux,
			})
		}
		if !hit.Material.Sample(&ray, hit, rng, depth >= cfg.RRDepthPhoton) {
			return
		}
	}
}
