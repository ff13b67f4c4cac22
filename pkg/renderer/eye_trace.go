package renderer

import (
	"math/rand"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/geometry"
	"github.com/kestrelray/sppm-raytracer/pkg/photonmap"
)

// traceEye implements the eye trace loop (spec 4.7): repeat until depth
// exceeds the cap or the ray misses. A diffuse hit is the measurement
// point - the photon map is queried there and the walk stops. A
// specular/refractive hit scatters and continues.
//
// radius is the pixel's persistent search radius at the start of this round
// (fixed for the whole eye pass, per spec 4.7 step 3). The photon
// contribution for this single sample is added into buf. If the ray exits
// the scene before reaching a diffuse surface, background weighted by the
// ray's accumulated flux is added into bg (SPEC_FULL 4.15).
func traceEye(ray core.Ray, root geometry.Primitive, pm *photonmap.Map, radius float64, cfg Config, background core.Vec3, rng *rand.Rand, buf *photonmap.HitPointQuery, bg *core.Vec3) {
	for depth := 0; depth <= cfg.DepthCap; depth++ {
		hit, ok := root.Intersect(ray, cfg.TMin)
		if !ok {
			*bg = bg.Add(background.MultiplyVec(ray.Flux))
			return
		}
		if hit.Material.IsDiffuse() {
			q := &photonmap.HitPointQuery{Pos: hit.Point, Radius: radius}
			pm.Search(q, hit.Material.Color(), hit.Normal, ray.Flux)
			buf.N += q.N
			buf.Tau = buf.Tau.Add(q.Tau)
			return
		}
		if !hit.Material.Sample(&ray, hit, rng, depth >= cfg.RREyeDepth) {
			return
		}
	}
}
