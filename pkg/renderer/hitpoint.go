package renderer

import (
	"math"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

// HitPoint is the persistent per-pixel SPPM state (spec 3). It is created
// once at r = r0, n = 0, tau = 0 and mutated only by the pixel's owning
// worker at the end of each round (spec 4.7 step 5); it is never destroyed
// until the final image is assembled. PhotonCount is tracked as a float
// because the shrinkage rule multiplies it by a ratio each round.
type HitPoint struct {
	Radius      float64
	PhotonCount float64
	Tau         core.Vec3
}

// NewHitPoint creates a HitPoint at its startup lifecycle state (spec 3).
func NewHitPoint(r0 float64) HitPoint {
	return HitPoint{Radius: r0}
}

// applyRoundUpdate folds a round's buffer (n', tau') into the persistent
// state using the SPPM shrinkage rule (spec 4.7 step 5). round is the
// zero-based round index.
func (hp *HitPoint) applyRoundUpdate(round int, alpha float64, roundN float64, roundTau core.Vec3) {
	if round == 0 {
		hp.PhotonCount = roundN
		hp.Tau = roundTau
		return
	}
	n := hp.PhotonCount
	total := n + roundN
	if total <= 0 {
		return
	}
	rho := (n + alpha*roundN) / total
	hp.Radius *= math.Sqrt(rho)
	hp.Tau = hp.Tau.Add(roundTau).Multiply(rho)
	hp.PhotonCount = n + roundN*rho
}
