package photonmap

import (
	"math"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

// Map is the photon KD tree built fresh each round (spec 4.3, 4.7 step 2).
// It is immutable and safe for concurrent read access once built, since
// BuildKDTree runs single-threaded before any worker starts its eye pass.
type Map struct {
	root  *core.KDNode[Photon]
	count int
}

// Build constructs a photon KD tree over the round's recorded photons.
func Build(photons []Photon) *Map {
	return &Map{root: core.BuildKDTree(photons), count: len(photons)}
}

// Count returns the number of photons in the map.
func (m *Map) Count() int { return m.count }

// HitPointQuery is the subset of HitPoint state the range search reads and
// mutates (spec 4.3 "Point query (photon)").
type HitPointQuery struct {
	Pos    core.Vec3
	Radius float64
	N      int       // incremented per reported photon
	Tau    core.Vec3 // accumulated flux
}

// Search walks the tree accumulating into hp, per spec 4.3's point-query
// algorithm: color is the measurement point's material color, normal its
// surface normal, and scale the eye ray's carried flux at the hit.
func (m *Map) Search(hp *HitPointQuery, color, normal, scale core.Vec3) {
	searchNode(m.root, hp, color, normal, scale)
}

func searchNode(node *core.KDNode[Photon], hp *HitPointQuery, color, normal, scale core.Vec3) {
	if node == nil {
		return
	}
	r2 := hp.Radius * hp.Radius
	if node.AABB.ClampedDistanceSquared(hp.Pos) > r2 {
		return
	}

	q := node.Item
	if q.Pos.Subtract(hp.Pos).LengthSquared() <= r2 {
		hp.N++
		if normal.Dot(q.InDir) < 0 {
			contribution := color.MultiplyVec(q.Flux).MultiplyVec(scale).Multiply(1 / math.Pi)
			hp.Tau = hp.Tau.Add(contribution)
		}
	}

	searchNode(node.Left, hp, color, normal, scale)
	searchNode(node.Right, hp, color, normal, scale)
}
