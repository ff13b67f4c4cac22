// Package photonmap stores the photon cloud recorded by a round's photon
// pass and answers the per-pixel radius range queries the eye pass issues
// against it (spec 4.3, 4.7).
package photonmap

import "github.com/kestrelray/sppm-raytracer/pkg/core"

// Photon is stored only where a photon path strikes a diffuse surface (spec
// 3); the path itself may continue scattering afterwards.
type Photon struct {
	Pos           core.Vec3
	InDir         core.Vec3 // unit, direction the photon was traveling on arrival
	SurfaceNormal core.Vec3 // unit
	Flux          core.Vec3
}

// Bounds implements core.KDItem: a photon is a degenerate point AABB.
func (p Photon) Bounds() core.AABB {
	return core.NewAABBFromPoint(p.Pos)
}

// AxisValue implements core.KDItem: median split is keyed on the photon's
// position component along the cycled axis (spec 4.3).
func (p Photon) AxisValue(axis int) float64 {
	switch axis {
	case 0:
		return p.Pos.X
	case 1:
		return p.Pos.Y
	default:
		return p.Pos.Z
	}
}
