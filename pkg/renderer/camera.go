package renderer

import (
	"math"
	"math/rand"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

// Camera generates primary rays for a continuous image-plane coordinate
// (spec 4.5). rng is only consulted by variants that jitter (DoF); the
// perspective camera ignores it.
type Camera interface {
	GenerateRay(pixelX, pixelY float64, rng *rand.Rand) core.Ray
}

// frame holds the right-handed orthonormal basis and derived projection
// distance shared by both camera variants (spec 3).
type frame struct {
	Center core.Vec3
	Dir    core.Vec3 // unit
	Right  core.Vec3 // unit
	Up     core.Vec3 // unit
	Width  float64
	Height float64
	Dist   float64
}

// newFrame builds the orthonormal frame and the projection distance
// dist = H / (2*tan(angleRad/2)), with the degrees->radians conversion
// performed before tan (spec 4.5, 9 — this is the convention some source
// variants inverted).
func newFrame(center, dir, up core.Vec3, angleDegrees, width, height float64) frame {
	d := dir.Normalize()
	right := d.Cross(up).Normalize()
	u := right.Cross(d).Normalize()

	angleRad := angleDegrees * math.Pi / 180
	dist := height / (2 * math.Tan(angleRad/2))

	return frame{Center: center, Dir: d, Right: right, Up: u, Width: width, Height: height, Dist: dist}
}

// primaryDirection computes the world-space primary ray direction for a
// continuous pixel coordinate (spec 4.5 Perspective).
func (f frame) primaryDirection(pixelX, pixelY float64) core.Vec3 {
	lx := pixelX - f.Width/2
	ly := pixelY - f.Height/2
	return f.Right.Multiply(lx).Add(f.Up.Multiply(ly)).Add(f.Dir.Multiply(f.Dist)).Normalize()
}

// PerspectiveCamera is a pinhole camera (spec 3, 4.5).
type PerspectiveCamera struct {
	frame
}

// NewPerspectiveCamera creates a pinhole perspective camera. angleDegrees is
// the full field of view.
func NewPerspectiveCamera(center, dir, up core.Vec3, angleDegrees, width, height float64) *PerspectiveCamera {
	return &PerspectiveCamera{frame: newFrame(center, dir, up, angleDegrees, width, height)}
}

func (c *PerspectiveCamera) GenerateRay(pixelX, pixelY float64, _ *rand.Rand) core.Ray {
	dir := c.primaryDirection(pixelX, pixelY)
	return core.NewRay(c.Center, dir)
}

// DoFCamera is a thin-lens depth-of-field camera (spec 3, 4.5).
type DoFCamera struct {
	frame
	Aperture  float64
	FocusDist float64
}

// NewDoFCamera creates a depth-of-field camera.
func NewDoFCamera(center, dir, up core.Vec3, angleDegrees, width, height, aperture, focusDist float64) *DoFCamera {
	return &DoFCamera{
		frame:     newFrame(center, dir, up, angleDegrees, width, height),
		Aperture:  aperture,
		FocusDist: focusDist,
	}
}

// GenerateRay samples the lens via Box-Muller and intersects the primary ray
// with the focus plane to find the true target point (spec 4.5).
func (c *DoFCamera) GenerateRay(pixelX, pixelY float64, rng *rand.Rand) core.Ray {
	primaryDir := c.primaryDirection(pixelX, pixelY)

	nx, ny := core.BoxMuller(rng)
	delta := c.Right.Multiply(nx * c.Aperture).Add(c.Up.Multiply(ny * c.Aperture))

	// Intersect the primary ray (from the lens center) with the focus plane
	// {x : dot(Dir, x) = dot(Dir, Center + Dir*FocusDist)}.
	t := c.FocusDist / c.Dir.Dot(primaryDir)
	focusPoint := c.Center.Add(primaryDir.Multiply(t))

	origin := c.Center.Add(delta)
	direction := focusPoint.Subtract(origin).Normalize()
	return core.NewRay(origin, direction)
}
