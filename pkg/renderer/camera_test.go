package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

func TestPerspectiveCamera_CenterPixelPointsAlongDir(t *testing.T) {
	center := core.NewVec3(0, 0, 0)
	dir := core.NewVec3(0, 0, -1)
	up := core.NewVec3(0, 1, 0)
	cam := NewPerspectiveCamera(center, dir, up, 90, 400, 400)

	ray := cam.GenerateRay(200, 200, nil)
	if math.Abs(ray.Direction.Subtract(dir).Length()) > 1e-9 {
		t.Errorf("expected center pixel to point along %v, got %v", dir, ray.Direction)
	}
	if math.Abs(ray.Direction.Length()-1) > 1e-9 {
		t.Errorf("expected unit direction, got length %v", ray.Direction.Length())
	}
	if !ray.Origin.Subtract(center).IsZero() {
		t.Errorf("expected ray origin at camera center, got %v", ray.Origin)
	}
}

func TestPerspectiveCamera_WideningAngleWidensSpread(t *testing.T) {
	center := core.NewVec3(0, 0, 0)
	dir := core.NewVec3(0, 0, -1)
	up := core.NewVec3(0, 1, 0)

	narrow := NewPerspectiveCamera(center, dir, up, 30, 400, 400)
	wide := NewPerspectiveCamera(center, dir, up, 120, 400, 400)

	narrowRay := narrow.GenerateRay(400, 200, nil)
	wideRay := wide.GenerateRay(400, 200, nil)

	// A wider field of view bends the edge ray further from the optical axis.
	if wideRay.Direction.Dot(dir) >= narrowRay.Direction.Dot(dir) {
		t.Errorf("expected wider FOV to bend edge rays further from axis: narrow cos=%v wide cos=%v",
			narrowRay.Direction.Dot(dir), wideRay.Direction.Dot(dir))
	}
}

func TestPerspectiveCamera_FrameIsOrthonormal(t *testing.T) {
	cam := NewPerspectiveCamera(core.NewVec3(1, 2, 3), core.NewVec3(1, -1, 2), core.NewVec3(0, 1, 0), 60, 300, 200)

	if math.Abs(cam.Right.Length()-1) > 1e-9 || math.Abs(cam.Up.Length()-1) > 1e-9 || math.Abs(cam.Dir.Length()-1) > 1e-9 {
		t.Fatalf("expected unit basis vectors, got right=%v up=%v dir=%v", cam.Right, cam.Up, cam.Dir)
	}
	if math.Abs(cam.Right.Dot(cam.Up)) > 1e-9 || math.Abs(cam.Up.Dot(cam.Dir)) > 1e-9 || math.Abs(cam.Right.Dot(cam.Dir)) > 1e-9 {
		t.Fatalf("expected mutually orthogonal basis vectors, got right=%v up=%v dir=%v", cam.Right, cam.Up, cam.Dir)
	}
}

func TestDoFCamera_ZeroApertureMatchesPinhole(t *testing.T) {
	center := core.NewVec3(0, 0, 0)
	dir := core.NewVec3(0, 0, -1)
	up := core.NewVec3(0, 1, 0)

	pinhole := NewPerspectiveCamera(center, dir, up, 60, 200, 200)
	dof := NewDoFCamera(center, dir, up, 60, 200, 200, 0, 10)
	rng := rand.New(rand.NewSource(7))

	pinholeRay := pinhole.GenerateRay(50, 80, nil)
	dofRay := dof.GenerateRay(50, 80, rng)

	if dofRay.Direction.Subtract(pinholeRay.Direction).Length() > 1e-9 {
		t.Errorf("zero-aperture DoF camera should match pinhole direction: dof=%v pinhole=%v", dofRay.Direction, pinholeRay.Direction)
	}
	if !dofRay.Origin.Subtract(pinholeRay.Origin).IsZero() {
		t.Errorf("zero-aperture DoF camera should match pinhole origin: dof=%v pinhole=%v", dofRay.Origin, pinholeRay.Origin)
	}
}

func TestDoFCamera_LensJitterStaysOnFocusPlane(t *testing.T) {
	center := core.NewVec3(0, 0, 0)
	dir := core.NewVec3(0, 0, -1)
	up := core.NewVec3(0, 1, 0)
	focusDist := 10.0
	focusPlanePoint := center.Add(dir.Multiply(focusDist))

	dof := NewDoFCamera(center, dir, up, 60, 200, 200, 0.5, focusDist)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 50; i++ {
		ray := dof.GenerateRay(100, 100, rng)
		if math.Abs(ray.Direction.Length()-1) > 1e-9 {
			t.Fatalf("expected unit direction, got length %v", ray.Direction.Length())
		}
		// Solve for where this ray crosses the focus plane and confirm it
		// lands at the same world point as the un-jittered primary ray did.
		denom := ray.Direction.Dot(dir)
		if denom <= 0 {
			t.Fatalf("expected ray to travel toward the focus plane, got direction %v", ray.Direction)
		}
		hitT := focusPlanePoint.Subtract(ray.Origin).Dot(dir) / denom
		hitPoint := ray.At(hitT)
		if hitPoint.Subtract(focusPlanePoint).Length() > 1e-6 {
			t.Fatalf("expected jittered ray to still converge on %v, got %v", focusPlanePoint, hitPoint)
		}
	}
}
