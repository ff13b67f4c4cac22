package core

// Ray represents a ray with an origin, a unit direction, and the path
// throughput ("flux") it carries. Flux starts at an emitter's intensity for
// photon rays, or 1/S per pixel for eye rays, and is attenuated by material
// colors as the path scatters (spec 3, 4.4).
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Flux      Vec3
}

// NewRay creates a ray with unit flux (1,1,1) and a normalized direction.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize(), Flux: Vec3{1, 1, 1}}
}

// NewRayWithFlux creates a ray with the given flux and a normalized direction.
func NewRayWithFlux(origin, direction, flux Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize(), Flux: flux}
}

// Set replaces the ray's origin, direction (normalized), and flux in place.
func (r *Ray) Set(origin, direction, flux Vec3) {
	r.Origin = origin
	r.Direction = direction.Normalize()
	r.Flux = flux
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
