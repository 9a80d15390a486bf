package core

import "math"

// Ray represents a ray with an origin, a direction and a parameter interval.
// The direction is not required to be unit length; t is measured in its units.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a ray over [0, +Inf)
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: 0, TMax: math.Inf(1)}
}

// NewRayInterval creates a ray restricted to [tMin, tMax]
func NewRayInterval(origin, direction Vec3, tMin, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: tMin, TMax: tMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// IsValid reports whether the interval is non-empty and the direction non-zero
func (r Ray) IsValid() bool {
	return r.TMax > r.TMin && !r.Direction.IsZero()
}

// NormalizedDirection returns the same ray with a unit direction.
// The interval is rescaled so it still covers the same points.
func (r Ray) NormalizedDirection() Ray {
	length := r.Direction.Length()
	if length == 0 {
		return r
	}
	return Ray{
		Origin:    r.Origin,
		Direction: r.Direction.Divide(length),
		TMin:      r.TMin * length,
		TMax:      r.TMax * length,
	}
}

// WithInterval returns a copy of the ray with a new [tMin, tMax]
func (r Ray) WithInterval(tMin, tMax float64) Ray {
	r.TMin = tMin
	r.TMax = tMax
	return r
}
