package geometry

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// Intersect tests if a ray intersects with the sphere.
// The direction need not be unit length; t is in the ray's own units.
func (s Sphere) Intersect(ray core.Ray) (Hit, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return Hit{}, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		// Grazing rays can round to a tiny negative value; treat them as tangent
		if discriminant < -10*machineEpsilon*halfB*halfB {
			return Hit{}, false
		}
		discriminant = 0
	}

	// Try the closer intersection point first
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < ray.TMin || root > ray.TMax {
		// Origin inside the sphere or near root clipped: try the farther one
		root = (-halfB + sqrtD) / a
		if root < ray.TMin || root > ray.TMax {
			return Hit{}, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Divide(s.Radius)
	return Hit{
		T:      root,
		Point:  point,
		Normal: normal,
		UV:     sphereUV(normal),
	}, true
}

// sphereUV maps a unit normal to spherical coordinates:
// u wraps around the Y axis, v runs from the south pole (0) to the north pole (1)
func sphereUV(n core.Vec3) core.Vec2 {
	u := (math.Atan2(-n.Z, n.X) + math.Pi) / (2 * math.Pi)
	v := math.Acos(math.Max(-1, math.Min(1, -n.Y))) / math.Pi
	return core.NewVec2(u, v)
}

// AABB returns the axis-aligned bounding box for this sphere
func (s Sphere) AABB() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
