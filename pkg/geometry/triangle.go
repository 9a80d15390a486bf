package geometry

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
)

// TriangleHit is the result of a ray-triangle test
type TriangleHit struct {
	T      float64   // Parameter t along the ray
	U, V   float64   // Barycentric weights of p1 and p2
	Normal core.Vec3 // Geometric normal normalize(e1 × e2)
}

// IntersectTriangle tests a ray against triangle (p0, p1, p2) using the
// Möller-Trumbore algorithm, accepting t within [ray.TMin, ray.TMax]
func IntersectTriangle(ray core.Ray, p0, p1, p2 core.Vec3) (TriangleHit, bool) {
	edge1 := p1.Subtract(p0)
	edge2 := p2.Subtract(p0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle, or the triangle is degenerate
	if math.Abs(a) <= 10*machineEpsilon {
		return TriangleHit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(p0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return TriangleHit{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return TriangleHit{}, false
	}

	t := f * edge2.Dot(q)
	if t < ray.TMin || t > ray.TMax {
		return TriangleHit{}, false
	}

	return TriangleHit{
		T:      t,
		U:      u,
		V:      v,
		Normal: edge1.Cross(edge2).Normalize(),
	}, true
}
