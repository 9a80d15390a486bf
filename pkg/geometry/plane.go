package geometry

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
)

// planeExtent bounds the infinite plane so it still has a finite box
const planeExtent = 1e6

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
}

// Intersect tests if a ray intersects with the plane.
// The normal is returned as stored regardless of which side the ray comes from.
func (p Plane) Intersect(ray core.Ray) (Hit, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) <= 10*machineEpsilon*ray.Direction.Length() {
		return Hit{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < ray.TMin || t > ray.TMax {
		return Hit{}, false
	}

	point := ray.At(t)
	return Hit{
		T:      t,
		Point:  point,
		Normal: p.Normal,
		UV:     p.uv(point),
	}, true
}

// uv returns the fractional coordinates of point along the plane's tangent axes.
// For a +Y plane these are x and z.
func (p Plane) uv(point core.Vec3) core.Vec2 {
	tangent, bitangent := core.OrthonormalBasis(p.Normal)
	local := point.Subtract(p.Point)
	u := local.Dot(bitangent)
	v := local.Dot(tangent)
	return core.NewVec2(u-math.Floor(u), v-math.Floor(v))
}

// AABB returns a bounding box for this plane: a thin slab when the plane is
// axis-aligned, otherwise a large cube
func (p Plane) AABB() core.AABB {
	const thickness = 0.001
	n := p.Normal

	switch {
	case math.Abs(n.Y) < 1e-9 && math.Abs(n.Z) < 1e-9:
		// Perpendicular to X (e.g., wall at x = constant)
		x := p.Point.X
		return core.NewAABB(
			core.NewVec3(x-thickness, -planeExtent, -planeExtent),
			core.NewVec3(x+thickness, planeExtent, planeExtent),
		)
	case math.Abs(n.X) < 1e-9 && math.Abs(n.Z) < 1e-9:
		// Perpendicular to Y (e.g., ground plane at y = constant)
		y := p.Point.Y
		return core.NewAABB(
			core.NewVec3(-planeExtent, y-thickness, -planeExtent),
			core.NewVec3(planeExtent, y+thickness, planeExtent),
		)
	case math.Abs(n.X) < 1e-9 && math.Abs(n.Y) < 1e-9:
		// Perpendicular to Z (e.g., back wall at z = constant)
		z := p.Point.Z
		return core.NewAABB(
			core.NewVec3(-planeExtent, -planeExtent, z-thickness),
			core.NewVec3(planeExtent, planeExtent, z+thickness),
		)
	default:
		return core.NewAABB(
			core.NewVec3(-planeExtent, -planeExtent, -planeExtent),
			core.NewVec3(planeExtent, planeExtent, planeExtent),
		)
	}
}
