package core

import "math"

// AABB represents an axis-aligned bounding box.
// A box with any Min component greater than the matching Max component is empty.
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the canonical empty box (+Inf min, -Inf max)
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
// No points yields an empty box.
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box = box.ExpandPoint(point)
	}
	return box
}

// IsEmpty reports whether the box contains no points
func (aabb AABB) IsEmpty() bool {
	return aabb.Min.X > aabb.Max.X ||
		aabb.Min.Y > aabb.Max.Y ||
		aabb.Min.Z > aabb.Max.Z
}

// ExpandPoint returns the smallest box containing this box and the point
func (aabb AABB) ExpandPoint(p Vec3) AABB {
	return AABB{Min: aabb.Min.Min(p), Max: aabb.Max.Max(p)}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// Contains reports whether the point lies inside or on the box
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// ContainsBox reports whether other lies entirely inside this box.
// Every box contains the empty box.
func (aabb AABB) ContainsBox(other AABB) bool {
	if other.IsEmpty() {
		return true
	}
	return aabb.Contains(other.Min) && aabb.Contains(other.Max)
}

// Overlaps reports whether the two boxes share at least one point
func (aabb AABB) Overlaps(other AABB) bool {
	return aabb.Min.X <= other.Max.X && aabb.Max.X >= other.Min.X &&
		aabb.Min.Y <= other.Max.Y && aabb.Max.Y >= other.Min.Y &&
		aabb.Min.Z <= other.Max.Z && aabb.Max.Z >= other.Min.Z
}

// Hit tests if a ray intersects with this AABB within [tMin, tMax]
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	_, _, ok := aabb.slab(ray, tMin, tMax)
	return ok
}

// Intersect returns the entry and exit parameters of the ray through the box,
// clamped to the ray's own [TMin, TMax]
func (aabb AABB) Intersect(ray Ray) (tNear, tFar float64, ok bool) {
	return aabb.slab(ray, ray.TMin, ray.TMax)
}

// slab runs the slab method over the three axes
func (aabb AABB) slab(ray Ray, tMin, tMax float64) (float64, float64, bool) {
	if aabb.IsEmpty() {
		return 0, 0, false
	}
	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Ray parallel to this slab
		if direction == 0 {
			if origin < min || origin > max {
				return 0, 0, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, 0, false
		}
	}
	return tMin, tMax, true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Extent returns the size of the AABB along each axis
func (aabb AABB) Extent() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	if aabb.IsEmpty() {
		return 0
	}
	size := aabb.Extent()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Extent()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Pad returns an AABB grown by amount in all directions
func (aabb AABB) Pad(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}

// Corners returns the eight corner points
func (aabb AABB) Corners() [8]Vec3 {
	lo, hi := aabb.Min, aabb.Max
	return [8]Vec3{
		{lo.X, lo.Y, lo.Z},
		{hi.X, lo.Y, lo.Z},
		{lo.X, hi.Y, lo.Z},
		{hi.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z},
		{hi.X, lo.Y, hi.Z},
		{lo.X, hi.Y, hi.Z},
		{hi.X, hi.Y, hi.Z},
	}
}
