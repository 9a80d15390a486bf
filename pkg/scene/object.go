package scene

import (
	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
	"github.com/df07/glimmer/pkg/material"
)

// Object places a shared geometry in the world with a material and transform.
// Geometry is defined in object space; Intersect reports world-space hits.
type Object struct {
	Geometry *geometry.Geometry
	Material material.Material

	transform core.Transform // object-to-world
	bounds    core.AABB      // world space
}

// NewObject creates a scene object. A nil geometry panics.
func NewObject(g *geometry.Geometry, m material.Material, xf core.Transform) *Object {
	if g == nil {
		panic("scene: object needs a geometry")
	}
	return &Object{
		Geometry:  g,
		Material:  m,
		transform: xf,
		bounds:    xf.TransformAABB(g.AABB()),
	}
}

// Transform returns the object-to-world transform
func (o *Object) Transform() core.Transform {
	return o.transform
}

// AABB returns the world-space bounding box
func (o *Object) AABB() core.AABB {
	return o.bounds
}

// Bounded reports whether AABB encloses every hit. Planes are infinite, so
// their box is only an approximation and must not be used to reject rays.
func (o *Object) Bounded() bool {
	return o.Geometry.Kind() != geometry.KindPlane
}

// Intersect tests a world-space ray against the object. The ray direction is
// not renormalized in object space, so the returned T is the world parameter.
func (o *Object) Intersect(ray core.Ray) (geometry.Hit, bool) {
	local := o.transform.Inverse().TransformRay(ray)
	hit, ok := o.Geometry.Intersect(local)
	if !ok {
		return geometry.Hit{}, false
	}

	hit.Point = o.transform.TransformPoint(hit.Point)
	hit.Normal = o.transform.TransformNormal(hit.Normal)
	return hit, true
}
