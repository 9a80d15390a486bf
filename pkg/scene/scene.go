package scene

import (
	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
	"github.com/df07/glimmer/pkg/material"
)

// Scene contains all the elements needed for rendering. It must not be
// modified while a render is in progress.
type Scene struct {
	Camera     *Camera
	Background core.Vec3 // Radiance returned by rays that miss every object

	objects []*Object
	bounds  core.AABB
}

// Intersection is the closest world-space hit found by Trace
type Intersection struct {
	Object *Object
	Hit    geometry.Hit
}

// NewScene creates an empty scene
func NewScene(camera *Camera, background core.Vec3) *Scene {
	return &Scene{
		Camera:     camera,
		Background: background,
		objects:    make([]*Object, 0),
		bounds:     core.EmptyAABB(),
	}
}

// AddObject appends an object. Insertion order breaks ties in Trace.
func (s *Scene) AddObject(obj *Object) {
	s.objects = append(s.objects, obj)
	s.bounds = s.bounds.Union(obj.AABB())
}

// Add creates an object from its parts and appends it
func (s *Scene) Add(g *geometry.Geometry, m material.Material, xf core.Transform) *Object {
	obj := NewObject(g, m, xf)
	s.AddObject(obj)
	return obj
}

// Objects returns the objects in insertion order
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Len returns the number of objects
func (s *Scene) Len() int {
	return len(s.objects)
}

// IsEmpty reports whether the scene has no objects
func (s *Scene) IsEmpty() bool {
	return len(s.objects) == 0
}

// AABB returns the union of all object bounds; empty for an empty scene
func (s *Scene) AABB() core.AABB {
	return s.bounds
}

// GetPrimitiveCount returns the number of primitives, counting each mesh triangle
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, obj := range s.objects {
		if mesh := obj.Geometry.Mesh(); mesh != nil {
			count += mesh.TriangleCount()
		} else {
			count++
		}
	}
	return count
}

// Trace finds the closest object hit by ray within [TMin, TMax]. Bounded
// objects whose box the ray misses are skipped. Equal t keeps the earlier object.
func (s *Scene) Trace(ray core.Ray) (Intersection, bool) {
	var closest Intersection
	found := false
	tMax := ray.TMax

	for _, obj := range s.objects {
		if obj.Bounded() && !obj.AABB().Hit(ray, ray.TMin, tMax) {
			continue
		}
		hit, ok := obj.Intersect(ray.WithInterval(ray.TMin, tMax))
		if !ok || (found && hit.T >= tMax) {
			continue
		}
		closest = Intersection{Object: obj, Hit: hit}
		tMax = hit.T
		found = true
	}

	return closest, found
}
