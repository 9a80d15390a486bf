package geometry

import (
	"fmt"

	"github.com/df07/glimmer/pkg/core"
)

// NewCylinderMesh tessellates a cylinder between two cap centers. Capped
// cylinders are closed; uncapped ones are open tubes.
func NewCylinderMesh(baseCenter, topCenter core.Vec3, radius float64, segments int, capped bool) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("cylinder radius must be positive, got %f", radius)
	}
	return frustumMesh(baseCenter, radius, topCenter, radius, segments, capped)
}

// frustumMesh builds the side of a truncated cone, plus caps when asked.
// A zero top radius collapses the top ring to a single apex.
func frustumMesh(baseCenter core.Vec3, baseRadius float64, topCenter core.Vec3, topRadius float64, segments int, capped bool) (*Mesh, error) {
	if segments < MinSegments {
		return nil, fmt.Errorf("need at least %d segments, got %d", MinSegments, segments)
	}
	axisVector := topCenter.Subtract(baseCenter)
	if axisVector.Length() == 0 {
		return nil, fmt.Errorf("height must be positive (base and top centers cannot be the same)")
	}
	axis := axisVector.Normalize()

	mesh := NewMesh()
	base := mesh.VertexCount()
	for _, p := range ring(baseCenter, axis, baseRadius, segments) {
		mesh.AddVertex(p)
	}
	next := func(i int) int { return (i + 1) % segments }

	if topRadius == 0 {
		apex := mesh.AddVertex(topCenter)
		for i := 0; i < segments; i++ {
			mesh.AddTriangle(base+i, base+next(i), apex)
		}
	} else {
		top := mesh.VertexCount()
		for _, p := range ring(topCenter, axis, topRadius, segments) {
			mesh.AddVertex(p)
		}
		for i := 0; i < segments; i++ {
			mesh.AddTriangle(base+i, base+next(i), top+next(i))
			mesh.AddTriangle(base+i, top+next(i), top+i)
		}
		if capped {
			c := mesh.AddVertex(topCenter)
			for i := 0; i < segments; i++ {
				mesh.AddTriangle(c, top+i, top+next(i))
			}
		}
	}

	if capped {
		c := mesh.AddVertex(baseCenter)
		for i := 0; i < segments; i++ {
			mesh.AddTriangle(c, base+next(i), base+i)
		}
	}
	return mesh, nil
}
