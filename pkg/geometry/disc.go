package geometry

import (
	"fmt"
	"math"

	"github.com/df07/glimmer/pkg/core"
)

// MinSegments is the coarsest tessellation accepted by the round mesh builders
const MinSegments = 3

// ring returns segments points on the circle of the given radius around
// center, counter-clockwise when seen from the tip of n
func ring(center, n core.Vec3, radius float64, segments int) []core.Vec3 {
	right, up := core.OrthonormalBasis(n)
	points := make([]core.Vec3, segments)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		offset := right.Multiply(math.Cos(theta)).Add(up.Multiply(math.Sin(theta)))
		points[i] = center.Add(offset.Multiply(radius))
	}
	return points
}

// NewDiscMesh tessellates a flat disc facing normal into a triangle fan
func NewDiscMesh(center, normal core.Vec3, radius float64, segments int) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("disc radius must be positive, got %f", radius)
	}
	if segments < MinSegments {
		return nil, fmt.Errorf("disc needs at least %d segments, got %d", MinSegments, segments)
	}
	if normal.Length() == 0 {
		return nil, fmt.Errorf("disc normal must be non-zero")
	}
	n := normal.Normalize()

	mesh := NewMesh()
	c := mesh.AddVertex(center)
	first := mesh.VertexCount()
	for _, p := range ring(center, n, radius, segments) {
		mesh.AddVertex(p)
	}
	for i := 0; i < segments; i++ {
		mesh.AddTriangle(c, first+i, first+(i+1)%segments)
	}
	return mesh, nil
}
