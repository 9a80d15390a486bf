package geometry

import (
	"github.com/df07/glimmer/pkg/core"
)

// NewQuadMesh builds the parallelogram spanned by edges u and v from corner
// as two triangles. The geometric normal is u × v.
func NewQuadMesh(corner, u, v core.Vec3) *Mesh {
	vertices := []core.Vec3{
		corner,
		corner.Add(u),
		corner.Add(u).Add(v),
		corner.Add(v),
	}
	return NewMeshFromData(vertices, [][3]int{{0, 1, 2}, {0, 2, 3}})
}
