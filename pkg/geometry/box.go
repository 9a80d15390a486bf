package geometry

import (
	"github.com/df07/glimmer/pkg/core"
)

// boxFaces lists the 12 triangles of a box over the corner order below,
// wound counter-clockwise when seen from outside
var boxFaces = [12][3]int{
	{4, 5, 6}, {4, 6, 7}, // front (Z+)
	{1, 0, 3}, {1, 3, 2}, // back (Z-)
	{5, 1, 2}, {5, 2, 6}, // right (X+)
	{0, 4, 7}, {0, 7, 3}, // left (X-)
	{7, 6, 2}, {7, 2, 3}, // top (Y+)
	{0, 1, 5}, {0, 5, 4}, // bottom (Y-)
}

// NewBoxMesh builds an axis-aligned box between min and max as a 12-triangle
// mesh with outward-facing geometric normals. Rotate it with a transform.
func NewBoxMesh(min, max core.Vec3) *Mesh {
	corners := []core.Vec3{
		core.NewVec3(min.X, min.Y, min.Z), // 0: left-bottom-back
		core.NewVec3(max.X, min.Y, min.Z), // 1: right-bottom-back
		core.NewVec3(max.X, max.Y, min.Z), // 2: right-top-back
		core.NewVec3(min.X, max.Y, min.Z), // 3: left-top-back
		core.NewVec3(min.X, min.Y, max.Z), // 4: left-bottom-front
		core.NewVec3(max.X, min.Y, max.Z), // 5: right-bottom-front
		core.NewVec3(max.X, max.Y, max.Z), // 6: right-top-front
		core.NewVec3(min.X, max.Y, max.Z), // 7: left-top-front
	}
	return NewMeshFromData(corners, boxFaces[:])
}
