package geometry

import (
	"fmt"

	"github.com/df07/glimmer/pkg/core"
)

// Mesh is an indexed triangle mesh. Each face is tested independently;
// the bounding box is kept up to date as vertices are added.
type Mesh struct {
	vertices  []core.Vec3
	triangles [][3]int
	bbox      core.AABB
}

// NewMesh creates an empty mesh
func NewMesh() *Mesh {
	return &Mesh{bbox: core.EmptyAABB()}
}

// NewMeshFromData creates a mesh from vertices and index triples.
// Any index outside the vertex range panics.
func NewMeshFromData(vertices []core.Vec3, triangles [][3]int) *Mesh {
	m := NewMesh()
	m.vertices = make([]core.Vec3, 0, len(vertices))
	m.triangles = make([][3]int, 0, len(triangles))
	for _, v := range vertices {
		m.AddVertex(v)
	}
	for _, tri := range triangles {
		m.AddTriangle(tri[0], tri[1], tri[2])
	}
	return m
}

// AddVertex appends a vertex and returns its index
func (m *Mesh) AddVertex(v core.Vec3) int {
	m.vertices = append(m.vertices, v)
	m.bbox = m.bbox.ExpandPoint(v)
	return len(m.vertices) - 1
}

// AddTriangle appends a face referencing three existing vertices.
// An out-of-range index panics.
func (m *Mesh) AddTriangle(i, j, k int) {
	n := len(m.vertices)
	for _, idx := range [3]int{i, j, k} {
		if idx < 0 || idx >= n {
			panic(fmt.Sprintf("geometry: face index %d out of bounds (%d vertices)", idx, n))
		}
	}
	m.triangles = append(m.triangles, [3]int{i, j, k})
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// TriangleCount returns the number of triangles
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Vertex returns vertex i
func (m *Mesh) Vertex(i int) core.Vec3 {
	return m.vertices[i]
}

// Triangle returns the vertex indices of face i
func (m *Mesh) Triangle(i int) [3]int {
	return m.triangles[i]
}

// Intersect returns the closest face hit along the ray.
// UV carries the Möller-Trumbore barycentrics of that face.
func (m *Mesh) Intersect(ray core.Ray) (Hit, bool) {
	var closest TriangleHit
	found := false

	search := ray
	for _, tri := range m.triangles {
		hit, ok := IntersectTriangle(search, m.vertices[tri[0]], m.vertices[tri[1]], m.vertices[tri[2]])
		if !ok || (found && hit.T >= closest.T) {
			continue
		}
		closest = hit
		found = true
		search.TMax = hit.T
	}

	if !found {
		return Hit{}, false
	}
	return Hit{
		T:      closest.T,
		Point:  ray.At(closest.T),
		Normal: closest.Normal,
		UV:     core.NewVec2(closest.U, closest.V),
	}, true
}

// AABB returns the box around all vertices; an empty mesh has an empty box
func (m *Mesh) AABB() core.AABB {
	return m.bbox
}
