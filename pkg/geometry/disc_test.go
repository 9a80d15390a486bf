package geometry

import (
	"math"
	"testing"

	"github.com/df07/glimmer/pkg/core"
)

// faceNormal returns the normalized geometric normal of triangle i
func faceNormal(m *Mesh, i int) (normal, centroid core.Vec3) {
	tri := m.Triangle(i)
	p0, p1, p2 := m.Vertex(tri[0]), m.Vertex(tri[1]), m.Vertex(tri[2])
	normal = p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()
	centroid = p0.Add(p1).Add(p2).Divide(3)
	return normal, centroid
}

func TestNewDiscMesh(t *testing.T) {
	tests := []struct {
		name   string
		center core.Vec3
		normal core.Vec3
	}{
		{"facing up", core.NewVec3(0, 2, 0), core.NewVec3(0, 1, 0)},
		{"facing +X", core.NewVec3(1, 0, 0), core.NewVec3(3, 0, 0)},
		{"tilted", core.NewVec3(0, 0, -1), core.NewVec3(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			disc, err := NewDiscMesh(tt.center, tt.normal, 2, 16)
			if err != nil {
				t.Fatalf("NewDiscMesh failed: %v", err)
			}
			if disc.TriangleCount() != 16 || disc.VertexCount() != 17 {
				t.Fatalf("Expected 16 triangles over 17 vertices, got %d over %d", disc.TriangleCount(), disc.VertexCount())
			}

			n := tt.normal.Normalize()
			for i := 0; i < disc.TriangleCount(); i++ {
				if normal, _ := faceNormal(disc, i); !normal.ApproxEquals(n, 1e-9) {
					t.Errorf("Triangle %d normal %v, expected %v", i, normal, n)
				}
			}
			for i := 1; i < disc.VertexCount(); i++ {
				if d := disc.Vertex(i).Subtract(tt.center).Length(); math.Abs(d-2) > 1e-9 {
					t.Errorf("Rim vertex %d at distance %f, expected 2", i, d)
				}
			}

			// Off-center so the ray avoids the shared fan vertex
			right, up := core.OrthonormalBasis(n)
			origin := tt.center.Add(right.Multiply(0.3)).Add(up.Multiply(0.2)).Add(n.Multiply(3))
			hit, ok := disc.Intersect(core.NewRay(origin, n.Negate()))
			if !ok {
				t.Fatal("Expected the ray to hit the disc")
			}
			if math.Abs(hit.T-3) > 1e-9 {
				t.Errorf("Expected t=3, got %f", hit.T)
			}
		})
	}
}

func TestNewDiscMesh_Errors(t *testing.T) {
	tests := []struct {
		name     string
		normal   core.Vec3
		radius   float64
		segments int
	}{
		{"zero radius", core.NewVec3(0, 1, 0), 0, 8},
		{"too few segments", core.NewVec3(0, 1, 0), 1, 2},
		{"zero normal", core.NewVec3(0, 0, 0), 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDiscMesh(core.NewVec3(0, 0, 0), tt.normal, tt.radius, tt.segments); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
