package geometry

import (
	"math"
	"testing"

	"github.com/df07/glimmer/pkg/core"
)

// checkOutward verifies every face of a closed convex mesh points away from interior
func checkOutward(t *testing.T, m *Mesh, interior core.Vec3) {
	t.Helper()
	for i := 0; i < m.TriangleCount(); i++ {
		normal, centroid := faceNormal(m, i)
		if normal.Dot(centroid.Subtract(interior)) <= 0 {
			t.Errorf("Triangle %d normal %v points inward", i, normal)
		}
	}
}

func TestNewCylinderMesh(t *testing.T) {
	base := core.NewVec3(0, 0, 0)
	top := core.NewVec3(0, 2, 0)

	tests := []struct {
		name      string
		capped    bool
		triangles int
		vertices  int
	}{
		{"open tube", false, 24, 24},
		{"capped", true, 48, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cyl, err := NewCylinderMesh(base, top, 1, 12, tt.capped)
			if err != nil {
				t.Fatalf("NewCylinderMesh failed: %v", err)
			}
			if cyl.TriangleCount() != tt.triangles || cyl.VertexCount() != tt.vertices {
				t.Fatalf("Expected %d triangles over %d vertices, got %d over %d",
					tt.triangles, tt.vertices, cyl.TriangleCount(), cyl.VertexCount())
			}
			checkOutward(t, cyl, core.NewVec3(0, 1, 0))

			bbox := cyl.AABB()
			if math.Abs(bbox.Min.Y) > 1e-12 || math.Abs(bbox.Max.Y-2) > 1e-12 {
				t.Errorf("Expected y range [0, 2], got [%f, %f]", bbox.Min.Y, bbox.Max.Y)
			}
			if bbox.Max.X > 1+1e-9 || bbox.Min.X < -1-1e-9 {
				t.Errorf("Expected x within the radius, got [%f, %f]", bbox.Min.X, bbox.Max.X)
			}
		})
	}
}

func TestNewCylinderMesh_Intersect(t *testing.T) {
	cyl, err := NewCylinderMesh(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 1, 64, true)
	if err != nil {
		t.Fatalf("NewCylinderMesh failed: %v", err)
	}

	// Straight down onto the top cap, off the fan center
	hit, ok := cyl.Intersect(core.NewRay(core.NewVec3(0.1, 5, 0.13), core.NewVec3(0, -1, 0)))
	if !ok {
		t.Fatal("Expected hit on the top cap")
	}
	if math.Abs(hit.T-3) > 1e-9 || !hit.Normal.ApproxEquals(core.NewVec3(0, 1, 0), 1e-9) {
		t.Errorf("Expected top cap at t=3 facing up, got t=%f normal %v", hit.T, hit.Normal)
	}

	// From the side; the tessellated wall sits just inside the true radius
	hit, ok = cyl.Intersect(core.NewRay(core.NewVec3(5, 1, 0.01), core.NewVec3(-1, 0, 0)))
	if !ok {
		t.Fatal("Expected hit on the side")
	}
	if hit.T < 4 || hit.T > 4.01 {
		t.Errorf("Expected side hit near t=4, got %f", hit.T)
	}
	if hit.Normal.X <= 0.99 {
		t.Errorf("Expected side normal close to +X, got %v", hit.Normal)
	}
}

func TestNewCylinderMesh_Errors(t *testing.T) {
	origin := core.NewVec3(0, 0, 0)
	if _, err := NewCylinderMesh(origin, core.NewVec3(0, 1, 0), 0, 8, true); err == nil {
		t.Error("Expected error for zero radius")
	}
	if _, err := NewCylinderMesh(origin, origin, 1, 8, true); err == nil {
		t.Error("Expected error for zero height")
	}
	if _, err := NewCylinderMesh(origin, core.NewVec3(0, 1, 0), 1, 2, true); err == nil {
		t.Error("Expected error for too few segments")
	}
}
