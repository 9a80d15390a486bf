package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/glimmer/pkg/core"
)

const quadAndTriangleOBJ = `# quad, negative-index triangle and a slash face
mtllib scene.mtl
o square

v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vn 0 0 1
v 0.5 0.5 1
g faces
usemtl white
s off
f 1/1/1 2/1/1 3//1 4
f -1 -2 -3
f 1 2 5
`

func TestParseOBJ(t *testing.T) {
	mesh, err := ParseOBJ(strings.NewReader(quadAndTriangleOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if mesh.VertexCount() != 5 {
		t.Fatalf("Expected 5 vertices, got %d", mesh.VertexCount())
	}
	if got := mesh.Vertex(4); !got.Equals(core.NewVec3(0.5, 0.5, 1)) {
		t.Errorf("Expected last vertex (0.5, 0.5, 1), got %v", got)
	}

	expected := [][3]int{
		{0, 1, 2}, {0, 2, 3}, // fan of the quad
		{4, 3, 2}, // -1 is the last vertex read so far
		{0, 1, 4},
	}
	if mesh.TriangleCount() != len(expected) {
		t.Fatalf("Expected %d triangles, got %d", len(expected), mesh.TriangleCount())
	}
	for i, want := range expected {
		if got := mesh.Triangle(i); got != want {
			t.Errorf("Triangle %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestParseOBJ_NegativeIndexIsRelative(t *testing.T) {
	// -1 refers to the most recent vertex at the point the face is read
	content := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\nv 5 5 5\n"
	mesh, err := ParseOBJ(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if got := mesh.Triangle(0); got != [3]int{0, 1, 2} {
		t.Errorf("Expected (0, 1, 2), got %v", got)
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    string
	}{
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n", "line 3"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\n\nf 1 2 9\n", "line 5"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", "line 4"},
		{"negative out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -4 1 2\n", "line 4"},
		{"bad index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf a b c\n", "line 4"},
		{"short vertex", "# header\nv 1 2\n", "line 2"},
		{"bad coordinate", "v 1 two 3\n", "line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.content))
			if !errors.Is(err, ErrInvalidOBJ) {
				t.Fatalf("Expected ErrInvalidOBJ, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("Expected error to mention %q, got %v", tt.line, err)
			}
		})
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quadAndTriangleOBJ), 0644); err != nil {
		t.Fatalf("Failed to write OBJ: %v", err)
	}

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if mesh.TriangleCount() != 4 {
		t.Errorf("Expected 4 triangles, got %d", mesh.TriangleCount())
	}

	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("Expected error for missing file")
	}
}
