package loaders

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
)

// squareVertices are the corners of the unit square in z=0
var squareVertices = []core.Vec3{
	core.NewVec3(0, 0, 0),
	core.NewVec3(1, 0, 0),
	core.NewVec3(1, 1, 0),
	core.NewVec3(0, 1, 0),
}

// createTestPLY writes the unit square as two binary triangles, optionally
// with normals and colors that the loader must skip
func createTestPLY(t *testing.T, order binary.ByteOrder, includeNormals, includeColors bool) []byte {
	t.Helper()
	var buf bytes.Buffer

	format := "binary_little_endian"
	if order == binary.BigEndian {
		format = "binary_big_endian"
	}
	buf.WriteString("ply\n")
	buf.WriteString("format " + format + " 1.0\n")
	buf.WriteString("comment unit square\n")
	buf.WriteString("element vertex 4\n")
	buf.WriteString("property float x\n")
	buf.WriteString("property float y\n")
	buf.WriteString("property float z\n")
	if includeNormals {
		buf.WriteString("property float nx\n")
		buf.WriteString("property float ny\n")
		buf.WriteString("property float nz\n")
	}
	if includeColors {
		buf.WriteString("property uchar red\n")
		buf.WriteString("property uchar green\n")
		buf.WriteString("property uchar blue\n")
	}
	buf.WriteString("element face 2\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("end_header\n")

	for _, v := range squareVertices {
		binary.Write(&buf, order, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
		if includeNormals {
			binary.Write(&buf, order, [3]float32{0, 0, 1})
		}
		if includeColors {
			binary.Write(&buf, order, [3]uint8{255, 128, 0})
		}
	}

	for _, f := range [][3]int32{{0, 1, 2}, {0, 2, 3}} {
		binary.Write(&buf, order, uint8(3))
		binary.Write(&buf, order, f)
	}

	return buf.Bytes()
}

// checkSquare verifies the mesh is the unit square split along 0-2
func checkSquare(t *testing.T, mesh *geometry.Mesh) {
	t.Helper()
	if mesh.VertexCount() != len(squareVertices) {
		t.Fatalf("Expected %d vertices, got %d", len(squareVertices), mesh.VertexCount())
	}
	for i, expected := range squareVertices {
		if !mesh.Vertex(i).Equals(expected) {
			t.Errorf("Vertex %d: expected %v, got %v", i, expected, mesh.Vertex(i))
		}
	}

	expectedFaces := [][3]int{{0, 1, 2}, {0, 2, 3}}
	if mesh.TriangleCount() != len(expectedFaces) {
		t.Fatalf("Expected %d triangles, got %d", len(expectedFaces), mesh.TriangleCount())
	}
	for i, expected := range expectedFaces {
		if mesh.Triangle(i) != expected {
			t.Errorf("Triangle %d: expected %v, got %v", i, expected, mesh.Triangle(i))
		}
	}
}

func TestReadPLY_Binary(t *testing.T) {
	tests := []struct {
		name           string
		order          binary.ByteOrder
		includeNormals bool
		includeColors  bool
	}{
		{"little endian", binary.LittleEndian, false, false},
		{"little endian with normals", binary.LittleEndian, true, false},
		{"little endian with colors", binary.LittleEndian, false, true},
		{"little endian with normals and colors", binary.LittleEndian, true, true},
		{"big endian", binary.BigEndian, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := createTestPLY(t, tt.order, tt.includeNormals, tt.includeColors)
			mesh, err := ReadPLY(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("ReadPLY failed: %v", err)
			}
			checkSquare(t, mesh)
		})
	}
}

func TestReadPLY_ASCII(t *testing.T) {
	// A quad face is fan-triangulated; the edge element is skipped
	content := `ply
format ascii 1.0
comment unit square
element vertex 4
property double x
property double y
property double z
property uchar red
element face 1
property uchar flags
property list uchar uint vertex_indices
element edge 1
property int vertex1
property int vertex2
end_header
0 0 0 10
1 0 0 20
1 1 0 30
0 1 0 40
7 4 0 1 2 3
0 1
`
	mesh, err := ReadPLY(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ReadPLY failed: %v", err)
	}
	checkSquare(t, mesh)
}

func TestLoadPLY(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "square.ply")
	if err := os.WriteFile(testFile, createTestPLY(t, binary.LittleEndian, true, false), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	mesh, err := LoadPLY(testFile)
	if err != nil {
		t.Fatalf("LoadPLY failed: %v", err)
	}
	checkSquare(t, mesh)
}

func TestLoadPLY_NonExistentFile(t *testing.T) {
	if _, err := LoadPLY("non_existent_file.ply"); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestReadPLY_Errors(t *testing.T) {
	header := "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nproperty float y\nproperty float z\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n"
	vertices := "0 0 0\n1 0 0\n0 1 0\n"

	tests := []struct {
		name    string
		content string
	}{
		{"missing magic", "plx\nformat ascii 1.0\nend_header\n"},
		{"missing end_header", "ply\nformat ascii 1.0\nelement vertex 1\n"},
		{"missing format", "ply\nelement vertex 0\nend_header\n"},
		{"unsupported format", "ply\nformat binary_middle_endian 1.0\nend_header\n"},
		{"unsupported type", "ply\nformat ascii 1.0\nelement vertex 1\nproperty quad x\nend_header\n"},
		{"property before element", "ply\nformat ascii 1.0\nproperty float x\nend_header\n"},
		{"missing coordinates", "ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nend_header\n1\n"},
		{"truncated vertices", header + "0 0 0\n1 0\n"},
		{"index out of range", header + vertices + "3 0 1 3\n"},
		{"degenerate face", header + vertices + "2 0 1\n"},
		{"bad number", header + "0 0 zero\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPLY(strings.NewReader(tt.content))
			if !errors.Is(err, ErrInvalidPLY) {
				t.Errorf("Expected ErrInvalidPLY, got %v", err)
			}
		})
	}
}

func TestParsePLYHeader(t *testing.T) {
	headerContent := `ply
format binary_little_endian 1.0
comment Test PLY file
element vertex 100
property float x
property float y
property float z
property float nx
property float ny
property float nz
property uchar red
property uchar green
property uchar blue
element face 50
property list uchar int vertex_indices
end_header
DATA`

	r := bufio.NewReader(strings.NewReader(headerContent))
	header, err := parsePLYHeader(r)
	if err != nil {
		t.Fatalf("Failed to parse header: %v", err)
	}

	if header.Format != "binary_little_endian" {
		t.Errorf("Expected format 'binary_little_endian', got '%s'", header.Format)
	}
	if header.Version != "1.0" {
		t.Errorf("Expected version '1.0', got '%s'", header.Version)
	}

	vertex := header.Element("vertex")
	if vertex == nil || vertex.Count != 100 || len(vertex.Properties) != 9 {
		t.Errorf("Expected 100 vertices with 9 properties, got %+v", vertex)
	}
	face := header.Element("face")
	if face == nil || face.Count != 50 || len(face.Properties) != 1 {
		t.Fatalf("Expected 50 faces with 1 property, got %+v", face)
	}
	if prop := face.Properties[0]; !prop.IsList || prop.ListType != "uchar" || prop.DataType != "int" || prop.Name != "vertex_indices" {
		t.Errorf("Unexpected face property %+v", prop)
	}
	if header.Element("edge") != nil {
		t.Error("Expected no edge element")
	}

	// The reader is left at the first data byte
	rest, _ := r.ReadString(0)
	if rest != "DATA" {
		t.Errorf("Expected reader positioned at data, got %q", rest)
	}
}

func TestGetTypeSize(t *testing.T) {
	tests := []struct {
		dataType string
		expected int
	}{
		{"float", 4},
		{"float32", 4},
		{"int", 4},
		{"int32", 4},
		{"uint", 4},
		{"uint32", 4},
		{"double", 8},
		{"float64", 8},
		{"short", 2},
		{"int16", 2},
		{"ushort", 2},
		{"uint16", 2},
		{"char", 1},
		{"int8", 1},
		{"uchar", 1},
		{"uint8", 1},
		{"unknown", 0},
	}

	for _, test := range tests {
		if result := getTypeSize(test.dataType); result != test.expected {
			t.Errorf("getTypeSize(%s): expected %d, got %d", test.dataType, test.expected, result)
		}
	}
}

func TestCalculateVertexSize(t *testing.T) {
	props := []PLYProperty{
		{Name: "x", Type: "float"},
		{Name: "y", Type: "float"},
		{Name: "z", Type: "float"},
		{Name: "nx", Type: "float"},
		{Name: "ny", Type: "float"},
		{Name: "nz", Type: "float"},
		{Name: "red", Type: "uchar"},
		{Name: "green", Type: "uchar"},
		{Name: "blue", Type: "uchar"},
		{Name: "vertex_indices", IsList: true, ListType: "uchar", DataType: "int"},
	}

	expected := 6*4 + 3*1 // lists are not counted
	if result := calculateVertexSize(props); result != expected {
		t.Errorf("calculateVertexSize: expected %d, got %d", expected, result)
	}
}
