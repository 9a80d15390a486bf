package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
)

// ErrInvalidOBJ is wrapped by every OBJ parse failure
var ErrInvalidOBJ = errors.New("loaders: invalid OBJ file")

// ParseOBJ reads the "v" and "f" records of a Wavefront OBJ stream into a
// mesh. Faces are fan-triangulated; indices are 1-based or negative
// (relative to the vertices read so far), and any "/vt/vn" suffix is
// ignored. Comments, blank lines and other directives are skipped.
func ParseOBJ(r io.Reader) (*geometry.Mesh, error) {
	mesh := geometry.NewMesh()
	scanner := bufio.NewScanner(r)
	lineNum := 0
	face := make([]int, 0, 4)

	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: vertex needs 3 coordinates", ErrInvalidOBJ, lineNum)
			}
			var xyz [3]float64
			for i := range xyz {
				value, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: invalid coordinate %q", ErrInvalidOBJ, lineNum, fields[i+1])
				}
				xyz[i] = value
			}
			mesh.AddVertex(core.NewVec3(xyz[0], xyz[1], xyz[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: face needs at least 3 vertices", ErrInvalidOBJ, lineNum)
			}
			face = face[:0]
			for _, field := range fields[1:] {
				idx, err := resolveOBJIndex(field, mesh.VertexCount())
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidOBJ, lineNum, err)
				}
				face = append(face, idx)
			}
			for k := 1; k+1 < len(face); k++ {
				mesh.AddTriangle(face[0], face[k], face[k+1])
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}
	return mesh, nil
}

// LoadOBJ reads an OBJ file as a triangle mesh
func LoadOBJ(filename string) (*geometry.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	mesh, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return mesh, nil
}

// resolveOBJIndex converts a face token to a 0-based vertex index
func resolveOBJIndex(token string, vertexCount int) (int, error) {
	head, _, _ := strings.Cut(token, "/")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("invalid vertex index %q", token)
	}

	idx := n - 1
	if n < 0 {
		idx = vertexCount + n
	}
	if n == 0 || idx < 0 || idx >= vertexCount {
		return 0, fmt.Errorf("vertex index %d out of range (%d vertices)", n, vertexCount)
	}
	return idx, nil
}
