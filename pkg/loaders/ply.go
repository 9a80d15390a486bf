package loaders

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
)

// ErrInvalidPLY is wrapped by every PLY parse failure
var ErrInvalidPLY = errors.New("loaders: invalid PLY file")

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format   string // "binary_little_endian", "binary_big_endian", or "ascii"
	Version  string // Usually "1.0"
	Elements []PLYElement
}

// PLYElement is one "element" block of the header, in file order
type PLYElement struct {
	Name       string
	Count      int
	Properties []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string // Scalar type; empty for lists
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// Element returns the element with the given name, or nil
func (h *PLYHeader) Element(name string) *PLYElement {
	for i := range h.Elements {
		if h.Elements[i].Name == name {
			return &h.Elements[i]
		}
	}
	return nil
}

// LoadPLY loads a PLY file as a triangle mesh
func LoadPLY(filename string) (*geometry.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	mesh, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return mesh, nil
}

// ReadPLY parses an ascii, binary_little_endian or binary_big_endian PLY
// stream. Vertex x/y/z become mesh vertices and each face's vertex_indices
// list is fan-triangulated. Other elements and properties are skipped.
func ReadPLY(r io.Reader) (*geometry.Mesh, error) {
	br := bufio.NewReader(r)

	header, err := parsePLYHeader(br)
	if err != nil {
		return nil, err
	}

	var values plyValueReader
	switch header.Format {
	case "binary_little_endian":
		values = &binaryPLYReader{r: br, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryPLYReader{r: br, order: binary.BigEndian}
	case "ascii":
		scanner := bufio.NewScanner(br)
		scanner.Split(bufio.ScanWords)
		values = &asciiPLYReader{scanner: scanner}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidPLY, header.Format)
	}

	mesh := geometry.NewMesh()
	for _, element := range header.Elements {
		switch element.Name {
		case "vertex":
			err = readPLYVertices(values, element, mesh)
		case "face":
			err = readPLYFaces(values, element, mesh)
		default:
			err = skipPLYElement(values, element)
		}
		if err != nil {
			return nil, err
		}
	}

	return mesh, nil
}

// parsePLYHeader reads header lines up to and including end_header,
// leaving r positioned at the first data byte
func parsePLYHeader(r *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}
	first := true

	for {
		line, err := r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return nil, fmt.Errorf("%w: header ends before end_header", ErrInvalidPLY)
		}
		line = strings.TrimSpace(line)

		if first {
			if line != "ply" {
				return nil, fmt.Errorf("%w: missing ply magic", ErrInvalidPLY)
			}
			first = false
			continue
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: malformed format line %q", ErrInvalidPLY, line)
			}
			header.Format = parts[1]
			header.Version = parts[2]
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: malformed element line %q", ErrInvalidPLY, line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("%w: invalid element count %q", ErrInvalidPLY, parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("%w: property before any element", ErrInvalidPLY)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			last := &header.Elements[len(header.Elements)-1]
			last.Properties = append(last.Properties, prop)
		default:
			return nil, fmt.Errorf("%w: unknown header keyword %q", ErrInvalidPLY, parts[0])
		}
	}

	if header.Format == "" {
		return nil, fmt.Errorf("%w: missing format line", ErrInvalidPLY)
	}
	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("%w: invalid property definition", ErrInvalidPLY)
	}

	prop := PLYProperty{}
	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("%w: invalid list property definition", ErrInvalidPLY)
		}
		prop.IsList = true
		prop.ListType = parts[1]
		prop.DataType = parts[2]
		prop.Name = parts[3]
		if getTypeSize(prop.ListType) == 0 || getTypeSize(prop.DataType) == 0 {
			return PLYProperty{}, fmt.Errorf("%w: unsupported list types %s %s", ErrInvalidPLY, prop.ListType, prop.DataType)
		}
	} else {
		prop.Type = parts[0]
		prop.Name = parts[1]
		if getTypeSize(prop.Type) == 0 {
			return PLYProperty{}, fmt.Errorf("%w: unsupported data type %s", ErrInvalidPLY, prop.Type)
		}
	}

	return prop, nil
}

func readPLYVertices(values plyValueReader, element PLYElement, mesh *geometry.Mesh) error {
	xi, yi, zi := -1, -1, -1
	for i, prop := range element.Properties {
		switch {
		case prop.IsList:
		case prop.Name == "x":
			xi = i
		case prop.Name == "y":
			yi = i
		case prop.Name == "z":
			zi = i
		}
	}
	if xi < 0 || yi < 0 || zi < 0 {
		return fmt.Errorf("%w: vertex element needs x, y and z", ErrInvalidPLY)
	}

	row := make([]float64, len(element.Properties))
	for v := 0; v < element.Count; v++ {
		for i, prop := range element.Properties {
			if prop.IsList {
				if err := skipPLYList(values, prop); err != nil {
					return fmt.Errorf("vertex %d: %w", v, err)
				}
				continue
			}
			value, err := values.scalar(prop.Type)
			if err != nil {
				return fmt.Errorf("vertex %d: %w", v, err)
			}
			row[i] = value
		}
		mesh.AddVertex(core.NewVec3(row[xi], row[yi], row[zi]))
	}
	return nil
}

func readPLYFaces(values plyValueReader, element PLYElement, mesh *geometry.Mesh) error {
	indices := make([]int, 0, 4)
	for f := 0; f < element.Count; f++ {
		for _, prop := range element.Properties {
			if !prop.IsList || (prop.Name != "vertex_indices" && prop.Name != "vertex_index") {
				if err := skipPLYProperty(values, prop); err != nil {
					return fmt.Errorf("face %d: %w", f, err)
				}
				continue
			}

			count, err := values.scalar(prop.ListType)
			if err != nil {
				return fmt.Errorf("face %d: %w", f, err)
			}
			indices = indices[:0]
			for k := 0; k < int(count); k++ {
				value, err := values.scalar(prop.DataType)
				if err != nil {
					return fmt.Errorf("face %d: %w", f, err)
				}
				idx := int(value)
				if idx < 0 || idx >= mesh.VertexCount() {
					return fmt.Errorf("%w: face %d index %d out of range (%d vertices)", ErrInvalidPLY, f, idx, mesh.VertexCount())
				}
				indices = append(indices, idx)
			}
			if len(indices) < 3 {
				return fmt.Errorf("%w: face %d has %d vertices", ErrInvalidPLY, f, len(indices))
			}
			for k := 1; k+1 < len(indices); k++ {
				mesh.AddTriangle(indices[0], indices[k], indices[k+1])
			}
		}
	}
	return nil
}

func skipPLYElement(values plyValueReader, element PLYElement) error {
	// Fixed-size binary rows can be discarded in one step
	if b, ok := values.(*binaryPLYReader); ok && !hasListProperty(element.Properties) {
		size := calculateVertexSize(element.Properties) * element.Count
		if n, err := b.r.Discard(size); err != nil {
			return fmt.Errorf("%w: truncated %s data (%d of %d bytes)", ErrInvalidPLY, element.Name, n, size)
		}
		return nil
	}

	for n := 0; n < element.Count; n++ {
		for _, prop := range element.Properties {
			if err := skipPLYProperty(values, prop); err != nil {
				return fmt.Errorf("%s %d: %w", element.Name, n, err)
			}
		}
	}
	return nil
}

func hasListProperty(props []PLYProperty) bool {
	for _, prop := range props {
		if prop.IsList {
			return true
		}
	}
	return false
}

func skipPLYProperty(values plyValueReader, prop PLYProperty) error {
	if prop.IsList {
		return skipPLYList(values, prop)
	}
	_, err := values.scalar(prop.Type)
	return err
}

func skipPLYList(values plyValueReader, prop PLYProperty) error {
	count, err := values.scalar(prop.ListType)
	if err != nil {
		return err
	}
	for i := 0; i < int(count); i++ {
		if _, err := values.scalar(prop.DataType); err != nil {
			return err
		}
	}
	return nil
}

// calculateVertexSize calculates the size in bytes of the fixed-size
// properties of one element row
func calculateVertexSize(props []PLYProperty) int {
	size := 0
	for _, prop := range props {
		if prop.IsList {
			// Lists are variable size, can't pre-calculate
			continue
		}
		size += getTypeSize(prop.Type)
	}
	return size
}

// getTypeSize returns the size in bytes of a PLY data type, or 0 if the
// type is not recognized
func getTypeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 0
	}
}

// plyValueReader yields the next scalar of the data section as float64
type plyValueReader interface {
	scalar(dataType string) (float64, error)
}

type binaryPLYReader struct {
	r     *bufio.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *binaryPLYReader) scalar(dataType string) (float64, error) {
	size := getTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("%w: unsupported data type %s", ErrInvalidPLY, dataType)
	}
	data := b.buf[:size]
	if _, err := io.ReadFull(b.r, data); err != nil {
		return 0, fmt.Errorf("%w: truncated data: %v", ErrInvalidPLY, err)
	}

	switch dataType {
	case "char", "int8":
		return float64(int8(data[0])), nil
	case "uchar", "uint8":
		return float64(data[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(data))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(data)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(data))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(data)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(data))), nil
	default: // double, float64
		return math.Float64frombits(b.order.Uint64(data)), nil
	}
}

type asciiPLYReader struct {
	scanner *bufio.Scanner
}

func (a *asciiPLYReader) scalar(dataType string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidPLY, err)
		}
		return 0, fmt.Errorf("%w: truncated data", ErrInvalidPLY)
	}
	token := a.scanner.Text()
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s value %q", ErrInvalidPLY, dataType, token)
	}
	return value, nil
}
