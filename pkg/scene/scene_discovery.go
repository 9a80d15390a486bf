package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/glimmer/pkg/geometry"
)

// ErrUnknownScene is returned when a built-in scene ID is not recognized
var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the scene file (file type only)
}

// builtinScenes lists the presets in the order the CLI shows them
var builtinScenes = []SceneInfo{
	{ID: "default", Name: "Default Scene", Description: "Red diffuse and green metal spheres sharing one geometry", Type: "builtin"},
	{ID: "cornell", Name: "Cornell Box", Description: "Plane walls, emissive dome, mirror and glass spheres", Type: "builtin"},
	{ID: "checker", Name: "Checker Scene", Description: "Checkerboard ground and textured spheres under several transforms", Type: "builtin"},
	{ID: "mesh", Name: "Mesh Scene", Description: "A triangle mesh under a non-uniform transform", Type: "builtin"},
	{ID: "grid", Name: "Sphere Grid", Description: "Grid of rainbow metal spheres from one shared sphere", Type: "builtin"},
}

// defaultGridSize is the sphere grid dimension used by NewBuiltinScene
const defaultGridSize = 10

// BuiltinScenes returns the preset scenes
func BuiltinScenes() []SceneInfo {
	return append([]SceneInfo(nil), builtinScenes...)
}

// NewBuiltinScene builds the preset with the given ID. mesh is only used by
// the mesh scene; nil shows a box there.
func NewBuiltinScene(id string, aspect float64, mesh *geometry.Mesh) (*Scene, error) {
	switch id {
	case "default":
		return NewDefaultScene(aspect), nil
	case "cornell":
		return NewCornellScene(aspect), nil
	case "checker":
		return NewCheckerScene(aspect), nil
	case "mesh":
		return NewMeshScene(mesh, aspect), nil
	case "grid":
		return NewSphereGridScene(defaultGridSize, aspect), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// ListSceneFiles scans dir for .json scene files. A missing directory yields
// an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseSceneMetadata reads the top-level "name" and "description" of a scene
// file. Missing values fall back to the title-cased file name.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       "file:" + nameWithoutExt,
		Name:     titleCase(nameWithoutExt),
		Type:     "file",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		// Unreadable files keep the fallback values
		return info, nil
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return info, fmt.Errorf("invalid scene file %s: %w", filePath, err)
	}

	if name := strings.TrimSpace(header.Name); name != "" {
		info.Name = name
	}
	info.Description = strings.TrimSpace(header.Description)
	return info, nil
}

// ListAllScenes returns the built-in scenes followed by the scene files in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}
	return append(BuiltinScenes(), files...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
