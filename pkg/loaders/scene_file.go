package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
	"github.com/df07/glimmer/pkg/material"
	"github.com/df07/glimmer/pkg/scene"
)

// ErrInvalidSceneFile is wrapped by every scene description failure
var ErrInvalidSceneFile = errors.New("loaders: invalid scene file")

// SceneFile is the JSON scene description
type SceneFile struct {
	Name        string                 `json:"name,omitempty"`
	Description string                 `json:"description,omitempty"`
	Camera      CameraCfg              `json:"camera"`
	Background  [3]float64             `json:"background"`
	Materials   map[string]MaterialCfg `json:"materials"`
	Objects     []ObjectCfg            `json:"objects"`
}

// CameraCfg is a look-at camera. Angles are in degrees for JSON.
type CameraCfg struct {
	Eye     [3]float64  `json:"eye"`
	Target  [3]float64  `json:"target"`
	Up      *[3]float64 `json:"up,omitempty"`     // defaults to +Y
	FovyDeg float64     `json:"fovyDeg"`          // defaults to 60
	Aspect  float64     `json:"aspect,omitempty"` // 0 uses the caller's aspect
	ZNear   float64     `json:"znear,omitempty"`  // defaults to 0.1
	ZFar    float64     `json:"zfar,omitempty"`   // defaults to 1000
}

// MaterialCfg describes one named material
type MaterialCfg struct {
	Type         string      `json:"type"` // lambertian, metal, glass, emissive or generic
	Albedo       [3]float64  `json:"albedo"`
	Roughness    float64     `json:"roughness,omitempty"`
	Transparency float64     `json:"transparency,omitempty"`
	Radiance     [3]float64  `json:"radiance"`
	Power        float64     `json:"power,omitempty"` // emissive only; defaults to 1
	Checker      *CheckerCfg `json:"checker,omitempty"`
	Texture      string      `json:"texture,omitempty"` // PNG/JPEG path, relative to the scene file
}

// CheckerCfg is a checkerboard albedo
type CheckerCfg struct {
	A      [3]float64 `json:"a"`
	B      [3]float64 `json:"b"`
	TilesU int        `json:"tilesU"`
	TilesV int        `json:"tilesV"`
}

// GeometryCfg describes a geometry. Only the fields of its type are read.
type GeometryCfg struct {
	Type      string       `json:"type"` // sphere, plane, quad, disc, cylinder, cone, mesh, box, obj or ply
	Center    [3]float64   `json:"center,omitempty"`
	Radius    float64      `json:"radius,omitempty"`
	Point     [3]float64   `json:"point,omitempty"`
	Normal    [3]float64   `json:"normal,omitempty"`
	Vertices  [][3]float64 `json:"vertices,omitempty"`
	Triangles [][3]int     `json:"triangles,omitempty"`
	Base      [3]float64   `json:"base,omitempty"`
	Top       [3]float64   `json:"top,omitempty"`
	TopRadius float64      `json:"topRadius,omitempty"`
	Segments  int          `json:"segments,omitempty"` // disc, cylinder and cone tessellation; 0 means 32
	Capped    bool         `json:"capped,omitempty"`
	Corner    [3]float64   `json:"corner,omitempty"`
	U         [3]float64   `json:"u,omitempty"`
	V         [3]float64   `json:"v,omitempty"`
	Min       [3]float64   `json:"min,omitempty"`
	Max       [3]float64   `json:"max,omitempty"`
	Path      string       `json:"path,omitempty"` // obj/ply file, relative to the scene file
}

// TransformCfg is a translate·rotate·scale transform
type TransformCfg struct {
	Translate  [3]float64  `json:"translate"`
	RotateAxis [3]float64  `json:"rotateAxis"`
	RotateDeg  float64     `json:"rotateDeg"`
	Scale      *[3]float64 `json:"scale,omitempty"` // defaults to 1 on each axis
}

// ObjectCfg places a geometry with a named material
type ObjectCfg struct {
	Geometry  GeometryCfg  `json:"geometry"`
	Material  string       `json:"material"`
	Transform TransformCfg `json:"transform"`
}

// LoadSceneFile reads a JSON scene. Relative mesh and texture paths are
// resolved against the file's directory. aspect is used when the camera
// does not set one.
func LoadSceneFile(filename string, aspect float64) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseSceneFile(file, filepath.Dir(filename), aspect)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// ParseSceneFile decodes a JSON scene from r and builds it. Objects whose
// geometry definitions are identical share one geometry.
func ParseSceneFile(r io.Reader, baseDir string, aspect float64) (*scene.Scene, error) {
	var cfg SceneFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSceneFile, err)
	}
	return cfg.Build(baseDir, aspect)
}

// Build validates the description and constructs the scene
func (cfg SceneFile) Build(baseDir string, aspect float64) (*scene.Scene, error) {
	camera, err := cfg.Camera.Build(aspect)
	if err != nil {
		return nil, err
	}
	s := scene.NewScene(camera, vec3(cfg.Background))

	materials := make(map[string]material.Material, len(cfg.Materials))
	for name, mc := range cfg.Materials {
		m, err := mc.Build(baseDir)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}

	geometries := make(map[string]*geometry.Geometry)
	for i, oc := range cfg.Objects {
		m, ok := materials[oc.Material]
		if !ok {
			return nil, fmt.Errorf("%w: object %d: unknown material %q", ErrInvalidSceneFile, i, oc.Material)
		}

		key, err := json.Marshal(oc.Geometry)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		g, ok := geometries[string(key)]
		if !ok {
			g, err = oc.Geometry.Build(baseDir)
			if err != nil {
				return nil, fmt.Errorf("object %d: %w", i, err)
			}
			geometries[string(key)] = g
		}

		xf, err := oc.Transform.Build()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.Add(g, m, xf)
	}

	return s, nil
}

// Build constructs the camera, filling defaults for omitted fields
func (c CameraCfg) Build(aspect float64) (*scene.Camera, error) {
	up := core.NewVec3(0, 1, 0)
	if c.Up != nil {
		up = vec3(*c.Up)
	}
	fovy := c.FovyDeg
	if fovy == 0 {
		fovy = 60
	}
	if c.Aspect > 0 {
		aspect = c.Aspect
	}
	znear, zfar := c.ZNear, c.ZFar
	if znear == 0 {
		znear = 0.1
	}
	if zfar == 0 {
		zfar = 1000
	}

	eye, target := vec3(c.Eye), vec3(c.Target)
	switch {
	case fovy <= 0 || fovy >= 180:
		return nil, fmt.Errorf("%w: camera fovyDeg %v out of (0, 180)", ErrInvalidSceneFile, fovy)
	case aspect <= 0:
		return nil, fmt.Errorf("%w: camera aspect must be positive", ErrInvalidSceneFile)
	case znear <= 0 || zfar <= znear:
		return nil, fmt.Errorf("%w: camera needs 0 < znear < zfar", ErrInvalidSceneFile)
	case target.Subtract(eye).Length() == 0:
		return nil, fmt.Errorf("%w: camera eye and target coincide", ErrInvalidSceneFile)
	case target.Subtract(eye).Cross(up).Length() == 0:
		return nil, fmt.Errorf("%w: camera up is parallel to the view direction", ErrInvalidSceneFile)
	}

	return scene.NewCameraLookAt(eye, target, up, fovy*math.Pi/180, aspect, znear, zfar), nil
}

// Build constructs the material and attaches its albedo property
func (mc MaterialCfg) Build(baseDir string) (material.Material, error) {
	albedo := vec3(mc.Albedo)
	var m material.Material
	switch mc.Type {
	case "lambertian":
		m = material.NewLambertian(albedo)
	case "metal":
		m = material.NewMetal(albedo, mc.Roughness)
	case "glass":
		m = material.NewGlass(albedo, mc.Roughness, mc.Transparency)
	case "emissive":
		power := mc.Power
		if power == 0 {
			power = 1
		}
		m = material.NewEmissiveWithPower(vec3(mc.Radiance), power)
	case "generic":
		m = material.FromParams(albedo, mc.Roughness, mc.Transparency, vec3(mc.Radiance))
	default:
		return material.Material{}, fmt.Errorf("%w: unknown material type %q", ErrInvalidSceneFile, mc.Type)
	}

	switch {
	case mc.Checker != nil && mc.Texture != "":
		return material.Material{}, fmt.Errorf("%w: checker and texture are exclusive", ErrInvalidSceneFile)
	case mc.Checker != nil:
		c := mc.Checker
		if c.TilesU <= 0 || c.TilesV <= 0 {
			return material.Material{}, fmt.Errorf("%w: checker tiles must be positive", ErrInvalidSceneFile)
		}
		m.Property = material.NewCheckerboard(vec3(c.A), vec3(c.B), c.TilesU, c.TilesV)
	case mc.Texture != "":
		img, err := LoadImage(resolvePath(baseDir, mc.Texture))
		if err != nil {
			return material.Material{}, err
		}
		m.Property = material.NewImageTexture(img)
	}

	return m, nil
}

// Build constructs the geometry, loading mesh files when referenced
func (gc GeometryCfg) Build(baseDir string) (*geometry.Geometry, error) {
	switch gc.Type {
	case "sphere":
		if gc.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere radius must be positive", ErrInvalidSceneFile)
		}
		return geometry.NewSphere(vec3(gc.Center), gc.Radius), nil
	case "plane":
		normal := vec3(gc.Normal)
		if normal.Length() == 0 {
			return nil, fmt.Errorf("%w: plane normal must be non-zero", ErrInvalidSceneFile)
		}
		return geometry.NewPlane(vec3(gc.Point), normal), nil
	case "quad":
		if vec3(gc.U).Cross(vec3(gc.V)).Length() == 0 {
			return nil, fmt.Errorf("%w: quad edges must not be parallel", ErrInvalidSceneFile)
		}
		return geometry.NewMeshGeometry(geometry.NewQuadMesh(vec3(gc.Corner), vec3(gc.U), vec3(gc.V))), nil
	case "disc", "cylinder", "cone":
		mesh, err := gc.buildRound()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSceneFile, gc.Type, err)
		}
		return geometry.NewMeshGeometry(mesh), nil
	case "mesh":
		vertices := make([]core.Vec3, len(gc.Vertices))
		for i, v := range gc.Vertices {
			vertices[i] = vec3(v)
		}
		for _, tri := range gc.Triangles {
			for _, idx := range tri {
				if idx < 0 || idx >= len(vertices) {
					return nil, fmt.Errorf("%w: mesh index %d out of range (%d vertices)", ErrInvalidSceneFile, idx, len(vertices))
				}
			}
		}
		return geometry.NewMeshGeometry(geometry.NewMeshFromData(vertices, gc.Triangles)), nil
	case "box":
		return geometry.NewMeshGeometry(geometry.NewBoxMesh(vec3(gc.Min), vec3(gc.Max))), nil
	case "obj":
		mesh, err := LoadOBJ(resolvePath(baseDir, gc.Path))
		if err != nil {
			return nil, err
		}
		return geometry.NewMeshGeometry(mesh), nil
	case "ply":
		mesh, err := LoadPLY(resolvePath(baseDir, gc.Path))
		if err != nil {
			return nil, err
		}
		return geometry.NewMeshGeometry(mesh), nil
	}
	return nil, fmt.Errorf("%w: unknown geometry type %q", ErrInvalidSceneFile, gc.Type)
}

// defaultSegments is the tessellation used when a round geometry gives none
const defaultSegments = 32

// buildRound tessellates disc, cylinder and cone entries
func (gc GeometryCfg) buildRound() (*geometry.Mesh, error) {
	segments := gc.Segments
	if segments == 0 {
		segments = defaultSegments
	}
	switch gc.Type {
	case "disc":
		return geometry.NewDiscMesh(vec3(gc.Center), vec3(gc.Normal), gc.Radius, segments)
	case "cylinder":
		return geometry.NewCylinderMesh(vec3(gc.Base), vec3(gc.Top), gc.Radius, segments, gc.Capped)
	}
	return geometry.NewConeMesh(vec3(gc.Base), gc.Radius, vec3(gc.Top), gc.TopRadius, segments, gc.Capped)
}

// Build returns FromTRS(translate, rotation, scale). A zero rotation axis
// means no rotation; a zero scale component is an error.
func (tc TransformCfg) Build() (core.Transform, error) {
	rotation := core.IdentityQuaternion()
	axis := vec3(tc.RotateAxis)
	if tc.RotateDeg != 0 && axis.Length() > 0 {
		rotation = core.QuaternionFromAxisAngle(axis, tc.RotateDeg*math.Pi/180)
	}
	scale := core.NewVec3(1, 1, 1)
	if tc.Scale != nil {
		scale = vec3(*tc.Scale)
	}
	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		return core.Transform{}, fmt.Errorf("%w: scale %v is singular", ErrInvalidSceneFile, *tc.Scale)
	}
	return core.FromTRS(vec3(tc.Translate), rotation, scale), nil
}

func vec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
