package scene

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
	"github.com/df07/glimmer/pkg/material"
)

// meshFitSize is the longest extent a mesh is scaled to in the mesh scene
const meshFitSize = 2.0

// NewMeshScene creates a scene showcasing a triangle mesh under a rotated,
// non-uniformly scaled transform. A nil mesh shows a unit box.
func NewMeshScene(mesh *geometry.Mesh, aspect float64) *Scene {
	if mesh == nil {
		mesh = geometry.NewBoxMesh(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 0.5, 0.5))
	}

	camera := NewCameraLookAt(
		core.NewVec3(0, 2, 6), // Position camera to see the mesh
		core.NewVec3(0, 1, 0), // Look at the center of the scene
		core.NewVec3(0, 1, 0),
		45*math.Pi/180, aspect, 0.1, 100,
	)
	s := NewScene(camera, core.NewVec3(0.5, 0.7, 1.0))

	addMeshSceneLighting(s)
	addMeshSceneGround(s)
	addMeshSceneGeometry(s, mesh)

	return s
}

// addMeshSceneLighting adds an emissive sphere above and behind the camera
func addMeshSceneLighting(s *Scene) {
	light := material.NewEmissiveWithPower(core.NewVec3(1.0, 0.95, 0.85), 6)
	s.Add(geometry.NewSphere(core.NewVec3(3, 6, 4), 1.5), light, core.IdentityTransform())
}

// addMeshSceneGround adds a gray ground plane
func addMeshSceneGround(s *Scene) {
	ground := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	s.Add(ground, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), core.IdentityTransform())
}

// addMeshSceneGeometry centers the mesh, fits it to meshFitSize, stretches it
// and stands it on the ground
func addMeshSceneGeometry(s *Scene, mesh *geometry.Mesh) {
	bounds := mesh.AABB()
	if bounds.IsEmpty() {
		return
	}

	longest := bounds.Extent().MaxComponent()
	fit := 1.0
	if longest > 0 {
		fit = meshFitSize / longest
	}
	scale := core.NewVec3(1.25*fit, fit, 0.8*fit)
	rotation := core.QuaternionFromAxisAngle(core.NewVec3(0, 1, 0), math.Pi/6)

	// Lift so the lowest point of the stretched mesh touches y=0
	lift := bounds.Extent().Y * scale.Y / 2
	center := core.Translate(bounds.Center().Negate())
	xf := core.FromTRS(core.NewVec3(0, lift, 0), rotation, scale).Compose(center)

	copper := material.FromParams(core.NewVec3(0.85, 0.5, 0.3), 0.35, 0, core.Vec3{})
	s.Add(geometry.NewMeshGeometry(mesh), copper, xf)
}
