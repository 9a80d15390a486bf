package scene

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
	"github.com/df07/glimmer/pkg/material"
)

// NewCheckerScene creates a checkerboard ground with one sphere geometry
// reused under several transforms and textures
func NewCheckerScene(aspect float64) *Scene {
	camera := NewCameraLookAt(
		core.NewVec3(0, 2, 8),
		core.NewVec3(0, 0.75, 0),
		core.NewVec3(0, 1, 0),
		50*math.Pi/180, aspect, 0.1, 100,
	)
	s := NewScene(camera, core.NewVec3(0.6, 0.75, 0.95))

	// Each unit square of the ground holds 2x2 cells
	groundChecker := material.NewCheckerboard(
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.15, 0.15, 0.15),
		2, 2,
	)
	ground := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	s.Add(ground, material.NewTexturedLambertian(groundChecker), core.IdentityTransform())

	unitSphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0)

	// Checkered globe
	globeChecker := material.NewCheckerboard(
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.2, 0.2, 0.8),
		16, 8,
	)
	s.Add(unitSphere, material.NewTexturedLambertian(globeChecker), core.FromTRS(
		core.NewVec3(-2.5, 1, 0),
		core.IdentityQuaternion(),
		core.NewVec3(1, 1, 1),
	))

	// UV debug texture on a tilted sphere
	tilt := core.QuaternionFromAxisAngle(core.NewVec3(1, 0, 1), math.Pi/5)
	s.Add(unitSphere, material.NewTexturedLambertian(material.NewUVDebugTexture(64, 64)), core.FromTRS(
		core.NewVec3(0, 1, -1),
		tilt,
		core.NewVec3(1, 1, 1),
	))

	// Squashed, rotated metal ellipsoid
	spin := core.QuaternionFromAxisAngle(core.NewVec3(0, 0, 1), math.Pi/4)
	s.Add(unitSphere, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2), core.FromTRS(
		core.NewVec3(2.5, 0.8, 0),
		spin,
		core.NewVec3(1.2, 0.6, 0.8),
	))

	// Small glass sphere in front
	s.Add(unitSphere, material.NewGlass(core.NewVec3(0.9, 1.0, 0.9), 0, 0.3), core.FromTRS(
		core.NewVec3(0.6, 0.5, 1.8),
		core.IdentityQuaternion(),
		core.NewVec3(0.5, 0.5, 0.5),
	))

	return s
}
