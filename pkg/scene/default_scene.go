package scene

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
	"github.com/df07/glimmer/pkg/material"
)

// NewDefaultScene creates the demo scene: a red diffuse sphere on the left and
// a green metal sphere on the right, sharing one sphere geometry, in front of
// a sky-blue background
func NewDefaultScene(aspect float64) *Scene {
	camera := NewCameraLookAt(
		core.NewVec3(0, 0, 5), // eye on +Z
		core.NewVec3(0, 0, 0), // look at the origin
		core.NewVec3(0, 1, 0),
		math.Pi/3, aspect, 0.1, 100.0,
	)
	s := NewScene(camera, core.NewVec3(0.1, 0.2, 0.4))

	unitSphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0)
	redDiffuse := material.NewLambertian(core.NewVec3(0.9, 0.1, 0.1))
	greenMetal := material.NewMetal(core.NewVec3(0.1, 0.9, 0.1), 0.1)

	s.Add(unitSphere, redDiffuse, core.Translate(core.NewVec3(-1.25, 0, 0)))
	s.Add(unitSphere, greenMetal, core.Translate(core.NewVec3(1.25, 0, 0)))

	return s
}
