package scene

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
	"github.com/df07/glimmer/pkg/material"
)

// NewCornellScene creates a Cornell box with plane walls, a glowing dome in
// the ceiling, a mirror sphere and a glass sphere. Only emissive surfaces
// light the box, so it is meant for the path tracer.
func NewCornellScene(aspect float64) *Scene {
	camera := NewCameraLookAt(
		core.NewVec3(278, 278, -800), // outside the open front of the box
		core.NewVec3(278, 278, 0),
		core.NewVec3(0, 1, 0),
		40*math.Pi/180, aspect, 1, 5000,
	)
	s := NewScene(camera, core.NewVec3(0, 0, 0))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0
	identity := core.IdentityTransform()

	// Walls face into the box
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), white, identity)        // floor
	s.Add(geometry.NewPlane(core.NewVec3(0, boxSize, 0), core.NewVec3(0, -1, 0)), white, identity) // ceiling
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, boxSize), core.NewVec3(0, 0, -1)), white, identity) // back
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), red, identity)          // left
	s.Add(geometry.NewPlane(core.NewVec3(boxSize, 0, 0), core.NewVec3(-1, 0, 0)), green, identity) // right

	unitSphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0)

	// Half of the light sphere pokes down through the ceiling
	light := material.NewEmissiveWithPower(core.NewVec3(1.0, 0.95, 0.9), 12)
	s.Add(unitSphere, light, core.FromTRS(
		core.NewVec3(boxSize/2, boxSize, boxSize/2),
		core.IdentityQuaternion(),
		core.NewVec3(110, 110, 110),
	))

	// Left sphere (smaller, metallic)
	s.Add(unitSphere, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0), core.FromTRS(
		core.NewVec3(185, 82.5, 169),
		core.IdentityQuaternion(),
		core.NewVec3(82.5, 82.5, 82.5),
	))

	// Right sphere (larger, glass)
	s.Add(unitSphere, material.NewGlass(core.NewVec3(1, 1, 1), 0, 0), core.FromTRS(
		core.NewVec3(370, 90, 351),
		core.IdentityQuaternion(),
		core.NewVec3(90, 90, 90),
	))

	return s
}
