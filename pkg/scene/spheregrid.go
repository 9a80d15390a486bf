package scene

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
	"github.com/df07/glimmer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b

	lc = lc * lc * lc
	mc = mc * mc * mc
	sc = sc * sc * sc

	// LMS to linear RGB
	return core.ClampColor(core.NewVec3(
		+4.0767416621*lc-3.3077115913*mc+0.2309699292*sc,
		-1.2684380046*lc+2.6097574011*mc-0.3413193965*sc,
		-0.0041960863*lc-0.7034186147*mc+1.7076147010*sc,
	))
}

// NewSphereGridScene creates a grid of metal spheres that all share a single
// sphere geometry, each placed by its own transform
func NewSphereGridScene(gridSize int, aspect float64) *Scene {
	camera := NewCameraLookAt(
		core.NewVec3(0, 6, 13.5), // above and behind the grid
		core.NewVec3(0, 0.3, 0),  // center of the grid
		core.NewVec3(0, 1, 0),
		40*math.Pi/180, aspect, 0.1, 100,
	)
	s := NewScene(camera, core.NewVec3(0.5, 0.7, 1.0))

	// A bright sun-like light
	sun := material.NewEmissiveWithPower(core.NewVec3(1.0, 0.96, 0.83), 12)
	s.Add(geometry.NewSphere(core.NewVec3(15.5, 25, 15.5), 8), sun, core.IdentityTransform())

	ground := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	s.Add(ground, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), core.IdentityTransform())

	if gridSize < 1 {
		return s
	}

	// Fit the grid in roughly 9x9 units
	targetArea := 9.0
	spacing := targetArea / float64(max(gridSize-1, 1))
	radius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25
	steps := float64(max(gridSize-1, 1))

	unitSphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0)
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0
			z := float64(j)*spacing - targetArea/2.0

			// Hue varies across X, chroma across Z
			hue := float64(i) / steps * 360.0
			chroma := minChroma + float64(j)/steps*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			metal := material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)

			s.Add(unitSphere, metal, core.FromTRS(
				core.NewVec3(x, radius, z),
				core.IdentityQuaternion(),
				core.NewVec3(radius, radius, radius),
			))
		}
	}

	return s
}
