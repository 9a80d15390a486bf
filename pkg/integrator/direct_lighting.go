package integrator

import (
	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/scene"
)

// DirectLightingConfig describes the single directional light used by the
// direct-lighting integrator
type DirectLightingConfig struct {
	LightDirection core.Vec3 // Unit direction from the surface toward the light
	LightRadiance  core.Vec3
}

// DefaultDirectLightingConfig returns a white light from normalize(1, 1, 1)
func DefaultDirectLightingConfig() DirectLightingConfig {
	return DirectLightingConfig{
		LightDirection: core.NewVec3(1, 1, 1).Normalize(),
		LightRadiance:  core.NewVec3(1, 1, 1),
	}
}

// DirectLightingIntegrator shades the first hit against one directional
// light. It casts no shadow rays and never recurses.
type DirectLightingIntegrator struct {
	config DirectLightingConfig
}

// NewDirectLightingIntegrator creates a direct-lighting integrator. The light
// direction is normalized.
func NewDirectLightingIntegrator(config DirectLightingConfig) *DirectLightingIntegrator {
	config.LightDirection = config.LightDirection.Normalize()
	return &DirectLightingIntegrator{config: config}
}

// RayColor returns the background on a miss, the emitted radiance on an
// emissive hit, and the material's response to the light otherwise
func (d *DirectLightingIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	isect, hit := s.Trace(ray)
	if !hit {
		return s.Background
	}

	mat := surfaceMaterial(isect)
	if mat.IsEmissive() {
		return mat.EmittedRadiance()
	}

	view := ray.Direction.Negate().Normalize()
	shade := mat.DirectShade(isect.Hit.Normal, view, d.config.LightDirection)
	return shade.MultiplyVec(d.config.LightRadiance).Max(core.Vec3{})
}
