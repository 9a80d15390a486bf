package integrator

import (
	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/material"
	"github.com/df07/glimmer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance arriving along ray. Implementations must
	// not modify the scene and draw all randomness from sampler.
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3
}

// surfaceMaterial returns the hit object's material with its albedo
// resolved at the hit's UV and point
func surfaceMaterial(isect scene.Intersection) material.Material {
	return isect.Object.Material.AtSurface(isect.Hit.UV, isect.Hit.Point)
}
