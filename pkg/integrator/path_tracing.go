package integrator

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/scene"
)

// PathTracingConfig contains the path tracer's termination settings
type PathTracingConfig struct {
	MaxDepth                  int     // Maximum ray bounce depth
	RussianRouletteMinBounces int     // Bounces before Russian roulette can terminate a path
	MinSurvivalProbability    float64 // Lower bound on the roulette survival probability
	SelfIntersectionEpsilon   float64 // Offset of continuation rays off the surface
}

// DefaultPathTracingConfig returns the default path tracing settings
func DefaultPathTracingConfig() PathTracingConfig {
	return PathTracingConfig{
		MaxDepth:                  8,
		RussianRouletteMinBounces: 3,
		MinSurvivalProbability:    0.05,
		SelfIntersectionEpsilon:   1e-4,
	}
}

// PathTracingIntegrator implements unidirectional path tracing with
// material importance sampling only. Light is found by hitting emitters.
type PathTracingIntegrator struct {
	config PathTracingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config PathTracingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{config: config}
}

// Config returns the integrator settings
func (pt *PathTracingIntegrator) Config() PathTracingConfig {
	return pt.config
}

// RayColor follows one path from ray and returns its radiance estimate
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	radiance := core.Vec3{}

	for depth := 0; depth < pt.config.MaxDepth; depth++ {
		isect, hit := s.Trace(ray)
		if !hit {
			radiance = radiance.Add(throughput.MultiplyVec(s.Background))
			break
		}

		mat := surfaceMaterial(isect)
		radiance = radiance.Add(throughput.MultiplyVec(mat.EmittedRadiance()))

		view := ray.Direction.Negate().Normalize()
		scatter, ok := mat.SampleScatter(isect.Hit.Normal, view, sampler)
		if !ok {
			break
		}
		throughput = throughput.MultiplyVec(scatter.Attenuation)

		terminate, compensation := pt.applyRussianRoulette(depth, throughput, sampler)
		if terminate {
			break
		}
		throughput = throughput.Multiply(compensation)

		ray = pt.continuationRay(isect.Hit.Point, isect.Hit.Normal, scatter.Direction)
	}

	return radiance
}

// applyRussianRoulette decides whether to end a path after the minimum bounce
// count. Survivors are compensated by 1/p.
func (pt *PathTracingIntegrator) applyRussianRoulette(depth int, throughput core.Vec3, sampler core.Sampler) (bool, float64) {
	if depth < pt.config.RussianRouletteMinBounces {
		return false, 1.0
	}

	survivalProb := math.Min(1.0, math.Max(pt.config.MinSurvivalProbability, throughput.MaxComponent()))
	if sampler.Get1D() > survivalProb {
		return true, 0.0
	}
	return false, 1.0 / survivalProb
}

// continuationRay starts a new path segment just off the surface, on the side
// the new direction leaves from
func (pt *PathTracingIntegrator) continuationRay(point, normal, direction core.Vec3) core.Ray {
	eps := pt.config.SelfIntersectionEpsilon
	offset := normal.Multiply(eps)
	if direction.Dot(normal) < 0 {
		offset = offset.Negate()
	}
	return core.NewRayInterval(point.Add(offset), direction, eps, math.Inf(1))
}
