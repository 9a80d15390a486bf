package material

import (
	"math"
	"testing"

	"github.com/df07/glimmer/pkg/core"
)

func TestLambertian_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.5, 0.3)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	tests := []struct {
		name       string
		normal     core.Vec3
		view       core.Vec3
		hemisphere core.Vec3
	}{
		{"Front side", core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1)},
		{"Back side flips normal", core.NewVec3(0, 0, 1), core.NewVec3(0.3, 0, -1).Normalize(), core.NewVec3(0, 0, -1)},
		{"Tilted", core.NewVec3(1, 1, 0).Normalize(), core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 0).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				scatter, ok := lambertian.SampleScatter(tt.normal, tt.view, sampler)
				if !ok {
					t.Fatal("Lambertian should always scatter")
				}
				if scatter.Specular {
					t.Error("Lambertian should not be specular")
				}
				if !scatter.Attenuation.Equals(albedo) {
					t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
				}
				if math.Abs(scatter.Direction.Length()-1) > 1e-9 {
					t.Errorf("Direction %v not normalized", scatter.Direction)
				}
				if scatter.Direction.Dot(tt.hemisphere) <= 0 {
					t.Errorf("Direction %v outside hemisphere %v", scatter.Direction, tt.hemisphere)
				}
			}
		})
	}
}

func TestLambertian_CosineDistribution(t *testing.T) {
	// E[cos θ] for a cosine-weighted hemisphere is 2/3
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	sampler := core.NewSeededSampler(5)
	normal := core.NewVec3(0, 1, 0)

	const samples = 20000
	sum := 0.0
	for i := 0; i < samples; i++ {
		scatter, _ := lambertian.SampleScatter(normal, normal, sampler)
		sum += scatter.Direction.Dot(normal)
	}
	mean := sum / samples
	if math.Abs(mean-2.0/3.0) > 0.02 {
		t.Errorf("Expected mean cosine ≈ 0.667, got %v", mean)
	}
}
