package material

import (
	"math"
	"testing"

	"github.com/df07/glimmer/pkg/core"
)

func TestGlass_NormalIncidence(t *testing.T) {
	glass := NewGlass(core.NewVec3(1, 1, 1), 0, 0)
	normal := core.NewVec3(0, 0, 1)
	view := core.NewVec3(0, 0, 1)

	// Reflectance at normal incidence is 0.04
	refracted, ok := glass.SampleScatter(normal, view, fixedSampler{0.99})
	if !ok {
		t.Fatal("Glass should always scatter")
	}
	if !refracted.Direction.ApproxEquals(core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected straight transmission, got %v", refracted.Direction)
	}

	reflected, _ := glass.SampleScatter(normal, view, fixedSampler{0.0})
	if !reflected.Direction.ApproxEquals(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected reflection back to the viewer, got %v", reflected.Direction)
	}
	if !refracted.Specular || !reflected.Specular {
		t.Error("Glass should be specular")
	}
}

func TestGlass_Snell(t *testing.T) {
	glass := NewGlass(core.NewVec3(1, 1, 1), 0, 0)
	normal := core.NewVec3(0, 1, 0)

	// 45° incidence from air
	incoming := core.NewVec3(1, -1, 0).Normalize()
	scatter, _ := glass.SampleScatter(normal, incoming.Negate(), fixedSampler{0.99})

	sinIn := math.Sqrt(0.5)
	sinOut := math.Abs(scatter.Direction.X)
	if math.Abs(sinIn-GlassIOR*sinOut) > 1e-9 {
		t.Errorf("Snell's law violated: sinIn=%v, 1.5·sinOut=%v", sinIn, GlassIOR*sinOut)
	}
	if scatter.Direction.Y >= 0 {
		t.Errorf("Refracted ray should continue below the surface, got %v", scatter.Direction)
	}
}

func TestGlass_TotalInternalReflection(t *testing.T) {
	glass := NewGlass(core.NewVec3(1, 1, 1), 0, 0)
	outward := core.NewVec3(0, 0, 1)

	// Inside the glass heading out at 60° from the normal: sin 60° · 1.5 > 1
	incoming := core.NewVec3(math.Sin(math.Pi/3), 0, math.Cos(math.Pi/3))
	scatter, ok := glass.SampleScatter(outward, incoming.Negate(), fixedSampler{0.99})
	if !ok {
		t.Fatal("Glass should always scatter")
	}
	expected := core.NewVec3(incoming.X, 0, -incoming.Z)
	if !scatter.Direction.ApproxEquals(expected, 1e-9) {
		t.Errorf("Expected TIR direction %v, got %v", expected, scatter.Direction)
	}
}

func TestGlass_ExitingRefraction(t *testing.T) {
	glass := NewGlass(core.NewVec3(1, 1, 1), 0, 0)
	outward := core.NewVec3(0, 0, 1)

	// Inside heading out at 20°, below the critical angle
	angle := 20 * math.Pi / 180
	incoming := core.NewVec3(math.Sin(angle), 0, math.Cos(angle))
	scatter, _ := glass.SampleScatter(outward, incoming.Negate(), fixedSampler{0.99})

	if scatter.Direction.Z <= 0 {
		t.Fatalf("Expected the ray to leave through the surface, got %v", scatter.Direction)
	}
	if math.Abs(math.Abs(scatter.Direction.X)-GlassIOR*math.Sin(angle)) > 1e-9 {
		t.Errorf("Exit angle wrong: %v", scatter.Direction)
	}
}

func TestGlass_Attenuation(t *testing.T) {
	tests := []struct {
		name         string
		tint         core.Vec3
		transparency float64
		expected     core.Vec3
	}{
		{"Opaque tint ignored", core.NewVec3(1, 0, 0), 0, core.NewVec3(1, 1, 1)},
		{"Half", core.NewVec3(1, 0, 0), 0.5, core.NewVec3(1, 0.5, 0.5)},
		{"Full tint", core.NewVec3(0.2, 0.4, 0.6), 1, core.NewVec3(0.2, 0.4, 0.6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glass := NewGlass(tt.tint, 0, tt.transparency)
			scatter, _ := glass.SampleScatter(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), fixedSampler{0.5})
			if !scatter.Attenuation.ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, scatter.Attenuation)
			}
		})
	}
}

func TestGlass_RoughnessStaysOnSide(t *testing.T) {
	glass := NewGlass(core.NewVec3(1, 1, 1), 0.8, 0)
	normal := core.NewVec3(0, 1, 0)
	view := core.NewVec3(0.2, 1, 0).Normalize()
	sampler := core.NewSeededSampler(9)

	transmitted := 0
	for i := 0; i < 500; i++ {
		scatter, ok := glass.SampleScatter(normal, view, sampler)
		if !ok {
			t.Fatal("Glass should always scatter")
		}
		if math.Abs(scatter.Direction.Length()-1) > 1e-9 {
			t.Errorf("Direction %v not normalized", scatter.Direction)
		}
		if scatter.Direction.Y == 0 {
			t.Errorf("Direction %v lies in the surface", scatter.Direction)
		}
		if scatter.Direction.Y < 0 {
			transmitted++
		}
	}
	if transmitted < 400 {
		t.Errorf("Expected most samples to transmit, got %d of 500", transmitted)
	}
}

func TestReflectance(t *testing.T) {
	// R0 = ((1-1.5)/(1+1.5))² = 0.04
	if r := Reflectance(1, 1/GlassIOR); math.Abs(r-0.04) > 1e-12 {
		t.Errorf("Expected 0.04 at normal incidence, got %v", r)
	}
	if r := Reflectance(0, 1/GlassIOR); math.Abs(r-1) > 1e-12 {
		t.Errorf("Expected 1 at grazing incidence, got %v", r)
	}
}
