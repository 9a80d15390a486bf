package material

import (
	"fmt"
	"math"

	"github.com/df07/glimmer/pkg/core"
)

// Kind selects how a Material scatters and shades
type Kind int

const (
	Lambertian Kind = iota
	Metal
	Glass
	Emissive
	Generic
)

func (k Kind) String() string {
	switch k {
	case Lambertian:
		return "lambertian"
	case Metal:
		return "metal"
	case Glass:
		return "glass"
	case Emissive:
		return "emissive"
	case Generic:
		return "generic"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Material is a tagged record describing a surface. The zero value is a
// black, opaque Lambertian surface.
type Material struct {
	Albedo        core.Vec3 // Base color/reflectance
	Roughness     float64   // 0 = mirror, 1 = fully rough
	Transparency  float64   // 0 = opaque, 1 = fully transmissive
	Radiance      core.Vec3 // Emitted color
	EmissionPower float64   // Scale applied to Radiance
	Kind          Kind

	// Property overrides Albedo when set (textures)
	Property AlbedoProperty
}

// ScatterSample is a continuation direction chosen by SampleScatter
type ScatterSample struct {
	Direction   core.Vec3 // Unit scattered direction
	Attenuation core.Vec3 // Throughput multiplier for the new path segment
	Specular    bool      // Whether the lobe is a (near) delta distribution
}

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Vec3) Material {
	return Material{Albedo: albedo, Roughness: 1, Kind: Lambertian}
}

// NewTexturedLambertian creates a diffuse material whose albedo comes from property
func NewTexturedLambertian(property AlbedoProperty) Material {
	return Material{Roughness: 1, Kind: Lambertian, Property: property}
}

// NewMetal creates a metallic material; roughness is clamped to [0, 1]
func NewMetal(albedo core.Vec3, roughness float64) Material {
	return Material{Albedo: albedo, Roughness: core.Saturate(roughness), Kind: Metal}
}

// NewGlass creates a dielectric with index of refraction 1.5.
// Roughness and transparency are clamped to [0, 1].
func NewGlass(tint core.Vec3, roughness, transparency float64) Material {
	return Material{
		Albedo:       tint,
		Roughness:    core.Saturate(roughness),
		Transparency: core.Saturate(transparency),
		Kind:         Glass,
	}
}

// NewEmissive creates a light-emitting material with emission power 1
func NewEmissive(radiance core.Vec3) Material {
	return NewEmissiveWithPower(radiance, 1)
}

// NewEmissiveWithPower creates a light-emitting material emitting radiance·power
func NewEmissiveWithPower(radiance core.Vec3, power float64) Material {
	return Material{Radiance: radiance, EmissionPower: power, Kind: Emissive}
}

// FromParams creates a Generic material from raw parameters
func FromParams(albedo core.Vec3, roughness, transparency float64, radiance core.Vec3) Material {
	return Material{
		Albedo:        albedo,
		Roughness:     core.Saturate(roughness),
		Transparency:  core.Saturate(transparency),
		Radiance:      radiance,
		EmissionPower: 1,
		Kind:          Generic,
	}
}

// Equal compares every scalar field. The albedo property is not compared.
func (m Material) Equal(other Material) bool {
	return m.Kind == other.Kind &&
		m.Albedo.Equals(other.Albedo) &&
		m.Roughness == other.Roughness &&
		m.Transparency == other.Transparency &&
		m.Radiance.Equals(other.Radiance) &&
		m.EmissionPower == other.EmissionPower
}

// EvaluateAlbedo returns the property's color at (uv, point), or Albedo when
// no property is attached
func (m Material) EvaluateAlbedo(uv core.Vec2, point core.Vec3) core.Vec3 {
	if m.Property == nil {
		return m.Albedo
	}
	return m.Property.Evaluate(uv, point)
}

// AtSurface returns a copy with the albedo resolved at (uv, point) and no property
func (m Material) AtSurface(uv core.Vec2, point core.Vec3) Material {
	m.Albedo = m.EvaluateAlbedo(uv, point)
	m.Property = nil
	return m
}

// DirectShade returns the response to a unit-radiance light from direction l,
// seen from direction v. n is flipped toward v first.
func (m Material) DirectShade(n, v, l core.Vec3) core.Vec3 {
	n = faceForward(n, v)
	cosine := math.Max(0, n.Dot(l))

	switch m.Kind {
	case Lambertian, Generic:
		return m.Albedo.Multiply(cosine / math.Pi)
	case Metal:
		return m.Albedo.Multiply(cosine)
	}
	// Glass has no direct term; emission is handled by EmittedRadiance
	return core.Vec3{}
}

// SampleScatter picks a continuation direction at a surface with outward
// normal n, seen from direction v (pointing away from the surface).
// It returns false when the path is absorbed.
func (m Material) SampleScatter(n, v core.Vec3, sampler core.Sampler) (ScatterSample, bool) {
	switch m.Kind {
	case Lambertian:
		return m.scatterLambertian(n, v, sampler)
	case Metal:
		return m.scatterMetal(n, v, sampler)
	case Glass:
		return m.scatterGlass(n, v, sampler)
	case Generic:
		return m.scatterGeneric(n, v, sampler)
	}
	return ScatterSample{}, false
}

// faceForward flips n so that it lies in the same hemisphere as v
func faceForward(n, v core.Vec3) core.Vec3 {
	if n.Dot(v) < 0 {
		return n.Negate()
	}
	return n
}
