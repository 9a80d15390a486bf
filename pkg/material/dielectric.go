package material

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
)

// GlassIOR is the index of refraction used for every glass material
const GlassIOR = 1.5

// scatterGlass chooses between reflection and refraction with Schlick's
// approximation. The outward normal n tells whether the ray enters or exits.
func (m Material) scatterGlass(n, v core.Vec3, sampler core.Sampler) (ScatterSample, bool) {
	white := core.NewVec3(1, 1, 1)
	attenuation := white.Lerp(m.Albedo, m.Transparency)

	// Entering when the viewer is on the outward side
	frontFace := v.Dot(n) > 0
	refractionRatio := GlassIOR
	if frontFace {
		refractionRatio = 1.0 / GlassIOR
	} else {
		n = n.Negate()
	}

	unitDirection := v.Negate().Normalize()
	cosTheta := math.Min(-unitDirection.Dot(n), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	// Total internal reflection
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = reflect(unitDirection, n)
	} else {
		direction = refract(unitDirection, n, refractionRatio)
	}
	direction = direction.Normalize()

	if m.Roughness > 0 {
		direction = perturbOnSide(direction, n, m.Roughness, sampler)
	}

	return ScatterSample{
		Direction:   direction,
		Attenuation: attenuation,
		Specular:    true,
	}, true
}

// perturbOnSide jitters direction by roughness·random-in-unit-sphere, keeping
// the original when the jitter would cross the surface
func perturbOnSide(direction, n core.Vec3, roughness float64, sampler core.Sampler) core.Vec3 {
	perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(roughness)
	candidate := direction.Add(perturbation).Normalize()
	if candidate.Dot(n)*direction.Dot(n) <= 0 {
		return direction
	}
	return candidate
}

// refract calculates the refraction of a unit vector using Snell's law
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
