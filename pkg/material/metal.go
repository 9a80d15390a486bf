package material

import (
	"github.com/df07/glimmer/pkg/core"
)

// scatterMetal reflects the incoming direction and perturbs it by
// roughness·random-in-unit-sphere. Perturbations below the surface are absorbed.
func (m Material) scatterMetal(n, v core.Vec3, sampler core.Sampler) (ScatterSample, bool) {
	n = faceForward(n, v)
	reflected := reflect(v.Negate().Normalize(), n)

	if m.Roughness > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Roughness)
		reflected = reflected.Add(perturbation)
	}
	reflected = reflected.Normalize()

	// Only scatter if the ray is above the surface
	if reflected.Dot(n) <= 0 {
		return ScatterSample{}, false
	}

	return ScatterSample{
		Direction:   reflected,
		Attenuation: m.Albedo,
		Specular:    true,
	}, true
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
