package material

import (
	"github.com/df07/glimmer/pkg/core"
)

// scatterGeneric picks a lobe stochastically: glass with probability
// Transparency, otherwise metal with probability 1-Roughness, otherwise diffuse.
// Each lobe keeps full weight, so the expected attenuation is the blend.
func (m Material) scatterGeneric(n, v core.Vec3, sampler core.Sampler) (ScatterSample, bool) {
	if sampler.Get1D() < m.Transparency {
		return m.scatterGlass(n, v, sampler)
	}
	if sampler.Get1D() < 1-m.Roughness {
		return m.scatterMetal(n, v, sampler)
	}
	return m.scatterLambertian(n, v, sampler)
}
