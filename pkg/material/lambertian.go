package material

import (
	"github.com/df07/glimmer/pkg/core"
)

// scatterLambertian samples a cosine-weighted direction around the normal
// on the viewer's side. The cosine and 1/π cancel against the pdf, so the
// attenuation is the albedo itself.
func (m Material) scatterLambertian(n, v core.Vec3, sampler core.Sampler) (ScatterSample, bool) {
	n = faceForward(n, v)
	direction := core.SampleCosineHemisphere(n, sampler.Get2D())

	// Catch degenerate scatter direction
	if direction.Dot(n) <= 0 {
		direction = n
	}

	return ScatterSample{
		Direction:   direction.Normalize(),
		Attenuation: m.Albedo,
		Specular:    false,
	}, true
}
