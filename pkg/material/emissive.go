package material

import (
	"github.com/df07/glimmer/pkg/core"
)

// IsEmissive reports whether hitting this material terminates a path
func (m Material) IsEmissive() bool {
	return m.Kind == Emissive
}

// EmittedRadiance returns radiance·power for emissive materials, else zero.
// Emitters shine equally from both faces and never scatter.
func (m Material) EmittedRadiance() core.Vec3 {
	if m.Kind != Emissive {
		return core.Vec3{}
	}
	return m.Radiance.Multiply(m.EmissionPower)
}
