package geometry

import (
	"fmt"

	"github.com/df07/glimmer/pkg/core"
)

// NewConeMesh tessellates a cone or frustum. topRadius 0 gives a pointed
// cone with its apex at topCenter.
func NewConeMesh(baseCenter core.Vec3, baseRadius float64, topCenter core.Vec3, topRadius float64, segments int, capped bool) (*Mesh, error) {
	if baseRadius <= 0 {
		return nil, fmt.Errorf("base radius must be positive, got %f", baseRadius)
	}
	if topRadius < 0 {
		return nil, fmt.Errorf("top radius must be non-negative, got %f", topRadius)
	}
	if baseRadius <= topRadius {
		return nil, fmt.Errorf("base radius must be greater than top radius for a cone (got base=%f, top=%f). Use a cylinder for equal radii", baseRadius, topRadius)
	}
	return frustumMesh(baseCenter, baseRadius, topCenter, topRadius, segments, capped)
}
