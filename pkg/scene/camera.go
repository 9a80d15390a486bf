package scene

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
)

// Camera is a pinhole perspective camera
type Camera struct {
	transform  core.Transform // camera-to-world
	projection core.Mat4
	fovy       float64 // vertical field of view in radians
	aspect     float64
	znear      float64
	zfar       float64

	tanHalfFovy float64
}

// NewCameraLookAt creates a camera at eye looking toward target. fovy is the
// vertical field of view in radians and aspect is width/height.
func NewCameraLookAt(eye, target, up core.Vec3, fovy, aspect, znear, zfar float64) *Camera {
	return &Camera{
		transform:   core.LookAt(eye, target, up),
		projection:  core.PerspectiveMat4(fovy, aspect, znear, zfar),
		fovy:        fovy,
		aspect:      aspect,
		znear:       znear,
		zfar:        zfar,
		tanHalfFovy: math.Tan(fovy / 2),
	}
}

// Fovy returns the vertical field of view in radians
func (c *Camera) Fovy() float64 { return c.fovy }

// Aspect returns the width/height ratio
func (c *Camera) Aspect() float64 { return c.aspect }

// ZNear returns the near clip distance
func (c *Camera) ZNear() float64 { return c.znear }

// ZFar returns the far clip distance
func (c *Camera) ZFar() float64 { return c.zfar }

// Eye returns the camera position in world space
func (c *Camera) Eye() core.Vec3 {
	return c.transform.TransformPoint(core.Vec3{})
}

// Transform returns the camera-to-world transform
func (c *Camera) Transform() core.Transform { return c.transform }

// View returns the world-to-camera matrix
func (c *Camera) View() core.Mat4 { return c.transform.InverseMatrix() }

// Projection returns the perspective matrix
func (c *Camera) Projection() core.Mat4 { return c.projection }

// ViewProjection returns Projection·View
func (c *Camera) ViewProjection() core.Mat4 {
	return c.projection.Mul(c.View())
}

// GenerateRay returns the primary ray through the center of pixel (px, py).
// Pixel (0, 0) is the top-left corner of the image.
func (c *Camera) GenerateRay(px, py, width, height int) core.Ray {
	return c.GenerateRaySubpixel(px, py, width, height, core.NewVec2(0.5, 0.5))
}

// GenerateRaySubpixel returns the primary ray through offset within pixel
// (px, py), where offset is in [0,1)² and (0.5, 0.5) is the pixel center
func (c *Camera) GenerateRaySubpixel(px, py, width, height int, offset core.Vec2) core.Ray {
	ndcX := (2*(float64(px)+offset.X)/float64(width) - 1) * c.aspect * c.tanHalfFovy
	ndcY := (1 - 2*(float64(py)+offset.Y)/float64(height)) * c.tanHalfFovy

	dirCamera := core.NewVec3(ndcX, ndcY, -1).Normalize()
	return core.NewRay(c.Eye(), c.transform.TransformDirection(dirCamera))
}
