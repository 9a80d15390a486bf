package material

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Image *core.Image
}

// NewImageTexture creates a new image texture. An empty image panics.
func NewImageTexture(img *core.Image) *ImageTexture {
	if img == nil || img.Width() == 0 || img.Height() == 0 {
		panic("material: image texture needs a non-empty image")
	}
	return &ImageTexture{Image: img}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	// Wrap UV coordinates to [0, 1)
	u := uv.X - math.Floor(uv.X)
	v := uv.Y - math.Floor(uv.Y)

	// V=0 is the bottom row; image rows start at the top
	width, height := t.Image.Width(), t.Image.Height()
	x := min(int(u*float64(width)), width-1)
	y := min(int((1.0-v)*float64(height)), height-1)

	return t.Image.Pixel(max(x, 0), max(y, 0))
}
