package material

import (
	"math"

	"github.com/df07/glimmer/pkg/core"
)

// Checkerboard tiles UV space into TilesU × TilesV alternating cells
type Checkerboard struct {
	ColorA core.Vec3 // Color of cells with even parity, including the cell at (0,0)
	ColorB core.Vec3
	TilesU int
	TilesV int
}

// NewCheckerboard creates a checker pattern. Non-positive tile counts panic.
func NewCheckerboard(colorA, colorB core.Vec3, tilesU, tilesV int) *Checkerboard {
	if tilesU <= 0 || tilesV <= 0 {
		panic("material: checkerboard tile counts must be positive")
	}
	return &Checkerboard{ColorA: colorA, ColorB: colorB, TilesU: tilesU, TilesV: tilesV}
}

// Evaluate picks a color from the parity of floor(u·TilesU) XOR floor(v·TilesV)
func (c *Checkerboard) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	cellU := int(math.Floor(uv.X * float64(c.TilesU)))
	cellV := int(math.Floor(uv.Y * float64(c.TilesV)))
	if (cellU^cellV)&1 == 0 {
		return c.ColorA
	}
	return c.ColorB
}

// NewUVDebugTexture creates an image texture showing UV coordinates as colors
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	img := core.NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(width-1, 1))
			v := 1 - float64(y)/float64(max(height-1, 1))
			img.Set(x, y, core.NewVec3(u, v, 0.0))
		}
	}
	return NewImageTexture(img)
}
