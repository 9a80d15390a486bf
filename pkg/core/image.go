package core

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a width×height buffer of linear RGB colors stored row-major,
// with y=0 at the top row
type Image struct {
	width  int
	height int
	pixels []Vec3
}

// NewImage creates a zero-filled (black) image. Negative sizes panic.
func NewImage(width, height int) *Image {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("core: negative image size %dx%d", width, height))
	}
	return &Image{width: width, height: height, pixels: make([]Vec3, width*height)}
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// Clear sets every pixel to c
func (img *Image) Clear(c Vec3) {
	for i := range img.pixels {
		img.pixels[i] = c
	}
}

// Resize changes the dimensions and fills every pixel with c
func (img *Image) Resize(width, height int, c Vec3) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("core: negative image size %dx%d", width, height))
	}
	img.width = width
	img.height = height
	if cap(img.pixels) >= width*height {
		img.pixels = img.pixels[:width*height]
	} else {
		img.pixels = make([]Vec3, width*height)
	}
	img.Clear(c)
}

// At returns the pixel at (x, y), or an error wrapping ErrOutOfBounds
func (img *Image) At(x, y int) (Vec3, error) {
	if !img.inBounds(x, y) {
		return Vec3{}, fmt.Errorf("pixel (%d, %d) of %dx%d image: %w", x, y, img.width, img.height, ErrOutOfBounds)
	}
	return img.pixels[y*img.width+x], nil
}

// Pixel returns the pixel at (x, y) without a bounds check
func (img *Image) Pixel(x, y int) Vec3 {
	return img.pixels[y*img.width+x]
}

// Set writes the pixel at (x, y) without a bounds check
func (img *Image) Set(x, y int, c Vec3) {
	img.pixels[y*img.width+x] = c
}

// SetAt writes the pixel at (x, y), or returns an error wrapping ErrOutOfBounds
func (img *Image) SetAt(x, y int, c Vec3) error {
	if !img.inBounds(x, y) {
		return fmt.Errorf("pixel (%d, %d) of %dx%d image: %w", x, y, img.width, img.height, ErrOutOfBounds)
	}
	img.pixels[y*img.width+x] = c
	return nil
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// ToRGBA quantizes the image to 8-bit RGBA (alpha 255).
// The transfer function is applied to every pixel first when non-nil.
func (img *Image) ToRGBA(transfer func(Vec3) Vec3) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c := img.Pixel(x, y)
			if transfer != nil {
				c = transfer(c)
			}
			out.SetRGBA(x, y, color.RGBA{
				R: QuantizeChannel(c.X),
				G: QuantizeChannel(c.Y),
				B: QuantizeChannel(c.Z),
				A: 255,
			})
		}
	}
	return out
}

// ImageFromGo converts a decoded Go image to linear floats in [0, 1].
// No transfer function is undone; callers decide how to interpret the values.
func ImageFromGo(src image.Image) *Image {
	bounds := src.Bounds()
	img := NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			r, g, b, _ := src.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			img.Set(x, y, NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			))
		}
	}
	return img
}

// Map returns a new image with f applied to every pixel
func (img *Image) Map(f func(Vec3) Vec3) *Image {
	out := NewImage(img.width, img.height)
	for i, c := range img.pixels {
		out.pixels[i] = f(c)
	}
	return out
}
