package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"os"

	"github.com/df07/glimmer/pkg/core"
)

// LoadImage loads a PNG or JPEG image as linear floats in [0, 1].
// Stored values are used as-is; no sRGB decoding is applied.
func LoadImage(filename string) (*core.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return core.ImageFromGo(img), nil
}

// WritePNG encodes img as an 8-bit RGBA PNG using the PPM quantization
func WritePNG(w io.Writer, img *core.Image) error {
	if err := png.Encode(w, img.ToRGBA(nil)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes img to filename as a PNG
func SavePNG(filename string, img *core.Image) error {
	return saveFile(filename, func(w io.Writer) error { return WritePNG(w, img) })
}

// saveFile creates filename, runs write on it and reports the first error,
// including a failed close
func saveFile(filename string, write func(io.Writer) error) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", filename, cerr)
		}
	}()
	return write(file)
}
