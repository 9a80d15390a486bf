package renderer

import (
	"time"

	"github.com/df07/glimmer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Tiles          int           // Number of tiles the image was split into
	Workers        int           // Number of workers that drained the tile queue
	Elapsed        time.Duration // Wall time of the whole render
}

// add merges the per-tile counters of other into s
func (s *RenderStats) add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
}

// finalize calculates derived statistics after all tiles are merged
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// AverageLuminance returns the mean Rec. 709 luminance of img's linear pixels
func AverageLuminance(img *core.Image) float64 {
	n := img.Width() * img.Height()
	if n == 0 {
		return 0
	}
	total := 0.0
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			total += img.Pixel(x, y).Luminance()
		}
	}
	return total / float64(n)
}
