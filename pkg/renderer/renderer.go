package renderer

import (
	"errors"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/integrator"
	"github.com/df07/glimmer/pkg/scene"
)

var (
	// ErrInvalidSize is returned for a non-positive image width or height
	ErrInvalidSize = errors.New("renderer: invalid image size")

	// ErrInvalidScene is returned for a nil scene or a scene without a camera
	ErrInvalidScene = errors.New("renderer: invalid scene")

	// ErrNilImage is returned when no output image is given
	ErrNilImage = errors.New("renderer: nil image")
)

// Renderer fills an image from a scene. The scene must not change while
// Render runs; Render returns once every pixel is written.
type Renderer interface {
	Render(s *scene.Scene, img *core.Image, width, height int) error
}

const (
	// DefaultTileSize is the edge length of a square tile in pixels
	DefaultTileSize = 16

	// DefaultSamplesPerPixel is the path tracer's default sample count
	DefaultSamplesPerPixel = 32

	// DefaultSeed is the base seed XORed with each tile ID
	DefaultSeed = 42
)

// Config contains rendering configuration
type Config struct {
	TileSize        int   // Size of each square tile
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed for the per-tile generators
	SamplesPerPixel int   // Samples per pixel (path tracer only)

	PathTracing    integrator.PathTracingConfig
	DirectLighting integrator.DirectLightingConfig

	Logger core.Logger // Progress output; nil is silent
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:        DefaultTileSize,
		NumWorkers:      0, // Auto-detect CPU count
		Seed:            DefaultSeed,
		SamplesPerPixel: DefaultSamplesPerPixel,
		PathTracing:     integrator.DefaultPathTracingConfig(),
		DirectLighting:  integrator.DefaultDirectLightingConfig(),
	}
}

// NewSimpleRaytracer creates a renderer that shades one ray through each
// pixel center with the direct-lighting integrator
func NewSimpleRaytracer(config Config) *TileRenderer {
	config.SamplesPerPixel = 1
	if config.DirectLighting == (integrator.DirectLightingConfig{}) {
		config.DirectLighting = integrator.DefaultDirectLightingConfig()
	}
	return NewTileRenderer(integrator.NewDirectLightingIntegrator(config.DirectLighting), config, false)
}

// NewPathTracer creates a renderer that averages SamplesPerPixel path-traced
// samples at jittered sub-pixel offsets. A zero PathTracing config uses the
// integrator defaults.
func NewPathTracer(config Config) *TileRenderer {
	if config.SamplesPerPixel <= 0 {
		config.SamplesPerPixel = DefaultSamplesPerPixel
	}
	if config.PathTracing == (integrator.PathTracingConfig{}) {
		config.PathTracing = integrator.DefaultPathTracingConfig()
	}
	return NewTileRenderer(integrator.NewPathTracingIntegrator(config.PathTracing), config, true)
}

var _ Renderer = (*TileRenderer)(nil)
