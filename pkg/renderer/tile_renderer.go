package renderer

import (
	"fmt"
	"time"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/integrator"
	"github.com/df07/glimmer/pkg/scene"
)

// TileRenderer splits the image into tiles and renders them in parallel
// with an integrator. Output depends only on the scene, the image size and
// the configured seed and sample count, not on tile scheduling.
type TileRenderer struct {
	integrator integrator.Integrator
	config     Config
	jitter     bool // random sub-pixel offsets instead of pixel centers
	logger     core.Logger
}

// NewTileRenderer creates a tile renderer around integ. Zero config fields
// fall back to one sample per pixel and the default tile size.
func NewTileRenderer(integ integrator.Integrator, config Config, jitter bool) *TileRenderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultTileSize
	}
	if config.SamplesPerPixel <= 0 {
		config.SamplesPerPixel = 1
	}
	logger := config.Logger
	if logger == nil {
		logger = silentLogger{}
	}
	return &TileRenderer{
		integrator: integ,
		config:     config,
		jitter:     jitter,
		logger:     logger,
	}
}

// Config returns the effective configuration
func (tr *TileRenderer) Config() Config {
	return tr.config
}

// Render renders s into img, resizing img to width×height first
func (tr *TileRenderer) Render(s *scene.Scene, img *core.Image, width, height int) error {
	_, err := tr.RenderWithStats(s, img, width, height)
	return err
}

// RenderWithStats renders like Render and reports what the render did
func (tr *TileRenderer) RenderWithStats(s *scene.Scene, img *core.Image, width, height int) (RenderStats, error) {
	if err := validateRender(s, img, width, height); err != nil {
		return RenderStats{}, err
	}

	start := time.Now()
	if img.Width() != width || img.Height() != height {
		img.Resize(width, height, core.Vec3{})
	}

	tiles := NewTileGrid(width, height, tr.config.TileSize, tr.config.Seed)
	pool := NewWorkerPool(func(tile *Tile) RenderStats {
		return tr.renderTile(s, img, width, height, tile)
	}, len(tiles), tr.config.NumWorkers)

	tr.logger.Printf("Rendering %dx%d: %d tiles, %d workers, %d spp\n",
		width, height, len(tiles), pool.GetNumWorkers(), tr.config.SamplesPerPixel)

	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}
	pool.Stop()

	stats := RenderStats{
		Tiles:   len(tiles),
		Workers: pool.GetNumWorkers(),
	}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.add(result.Stats)
	}
	stats.finalize()
	stats.Elapsed = time.Since(start)

	tr.logger.Printf("Render complete in %v (%d samples, %.1f per pixel)\n",
		stats.Elapsed, stats.TotalSamples, stats.AverageSamples)
	return stats, nil
}

// renderTile visits the tile's pixels row-major, drawing every random
// number from the tile's own sampler
func (tr *TileRenderer) renderTile(s *scene.Scene, img *core.Image, width, height int, tile *Tile) RenderStats {
	camera := s.Camera
	spp := tr.config.SamplesPerPixel
	center := core.NewVec2(0.5, 0.5)

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			var ps PixelStats
			for i := 0; i < spp; i++ {
				offset := center
				if tr.jitter {
					offset = tile.Sampler.Get2D()
				}
				ray := camera.GenerateRaySubpixel(x, y, width, height, offset)
				ps.AddSample(tr.integrator.RayColor(ray, s, tile.Sampler))
			}
			img.Set(x, y, ps.GetColor())
		}
	}

	pixels := tile.Bounds.Dx() * tile.Bounds.Dy()
	return RenderStats{
		TotalPixels:  pixels,
		TotalSamples: pixels * spp,
	}
}

func validateRender(s *scene.Scene, img *core.Image, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if s == nil {
		return fmt.Errorf("%w: nil scene", ErrInvalidScene)
	}
	if s.Camera == nil {
		return fmt.Errorf("%w: scene has no camera", ErrInvalidScene)
	}
	if img == nil {
		return ErrNilImage
	}
	return nil
}
