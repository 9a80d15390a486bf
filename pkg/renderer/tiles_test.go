package renderer

import (
	"image"
	"testing"
)

func TestNewTileGrid(t *testing.T) {
	// 400x225 image with 64x64 tiles
	width, height, tileSize := 400, 225, 64
	tiles := NewTileGrid(width, height, tileSize, 1)

	expectedTilesX := (width + tileSize - 1) / tileSize   // 7 tiles
	expectedTilesY := (height + tileSize - 1) / tileSize  // 4 tiles
	expectedTotalTiles := expectedTilesX * expectedTilesY // 28 tiles

	if len(tiles) != expectedTotalTiles {
		t.Fatalf("Expected %d tiles, got %d", expectedTotalTiles, len(tiles))
	}

	// Tiles must cover the image without gaps or overlaps
	covered := make([][]bool, height)
	for y := range covered {
		covered[y] = make([]bool, width)
	}

	for i, tile := range tiles {
		if tile.ID != i {
			t.Errorf("Expected tile %d to have ID %d, got %d", i, i, tile.ID)
		}
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				if x >= width || y >= height {
					t.Errorf("Tile %d extends beyond image bounds at (%d,%d)", tile.ID, x, y)
					continue
				}
				if covered[y][x] {
					t.Errorf("Pixel (%d,%d) is covered by multiple tiles", x, y)
				}
				covered[y][x] = true
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !covered[y][x] {
				t.Errorf("Pixel (%d,%d) is not covered by any tile", x, y)
			}
		}
	}
}

func TestNewTileGrid_RowMajor(t *testing.T) {
	tiles := NewTileGrid(40, 20, 16, 1)

	expected := []image.Rectangle{
		image.Rect(0, 0, 16, 16), image.Rect(16, 0, 32, 16), image.Rect(32, 0, 40, 16),
		image.Rect(0, 16, 16, 20), image.Rect(16, 16, 32, 20), image.Rect(32, 16, 40, 20),
	}
	if len(tiles) != len(expected) {
		t.Fatalf("Expected %d tiles, got %d", len(expected), len(tiles))
	}
	for i, tile := range tiles {
		if tile.Bounds != expected[i] {
			t.Errorf("Tile %d: expected bounds %v, got %v", i, expected[i], tile.Bounds)
		}
	}
}

func TestTileDeterministicRandom(t *testing.T) {
	bounds := image.Rect(0, 0, 16, 16)

	// Same ID and seed produce the same sequence
	tile1 := NewTile(42, bounds, 7)
	tile2 := NewTile(42, bounds, 7)
	val1 := tile1.Sampler.Get1D()
	val2 := tile2.Sampler.Get1D()
	if val1 != val2 {
		t.Errorf("Tiles with same ID should produce same random values: %f != %f", val1, val2)
	}

	// Different tile IDs produce different sequences
	if val3 := NewTile(43, bounds, 7).Sampler.Get1D(); val1 == val3 {
		t.Error("Tiles with different IDs should produce different random values")
	}

	// Different seeds produce different sequences
	if val4 := NewTile(42, bounds, 8).Sampler.Get1D(); val1 == val4 {
		t.Error("Tiles with different seeds should produce different random values")
	}
}
