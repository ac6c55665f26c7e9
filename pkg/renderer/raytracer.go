package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// RenderConfig contains configuration for rendering
type RenderConfig struct {
	MaxDepth   int // Recursion budget for reflected and refracted rays
	TileSize   int // Side of each square tile in pixels
	NumWorkers int // Number of tiles rendered in parallel (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDepth:   world.DefaultDepth,
		TileSize:   32,
		NumWorkers: 0,
	}
}

// Raytracer renders a world through a camera, one tile per task
type Raytracer struct {
	camera *Camera
	world  *world.World
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a raytracer. A negative MaxDepth and non-positive
// TileSize or NumWorkers fall back to defaults.
func NewRaytracer(camera *Camera, w *world.World, config RenderConfig, logger core.Logger) *Raytracer {
	defaults := DefaultRenderConfig()
	if config.MaxDepth < 0 {
		config.MaxDepth = defaults.MaxDepth
	}
	if config.TileSize <= 0 {
		config.TileSize = defaults.TileSize
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.NewNopLogger()
	}
	return &Raytracer{camera: camera, world: w, config: config, logger: logger}
}

// Config returns the effective configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Render traces every pixel of the camera's canvas. Tiles are rendered
// concurrently; onTile, if not nil, is called once per finished tile and
// never concurrently with itself. Render stops early when ctx is canceled.
func (rt *Raytracer) Render(ctx context.Context, onTile func(Tile, *canvas.Canvas)) (*canvas.Canvas, RenderStats, error) {
	width, height := rt.camera.HSize, rt.camera.VSize
	img := canvas.New(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize)

	rt.logger.Printf("Rendering %dx%d (%d tiles, %d workers, depth %d)\n",
		width, height, len(tiles), rt.config.NumWorkers, rt.config.MaxDepth)
	start := time.Now()

	var callbackMu sync.Mutex
	g, tileCtx := errgroup.WithContext(ctx)
	g.SetLimit(rt.config.NumWorkers)

	for _, tile := range tiles {
		if tileCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := rt.renderTile(tileCtx, tile, img); err != nil {
				return err
			}
			if onTile != nil {
				callbackMu.Lock()
				defer callbackMu.Unlock()
				onTile(tile, img)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render: %w", err)
	}

	stats := RenderStats{
		TotalPixels: width * height,
		Tiles:       len(tiles),
		Workers:     rt.config.NumWorkers,
		MaxDepth:    rt.config.MaxDepth,
		Duration:    time.Since(start),
	}
	rt.logger.Printf("Rendered %d pixels in %v (%.1f pixels/ms)\n",
		stats.TotalPixels, stats.Duration.Round(time.Millisecond), stats.PixelsPerMillisecond())
	return img, stats, nil
}

// renderTile traces the pixels of one tile, checking for cancellation once per row
func (rt *Raytracer) renderTile(ctx context.Context, tile Tile, img *canvas.Canvas) error {
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			color := rt.RenderPixel(x, y)
			if err := img.Set(x, y, color); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderPixel returns the color of a single pixel
func (rt *Raytracer) RenderPixel(x, y int) core.Color {
	return rt.world.ColorAt(rt.camera.RayForPixel(x, y), rt.config.MaxDepth)
}
