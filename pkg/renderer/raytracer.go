package renderer

import (
	"context"
	"fmt"
	"image"
	"log"
	"strings"
	"time"

	"github.com/df07/go-fragment-raytracer/pkg/core"
	"github.com/df07/go-fragment-raytracer/pkg/shader"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// StdLogger implements core.Logger on the standard log package, which adds timestamps
type StdLogger struct {
	logger *log.Logger
}

func (sl *StdLogger) Printf(format string, args ...interface{}) {
	sl.logger.Print(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

// NewStdLogger creates a logger writing through log.Default()
func NewStdLogger() core.Logger {
	return &StdLogger{logger: log.Default()}
}

// Config contains configuration for the tile renderer
type Config struct {
	TileSize   int              // Size of each tile (64x64 recommended)
	NumWorkers int              // Number of parallel workers (0 = use CPU count)
	Precision  shader.Precision // Floating point width used by the fragment
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
		Precision:  shader.Float64,
	}
}

// Raytracer rasterizes the fragment over a full image
type Raytracer struct {
	width, height int
	config        Config
	camera        *Camera
	tiles         []*Tile
	workerPool    *WorkerPool
	logger        core.Logger
}

// NewRaytracer validates the configuration and prepares the tile grid
func NewRaytracer(cameraConfig CameraConfig, config Config, logger core.Logger) (*Raytracer, error) {
	if cameraConfig.Width <= 0 || cameraConfig.Height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", cameraConfig.Width, cameraConfig.Height)
	}
	if config.TileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %d", config.TileSize)
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	camera := NewCamera(cameraConfig)
	tileRenderer := NewTileRenderer(camera, shader.Evaluator(config.Precision))

	return &Raytracer{
		width:      cameraConfig.Width,
		height:     cameraConfig.Height,
		config:     config,
		camera:     camera,
		tiles:      NewTileGrid(cameraConfig.Width, cameraConfig.Height, config.TileSize),
		workerPool: NewWorkerPool(tileRenderer, config.NumWorkers),
		logger:     logger,
	}, nil
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX     int // Tile coordinates (not pixel coordinates)
	TileY     int
	TileImage *image.RGBA // Image data for just this tile

	// Progress information
	TileNumber int // Completed tile count so far (1-based)
	TotalTiles int // Total number of tiles in the image
}

// Render evaluates every pixel and returns the finished image. tileCallback,
// if non-nil, is invoked sequentially as each tile completes.
func (rt *Raytracer) Render(ctx context.Context, tileCallback func(TileCompletionResult)) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	rt.logger.Printf("Rendering %dx%d in %d tiles (using %d workers, %s)...\n",
		rt.width, rt.height, len(rt.tiles), rt.workerPool.GetNumWorkers(), rt.config.Precision)

	tasks := make([]TileTask, len(rt.tiles))
	for i, tile := range rt.tiles {
		tasks[i] = TileTask{Tile: tile, TaskID: i}
	}

	var stats RenderStats
	completed := 0
	err := rt.workerPool.Run(ctx, tasks, img, func(result TileResult) {
		stats.Merge(result.Stats)
		completed++

		if tileCallback != nil {
			tile := rt.tiles[result.TaskID]
			tileCallback(TileCompletionResult{
				TileX:      tile.Bounds.Min.X / rt.config.TileSize,
				TileY:      tile.Bounds.Min.Y / rt.config.TileSize,
				TileImage:  extractTileImage(img, tile.Bounds),
				TileNumber: completed,
				TotalTiles: len(rt.tiles),
			})
		}
	})
	if err != nil {
		rt.logger.Printf("Rendering stopped after %d/%d tiles: %v\n", completed, len(rt.tiles), err)
		return nil, RenderStats{}, fmt.Errorf("render: %w", err)
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%.1f%% coverage)\n", stats.Duration, 100*stats.Coverage())

	return img, stats, nil
}

// GetTileCount returns the number of tiles in the grid
func (rt *Raytracer) GetTileCount() int {
	return len(rt.tiles)
}

// extractTileImage copies a tile's pixels into a standalone image
func extractTileImage(img *image.RGBA, bounds image.Rectangle) *image.RGBA {
	tileImage := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			tileImage.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, img.RGBAAt(x, y))
		}
	}
	return tileImage
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}
