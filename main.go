package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-fragment-raytracer/pkg/core"
	"github.com/df07/go-fragment-raytracer/pkg/output"
	"github.com/df07/go-fragment-raytracer/pkg/renderer"
	"github.com/df07/go-fragment-raytracer/pkg/shader"
)

// options holds the parsed command line
type options struct {
	width, height int
	tileSize      int
	workers       int
	scale         int
	precision     shader.Precision
	format        output.Format
	outPath       string
}

func main() {
	opts, help, err := parseFlags(os.Args[1:])
	if help {
		return
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags reads the command line. help is true when usage was printed.
func parseFlags(args []string) (opts options, help bool, err error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	width := fs.Int("width", 400, "Image width in pixels")
	height := fs.Int("height", 225, "Image height in pixels")
	tileSize := fs.Int("tile", 64, "Tile size in pixels")
	workers := fs.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	scale := fs.Int("scale", 1, "Integer upscale factor applied to the output")
	precision := fs.String("precision", "float64", "Fragment precision: 'float64' or 'float32'")
	format := fs.String("format", "png", "Output format: 'png', 'bmp' or 'tiff'")
	outPath := fs.String("out", "", "Output file (default output/render_<timestamp>.<format>)")
	showHelp := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, true, nil
		}
		return opts, false, err
	}

	if *showHelp {
		fmt.Println("Fragment Raytracer")
		fmt.Println("Renders two flat-colored spheres by evaluating a ray-sphere fragment for every pixel.")
		fmt.Println()
		fmt.Println("Options:")
		fs.SetOutput(os.Stdout)
		fs.PrintDefaults()
		return opts, true, nil
	}

	opts = options{
		width:    *width,
		height:   *height,
		tileSize: *tileSize,
		workers:  *workers,
		scale:    *scale,
		outPath:  *outPath,
	}
	if opts.precision, err = shader.ParsePrecision(*precision); err != nil {
		return opts, false, err
	}

	// An explicit output path decides the format by its extension
	if opts.outPath != "" {
		if opts.format, err = output.FormatFromPath(opts.outPath); err != nil {
			return opts, false, err
		}
	} else {
		if opts.format, err = output.ParseFormat(*format); err != nil {
			return opts, false, err
		}
		timestamp := time.Now().Format("20060102_150405")
		opts.outPath = filepath.Join("output", fmt.Sprintf("render_%s%s", timestamp, opts.format.Extension()))
	}

	return opts, false, nil
}

// run renders the image and saves it
func run(ctx context.Context, opts options, logger core.Logger) error {
	config := renderer.Config{
		TileSize:   opts.tileSize,
		NumWorkers: opts.workers,
		Precision:  opts.precision,
	}

	raytracer, err := renderer.NewRaytracer(renderer.DefaultCameraConfig(opts.width, opts.height), config, logger)
	if err != nil {
		return err
	}

	img, stats, err := raytracer.Render(ctx, nil)
	if err != nil {
		return err
	}

	logger.Printf("Pixels: %d (red %d, blue %d, background %d)\n",
		stats.TotalPixels, stats.SpherePixels[0], stats.SpherePixels[1], stats.BackgroundPixels)

	scaled, err := output.Scale(img, opts.scale)
	if err != nil {
		return err
	}

	if err := output.SaveImage(opts.outPath, scaled); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", opts.outPath)
	return nil
}
