package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/go-fragment-raytracer/pkg/renderer"
	"github.com/df07/go-fragment-raytracer/pkg/shader"
)

// viewer shows the rendered image and re-renders whenever the window size changes
type viewer struct {
	config renderer.Config
	width  int
	height int
	frame  *ebiten.Image
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.frame == nil {
		return
	}
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	// A minimised window reports a zero size; keep the last frame
	minimised := outsideWidth <= 0 || outsideHeight <= 0
	if !minimised && (outsideWidth != v.width || outsideHeight != v.height || v.frame == nil) {
		if err := v.render(outsideWidth, outsideHeight); err != nil {
			log.Printf("Render failed: %v", err)
		}
	}
	if v.frame == nil {
		return max(1, outsideWidth), max(1, outsideHeight)
	}
	return v.width, v.height
}

// render replaces the displayed frame with a fresh render at the given size
func (v *viewer) render(width, height int) error {
	raytracer, err := renderer.NewRaytracer(renderer.DefaultCameraConfig(width, height), v.config, renderer.NewStdLogger())
	if err != nil {
		return err
	}
	img, _, err := raytracer.Render(context.Background(), nil)
	if err != nil {
		return err
	}

	if v.frame != nil {
		v.frame.Deallocate()
	}
	v.frame = ebiten.NewImageFromImage(img)
	v.width, v.height = width, height
	return nil
}

func main() {
	width := flag.Int("width", 800, "Initial window width")
	height := flag.Int("height", 450, "Initial window height")
	precision := flag.String("precision", "float64", "Fragment precision: 'float64' or 'float32'")
	flag.Parse()

	prec, err := shader.ParsePrecision(*precision)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(2)
	}

	config := renderer.DefaultConfig()
	config.Precision = prec

	ebiten.SetWindowTitle("Fragment Raytracer (" + prec.String() + ")")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&viewer{config: config}); err != nil {
		log.Printf("Viewer error: %v", err)
		os.Exit(1)
	}
}
