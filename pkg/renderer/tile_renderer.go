package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-fragment-raytracer/pkg/core"
	"github.com/df07/go-fragment-raytracer/pkg/shader"
)

// TileRenderer evaluates the fragment for every pixel of a tile
type TileRenderer struct {
	camera     *Camera
	fragment   shader.FragmentFunc
	classifier classifier
}

// NewTileRenderer creates a new tile renderer with the given camera and fragment function
func NewTileRenderer(camera *Camera, fragment shader.FragmentFunc) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		fragment:   fragment,
		classifier: newClassifier(shader.Background),
	}
}

// RenderTileBounds renders pixels within the specified bounds directly into img.
// Concurrent calls are safe as long as their bounds do not overlap.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, img *image.RGBA) RenderStats {
	stats := RenderStats{Tiles: 1}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ray := tr.camera.GetRay(i, j)
			c := tr.fragment(ray.Origin, ray.Direction)
			img.SetRGBA(i, j, vec4ToColor(c))
			tr.classifier.record(&stats, c.RGB())
		}
	}

	return stats
}

// vec4ToColor converts a fragment color to 8-bit RGBA. Channels are clamped
// to [0, 1] and NaN is written as 0; no gamma is applied.
func vec4ToColor(c core.Vec4) color.RGBA {
	return color.RGBA{
		R: channelToByte(c.X),
		G: channelToByte(c.Y),
		B: channelToByte(c.Z),
		A: channelToByte(c.W),
	}
}

func channelToByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(255 * max(0.0, min(1.0, v)))
}
