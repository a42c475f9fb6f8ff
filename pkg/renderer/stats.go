package renderer

import (
	"image"
	"time"

	"github.com/df07/go-fragment-raytracer/pkg/core"
	"github.com/df07/go-fragment-raytracer/pkg/scene"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int                  // Total number of pixels rendered
	BackgroundPixels int                  // Pixels where no sphere was hit
	SpherePixels     [scene.SceneSize]int // Pixels colored by each sphere, in scene order
	Tiles            int                  // Number of tiles rendered
	Duration         time.Duration        // Wall time for the whole render
}

// Merge adds the counts of other into s. Duration is left untouched.
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.BackgroundPixels += other.BackgroundPixels
	for i := range s.SpherePixels {
		s.SpherePixels[i] += other.SpherePixels[i]
	}
	s.Tiles += other.Tiles
}

// Coverage returns the fraction of pixels covered by any sphere
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalPixels-s.BackgroundPixels) / float64(s.TotalPixels)
}

// classifier maps fragment colors back to the sphere that produced them
type classifier struct {
	colors     [scene.SceneSize]core.Vec3
	background core.Vec3
}

func newClassifier(background core.Vec3) classifier {
	return classifier{colors: scene.New().Colors(), background: background}
}

// record counts a single pixel in stats
func (c classifier) record(stats *RenderStats, color core.Vec3) {
	stats.TotalPixels++
	for i, sc := range c.colors {
		if color == sc {
			stats.SpherePixels[i]++
			return
		}
	}
	if color == c.background {
		stats.BackgroundPixels++
	}
}

// CalculateAverageLuminance returns the mean relative luminance of an image
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := core.NewVec3(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
			total += c.Luminance()
		}
	}
	return total / float64(pixels)
}
