package renderer

import (
	"github.com/df07/go-fragment-raytracer/pkg/core"
)

// CameraConfig describes the pinhole camera that feeds rays to the fragment
type CameraConfig struct {
	Origin         core.Vec3 // Ray origin shared by every pixel
	FocalLength    float64   // Distance from origin to the image plane along +Z
	ViewportHeight float64   // Height of the image plane in world units
	Width          int       // Image width in pixels
	Height         int       // Image height in pixels
}

// DefaultCameraConfig frames both spheres from the world origin
func DefaultCameraConfig(width, height int) CameraConfig {
	return CameraConfig{
		Origin:         core.NewVec3(0, 0, 0),
		FocalLength:    1.0,
		ViewportHeight: 1.5,
		Width:          width,
		Height:         height,
	}
}

// Camera generates one ray per pixel
type Camera struct {
	origin         core.Vec3
	focalLength    float64
	viewportWidth  float64
	viewportHeight float64
	width, height  int
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	aspectRatio := float64(config.Width) / float64(config.Height)
	return &Camera{
		origin:         config.Origin,
		focalLength:    config.FocalLength,
		viewportWidth:  config.ViewportHeight * aspectRatio,
		viewportHeight: config.ViewportHeight,
		width:          config.Width,
		height:         config.Height,
	}
}

// GetRay returns the ray through the center of pixel (i, j), with row 0 at
// the top of the image. The direction is not normalized.
func (c *Camera) GetRay(i, j int) core.Ray {
	s := (float64(i)+0.5)/float64(c.width) - 0.5
	t := 0.5 - (float64(j)+0.5)/float64(c.height)

	direction := core.NewVec3(s*c.viewportWidth, t*c.viewportHeight, c.focalLength)
	return core.NewRay(c.origin, direction)
}
