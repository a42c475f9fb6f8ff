package geometry

import (
	"math"

	"github.com/df07/go-fragment-raytracer/pkg/core"
)

// MaxDist bounds every valid distance in the scene
const MaxDist = 1000000.0

// NoHit is the sentinel distance returned when a ray misses a sphere.
// It is always greater than MaxDist.
const NoHit = MaxDist + 1.0

// Sphere is a flat-colored sphere
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Vec3
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Distance returns the distance along the ray to the sphere's nearer surface,
// or NoHit. The ray direction must already be unit length.
func (s Sphere) Distance(ray core.Ray) float64 {
	return RaySphere(ray.Origin, ray.Direction, s.Center, s.Radius)
}

// RaySphere projects the sphere center onto the ray to find the nearer
// intersection. The result is negative when the sphere lies behind the origin;
// callers decide whether that counts as a hit.
func RaySphere(origin, direction, center core.Vec3, radius float64) float64 {
	// Vector from ray origin to sphere center
	q := center.Subtract(origin)
	c := q.Length()

	// Signed projection of q onto the ray
	v := q.Dot(direction)

	// Squared half-chord: r² minus squared distance from center to the ray
	t := radius*radius - (c*c - v*v)
	if t < 0 {
		return NoHit
	}

	return v - math.Sqrt(t)
}
