// Package shader evaluates the two-sphere scene for a single fragment.
//
// Every evaluation rebuilds the scene, so Fragment is a pure function of its
// inputs and safe to call from any number of goroutines.
package shader

import (
	"github.com/df07/go-fragment-raytracer/pkg/core"
	"github.com/df07/go-fragment-raytracer/pkg/geometry"
	"github.com/df07/go-fragment-raytracer/pkg/scene"
)

// Background is the color returned when no sphere is closer than MaxDist
var Background = core.NewVec3(0, 0, 0)

// TraceScene returns the color of the closest sphere along the ray, or
// Background. The direction must be unit length. Ties go to the sphere
// that comes first in the scene, and hits behind the origin are not
// rejected.
func TraceScene(s scene.Scene, origin, direction core.Vec3) core.Vec3 {
	result := Background
	minDist := geometry.MaxDist

	for i := range s {
		rayDist := geometry.RaySphere(origin, direction, s[i].Center, s[i].Radius)
		if rayDist < minDist {
			minDist = rayDist
			result = s[i].Color
		}
	}

	return result
}

// Fragment computes the final RGBA color for one pixel from its ray origin
// and raw (possibly non-unit) ray direction. Alpha is always 1.
func Fragment(origin, rawDirection core.Vec3) core.Vec4 {
	s := scene.New()
	direction := rawDirection.Unit()
	return TraceScene(s, origin, direction).Extend(1.0)
}
