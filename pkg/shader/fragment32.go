package shader

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-fragment-raytracer/pkg/geometry"
	"github.com/df07/go-fragment-raytracer/pkg/scene"
)

// sphere32 mirrors geometry.Sphere in single precision
type sphere32 struct {
	center mgl32.Vec3
	radius float32
	color  mgl32.Vec3
}

const (
	maxDist32 = float32(geometry.MaxDist)
	noHit32   = maxDist32 + 1.0
)

func toSphere32(s scene.Scene) [scene.SceneSize]sphere32 {
	var out [scene.SceneSize]sphere32
	for i, sp := range s {
		out[i] = sphere32{
			center: mgl32.Vec3{float32(sp.Center.X), float32(sp.Center.Y), float32(sp.Center.Z)},
			radius: float32(sp.Radius),
			color:  mgl32.Vec3{float32(sp.Color.X), float32(sp.Color.Y), float32(sp.Color.Z)},
		}
	}
	return out
}

// RaySphere32 is geometry.RaySphere evaluated in float32
func RaySphere32(o, d, p mgl32.Vec3, r float32) float32 {
	q := p.Sub(o)
	c := q.Len()
	v := q.Dot(d)
	t := r*r - (c*c - v*v)

	if t < 0 {
		return noHit32
	}
	return v - math32.Sqrt(t)
}

// TraceScene32 is TraceScene evaluated in float32
func TraceScene32(s scene.Scene, o, d mgl32.Vec3) mgl32.Vec3 {
	result := mgl32.Vec3{0, 0, 0}
	minDist := maxDist32

	for _, sp := range toSphere32(s) {
		rayDist := RaySphere32(o, d, sp.center, sp.radius)
		if rayDist < minDist {
			minDist = rayDist
			result = sp.color
		}
	}

	return result
}

// Fragment32 evaluates the fragment entirely in single precision, the way a
// GPU running the scene at mediump float would.
func Fragment32(origin, rawDirection mgl32.Vec3) mgl32.Vec4 {
	s := scene.New()
	// mgl32 Normalize multiplies by 1/len, so a zero vector yields NaN like GLSL
	direction := rawDirection.Normalize()
	return TraceScene32(s, origin, direction).Vec4(1.0)
}
