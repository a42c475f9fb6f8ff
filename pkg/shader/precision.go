package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-fragment-raytracer/pkg/core"
)

// Precision selects the floating point width used to evaluate fragments
type Precision int

const (
	Float64 Precision = iota // double precision, the default
	Float32                  // single precision via mgl32
)

// FragmentFunc evaluates one pixel given its ray origin and raw direction
type FragmentFunc func(origin, rawDirection core.Vec3) core.Vec4

// String returns the flag/query spelling of the precision
func (p Precision) String() string {
	switch p {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// ParsePrecision accepts "float64"/"highp" and "float32"/"mediump".
// An empty string selects Float64.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "float64", "highp":
		return Float64, nil
	case "float32", "mediump":
		return Float32, nil
	default:
		return Float64, fmt.Errorf("unknown precision %q (want float64 or float32)", s)
	}
}

// Evaluator returns the fragment function for the given precision
func Evaluator(p Precision) FragmentFunc {
	if p == Float32 {
		return fragment32Adapter
	}
	return Fragment
}

func fragment32Adapter(origin, rawDirection core.Vec3) core.Vec4 {
	c := Fragment32(toMgl(origin), toMgl(rawDirection))
	return core.NewVec4(float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3]))
}

func toMgl(v core.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
