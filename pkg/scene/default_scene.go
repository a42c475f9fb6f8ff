package scene

import (
	"github.com/df07/go-fragment-raytracer/pkg/core"
	"github.com/df07/go-fragment-raytracer/pkg/geometry"
)

// New builds the two-sphere scene: a red sphere on the right and a blue
// sphere on the left, side by side two units in front of the origin.
func New() Scene {
	return Scene{
		geometry.NewSphere(core.NewVec3(0.5, 0.0, 2.0), 0.5, core.NewVec3(1.0, 0.0, 0.0)),
		geometry.NewSphere(core.NewVec3(-0.5, 0.0, 2.0), 0.5, core.NewVec3(0.0, 0.0, 1.0)),
	}
}
