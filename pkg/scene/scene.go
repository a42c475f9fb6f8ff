package scene

import (
	"github.com/df07/go-fragment-raytracer/pkg/core"
	"github.com/df07/go-fragment-raytracer/pkg/geometry"
)

// SceneSize is the fixed number of spheres in every scene
const SceneSize = 2

// Scene is a fixed-length array of spheres. It is a plain value: copying it
// copies every sphere, and nothing about it is shared between evaluations.
type Scene [SceneSize]geometry.Sphere

// SphereInfo describes a sphere for reporting (JSON-friendly)
type SphereInfo struct {
	Index  int        `json:"index"`
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
	Color  [3]float64 `json:"color"`
}

// Describe lists the spheres of a scene in order
func Describe(s Scene) []SphereInfo {
	infos := make([]SphereInfo, 0, len(s))
	for i, sphere := range s {
		infos = append(infos, SphereInfo{
			Index:  i,
			Center: [3]float64{sphere.Center.X, sphere.Center.Y, sphere.Center.Z},
			Radius: sphere.Radius,
			Color:  [3]float64{sphere.Color.X, sphere.Color.Y, sphere.Color.Z},
		})
	}
	return infos
}

// Colors returns each sphere's color in scene order
func (s Scene) Colors() [SceneSize]core.Vec3 {
	var colors [SceneSize]core.Vec3
	for i, sphere := range s {
		colors[i] = sphere.Color
	}
	return colors
}
