package scene

import (
	"testing"

	"github.com/df07/go-fragment-raytracer/pkg/core"
)

func TestNew(t *testing.T) {
	s := New()

	tests := []struct {
		name   string
		index  int
		center core.Vec3
		radius float64
		color  core.Vec3
	}{
		{"red sphere", 0, core.NewVec3(0.5, 0, 2), 0.5, core.NewVec3(1, 0, 0)},
		{"blue sphere", 1, core.NewVec3(-0.5, 0, 2), 0.5, core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := s[tt.index]
			if sphere.Center != tt.center {
				t.Errorf("Expected center %v, got %v", tt.center, sphere.Center)
			}
			if sphere.Radius != tt.radius {
				t.Errorf("Expected radius %f, got %f", tt.radius, sphere.Radius)
			}
			if sphere.Color != tt.color {
				t.Errorf("Expected color %v, got %v", tt.color, sphere.Color)
			}
		})
	}
}

func TestNew_Idempotent(t *testing.T) {
	a := New()
	b := New()
	if a != b {
		t.Error("Expected identical scenes from repeated construction")
	}

	// Mutating a copy must not leak into later scenes
	a[0].Radius = 10
	if New()[0].Radius != 0.5 {
		t.Error("Scene construction is not independent of earlier copies")
	}
}

func TestDescribe(t *testing.T) {
	infos := Describe(New())
	if len(infos) != SceneSize {
		t.Fatalf("Expected %d spheres, got %d", SceneSize, len(infos))
	}
	if infos[1].Index != 1 || infos[1].Center != [3]float64{-0.5, 0, 2} {
		t.Errorf("Unexpected second sphere: %+v", infos[1])
	}
	if infos[0].Color != [3]float64{1, 0, 0} {
		t.Errorf("Expected red first sphere, got %v", infos[0].Color)
	}
}
