package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-fragment-raytracer/pkg/core"
)

func TestRaySphere_Miss(t *testing.T) {
	d := RaySphere(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 0), 1.0)
	if d != NoHit {
		t.Errorf("Expected sentinel %f, got %f", NoHit, d)
	}
	if d <= MaxDist {
		t.Errorf("Sentinel %f must exceed MaxDist %f", d, MaxDist)
	}
}

func TestRaySphere_Distances(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		center    core.Vec3
		radius    float64
		expected  float64
	}{
		{
			name:      "head-on from outside",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, 0, 1),
			center:    core.NewVec3(0, 0, 2),
			radius:    0.5,
			expected:  1.5,
		},
		{
			name:      "origin inside sphere",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, 0, 1),
			center:    core.NewVec3(0, 0, 0),
			radius:    1.0,
			expected:  -1.0,
		},
		{
			name:      "sphere behind origin",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, 0, 1),
			center:    core.NewVec3(0, 0, -3),
			radius:    1.0,
			expected:  -4.0,
		},
		{
			// |q| = 5 exactly, so t is exactly zero
			name:      "tangent",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, 0, 1),
			center:    core.NewVec3(3, 0, 4),
			radius:    3.0,
			expected:  4.0,
		},
		{
			name:      "near tangent",
			origin:    core.NewVec3(0.999, 0, -2),
			direction: core.NewVec3(0, 0, 1),
			center:    core.NewVec3(0, 0, 0),
			radius:    1.0,
			expected:  2 - math.Sqrt(1-0.999*0.999),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := RaySphere(tt.origin, tt.direction, tt.center, tt.radius)
			if math.Abs(d-tt.expected) > 1e-6 {
				t.Errorf("Expected distance %f, got %f", tt.expected, d)
			}
		})
	}
}

func TestRaySphere_TangentLostToRounding(t *testing.T) {
	// |q| = sqrt(5) squares back to slightly more than 5, pushing t below zero
	d := RaySphere(core.NewVec3(1, 0, -2), core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 0), 1.0)
	if d != NoHit {
		t.Errorf("Expected grazing ray to miss with sentinel %f, got %f", NoHit, d)
	}
}

func TestRaySphere_NegativeRadiusActsLikePositive(t *testing.T) {
	origin := core.NewVec3(0, 0, 0)
	dir := core.NewVec3(0, 0, 1)
	center := core.NewVec3(0, 0, 2)

	pos := RaySphere(origin, dir, center, 0.5)
	neg := RaySphere(origin, dir, center, -0.5)
	if pos != neg {
		t.Errorf("Expected radius sign to be ignored, got %f and %f", pos, neg)
	}
}

func TestSphere_Distance(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0.5, 0, 2), 0.5, core.NewVec3(1, 0, 0))
	ray := core.NewRay(core.NewVec3(0.5, 0, 0), core.NewVec3(0, 0, 1))

	d := sphere.Distance(ray)
	if math.Abs(d-1.5) > 1e-9 {
		t.Errorf("Expected distance 1.5, got %f", d)
	}
}
