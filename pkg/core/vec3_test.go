package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{"unit X", NewVec3(1, 0, 0), NewVec3(1, 0, 0)},
		{"scaled Z", NewVec3(0, 0, 10), NewVec3(0, 0, 1)},
		{"diagonal", NewVec3(3, 4, 0), NewVec3(0.6, 0.8, 0)},
		{"zero", NewVec3(0, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Unit(t *testing.T) {
	u := NewVec3(0.5, 0, 2).Unit()
	if math.Abs(u.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", u.Length())
	}

	zero := NewVec3(0, 0, 0).Unit()
	if !zero.HasNaN() {
		t.Errorf("Expected NaN components for zero vector, got %v", zero)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)
	if v != expected {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestVec3_Luminance(t *testing.T) {
	white := NewVec3(1, 1, 1)
	if math.Abs(white.Luminance()-1.0) > 1e-9 {
		t.Errorf("Expected white luminance 1.0, got %f", white.Luminance())
	}
	if NewVec3(0, 0, 0).Luminance() != 0 {
		t.Error("Expected black luminance 0")
	}
}

func TestVec4_Extend(t *testing.T) {
	c := NewVec3(1, 0, 0).Extend(1)
	if c != NewVec4(1, 0, 0, 1) {
		t.Errorf("Expected (1,0,0,1), got %v", c)
	}
	if c.RGB() != NewVec3(1, 0, 0) {
		t.Errorf("Expected RGB (1,0,0), got %v", c.RGB())
	}
	if c.HasNaN() {
		t.Error("Expected no NaN channels")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, 1))
	p := ray.At(2)
	if p != NewVec3(1, 0, 2) {
		t.Errorf("Expected (1,0,2), got %v", p)
	}
}
