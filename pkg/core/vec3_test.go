package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vecsEqual(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    Vec3
		expected Vec3
	}{
		{
			name:     "already unit",
			input:    NewVec3(1, 0, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "scales to unit length",
			input:    NewVec3(3, 4, 0),
			expected: NewVec3(0.6, 0.8, 0),
		},
		{
			name:     "negative components",
			input:    NewVec3(0, 0, -2),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "zero vector stays zero",
			input:    Vec3{},
			expected: Vec3{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Normalize()
			if !vecsEqual(got, tt.expected, tolerance) {
				t.Errorf("Normalize(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
			if !got.IsFinite() {
				t.Errorf("Normalize(%v) produced non-finite components: %v", tt.input, got)
			}
		})
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	z := NewVec3(0, 0, 1)

	if got := x.Cross(y); !vecsEqual(got, z, tolerance) {
		t.Errorf("x × y = %v, expected %v", got, z)
	}
	if got := y.Cross(x); !vecsEqual(got, z.Negate(), tolerance) {
		t.Errorf("y × x = %v, expected %v", got, z.Negate())
	}

	// Cross of parallel vectors degenerates to the zero vector
	if got := x.Cross(x.Multiply(3)); !vecsEqual(got, Vec3{}, tolerance) {
		t.Errorf("x × 3x = %v, expected zero vector", got)
	}
}

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		incoming Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "45 degree bounce off ground",
			incoming: NewVec3(1, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
		{
			name:     "head-on reversal",
			incoming: NewVec3(0, 0, -1),
			normal:   NewVec3(0, 0, 1),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "grazing direction unchanged",
			incoming: NewVec3(1, 0, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.incoming.Reflect(tt.normal)
			if !vecsEqual(got, tt.expected, tolerance) {
				t.Errorf("Reflect(%v, %v) = %v, expected %v", tt.incoming, tt.normal, got, tt.expected)
			}
		})
	}
}

func TestVec3_Reflect_PreservesLength(t *testing.T) {
	incoming := NewVec3(2, -3, 1.5)
	normal := NewVec3(1, 2, -1).Normalize()

	got := incoming.Reflect(normal)
	if math.Abs(got.Length()-incoming.Length()) > tolerance {
		t.Errorf("Reflection changed length: |%v| = %f, expected %f",
			got, got.Length(), incoming.Length())
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	got := v.Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)
	if !vecsEqual(got, expected, tolerance) {
		t.Errorf("Clamp(%v, 0, 1) = %v, expected %v", v, got, expected)
	}
}

func TestVec3_MultiplyVec(t *testing.T) {
	light := NewVec3(1, 0.5, 0.25)
	colour := NewVec3(0.8, 0.8, 0.8)
	got := light.MultiplyVec(colour)
	expected := NewVec3(0.8, 0.4, 0.2)
	if !vecsEqual(got, expected, tolerance) {
		t.Errorf("%v ⊙ %v = %v, expected %v", light, colour, got, expected)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 2))
	got := ray.At(1.5)
	expected := NewVec3(1, 2, 6)
	if !vecsEqual(got, expected, tolerance) {
		t.Errorf("ray.At(1.5) = %v, expected %v", got, expected)
	}
}
