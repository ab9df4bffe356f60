package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length() = %f, expected 5", got)
	}
}

func TestVecDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", V(1, 1), V(1, 1), 0},
		{"horizontal", V(400, 300), V(410, 300), 10},
		{"vertical", V(0, 0), V(0, 7), 7},
		{"diagonal", V(0, 0), V(3, 4), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Distance(tc.b); got != tc.expected {
				t.Errorf("Distance() = %f, expected %f", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Distance(tc.a); got != tc.expected {
				t.Errorf("Distance() (reversed) = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
	}{
		{"axis", V(-2, 0)},
		{"diagonal", V(0.3, 0.7)},
		{"large", V(1e6, -3e6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.in.Normalize()
			if math.Abs(n.Length()-1) > 1e-12 {
				t.Errorf("Normalize(%v) length = %f, expected 1", tc.in, n.Length())
			}
			if math.Signbit(n.X) != math.Signbit(tc.in.X) || math.Signbit(n.Y) != math.Signbit(tc.in.Y) {
				t.Errorf("Normalize(%v) = %v changed component signs", tc.in, n)
			}
		})
	}

	if z := V(0, 0).Normalize(); !z.IsZero() {
		t.Errorf("Normalize of zero vector should stay zero, got %v", z)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{850, 32, 768, 768},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
