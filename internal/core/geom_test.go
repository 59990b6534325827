package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Mul(0.5); got != V(1.5, 2) {
		t.Errorf("Mul() = %v, expected (1.5, 2)", got)
	}
	if got := a.Len(); !approx(got, 5) {
		t.Errorf("Len() = %f, expected 5", got)
	}
	if got := a.Distance(V(0, 0)); !approx(got, 5) {
		t.Errorf("Distance() = %f, expected 5", got)
	}

	// Operations never mutate the receiver
	if a != V(3, 4) {
		t.Errorf("receiver changed to %v", a)
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"axis", V(10, 0), V(1, 0)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
		{"zero stays zero", Zero, Zero},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if !approx(got.X, tc.want.X) || !approx(got.Y, tc.want.Y) {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFromAngleRoundTrip(t *testing.T) {
	for _, dir := range []Vec2{Right, Left, Up, Down, V(1, 1).Normalize()} {
		got := FromAngle(dir.Angle())
		if !approx(got.X, dir.X) || !approx(got.Y, dir.Y) {
			t.Errorf("FromAngle(Angle(%v)) = %v", dir, got)
		}
	}
}

func TestSquareCollision(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected bool
	}{
		{"same position", V(0, 0), V(0, 0), true},
		{"overlapping", V(0, 0), V(10, 10), true},
		{"touching horizontally", V(0, 0), V(24, 0), false},
		{"touching vertically", V(0, 0), V(0, 24), false},
		{"apart", V(0, 0), V(30, 5), false},
		{"just inside", V(0, 0), V(23.9, -23.9), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SquareCollision(tc.a, tc.b, 24); got != tc.expected {
				t.Errorf("SquareCollision() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := SquareCollision(tc.b, tc.a, 24); got != tc.expected {
				t.Errorf("SquareCollision() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
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
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(120, 0, 100); got != 100 {
		t.Errorf("ClampF(120, 0, 100) = %f, expected 100", got)
	}
}
