package core

import (
	"math"
	"testing"
)

func TestRectsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RectsOverlap(tc.a, tc.b); got != tc.expected {
				t.Errorf("RectsOverlap() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := RectsOverlap(tc.b, tc.a); got != tc.expected {
				t.Errorf("RectsOverlap() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	c := r.Center()
	if c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", c.X, c.Y)
	}
}

func TestNormalize(t *testing.T) {
	n := Normalize(3, 4)
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Errorf("Normalize(3, 4) = %+v, expected (0.6, 0.8)", n)
	}

	// Zero vector stays zero instead of dividing by zero
	z := Normalize(0, 0)
	if z.X != 0 || z.Y != 0 {
		t.Errorf("Normalize(0, 0) = %+v, expected zero vector", z)
	}
	if math.IsNaN(z.X) || math.IsNaN(z.Y) {
		t.Error("Normalize(0, 0) must not produce NaN")
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
	if d := Distance(1, 1, 1, 1); d != 0 {
		t.Errorf("Distance() of same point = %v, expected 0", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
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
			t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
