package core

import (
	"testing"

	"pgregory.net/rapid"
)

func TestOverlaps(t *testing.T) {
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
			name:     "disjoint diagonal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 20, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
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
			name:     "sub-pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Overlaps(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			resultReverse := Overlaps(tc.b, tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Collision
	}{
		{
			name:     "disjoint",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 20, 10, 10),
			expected: CollisionNone,
		},
		{
			name:     "touching edges",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: CollisionNone,
		},
		{
			name:     "entered from left side",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(8, -5, 10, 20),
			expected: CollisionHorizontal,
		},
		{
			name:     "entered from right side",
			a:        NewRect(18, 0, 10, 10),
			b:        NewRect(0, -5, 20, 20),
			expected: CollisionHorizontal,
		},
		{
			name:     "entered from top",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(-5, 8, 20, 10),
			expected: CollisionVertical,
		},
		{
			name:     "entered from bottom",
			a:        NewRect(0, 18, 10, 10),
			b:        NewRect(-5, 0, 20, 20),
			expected: CollisionVertical,
		},
		{
			// left = 5, top = 5: the side depth is not strictly smaller
			name:     "corner tie resolves vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: CollisionVertical,
		},
		{
			// left = right = 10 with top = bottom = 10
			name:     "identical rects resolve vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 0, 10, 10),
			expected: CollisionVertical,
		},
		{
			// left = right = 10, both smaller than top = bottom = 45
			name:     "equal side depths resolve vertical",
			a:        NewRect(0, 0, 10, 40),
			b:        NewRect(0, -5, 10, 50),
			expected: CollisionVertical,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Classify(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Classify() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func genRect(t *rapid.T, label string) Rect {
	return NewRect(
		rapid.Float64Range(-100, 100).Draw(t, label+"-x"),
		rapid.Float64Range(-100, 100).Draw(t, label+"-y"),
		rapid.Float64Range(0.5, 80).Draw(t, label+"-w"),
		rapid.Float64Range(0.5, 80).Draw(t, label+"-h"),
	)
}

func TestOverlapsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genRect(t, "a")
		b := genRect(t, "b")
		if Overlaps(a, b) != Overlaps(b, a) {
			t.Fatalf("Overlaps(%v, %v) is not symmetric", a, b)
		}
	})
}

func TestClassifyAgreesWithOverlaps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genRect(t, "a")
		b := genRect(t, "b")
		c := Classify(a, b)
		if (c == CollisionNone) == Overlaps(a, b) {
			t.Fatalf("Classify(%v, %v) = %v disagrees with Overlaps", a, b, c)
		}
	})
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	if r.CenterX() != 15 || r.CenterY() != 17.5 {
		t.Errorf("Center = (%v, %v), expected (15, 17.5)", r.CenterX(), r.CenterY())
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
