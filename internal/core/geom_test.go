package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
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
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"touching edges", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"separate vertically", Box{0, 0, 10, 10}, Box{0, 20, 10, 10}, false},
		{"fractional overlap", Box{0, 0, 10, 10}, Box{9.5, 9.5, 1, 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestShapeCollides(t *testing.T) {
	box := CenteredBox(20, 20)
	circle := CircleShape(0, 0, 5)

	tests := []struct {
		name     string
		a        Shape
		pa       Vec2
		b        Shape
		pb       Vec2
		expected bool
	}{
		{"box-box hit", box, V(0, 0), box, V(15, 0), true},
		{"box-box miss", box, V(0, 0), box, V(25, 0), false},
		{"circle-circle hit", circle, V(0, 0), circle, V(9, 0), true},
		{"circle-circle miss", circle, V(0, 0), circle, V(10, 0), false},
		{"circle-box hit", circle, V(14, 0), box, V(0, 0), true},
		{"circle-box corner miss", circle, V(14, 14), box, V(0, 0), false},
		{"box-circle hit", box, V(0, 0), circle, V(0, 14), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.a, tc.pa, tc.b, tc.pb); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestShapeBounds(t *testing.T) {
	b := BoxShape(0, -40, 32, 40).Bounds(V(100, 432))
	if b.X != 100 || b.Y != 392 || b.Bottom() != 432 {
		t.Errorf("Bounds() = %+v, expected bottom-left anchored box", b)
	}

	c := CircleShape(0, 0, 8).Bounds(V(10, 10))
	if c.X != 2 || c.W != 16 {
		t.Errorf("circle Bounds() = %+v", c)
	}
}

func TestVecHelpers(t *testing.T) {
	if d := Dist(V(0, 0), V(3, 4)); d != 5 {
		t.Errorf("Dist() = %f, expected 5", d)
	}
	u := V(10, 0).Unit()
	if u.X != 1 || u.Y != 0 {
		t.Errorf("Unit() = %+v", u)
	}
	if z := (Vec2{}).Unit(); z.X != 0 || z.Y != 0 {
		t.Errorf("Unit() of zero vector = %+v", z)
	}
	if l := Lerp(1.0, 1.5, 0.5); math.Abs(l-1.25) > 1e-9 {
		t.Errorf("Lerp() = %f, expected 1.25", l)
	}
}
