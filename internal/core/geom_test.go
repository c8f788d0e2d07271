package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
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

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"apart horizontally", Box{0, 0, 10, 10}, Box{20, 0, 10, 10}, false},
		{"apart vertically", Box{0, 0, 10, 10}, Box{0, 20, 10, 10}, false},
		{"touching right edge", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"touching top edge", Box{0, 0, 10, 10}, Box{0, 10, 10, 10}, false},
		{"contained", Box{0, 0, 100, 100}, Box{40, 40, 5, 5}, true},
		{"fractional overlap", Box{0, 0, 10, 10}, Box{9.5, 9.5, 10, 10}, true},
		{"negative coordinates", Box{-30, -30, 40, 40}, Box{0, 0, 5, 5}, true},
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

func TestBoxEdges(t *testing.T) {
	b := Box{Left: 10, Bottom: 20, W: 30, H: 5}
	if b.Right() != 40 {
		t.Errorf("Right() = %f, expected 40", b.Right())
	}
	if b.Top() != 25 {
		t.Errorf("Top() = %f, expected 25", b.Top())
	}
}

func TestVecArithmetic(t *testing.T) {
	v := Vec{X: 1, Y: -2}.Add(Vec{X: 3, Y: 4}).Scale(0.5)
	if v.X != 2 || v.Y != 1 {
		t.Errorf("Add/Scale = %+v, expected {2 1}", v)
	}
}
