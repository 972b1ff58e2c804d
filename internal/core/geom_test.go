package core

import "testing"

func TestVec2Add(t *testing.T) {
	tests := []struct {
		a, b, expected Vec2
	}{
		{V(3, 4), V(1, -2), V(4, 2)},
		{V(0, 0), V(0, 0), V(0, 0)},
		{V(-1.5, 2.25), V(1.5, -0.25), V(0, 2)},
	}

	for _, tc := range tests {
		if got := tc.a.Add(tc.b); got != tc.expected {
			t.Errorf("%v.Add(%v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)
	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
