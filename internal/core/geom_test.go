package core

import "testing"

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
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
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
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectGrid(t *testing.T) {
	// 3 columns of 2 chars, 2 rows of 1 char, starting at (4, 2).
	r := NewRect(4, 2, 6, 2)

	tests := []struct {
		name     string
		x, y     int
		row, col int
		ok       bool
	}{
		{"first cell", 4, 2, 0, 0, true},
		{"second half of first cell", 5, 2, 0, 0, true},
		{"last cell", 9, 3, 1, 2, true},
		{"middle", 6, 3, 1, 1, true},
		{"left of grid", 3, 2, 0, 0, false},
		{"below grid", 4, 4, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row, col, ok := r.Grid(tc.x, tc.y, 2, 1)
			if ok != tc.ok {
				t.Fatalf("Grid(%d, %d) ok = %v, expected %v", tc.x, tc.y, ok, tc.ok)
			}
			if ok && (row != tc.row || col != tc.col) {
				t.Errorf("Grid(%d, %d) = (%d, %d), expected (%d, %d)", tc.x, tc.y, row, col, tc.row, tc.col)
			}
		})
	}

	if _, _, ok := r.Grid(4, 2, 0, 1); ok {
		t.Error("Grid with zero cell width should fail")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionReveal)
	f.AddClick(Click{X: 3, Y: 4, Button: MouseSecondary})

	if !f.Has(ActionReveal) {
		t.Error("frame should have Reveal")
	}
	if f.Has(ActionFlag) {
		t.Error("frame should not have Flag")
	}
	if len(f.Clicks) != 1 || f.Clicks[0].Button != MouseSecondary {
		t.Errorf("Clicks = %v", f.Clicks)
	}

	f.Clear()
	if f.Has(ActionReveal) || len(f.Clicks) != 0 {
		t.Error("Clear should drop actions and clicks")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	if ActionFlag.String() != "Flag" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
