package layout

import "testing"

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 10, H: 4}
	if r.Empty() {
		t.Error("non-empty rect reported empty")
	}
	if !(Rect{W: 0, H: 5}).Empty() {
		t.Error("zero-width rect should be empty")
	}
	if got := r.Inner(1, 1); got != (Rect{X: 3, Y: 4, W: 8, H: 2}) {
		t.Errorf("Inner(1,1) = %+v", got)
	}
	if got := r.Inner(6, 3); got.W != 0 || got.H != 0 {
		t.Errorf("Inner overflow = %+v, want zero size", got)
	}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{11, 6, true},
		{12, 3, false},
		{2, 7, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSplitVertical(t *testing.T) {
	area := Rect{W: 80, H: 24}
	got := Split(area, Vertical, 0, Length{Value: 5}, Fill{}, Length{Value: 1})
	want := []Rect{
		{X: 0, Y: 0, W: 80, H: 5},
		{X: 0, Y: 5, W: 80, H: 18},
		{X: 0, Y: 23, W: 80, H: 1},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rect %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSplitHorizontalWeightsAndGap(t *testing.T) {
	got := Split(Rect{X: 1, W: 31, H: 3}, Horizontal, 1, Fill{Weight: 1}, Fill{Weight: 2})
	if got[0].W != 10 || got[1].W != 20 {
		t.Errorf("widths = %d, %d; want 10, 20", got[0].W, got[1].W)
	}
	if got[1].X != 1+10+1 {
		t.Errorf("second X = %d, want 12", got[1].X)
	}
}

func TestSplitMinGrows(t *testing.T) {
	got := Split(Rect{W: 40, H: 1}, Horizontal, 0, Min{Value: 10}, Length{Value: 10})
	if got[0].W != 30 || got[1].W != 10 {
		t.Errorf("widths = %d, %d; want 30, 10", got[0].W, got[1].W)
	}
}

func TestSplitShortSpaceShrinksLastItems(t *testing.T) {
	got := Split(Rect{W: 10, H: 6}, Vertical, 0, Length{Value: 4}, Length{Value: 4}, Length{Value: 4})
	if got[0].H != 4 || got[1].H != 2 || got[2].H != 0 {
		t.Errorf("heights = %d %d %d; want 4 2 0", got[0].H, got[1].H, got[2].H)
	}
	for _, r := range got {
		if r.Y+r.H > 6 {
			t.Errorf("rect %+v extends past area", r)
		}
	}
}

func TestSplitEmpty(t *testing.T) {
	if Split(Rect{W: 10, H: 10}, Vertical, 0) != nil {
		t.Error("Split with no constraints should return nil")
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		width, minW, gap, maxCols, want int
	}{
		{120, 36, 2, 3, 3},
		{80, 36, 2, 3, 2},
		{30, 36, 2, 3, 1},
		{200, 36, 2, 0, 5},
		{50, 0, 2, 3, 3},
	}
	for _, tt := range tests {
		if got := Columns(tt.width, tt.minW, tt.gap, tt.maxCols); got != tt.want {
			t.Errorf("Columns(%d,%d,%d,%d) = %d, want %d", tt.width, tt.minW, tt.gap, tt.maxCols, got, tt.want)
		}
	}
}

func TestGrid(t *testing.T) {
	area := Rect{X: 0, Y: 2, W: 80, H: 30}
	got := Grid(area, 6, 36, 7, 2, 3)
	if len(got) != 6 {
		t.Fatalf("got %d cells", len(got))
	}
	// Two columns at width 80: 39 + 2 + 39.
	if got[0].X != 0 || got[1].X != 41 || got[0].W != 39 {
		t.Errorf("first row = %+v %+v", got[0], got[1])
	}
	if got[2].Y != 2+9 || got[4].Y != 2+18 {
		t.Errorf("row Y = %d, %d; want 11, 20", got[2].Y, got[4].Y)
	}
	if Grid(area, 0, 36, 7, 2, 3) != nil {
		t.Error("Grid(0) should be nil")
	}
}
