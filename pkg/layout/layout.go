// Package layout splits terminal areas into regions: the page bands of
// the chalkboard screens and the responsive card grid of the index.
//
// Constraint types:
//   - Length(n): fixed size in cells
//   - Min(n): at least n cells, grows with Fill items to share surplus
//   - Fill(w): fills remaining space proportional to weight
//
// Fixed sizes are allocated first; surplus is shared by weight among Fill
// and Min items. When space runs short, later items shrink first.
package layout

// Rect represents a rectangular area in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Empty returns true if this rectangle has zero area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inner returns a new Rect shrunk by h cells on the left and right and v
// cells on the top and bottom. Dimensions never go negative.
func (r Rect) Inner(h, v int) Rect {
	return Rect{
		X: r.X + h,
		Y: r.Y + v,
		W: max(r.W-2*h, 0),
		H: max(r.H-2*v, 0),
	}
}

// Contains returns true if the point (px, py) lies within this rectangle.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Direction controls the axis along which a split runs.
type Direction int

const (
	// Vertical stacks regions top to bottom.
	Vertical Direction = iota
	// Horizontal places regions left to right.
	Horizontal
)

// Constraint is the interface satisfied by all layout constraint types.
// The marker method prevents external implementations.
type Constraint interface {
	constraint()
}

// Length allocates exactly Value cells.
type Length struct{ Value int }

func (Length) constraint() {}

// Min allocates at least Value cells and shares surplus like Fill{1}.
type Min struct{ Value int }

func (Min) constraint() {}

// Fill distributes remaining space proportional to Weight.
// A Weight of 0 is treated as 1.
type Fill struct{ Weight int }

func (Fill) constraint() {}

// Split divides area along dir into len(cs) regions separated by gap
// cells. The regions never overlap and never extend past area.
func Split(area Rect, dir Direction, gap int, cs ...Constraint) []Rect {
	n := len(cs)
	if n == 0 {
		return nil
	}
	total := area.H
	if dir == Horizontal {
		total = area.W
	}
	gap = max(gap, 0)
	available := max(total-gap*(n-1), 0)

	allocs := make([]int, n)
	weights := make([]int, n)
	fixed, totalWeight := 0, 0
	for i, c := range cs {
		switch v := c.(type) {
		case Length:
			allocs[i] = max(v.Value, 0)
		case Min:
			allocs[i] = max(v.Value, 0)
			weights[i] = 1
		case Fill:
			weights[i] = max(v.Weight, 1)
		}
		fixed += allocs[i]
		totalWeight += weights[i]
	}

	if surplus := available - fixed; surplus > 0 && totalWeight > 0 {
		given, last := 0, -1
		for i := range cs {
			if weights[i] > 0 {
				last = i
			}
		}
		for i := range cs {
			if weights[i] == 0 {
				continue
			}
			share := surplus * weights[i] / totalWeight
			if i == last {
				share = surplus - given
			}
			allocs[i] += share
			given += share
		}
	}

	rects := make([]Rect, n)
	pos := 0
	for i := range cs {
		size := min(allocs[i], max(available-pos+gap*i, 0))
		if dir == Horizontal {
			rects[i] = Rect{X: area.X + pos, Y: area.Y, W: size, H: area.H}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + pos, W: area.W, H: size}
		}
		pos += size + gap
	}
	return rects
}

// Columns returns how many cells of at least minW fit across width with
// gap cells between them, capped at maxCols. At least one column is
// always returned.
func Columns(width, minW, gap, maxCols int) int {
	if minW <= 0 {
		return max(maxCols, 1)
	}
	cols := (width + gap) / (minW + gap)
	if maxCols > 0 {
		cols = min(cols, maxCols)
	}
	return max(cols, 1)
}

// Grid lays n cells of height cellH into rows within area. Column count
// is chosen with Columns; cells in a row share the width evenly. Cells
// that fall below the area keep their position so callers can scroll.
func Grid(area Rect, n, minW, cellH, gap, maxCols int) []Rect {
	if n <= 0 {
		return nil
	}
	cols := Columns(area.W, minW, gap, maxCols)
	colRects := Split(Rect{X: area.X, Y: area.Y, W: area.W, H: cellH}, Horizontal, gap, fills(cols)...)

	rects := make([]Rect, n)
	for i := range rects {
		c := colRects[i%cols]
		c.Y = area.Y + (i/cols)*(cellH+gap)
		rects[i] = c
	}
	return rects
}

func fills(n int) []Constraint {
	cs := make([]Constraint, n)
	for i := range cs {
		cs[i] = Fill{Weight: 1}
	}
	return cs
}
