// Package components provides the box, text and color primitives the
// chalkboard screens are drawn with: titled borders, ANSI-aware padding
// and truncation, sub-cell gauges, swatch strips and gradient bars.
package components

// Align controls horizontal text alignment within a box or cell.
type Align int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// Padding defines spacing on each side of a content area.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// NewPadding creates a Padding with the same value on all four sides.
func NewPadding(all int) Padding {
	all = max(all, 0)
	return Padding{Top: all, Right: all, Bottom: all, Left: all}
}

// NewPaddingHV creates a Padding with separate horizontal and vertical values.
// horiz applies to Left and Right; vert applies to Top and Bottom.
func NewPaddingHV(horiz, vert int) Padding {
	horiz, vert = max(horiz, 0), max(vert, 0)
	return Padding{Top: vert, Right: horiz, Bottom: vert, Left: horiz}
}
