package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/chalkboard/pkg/layout"
)

const cardGap = 1

// cardGrid lays n cards of height cellH into rows of equal-width columns
// and returns the rendered lines. render is called with each card's index
// and its cell size.
func cardGrid(n, width, minW, cellH, maxCols int, render func(i, w, h int) string) []string {
	rects := layout.Grid(layout.Rect{W: width, H: cellH}, n, minW, cellH, cardGap, maxCols)
	var lines []string
	for start := 0; start < len(rects); {
		end := start
		var row []string
		for end < len(rects) && rects[end].Y == rects[start].Y {
			if end > start {
				row = append(row, strings.Repeat(" ", cardGap))
			}
			row = append(row, render(end, rects[end].W, rects[end].H))
			end++
		}
		if start > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, row...), "\n")...)
		start = end
	}
	return lines
}
