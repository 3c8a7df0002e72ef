package components

import (
	"fmt"
	"math"
	"strings"
)

// Block characters for sub-cell precision (8 levels per cell).
var gaugeBlocks = [9]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

// GaugeStyle configures the appearance of a horizontal bar gauge.
type GaugeStyle struct {
	Width       int    // cells for the bar portion
	ShowPercent bool   // show "73%" after the bar
	Label       string // optional left label (e.g., "Warm")
	LabelWidth  int    // fixed width for the label area (0 = label width + 1)
	FilledColor string // color of the filled portion
	EmptyColor  string // color of the empty portion
}

// GaugeData holds one row of a multi-gauge render.
type GaugeData struct {
	Label string
	Ratio float64
	Color string // overrides FilledColor when set
}

// Gauge renders horizontal bar gauges with sub-cell precision.
type Gauge struct {
	style GaugeStyle
}

// DefaultGaugeStyle returns a 20-cell gauge with a percent label.
func DefaultGaugeStyle() GaugeStyle {
	return GaugeStyle{
		Width:       20,
		ShowPercent: true,
		FilledColor: "#c8b79a",
		EmptyColor:  "#3a4a40",
	}
}

// NewGauge creates a new Gauge with the given style.
func NewGauge(style GaugeStyle) *Gauge {
	return &Gauge{style: style}
}

// Render draws the gauge filled to ratio, clamped to [0, 1]. A positive
// width overrides the style width.
func (g *Gauge) Render(ratio float64, width int) string {
	if width <= 0 {
		width = g.style.Width
	}
	if width <= 0 {
		width = 20
	}
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	ratio = min(ratio, 1)

	var b strings.Builder
	if g.style.Label != "" {
		labelW := g.style.LabelWidth
		if labelW <= 0 {
			labelW = VisibleLen(g.style.Label) + 1
		}
		b.WriteString(PadRight(g.style.Label, labelW))
	}
	b.WriteString(gaugeRenderBar(ratio, width, g.style.FilledColor, g.style.EmptyColor))
	if g.style.ShowPercent {
		fmt.Fprintf(&b, " %3d%%", int(math.Round(ratio*100)))
	}
	return b.String()
}

// RenderMulti renders gauges stacked vertically with aligned labels.
func (g *Gauge) RenderMulti(rows []GaugeData, width int) string {
	if len(rows) == 0 {
		return ""
	}

	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, VisibleLen(r.Label))
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		sg := *g
		sg.style.Label = r.Label
		sg.style.LabelWidth = labelW + 1
		if r.Color != "" {
			sg.style.FilledColor = r.Color
		}
		lines = append(lines, sg.Render(r.Ratio, width))
	}
	return strings.Join(lines, "\n")
}

// gaugeRenderBar builds the colored bar string with sub-cell precision.
func gaugeRenderBar(ratio float64, width int, fillColor, emptyColor string) string {
	totalUnits := width * 8
	filledUnits := min(max(int(math.Round(ratio*float64(totalUnits))), 0), totalUnits)

	fullCells := filledUnits / 8
	partialEighths := filledUnits % 8
	emptyCells := width - fullCells
	if partialEighths > 0 {
		emptyCells--
	}

	fg, bg := Color(fillColor), BgColor(emptyColor)

	var b strings.Builder
	if fullCells > 0 {
		b.WriteString(fg + bg + strings.Repeat(string(gaugeBlocks[8]), fullCells) + Reset())
	}
	if partialEighths > 0 {
		b.WriteString(fg + bg + string(gaugeBlocks[partialEighths]) + Reset())
	}
	if emptyCells > 0 {
		b.WriteString(bg + strings.Repeat(" ", emptyCells) + Reset())
	}
	return b.String()
}
