package components

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Swatch renders a width-cell run of solid color c.
func Swatch(c string, width int) string {
	if width <= 0 {
		return ""
	}
	return BgColor(c) + strings.Repeat(" ", width) + Reset()
}

// Strip splits width cells between colors, giving any remainder to the
// leftmost swatches.
func Strip(colors []string, width int) string {
	if len(colors) == 0 || width <= 0 {
		return ""
	}
	if width < len(colors) {
		colors = colors[:width]
	}
	each, extra := width/len(colors), width%len(colors)
	var b strings.Builder
	for i, c := range colors {
		w := each
		if i < extra {
			w++
		}
		b.WriteString(Swatch(c, w))
	}
	return b.String()
}

// GradientBar renders one cell per color.
func GradientBar(colors []colorful.Color) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(Swatch(c.Clamped().Hex(), 1))
	}
	return b.String()
}

// Chip renders label on a c background with a foreground picked for
// contrast: dark text on light colors, light text on dark ones.
func Chip(label, c string) string {
	fg := "#f4f1e8"
	if rgb, ok := parseHex(c); ok {
		if _, _, l := rgb.Hsl(); l > 0.6 {
			fg = "#1f1f1f"
		}
	}
	return Color(fg) + BgColor(c) + " " + label + " " + Reset()
}
