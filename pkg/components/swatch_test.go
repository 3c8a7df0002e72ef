package components

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestSwatch(t *testing.T) {
	got := Swatch("#e74c3c", 4)
	if !strings.HasPrefix(got, BgColor("#e74c3c")) || VisibleLen(got) != 4 {
		t.Errorf("Swatch = %q", got)
	}
	if Swatch("#e74c3c", 0) != "" {
		t.Error("zero-width swatch should be empty")
	}
}

func TestStripWidths(t *testing.T) {
	colors := []string{"#e74c3c", "#f39c12", "#8b4513"}
	tests := []struct{ width int }{{3}, {10}, {2}, {31}}
	for _, tt := range tests {
		got := Strip(colors, tt.width)
		if w := VisibleLen(got); w != tt.width {
			t.Errorf("Strip(width=%d) visible width = %d", tt.width, w)
		}
	}
	if Strip(nil, 10) != "" {
		t.Error("Strip(nil) should be empty")
	}
}

func TestGradientBar(t *testing.T) {
	cs := []colorful.Color{{R: 1}, {G: 1}, {B: 1}}
	got := GradientBar(cs)
	if VisibleLen(got) != 3 {
		t.Errorf("width = %d", VisibleLen(got))
	}
	if !strings.Contains(got, BgColor("#00ff00")) {
		t.Errorf("missing green cell: %q", got)
	}
}

func TestChipContrast(t *testing.T) {
	light := Chip("beige", "#d2b48c")
	dark := Chip("brown", "#3b2f2a")
	if !strings.HasPrefix(light, Color("#1f1f1f")) {
		t.Errorf("light chip should use dark text: %q", light)
	}
	if !strings.HasPrefix(dark, Color("#f4f1e8")) {
		t.Errorf("dark chip should use light text: %q", dark)
	}
	if VisibleLen(light) != len(" beige ") {
		t.Errorf("chip width = %d", VisibleLen(light))
	}
}
