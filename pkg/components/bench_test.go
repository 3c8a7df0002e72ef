package components

import (
	"strings"
	"testing"
)

// BenchmarkGaugeRenderMulti renders the three-row temperature gauge used
// by the sip slider.
func BenchmarkGaugeRenderMulti(b *testing.B) {
	g := NewGauge(GaugeStyle{ShowPercent: true, EmptyColor: "#3a4a40"})
	rows := []GaugeData{
		{Label: "Warm", Ratio: 0.62, Color: "#e07a3f"},
		{Label: "Neutral", Ratio: 0.38, Color: "#c8b79a"},
		{Label: "Cool", Ratio: 0.12, Color: "#4a90c2"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.RenderMulti(rows, 60)
	}
}

// BenchmarkBoxRender renders a titled card with multi-line colored content
// at 40x10.
func BenchmarkBoxRender(b *testing.B) {
	style := DefaultBoxStyle()
	style.Title = "Gelato of Harmony"
	style.Footer = "enter ▸"
	style.Border = BorderRounded

	content := strings.Join([]string{
		Color("#d4a373") + "Cinnamon" + Reset() + "  warm, sweet",
		"Analogous",
		Swatch("#d4a373", 4) + Swatch("#e9c46a", 4) + Swatch("#f4a261", 4),
		"Colors next to each other on the wheel.",
	}, "\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RenderBox(content, 40, 10, style)
	}
}

// BenchmarkStrip renders a five-color palette strip.
func BenchmarkStrip(b *testing.B) {
	colors := []string{"#ff6b35", "#f7931e", "#ffd23f", "#ee4266", "#540d6e"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Strip(colors, 48)
	}
}

// BenchmarkWrapText wraps a styled paragraph to a narrow terminal.
func BenchmarkWrapText(b *testing.B) {
	s := Color("#c8b79a") + "Design Tip: " + Reset() + strings.Repeat("Warm colors advance and cool colors recede, so pair them to build depth. ", 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = WrapText(s, 38)
	}
}

// BenchmarkVisibleLen measures ANSI-aware width of a string mixing escapes,
// ASCII and wide runes.
func BenchmarkVisibleLen(b *testing.B) {
	s := Color("#4caf50") + "████████" + Reset() + " Perfect blend! ☕ " + Color("#ff9800") + "▁▂▃▄▅▆▇█" + Reset()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = VisibleLen(s)
	}
}
