// Package gradient maps a normalized stirring position onto the warm/cool
// café gradient used by the sip-slider widget, together with the mood and
// temperature labels shown above it.
package gradient

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"gitlab.com/tinyland/lab/chalkboard/pkg/swatch"
)

// Gradient stop colors, warm to cool.
var (
	WarmStart = swatch.HSL(25, 85, 45)
	WarmEnd   = swatch.HSL(15, 75, 35)
	CoolStart = swatch.HSL(180, 70, 45)
	CoolEnd   = swatch.HSL(190, 60, 70)
)

// spread is the half-width, in percent, of the warm/cool transition band
// centered on the position.
const spread = 20.0

// Stop is one color stop of the gradient. Offset is a percentage in
// [0,100].
type Stop struct {
	Color  colorful.Color
	Offset float64
}

// Clamp restricts p to [0,1]. NaN maps to 0.
func Clamp(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(1, p))
}

// FromPointer converts a pointer column into a normalized position relative
// to a region starting at left and spanning width cells. The bounds must be
// the region's bounds at the time of the event; the pointer may lie outside
// them, in which case the result is clamped.
func FromPointer(x, left, width int) float64 {
	if width <= 0 {
		return 0
	}
	return Clamp(float64(x-left) / float64(width))
}

// Stops returns the four gradient stops for position p: the warm start at
// 0%, warm end at p*100-20%, cool start at p*100+20% and cool end at 100%,
// with the inner offsets clamped to [0,100].
func Stops(p float64) [4]Stop {
	pct := Clamp(p) * 100
	return [4]Stop{
		{Color: WarmStart, Offset: 0},
		{Color: WarmEnd, Offset: math.Max(0, pct-spread)},
		{Color: CoolStart, Offset: math.Min(100, pct+spread)},
		{Color: CoolEnd, Offset: 100},
	}
}

// At samples the gradient described by stops at t in [0,1].
func At(stops [4]Stop, t float64) colorful.Color {
	pct := Clamp(t) * 100
	if pct <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if pct > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		return swatch.Blend(lo.Color, hi.Color, (pct-lo.Offset)/span)
	}
	return stops[len(stops)-1].Color
}

// Sample returns n evenly spaced colors across the gradient for position p.
// It is what the terminal renderer paints, one color per column.
func Sample(p float64, n int) []colorful.Color {
	if n <= 0 {
		return nil
	}
	stops := Stops(p)
	out := make([]colorful.Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = At(stops, t)
	}
	return out
}

// CSS renders the gradient as a CSS linear-gradient, the same descriptor
// the embedded web build applies as its background.
func CSS(p float64) string {
	s := Stops(p)
	return fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s %g%%, %s %g%%, %s 100%%)",
		s[0].Color.Hex(), s[1].Color.Hex(), round2(s[1].Offset), s[2].Color.Hex(), round2(s[2].Offset), s[3].Color.Hex())
}

// Mood returns the mood label for p. Each boundary value belongs to the
// higher band.
func Mood(p float64) string {
	p = Clamp(p)
	switch {
	case p < 0.25:
		return "Cozy & Energetic"
	case p < 0.5:
		return "Balanced & Warm"
	case p < 0.75:
		return "Calm & Refreshing"
	default:
		return "Peaceful & Serene"
	}
}

// Temperature returns "N% Warm" below the midpoint and "N% Cool" from the
// midpoint on.
func Temperature(p float64) string {
	p = Clamp(p)
	if p < 0.5 {
		return fmt.Sprintf("%d%% Warm", int(math.Round((1-p)*100)))
	}
	return fmt.Sprintf("%d%% Cool", int(math.Round(p*100)))
}

// SpoonAngle is the tilt of the spoon in degrees: -15 at the warm edge,
// +15 at the cool edge.
func SpoonAngle(p float64) float64 {
	return -15 + Clamp(p)*30
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
