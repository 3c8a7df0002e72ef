package theme

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Adapt converts all hex colors in a theme to 256-color ANSI codes if the
// terminal color depth is less than 24-bit. Returns the theme unchanged if
// the terminal supports 24-bit color (colorDepth >= 24).
func Adapt(t Theme, colorDepth int) Theme {
	if colorDepth >= 24 {
		return t
	}

	t.Background = thTo256Color(t.Background)
	t.Foreground = thTo256Color(t.Foreground)
	t.Dim = thTo256Color(t.Dim)
	t.Accent = thTo256Color(t.Accent)

	t.Border = thTo256Color(t.Border)
	t.BorderFocus = thTo256Color(t.BorderFocus)
	t.Title = thTo256Color(t.Title)

	t.Warm = thTo256Color(t.Warm)
	t.Cool = thTo256Color(t.Cool)
	t.Neutral = thTo256Color(t.Neutral)

	t.Success = thTo256Color(t.Success)
	t.Failure = thTo256Color(t.Failure)
	t.Info = thTo256Color(t.Info)

	t.SearchHighlight = thTo256Color(t.SearchHighlight)
	t.HelpKey = thTo256Color(t.HelpKey)
	t.HelpDesc = thTo256Color(t.HelpDesc)

	return t
}

// thPalette256 holds the RGB values of the xterm 6x6x6 cube (indices
// 16-231) followed by the grayscale ramp (232-255).
var thPalette256 = func() [240]colorful.Color {
	var p [240]colorful.Color
	levels := [6]uint8{0, 95, 135, 175, 215, 255}
	for i := 0; i < 216; i++ {
		p[i] = colorful.Color{
			R: float64(levels[i/36]) / 255,
			G: float64(levels[(i%36)/6]) / 255,
			B: float64(levels[i%6]) / 255,
		}
	}
	for i := 0; i < 24; i++ {
		v := float64(8+i*10) / 255
		p[216+i] = colorful.Color{R: v, G: v, B: v}
	}
	return p
}()

// thTo256Color converts a hex color string (e.g. "#ff5500") to the nearest
// 256-color ANSI index, returned as a string like "202". Returns the
// original string unchanged if parsing fails.
func thTo256Color(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return strconv.Itoa(thNearest256(c))
}

// thNearest256 returns the cube or gray index closest to c in RGB space.
// Ties go to the lower index, which prefers the cube over the ramp.
func thNearest256(c colorful.Color) int {
	best, bestDist := 0, 2.0
	for i, p := range thPalette256 {
		if d := c.DistanceRgb(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return 16 + best
}
