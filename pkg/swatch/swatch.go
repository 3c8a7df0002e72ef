// Package swatch parses the color notations used by the catalogs
// ("#RRGGBB" and CSS-style "hsl(h, s%, l%)") and provides the blending
// helpers the widgets render with.
package swatch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrFormat is returned for strings that are neither hex nor hsl().
var ErrFormat = errors.New("swatch: unrecognized color")

// Parse converts a catalog color string into a colorful.Color.
func Parse(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrFormat, s)
		}
		return c, nil
	case strings.HasPrefix(strings.ToLower(s), "hsl(") && strings.HasSuffix(s, ")"):
		return parseHSL(s[4 : len(s)-1])
	}
	return colorful.Color{}, fmt.Errorf("%w: %q", ErrFormat, s)
}

// MustParse is Parse for static catalog data; it panics on malformed input.
func MustParse(s string) colorful.Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex normalizes any supported notation to lowercase "#rrggbb". Unparseable
// input is returned unchanged.
func Hex(s string) string {
	c, err := Parse(s)
	if err != nil {
		return s
	}
	return c.Clamped().Hex()
}

// HSL builds a color from CSS-style hue degrees and percent saturation and
// lightness.
func HSL(h, s, l float64) colorful.Color {
	return colorful.Hsl(h, s/100, l/100)
}

// Blend mixes a toward b by t in HCL space. t is clamped to [0,1].
func Blend(a, b colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a.BlendHcl(b, t).Clamped()
}

// Temperature reports whether a color reads warm (reds, oranges, yellows)
// or cool (greens, blues, purples), using its hue.
func Temperature(c colorful.Color) string {
	h, s, _ := c.Hsl()
	if s < 0.1 {
		return "neutral"
	}
	if h < 75 || h >= 330 {
		return "warm"
	}
	return "cool"
}

func parseHSL(body string) (colorful.Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return colorful.Color{}, fmt.Errorf("%w: hsl(%s)", ErrFormat, body)
	}
	var vals [3]float64
	for i, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.TrimSuffix(p, "%")
		p = strings.TrimSuffix(p, "deg")
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: hsl(%s)", ErrFormat, body)
		}
		vals[i] = v
	}
	if vals[1] < 0 || vals[1] > 100 || vals[2] < 0 || vals[2] > 100 {
		return colorful.Color{}, fmt.Errorf("%w: hsl(%s) out of range", ErrFormat, body)
	}
	return HSL(vals[0], vals[1], vals[2]), nil
}
