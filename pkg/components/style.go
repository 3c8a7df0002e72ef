package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color produces an ANSI foreground escape sequence. c is either a hex
// color ("#ff5500" or "ff5500"), which yields a 24-bit sequence, or a
// 256-color index such as "208" as produced by theme.Adapt. Returns an
// empty string if c is empty or malformed.
func Color(c string) string {
	return colorSeq(c, 38)
}

// BgColor is Color for the background.
func BgColor(c string) string {
	return colorSeq(c, 48)
}

func colorSeq(c string, layer int) string {
	if c == "" {
		return ""
	}
	if n, err := strconv.Atoi(c); err == nil {
		if n < 0 || n > 255 {
			return ""
		}
		return fmt.Sprintf("\x1b[%d;5;%dm", layer, n)
	}
	rgb, ok := parseHex(c)
	if !ok {
		return ""
	}
	r, g, b := rgb.RGB255()
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", layer, r, g, b)
}

// Reset returns the ANSI reset sequence that clears all styling.
func Reset() string {
	return "\x1b[0m"
}

// parseHex accepts "#RRGGBB" or "RRGGBB".
func parseHex(hex string) (colorful.Color, bool) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 7 {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}
