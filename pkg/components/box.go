package components

import (
	"strings"
)

// BorderStyle selects which set of box-drawing characters to use.
type BorderStyle int

const (
	// BorderNone renders no border at all.
	BorderNone BorderStyle = iota
	// BorderRounded uses single-line characters with rounded corners.
	BorderRounded
	// BorderHeavy uses heavy box-drawing characters. Focused cards use it.
	BorderHeavy
	// BorderDashed uses dashed characters. The embed panel uses it.
	BorderDashed
)

// borderChars holds the corner, horizontal and vertical characters of a
// border.
type borderChars struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		TopLeft: "╭", TopRight: "╮",
		BottomLeft: "╰", BottomRight: "╯",
		Horizontal: "─", Vertical: "│",
	},
	BorderHeavy: {
		TopLeft: "┏", TopRight: "┓",
		BottomLeft: "┗", BottomRight: "┛",
		Horizontal: "━", Vertical: "┃",
	},
	BorderDashed: {
		TopLeft: "╭", TopRight: "╮",
		BottomLeft: "╰", BottomRight: "╯",
		Horizontal: "┄", Vertical: "┆",
	},
}

// BoxStyle controls the visual appearance of a rendered box.
type BoxStyle struct {
	Border     BorderStyle
	Title      string
	TitleAlign Align
	// Footer is embedded in the bottom border, right aligned.
	Footer  string
	Padding Padding
	FG      string // border color: hex, 256-color index or raw escape
	BG      string // border background, same forms as FG
}

// DefaultBoxStyle returns a BoxStyle with rounded borders, no title,
// and zero padding.
func DefaultBoxStyle() BoxStyle {
	return BoxStyle{
		Border:     BorderRounded,
		TitleAlign: AlignLeft,
	}
}

// RenderBox renders content inside a box, returning a multi-line string.
// width and height are the outer dimensions including border and padding.
//
// A bordered box smaller than 2x2 renders as the empty string. Content
// lines are truncated or padded to the interior width; missing lines are
// blank and surplus lines are dropped.
func RenderBox(content string, width, height int, style BoxStyle) string {
	if style.Border == BorderNone {
		return renderNoBorder(content, width, height, style.Padding)
	}
	if width < 2 || height < 2 {
		return ""
	}

	chars, ok := borderSets[style.Border]
	if !ok {
		chars = borderSets[BorderRounded]
	}
	pre, suf := styleColors(style)
	paint := func(s string) string { return pre + s + suf }

	fill := width - 2
	inner := renderNoBorder(content, fill, height-2, style.Padding)

	var buf strings.Builder
	buf.WriteString(paint(chars.TopLeft))
	buf.WriteString(renderTitleBar(style.Title, style.TitleAlign, fill, chars.Horizontal, paint))
	buf.WriteString(paint(chars.TopRight))
	buf.WriteByte('\n')

	if inner != "" {
		for _, line := range strings.Split(inner, "\n") {
			buf.WriteString(paint(chars.Vertical))
			buf.WriteString(line)
			buf.WriteString(paint(chars.Vertical))
			buf.WriteByte('\n')
		}
	}

	buf.WriteString(paint(chars.BottomLeft))
	buf.WriteString(renderTitleBar(style.Footer, AlignRight, fill, chars.Horizontal, paint))
	buf.WriteString(paint(chars.BottomRight))
	return buf.String()
}

// renderNoBorder lays content into a width x height block, applying only
// padding. Rows are joined with newlines and there is no trailing newline.
func renderNoBorder(content string, width, height int, pad Padding) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	interiorWidth := max(width-pad.Left-pad.Right, 0)
	interiorHeight := max(height-pad.Top-pad.Bottom, 0)

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}

	blank := strings.Repeat(" ", width)
	leftPad := strings.Repeat(" ", min(pad.Left, width))
	rightPad := strings.Repeat(" ", max(width-interiorWidth-len(leftPad), 0))

	rows := make([]string, 0, height)
	for i := 0; i < pad.Top && len(rows) < height; i++ {
		rows = append(rows, blank)
	}
	for i := 0; i < interiorHeight && len(rows) < height; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, leftPad+fitLine(line, interiorWidth)+rightPad)
	}
	for len(rows) < height {
		rows = append(rows, blank)
	}
	return strings.Join(rows, "\n")
}

// fitLine truncates or right-pads a single content line to exactly
// targetWidth visible characters.
func fitLine(line string, targetWidth int) string {
	if targetWidth <= 0 {
		return ""
	}
	vis := VisibleLen(line)
	if vis > targetWidth {
		// A wide rune at the cut can leave the line one cell short.
		line = Truncate(line, targetWidth)
		vis = VisibleLen(line)
	}
	if vis < targetWidth {
		return PadRight(line, targetWidth)
	}
	return line
}

// renderTitleBar renders a horizontal border run of barWidth cells with
// title embedded in it, surrounded by single spaces. An empty title, or
// one with no room, yields a plain run.
func renderTitleBar(title string, align Align, barWidth int, hChar string, paint func(string) string) string {
	maxTitleWidth := barWidth - 4 // 1 hChar + space + ... + space + 1 hChar
	if title == "" || maxTitleWidth <= 0 {
		return paint(strings.Repeat(hChar, max(barWidth, 0)))
	}

	if VisibleLen(title) > maxTitleWidth {
		title = TruncateWithTail(title, maxTitleWidth, "…")
	}
	remaining := barWidth - VisibleLen(title) - 2

	var left int
	switch align {
	case AlignRight:
		left = remaining - 1
	case AlignCenter:
		left = remaining / 2
	default:
		left = 1
	}
	right := max(remaining-left, 0)

	return paint(strings.Repeat(hChar, max(left, 0))) + " " + title + " " + paint(strings.Repeat(hChar, right))
}

// styleColors returns the ANSI color prefix and reset suffix for border
// rendering. If no colors are set, both are empty strings.
func styleColors(style BoxStyle) (pre, suf string) {
	if style.FG == "" && style.BG == "" {
		return "", ""
	}
	var buf strings.Builder
	for _, c := range []struct {
		v  string
		fn func(string) string
	}{{style.FG, Color}, {style.BG, BgColor}} {
		if strings.HasPrefix(c.v, "\x1b") {
			buf.WriteString(c.v)
		} else if c.v != "" {
			buf.WriteString(c.fn(c.v))
		}
	}
	return buf.String(), Reset()
}
