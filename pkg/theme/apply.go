package theme

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
)

// CategoryColor returns the theme color for a catalog category. Unknown
// categories use the accent.
func (t Theme) CategoryColor(c catalog.Category) string {
	switch c {
	case catalog.Warm:
		return t.Warm
	case catalog.Cool:
		return t.Cool
	case catalog.Neutral:
		return t.Neutral
	}
	return t.Accent
}

// FeedbackColor returns Success for true and Failure for false.
func (t Theme) FeedbackColor(ok bool) string {
	if ok {
		return t.Success
	}
	return t.Failure
}

// BorderColor returns the border color for a focused or unfocused card.
func (t Theme) BorderColor(focused bool) string {
	if focused {
		return t.BorderFocus
	}
	return t.Border
}

// Fg returns a lipgloss style with the given theme color as foreground.
func Fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Text is the plain foreground style of t.
func (t Theme) Text() lipgloss.Style { return Fg(t.Foreground) }

// Muted is the dimmed text style of t.
func (t Theme) Muted() lipgloss.Style { return Fg(t.Dim) }

// Heading is the bold title style of t.
func (t Theme) Heading() lipgloss.Style { return Fg(t.Title).Bold(true) }
