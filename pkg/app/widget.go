package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Widget is one interactive teaching widget hosted on a widget page.
// Widgets own their state; the shell forwards input while the widget has
// focus and renders it into the area left after the page chrome.
type Widget interface {
	// ID is the gallery entry ID, e.g. "sip-slider".
	ID() string
	Title() string
	// MinSize is the smallest content area the widget can draw into.
	MinSize() (width, height int)
	// Update receives every message that is not input: ticks, frames,
	// settle timers and theme changes.
	Update(msg tea.Msg) tea.Cmd
	HandleKey(msg tea.KeyMsg) tea.Cmd
	HandleMouse(msg tea.MouseMsg) tea.Cmd
	// View renders exactly width x height cells.
	View(width, height int) string
}

// Leaver is implemented by widgets that hold timers or in-flight
// interactions which must stop when the learner navigates away.
type Leaver interface {
	Leave()
}

// KeyMapper is implemented by widgets that contribute bindings to the help
// overlay.
type KeyMapper interface {
	Keys() []key.Binding
}
