package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the shell bindings. Widget bindings are appended to the
// help overlay on widget pages.
type keyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Back   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Right  key.Binding
	Left   key.Binding
	Open   key.Binding
	Search key.Binding
	Embed  key.Binding
	Copy   key.Binding
	Theme  key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next widget")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous widget")),
	Right:  key.NewBinding(key.WithKeys("right", "down", "l", "j"), key.WithHelp("→/↓", "next card")),
	Left:   key.NewBinding(key.WithKeys("left", "up", "h", "k"), key.WithHelp("←/↑", "previous card")),
	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open widget")),
	Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Embed:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "embed code")),
	Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy embed code")),
	Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next theme")),
}

// helpKeys adapts the active bindings to help.KeyMap.
type helpKeys struct {
	shell  []key.Binding
	widget []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding { return h.shell }

func (h helpKeys) FullHelp() [][]key.Binding {
	if len(h.widget) == 0 {
		return [][]key.Binding{h.shell}
	}
	return [][]key.Binding{h.shell, h.widget}
}
