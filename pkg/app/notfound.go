package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/chalkboard/pkg/theme"
)

// NotFound is the page shown for routes that match no widget. Enter or a
// click on the link returns to the index.
type NotFound struct {
	path string
	hits HitTester
}

// NewNotFound creates the page for the unmatched path.
func NewNotFound(path string, hits HitTester) *NotFound {
	return &NotFound{path: path, hits: hits}
}

var notFoundHome = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "return home"))

// ID returns the widget's unique identifier.
func (w *NotFound) ID() string { return "not-found" }

// Title returns the widget's display title.
func (w *NotFound) Title() string { return "Page not found" }

// Path is the route that failed to resolve.
func (w *NotFound) Path() string { return w.path }

// MinSize returns the minimum dimensions for the page.
func (w *NotFound) MinSize() (int, int) { return 24, 5 }

// Update is a no-op.
func (w *NotFound) Update(tea.Msg) tea.Cmd { return nil }

// Keys implements KeyMapper.
func (w *NotFound) Keys() []key.Binding { return []key.Binding{notFoundHome} }

// HandleKey navigates home on enter.
func (w *NotFound) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, notFoundHome) {
		return NavigateCmd("/")
	}
	return nil
}

// HandleMouse navigates home when the link is clicked.
func (w *NotFound) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && w.hits != nil && w.hits.Hit("home", msg) {
		return NavigateCmd("/")
	}
	return nil
}

// View renders the 404 message centered in the area.
func (w *NotFound) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	th := theme.Current
	link := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent)).Underline(true).Render("Return to Home")
	if w.hits != nil {
		link = w.hits.Mark("home", link)
	}
	body := strings.Join([]string{
		th.Heading().Render("404"),
		th.Muted().Render("Oops! Page not found"),
		th.Muted().Render(w.path),
		"",
		link,
	}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
