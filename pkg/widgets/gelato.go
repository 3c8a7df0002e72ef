package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
	"gitlab.com/tinyland/lab/chalkboard/pkg/components"
	"gitlab.com/tinyland/lab/chalkboard/pkg/explorer"
	"gitlab.com/tinyland/lab/chalkboard/pkg/theme"
)

// GelatoID is the gallery ID of the gelato harmony explorer.
const GelatoID = "gelato-harmony"

var explorerKeys = struct {
	Prev, Next, Toggle, Clear key.Binding
}{
	Prev:   key.NewBinding(key.WithKeys("left", "h", "up", "k"), key.WithHelp("←/h", "previous")),
	Next:   key.NewBinding(key.WithKeys("right", "l", "down", "j"), key.WithHelp("→/l", "next")),
	Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open / close")),
	Clear:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close")),
}

// Gelato pairs spice jar scents with color harmony rules. Hovering a jar
// previews its colors on the jar itself; clicking opens the detail panel.
type Gelato struct {
	env Env
	exp *explorer.Explorer
}

// NewGelato creates the explorer over the catalog spice jars.
func NewGelato(env Env) *Gelato {
	env = env.withDefaults()
	cat := env.Catalog
	return &Gelato{
		env: env,
		exp: explorer.New(cat.JarSets(), explorer.Options{
			Hover: true,
			Tip: func(s catalog.SwatchSet) string {
				if j, ok := cat.Jar(s.ID); ok {
					return j.DesignTip()
				}
				return s.Description
			},
		}),
	}
}

// ID returns the unique identifier for this widget.
func (w *Gelato) ID() string { return GelatoID }

// Title returns the human-readable display name.
func (w *Gelato) Title() string { return "Gelato of Harmony" }

// MinSize returns the minimum width and height this widget requires.
func (w *Gelato) MinSize() (int, int) { return 40, 16 }

// Explorer exposes the selection state for inspection.
func (w *Gelato) Explorer() *explorer.Explorer { return w.exp }

// Keys implements app.KeyMapper.
func (w *Gelato) Keys() []key.Binding {
	return []key.Binding{explorerKeys.Prev, explorerKeys.Next, explorerKeys.Toggle, explorerKeys.Clear}
}

// Update is a no-op: the explorer has no timers.
func (w *Gelato) Update(tea.Msg) tea.Cmd { return nil }

// HandleKey moves the cursor and opens or closes jars.
func (w *Gelato) HandleKey(msg tea.KeyMsg) tea.Cmd {
	handleExplorerKey(w.exp, msg)
	return nil
}

// HandleMouse previews the jar under the pointer and toggles on click.
func (w *Gelato) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	id, over := w.jarAt(msg)
	switch {
	case isMotion(msg):
		if over {
			w.exp.Hover(id)
		} else {
			w.exp.Leave()
		}
	case isRelease(msg) && over:
		w.exp.Toggle(id)
		w.env.Log.Debug("gelato-harmony: toggled", "jar", id)
	}
	return nil
}

// Leave drops the hover preview.
func (w *Gelato) Leave() { w.exp.Leave() }

func (w *Gelato) jarAt(msg tea.MouseMsg) (string, bool) {
	for _, it := range w.exp.Visible() {
		if w.env.Hits.Hit(jarZone(it.ID), msg) {
			return it.ID, true
		}
	}
	return "", false
}

func jarZone(id string) string { return "jar-" + id }

// opened is the jar in the detail panel. Hover never changes it.
func (w *Gelato) opened() (catalog.SpiceJar, bool) {
	if d, ok := w.exp.Detail(); ok {
		return w.env.Catalog.Jar(d.Item.ID)
	}
	return catalog.SpiceJar{}, false
}

// View renders the jar shelf and, when a jar is open, its harmony detail.
func (w *Gelato) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	th := theme.Current
	center := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }
	lines := []string{
		center(th.Muted().Render(components.Truncate("Discover how scents connect to color harmony rules through interactive exploration", width))),
		"",
	}

	items := w.exp.Visible()
	active, _ := w.exp.Active()
	hovered, _ := w.exp.Hovered()
	lines = append(lines, cardGrid(len(items), width, 16, 4, 4, func(i, cw, ch int) string {
		it := items[i]
		j, _ := w.env.Catalog.Jar(it.ID)
		focused := i == w.exp.Cursor() || it.ID == active.ID
		body := th.Heading().Render(it.Name) + "\n" + th.Muted().Render(j.Scent)
		if it.ID == hovered.ID {
			body = th.Heading().Render(it.Name) + theme.Fg(th.Accent).Render(" ✦") + "\n" +
				components.Strip(hexColors(j.Colors), max(cw-4, 1))
		}
		box := components.RenderBox(body, cw, ch, components.BoxStyle{
			Border:  components.BorderRounded,
			FG:      th.BorderColor(focused),
			Padding: components.NewPaddingHV(1, 0),
		})
		return w.env.Hits.Mark(jarZone(it.ID), box)
	})...)
	lines = append(lines, "")

	if j, ok := w.opened(); ok {
		lines = append(lines, w.detail(j, th, width)...)
	} else {
		lines = append(lines, center(th.Muted().Render(components.Truncate(
			"Hover or tap the spice jars above to discover how scents connect to color harmony rules", width))))
	}
	return components.Block(strings.Join(lines, "\n"), width, height)
}

func (w *Gelato) detail(j catalog.SpiceJar, th theme.Theme, width int) []string {
	lines := []string{
		th.Heading().Render(j.Name) + th.Muted().Render("  "+j.Scent),
		theme.Fg(th.CategoryColor(j.Category)).Render(j.ColorRule),
		"",
		th.Muted().Render("Color Harmony Example"),
		components.Strip(hexColors(j.Colors), min(width, 48)),
		"",
	}
	lines = append(lines, strings.Split(components.WrapText(j.Description, width), "\n")...)
	lines = append(lines, "")
	lines = append(lines, strings.Split(components.WrapText(theme.Fg(th.Accent).Render("Design Tip: ")+j.DesignTip(), width), "\n")...)
	return lines
}

// handleExplorerKey applies the shared explorer bindings.
func handleExplorerKey(e *explorer.Explorer, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, explorerKeys.Prev):
		e.Move(-1)
	case key.Matches(msg, explorerKeys.Next):
		e.Move(1)
	case key.Matches(msg, explorerKeys.Toggle):
		e.ToggleCursor()
	case key.Matches(msg, explorerKeys.Clear):
		e.Clear()
	default:
		return false
	}
	return true
}
