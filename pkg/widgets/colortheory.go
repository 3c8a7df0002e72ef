package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
	"gitlab.com/tinyland/lab/chalkboard/pkg/components"
	"gitlab.com/tinyland/lab/chalkboard/pkg/explorer"
	"gitlab.com/tinyland/lab/chalkboard/pkg/swatch"
	"gitlab.com/tinyland/lab/chalkboard/pkg/theme"
)

// ColorTheoryID is the gallery ID of the color theory explorer.
const ColorTheoryID = "color-theory"

var filterKeys = struct {
	All, Warm, Cool key.Binding
}{
	All:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all colors")),
	Warm: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warm only")),
	Cool: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cool only")),
}

type colorFilter struct {
	label string
	cat   catalog.Category
}

var colorFilters = []colorFilter{
	{"All Colors", explorer.All},
	{"Warm", catalog.Warm},
	{"Cool", catalog.Cool},
}

type temperatureCard struct {
	cat     catalog.Category
	title   string
	summary string
	points  []string
}

var temperatureCards = []temperatureCard{
	{
		cat:     catalog.Warm,
		title:   "Warm Colors",
		summary: "Warm colors (reds, oranges, yellows) are associated with energy, passion, and comfort.",
		points: []string{
			"Create feelings of excitement and energy",
			"Draw attention and encourage action",
			"Perfect for call-to-action buttons",
			"Ideal for food, entertainment, and lifestyle brands",
		},
	},
	{
		cat:     catalog.Cool,
		title:   "Cool Colors",
		summary: "Cool colors (blues, greens, purples) are associated with calm, trust, and professionalism.",
		points: []string{
			"Promote feelings of trust and reliability",
			"Create calming, peaceful environments",
			"Excellent for corporate and healthcare brands",
			"Help reduce visual fatigue in interfaces",
		},
	},
}

// ColorTheory filters emotion palettes by temperature and reveals the
// emotion behind each one on click.
type ColorTheory struct {
	env Env
	exp *explorer.Explorer
}

// NewColorTheory creates the explorer over the catalog palettes.
func NewColorTheory(env Env) *ColorTheory {
	env = env.withDefaults()
	return &ColorTheory{
		env: env,
		exp: explorer.New(env.Catalog.PaletteSets(), explorer.Options{}),
	}
}

// ID returns the unique identifier for this widget.
func (w *ColorTheory) ID() string { return ColorTheoryID }

// Title returns the human-readable display name.
func (w *ColorTheory) Title() string { return "Color Theory Explorer" }

// MinSize returns the minimum width and height this widget requires.
func (w *ColorTheory) MinSize() (int, int) { return 44, 20 }

// Explorer exposes the selection state for inspection.
func (w *ColorTheory) Explorer() *explorer.Explorer { return w.exp }

// Keys implements app.KeyMapper.
func (w *ColorTheory) Keys() []key.Binding {
	return []key.Binding{
		filterKeys.All, filterKeys.Warm, filterKeys.Cool,
		explorerKeys.Prev, explorerKeys.Next, explorerKeys.Toggle, explorerKeys.Clear,
	}
}

// Update is a no-op: the explorer has no timers.
func (w *ColorTheory) Update(tea.Msg) tea.Cmd { return nil }

// HandleKey switches filters and navigates the palettes.
func (w *ColorTheory) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, filterKeys.All):
		w.exp.SetFilter(explorer.All)
	case key.Matches(msg, filterKeys.Warm):
		w.exp.SetFilter(catalog.Warm)
	case key.Matches(msg, filterKeys.Cool):
		w.exp.SetFilter(catalog.Cool)
	default:
		handleExplorerKey(w.exp, msg)
	}
	return nil
}

// HandleMouse handles clicks on the filter buttons and palette cards.
func (w *ColorTheory) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if !isRelease(msg) {
		return nil
	}
	for _, f := range colorFilters {
		if w.env.Hits.Hit(filterZone(f.cat), msg) {
			w.exp.SetFilter(f.cat)
			return nil
		}
	}
	for _, it := range w.exp.Visible() {
		if w.env.Hits.Hit(paletteZone(it.ID), msg) {
			w.exp.Toggle(it.ID)
			w.env.Log.Debug("color-theory: toggled", "palette", it.ID)
			return nil
		}
	}
	return nil
}

func filterZone(c catalog.Category) string { return "filter-" + string(c) }
func paletteZone(id string) string         { return "palette-" + id }

// View renders the filter bar, the palette grid, the selected palette and
// the warm and cool reference cards.
func (w *ColorTheory) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	th := theme.Current
	center := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }
	lines := []string{
		center(th.Muted().Render(components.Truncate("Discover how warm and cool colors impact emotions and user experience", width))),
		"",
		center(w.filterBar(th)),
		"",
	}

	items := w.exp.Visible()
	active, hasActive := w.exp.Active()
	lines = append(lines, cardGrid(len(items), width, 18, 5, 4, func(i, cw, ch int) string {
		it := items[i]
		p, _ := w.env.Catalog.Palette(it.ID)
		focused := i == w.exp.Cursor() || (hasActive && it.ID == active.ID)
		body := theme.Fg(th.CategoryColor(it.Category)).Render(p.Icon+" ") + th.Heading().Render(it.Name) +
			"\n" + components.Strip(hexColors(it.Colors), max(cw-4, 1)) +
			"\n" + th.Muted().Render(strings.ToUpper(string(it.Category)))
		return w.env.Hits.Mark(paletteZone(it.ID), components.RenderBox(body, cw, ch, components.BoxStyle{
			Border:  components.BorderRounded,
			FG:      th.BorderColor(focused),
			Padding: components.NewPaddingHV(1, 0),
		}))
	})...)

	if d, ok := w.exp.Detail(); ok {
		p, _ := w.env.Catalog.Palette(d.Item.ID)
		lines = append(lines, "",
			theme.Fg(th.CategoryColor(p.Category)).Render(p.Icon+" ")+th.Heading().Render(p.Name),
			theme.Fg(th.Accent).Render(p.Emotion))
		lines = append(lines, strings.Split(components.WrapText(d.Tip, width), "\n")...)
	}

	lines = append(lines, "")
	lines = append(lines, cardGrid(len(temperatureCards), width, 32, 11, 2, func(i, cw, ch int) string {
		c := temperatureCards[i]
		body := []string{c.summary, ""}
		for _, p := range c.points {
			body = append(body, "• "+p)
		}
		return components.RenderBox(components.WrapText(strings.Join(body, "\n"), max(cw-4, 1)), cw, ch, components.BoxStyle{
			Border:  components.BorderRounded,
			Title:   c.title,
			FG:      th.CategoryColor(c.cat),
			Padding: components.NewPaddingHV(1, 0),
		})
	})...)
	return components.Block(strings.Join(lines, "\n"), width, height)
}

func (w *ColorTheory) filterBar(th theme.Theme) string {
	var parts []string
	for _, f := range colorFilters {
		style := th.Muted().Padding(0, 1)
		if w.exp.Filter() == f.cat {
			style = lipgloss.NewStyle().Padding(0, 1).Bold(true).
				Foreground(lipgloss.Color(th.Background)).
				Background(lipgloss.Color(th.CategoryColor(f.cat)))
		}
		parts = append(parts, w.env.Hits.Mark(filterZone(f.cat), style.Render(f.label)))
	}
	return strings.Join(parts, " ")
}

// hexColors normalizes catalog colors for the ANSI swatch helpers.
func hexColors(cs []string) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = swatch.Hex(c)
	}
	return out
}
