package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/chalkboard/pkg/app"
	"gitlab.com/tinyland/lab/chalkboard/pkg/components"
	"gitlab.com/tinyland/lab/chalkboard/pkg/gallery"
	"gitlab.com/tinyland/lab/chalkboard/pkg/gradient"
	"gitlab.com/tinyland/lab/chalkboard/pkg/layout"
	"gitlab.com/tinyland/lab/chalkboard/pkg/theme"
)

// Zone names used by the shell itself. Widgets mark theirs under a
// separate prefix.
const (
	backZone  = "shell-back"
	embedZone = "shell-embed"
	copyZone  = "shell-copy"
)

func cardZone(id string) string { return "shell-card-" + id }

const (
	heroTitle    = "eLearning Widgets"
	heroSubtitle = "Interactive widgets for a micro-course blending color theory with sensory play"
	aboutText    = "These widgets accompany a micro-course on color theory taught through coffee, " +
		"spice and flavor metaphors. Each one runs on its own, so lessons can mix and match them."
	cardMinWidth = 30
	cardHeight   = 7
)

var heroTags = []string{"Color Theory", "Sensory Learning", "Interactive Design"}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready || m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}
	bodyH := m.height - 1

	toasts := m.renderToasts(m.width)
	bodyH -= len(toasts)

	var body string
	switch {
	case m.showHelp:
		body = m.renderHelp(m.width, bodyH)
	case m.screen == ScreenIndex:
		body = m.renderIndex(m.width, bodyH)
	case m.screen == ScreenWidget:
		body = m.renderWidgetPage(m.width, bodyH)
	default:
		body = m.widget.View(m.width, bodyH)
	}

	lines := strings.Split(components.Block(body, m.width, max(bodyH, 0)), "\n")
	if bodyH <= 0 {
		lines = nil
	}
	lines = append(lines, toasts...)
	if m.searchMode {
		lines = append(lines, renderSearchBar(m.searchQuery, m.width))
	} else {
		lines = append(lines, m.renderStatusBar(m.width))
	}
	return m.zones.Scan(strings.Join(lines, "\n"))
}

// renderHero draws the marquee: title, subtitle, tag chips and a warm to
// cool rule.
func renderHero(title, subtitle string, tags []string, width int) []string {
	th := theme.Current
	center := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }
	chips := make([]string, len(tags))
	for i, t := range tags {
		chips[i] = components.Chip(t, th.Border)
	}
	lines := []string{
		center(th.Heading().Render(title)),
	}
	for _, l := range strings.Split(components.WrapText(subtitle, max(width-4, 1)), "\n") {
		lines = append(lines, center(th.Muted().Render(l)))
	}
	if len(chips) > 0 {
		lines = append(lines, center(strings.Join(chips, " ")))
	}
	lines = append(lines, components.GradientBar(gradient.Sample(0.5, width)))
	return lines
}

// renderIndex draws the hero, the widget cards and the about section,
// scrolled so the focused card is on screen.
func (m Model) renderIndex(width, height int) string {
	th := theme.Current
	lines := renderHero(heroTitle, heroSubtitle, heroTags, width)
	lines = append(lines, "",
		th.Heading().Render("Available Widgets"))
	lines = append(lines, strings.Split(th.Muted().Render(components.WrapText(
		"Each widget is designed to be embedded into your eLearning course platform. "+
			"Click to preview and get embedding instructions.", width)), "\n")...)
	lines = append(lines, "")

	entries := m.VisibleEntries()
	focusTop, focusBottom := -1, -1
	if len(entries) == 0 {
		lines = append(lines, th.Muted().Render(fmt.Sprintf("No widgets match %q", m.searchQuery)))
	}

	rects := layout.Grid(layout.Rect{W: width, H: cardHeight}, len(entries), cardMinWidth, cardHeight, 1, 3)
	for start := 0; start < len(rects); {
		end := start
		var row []string
		for end < len(rects) && rects[end].Y == rects[start].Y {
			if end > start {
				row = append(row, " ")
			}
			e := entries[end]
			focused := e.ID == m.focus.Current()
			if focused {
				focusTop, focusBottom = len(lines), len(lines)+cardHeight
			}
			row = append(row, m.zones.Mark(cardZone(e.ID), renderCard(e, rects[end].W, cardHeight, focused)))
			end++
		}
		lines = append(lines, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, row...), "\n")...)
		lines = append(lines, "")
		start = end
	}

	lines = append(lines, th.Heading().Render("About This Project"))
	lines = append(lines, strings.Split(th.Text().Render(components.WrapText(aboutText, width)), "\n")...)

	offset := 0
	if focusBottom > height {
		offset = min(focusBottom-height, max(len(lines)-height, 0))
		if focusTop < offset {
			offset = focusTop
		}
	}
	return strings.Join(lines[offset:], "\n")
}

func renderCard(e gallery.Entry, w, h int, focused bool) string {
	th := theme.Current
	accent := th.CategoryColor(e.Accent)
	body := theme.Fg(accent).Render("●") + " " + th.Text().Render(e.Description)
	body = components.WrapText(body, max(w-4, 1))
	if lines := strings.Split(body, "\n"); len(lines) > h-3 {
		body = strings.Join(lines[:max(h-3, 0)], "\n")
	}
	body += "\n" + th.Muted().Render(strings.Join(e.Tags, " · "))
	border := components.BorderRounded
	if focused {
		border = components.BorderHeavy
	}
	return components.RenderBox(body, w, h, components.BoxStyle{
		Border:  border,
		Title:   e.Title,
		Footer:  openHint(focused),
		FG:      th.BorderColor(focused),
		Padding: components.NewPaddingHV(1, 0),
	})
}

func openHint(focused bool) string {
	if focused {
		return "enter ▸"
	}
	return ""
}

// renderWidgetPage draws the page header, the optional embed panel and
// the widget itself.
func (m Model) renderWidgetPage(width, height int) string {
	th := theme.Current
	e := m.entry
	embedLabel := "‹/› Embed"
	if m.showEmbed {
		embedLabel = "Hide Embed"
	}
	nav := spread(
		m.zones.Mark(backZone, theme.Fg(th.Accent).Render("← Back to Widgets")),
		m.zones.Mark(embedZone, theme.Fg(th.Accent).Render(embedLabel)),
		width)
	lines := []string{nav}
	lines = append(lines, renderHero(e.Title, e.Headline, e.Tags, width)...)

	if m.showEmbed {
		lines = append(lines, strings.Split(m.renderEmbed(width), "\n")...)
	}

	avail := height - len(lines)
	minW, minH := m.widget.MinSize()
	if avail < minH+2 || width < minW+2 {
		lines = append(lines, th.Muted().Render(fmt.Sprintf(
			"Terminal too small for %s: need %dx%d", m.widget.Title(), minW+2, minH+2+len(lines))))
		return strings.Join(lines, "\n")
	}
	box := components.RenderBox(m.widget.View(width-2, avail-2), width, avail, components.BoxStyle{
		Border: components.BorderRounded,
		Title:  m.widget.Title(),
		FG:     th.BorderFocus,
	})
	lines = append(lines, box)
	return strings.Join(lines, "\n")
}

// renderEmbed draws the snippet panel with its copy control and the
// recommended height note.
func (m Model) renderEmbed(width int) string {
	th := theme.Current
	snippet := gallery.Snippet(m.opts.Origin, m.entry)
	content := th.Text().Render(components.WrapText(snippet, max(width-4, 1))) + "\n\n" +
		th.Muted().Render(fmt.Sprintf("Recommended minimum height: %dpx for optimal experience", m.entry.EmbedHeight))
	h := strings.Count(content, "\n") + 3
	box := components.RenderBox(content, width, h, components.BoxStyle{
		Border:  components.BorderDashed,
		Title:   "Embed Code",
		Footer:  "y copy",
		FG:      th.Accent,
		Padding: components.NewPaddingHV(1, 0),
	})
	rows := strings.Split(box, "\n")
	// The footer row doubles as the copy button.
	rows[len(rows)-1] = m.zones.Mark(copyZone, rows[len(rows)-1])
	return strings.Join(rows, "\n")
}

// renderHelp draws the key binding overlay for the current page.
func (m Model) renderHelp(width, height int) string {
	th := theme.Current
	hk := helpKeys{shell: []key.Binding{keys.Help, keys.Back, keys.Theme, keys.Quit}}
	switch m.screen {
	case ScreenIndex:
		hk.shell = append([]key.Binding{keys.Next, keys.Prev, keys.Right, keys.Left, keys.Open, keys.Search}, hk.shell...)
	case ScreenWidget:
		hk.shell = append([]key.Binding{keys.Next, keys.Prev, keys.Embed, keys.Copy}, hk.shell...)
	}
	if km, ok := m.widget.(app.KeyMapper); ok {
		hk.widget = km.Keys()
	}
	h := m.help
	h.Styles.FullKey = theme.Fg(th.HelpKey)
	h.Styles.FullDesc = theme.Fg(th.HelpDesc)
	h.Styles.FullSeparator = th.Muted()
	content := th.Heading().Render("Keys") + "\n\n" + h.View(hk)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(th.BorderFocus)).
			Padding(1, 2).Render(content))
}

// renderToasts returns one line per active toast, newest last.
func (m Model) renderToasts(width int) []string {
	th := theme.Current
	var out []string
	for _, t := range m.toasts.Active() {
		color := th.Info
		icon := "ℹ"
		switch t.Kind {
		case app.ToastSuccess:
			color, icon = th.Success, "✓"
		case app.ToastError:
			color, icon = th.Failure, "✗"
		}
		line := theme.Fg(color).Bold(true).Render(icon+" "+t.Title) + th.Text().Render("  "+t.Body)
		out = append(out, components.PadRight(components.Truncate(line, width), width))
	}
	return out
}

// renderStatusBar renders a one-line status bar with key hints for the
// current page, padded or truncated to exactly width cells.
func (m Model) renderStatusBar(width int) string {
	if width <= 0 {
		return ""
	}
	var hints string
	switch m.screen {
	case ScreenIndex:
		hints = "Tab:focus  Enter:open  /:search  t:theme  ?:help  q:quit"
		if m.searchQuery != "" {
			hints = fmt.Sprintf("filter %q  Esc:clear  ", m.searchQuery) + hints
		}
	case ScreenWidget:
		hints = "Esc:back  Tab:next widget  e:embed  y:copy  ?:help  q:quit"
	default:
		hints = "Enter:home  Esc:back  q:quit"
	}
	return theme.Current.Muted().Render(components.PadRight(components.Truncate(m.path+"  "+hints, width), width))
}

// spread places left and right on one line of the given width.
func spread(left, right string, width int) string {
	gap := width - components.VisibleLen(left) - components.VisibleLen(right)
	if gap < 1 {
		return components.Truncate(left, width)
	}
	return left + strings.Repeat(" ", gap) + right
}
