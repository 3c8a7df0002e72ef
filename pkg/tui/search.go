package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/chalkboard/pkg/components"
	"gitlab.com/tinyland/lab/chalkboard/pkg/gallery"
	"gitlab.com/tinyland/lab/chalkboard/pkg/theme"
)

// handleSearchKey edits the query. Enter keeps the filter, Esc drops it.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchMode = false
		m.searchQuery = ""
	case tea.KeyEnter:
		m.searchMode = false
	case tea.KeyBackspace:
		if r := []rune(m.searchQuery); len(r) > 0 {
			m.searchQuery = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.searchQuery += " "
	case tea.KeyRunes:
		m.searchQuery += string(msg.Runes)
	default:
		return nil
	}
	m.refreshFocus()
	return nil
}

// renderSearchBar renders the query line that replaces the status bar
// while searching.
func renderSearchBar(query string, width int) string {
	if width <= 0 {
		return ""
	}
	th := theme.Current
	display := theme.Fg(th.SearchHighlight).Render("/") + query + th.Muted().Render("_")
	return components.PadRight(components.Truncate(display, width), width)
}

// filterEntries returns the entries whose ID, title, description or tags
// contain the query, case-insensitively. An empty query matches all.
func filterEntries(entries []gallery.Entry, query string) []gallery.Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	var out []gallery.Entry
	for _, e := range entries {
		fields := append([]string{e.ID, e.Title, e.Description}, e.Tags...)
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
