// Package tui is the chalkboard shell: the widget index, the per-widget
// page with its embed panel, the not-found page, toasts and the help
// overlay.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/chalkboard/pkg/app"
	"gitlab.com/tinyland/lab/chalkboard/pkg/gallery"
	"gitlab.com/tinyland/lab/chalkboard/pkg/theme"
	"gitlab.com/tinyland/lab/chalkboard/pkg/widgets"
)

// tickInterval is how often toasts are expired.
const tickInterval = time.Second

// defaultToastTTL applies when Options.ToastTTL is zero.
const defaultToastTTL = 4 * time.Second

// Screen is the page the shell is showing.
type Screen int

const (
	ScreenIndex Screen = iota
	ScreenWidget
	ScreenNotFound
)

func (s Screen) String() string {
	switch s {
	case ScreenIndex:
		return "index"
	case ScreenWidget:
		return "widget"
	}
	return "not-found"
}

// Copier places the embed snippet on the clipboard.
type Copier interface {
	Copy(text string) (gallery.Method, error)
}

// Options configures the shell.
type Options struct {
	// Env is the template for every widget the shell builds. Its Hits
	// field is replaced with the shell's zones.
	Env widgets.Env
	// Origin is the embed snippet origin.
	Origin string
	// ToastTTL is how long a toast stays up.
	ToastTTL time.Duration
	// Copier handles the copy key. Nil disables copying.
	Copier Copier
	// Start is the initial route, "/" when empty.
	Start string
	// Zones resolves mouse input. Nil disables the mouse.
	Zones *app.Zones
	// ColorDepth is passed to theme.Adapt on theme changes.
	ColorDepth int
	// Now overrides the clock for toasts.
	Now func() time.Time
}

// Model is the bubbletea model of the shell.
type Model struct {
	opts  Options
	log   *slog.Logger
	zones *app.Zones
	// hits is the zone namespace handed to widgets.
	hits *app.Zones

	width, height int
	ready         bool

	path   string
	screen Screen
	entry  gallery.Entry
	widget app.Widget

	focus       *app.FocusRing
	searchMode  bool
	searchQuery string

	showHelp  bool
	showEmbed bool
	help      help.Model
	toasts    *app.Toasts
}

// New creates the shell at opts.Start.
func New(opts Options) Model {
	if opts.ToastTTL <= 0 {
		opts.ToastTTL = defaultToastTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ColorDepth == 0 {
		opts.ColorDepth = 24
	}
	log := opts.Env.Log
	if log == nil {
		log = slog.Default()
	}
	h := help.New()
	h.ShowAll = true

	m := Model{
		opts:   opts,
		log:    log,
		zones:  opts.Zones,
		hits:   opts.Zones.Child(),
		focus:  app.NewFocusRing(),
		help:   h,
		toasts: app.NewToasts(opts.ToastTTL),
	}
	m.refreshFocus()
	start := opts.Start
	if start == "" {
		start = gallery.IndexPath
	}
	m.navigate(start)
	return m
}

// Init starts the toast ticker.
func (m Model) Init() tea.Cmd {
	return app.TickCmd(tickInterval)
}

// Width returns the terminal width.
func (m Model) Width() int { return m.width }

// Height returns the terminal height.
func (m Model) Height() int { return m.height }

// Ready reports whether the first window size has arrived.
func (m Model) Ready() bool { return m.ready }

// Path returns the current route.
func (m Model) Path() string { return m.path }

// Screen returns the page being shown.
func (m Model) Screen() Screen { return m.screen }

// Widget returns the widget on the page, nil on the index.
func (m Model) Widget() app.Widget { return m.widget }

// Focused returns the ID of the focused index card.
func (m Model) Focused() string { return m.focus.Current() }

func (m Model) ShowHelp() bool      { return m.showHelp }
func (m Model) ShowEmbed() bool     { return m.showEmbed }
func (m Model) SearchMode() bool    { return m.searchMode }
func (m Model) SearchQuery() string { return m.searchQuery }

// Toasts returns the toasts currently on screen.
func (m Model) Toasts() []app.Toast { return m.toasts.Active() }

// VisibleEntries returns the index cards passing the search filter.
func (m Model) VisibleEntries() []gallery.Entry {
	return filterEntries(gallery.Entries(), m.searchQuery)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.help.Width = msg.Width
		return m, nil

	case app.TickEvent:
		m.toasts.Expire(msg.Time)
		var cmd tea.Cmd
		if m.widget != nil {
			cmd = m.widget.Update(msg)
		}
		return m, tea.Batch(cmd, app.TickCmd(tickInterval))

	case app.ToastEvent:
		m.toasts.Push(msg, m.opts.Now())
		return m, nil

	case app.NavigateEvent:
		m.navigate(msg.Path)
		return m, nil

	case app.CopyResultEvent:
		m.copyResult(msg)
		return m, nil

	case app.ThemeChangeEvent:
		m.setTheme(msg.Theme)
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd
	}

	if m.widget != nil {
		return m, m.widget.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if m.searchMode {
		return m.handleSearchKey(msg)
	}
	if m.showHelp {
		switch {
		case key.Matches(msg, keys.Help, keys.Back):
			m.showHelp = false
		case key.Matches(msg, keys.Quit):
			return tea.Quit
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = true
		return nil
	case key.Matches(msg, keys.Theme):
		return m.nextThemeCmd()
	}

	switch m.screen {
	case ScreenIndex:
		return m.handleIndexKey(msg)
	case ScreenWidget:
		return m.handleWidgetKey(msg)
	}
	if key.Matches(msg, keys.Back) {
		return app.NavigateCmd(gallery.IndexPath)
	}
	return m.widget.HandleKey(msg)
}

func (m *Model) handleIndexKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Next, keys.Right):
		m.focus.Forward()
	case key.Matches(msg, keys.Prev, keys.Left):
		m.focus.Backward()
	case key.Matches(msg, keys.Open):
		if id := m.focus.Current(); id != "" {
			return m.openCmd(id)
		}
	case key.Matches(msg, keys.Search):
		m.searchMode = true
	case key.Matches(msg, keys.Back):
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.refreshFocus()
		}
	}
	return nil
}

func (m *Model) handleWidgetKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		return app.NavigateCmd(gallery.IndexPath)
	case key.Matches(msg, keys.Embed):
		m.showEmbed = !m.showEmbed
		return nil
	case key.Matches(msg, keys.Copy):
		return m.copyCmd()
	case key.Matches(msg, keys.Next):
		return m.openCmd(m.neighbor(1))
	case key.Matches(msg, keys.Prev):
		return m.openCmd(m.neighbor(-1))
	}
	return m.widget.HandleKey(msg)
}

// neighbor returns the gallery entry delta steps from the current one.
func (m *Model) neighbor(delta int) string {
	all := gallery.Entries()
	for i, e := range all {
		if e.ID == m.entry.ID {
			return all[((i+delta)%len(all)+len(all))%len(all)].ID
		}
	}
	return all[0].ID
}

func (m *Model) openCmd(id string) tea.Cmd {
	e, ok := gallery.Lookup(id)
	if !ok {
		return nil
	}
	return app.NavigateCmd(e.Path())
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.showHelp {
		return nil
	}
	release := msg.Action == tea.MouseActionRelease
	switch m.screen {
	case ScreenIndex:
		for _, e := range m.VisibleEntries() {
			if !m.zones.Hit(cardZone(e.ID), msg) {
				continue
			}
			m.focus.Focus(e.ID)
			if release {
				return app.NavigateCmd(e.Path())
			}
			return nil
		}
		return nil
	case ScreenWidget:
		if release {
			switch {
			case m.zones.Hit(backZone, msg):
				return app.NavigateCmd(gallery.IndexPath)
			case m.zones.Hit(embedZone, msg):
				m.showEmbed = !m.showEmbed
				return nil
			case m.showEmbed && m.zones.Hit(copyZone, msg):
				return m.copyCmd()
			}
		}
	}
	return m.widget.HandleMouse(msg)
}

// navigate tears down the current widget and builds the page for path.
// Every visit gets a fresh widget.
func (m *Model) navigate(path string) {
	if l, ok := m.widget.(app.Leaver); ok {
		l.Leave()
	}
	m.widget = nil
	m.showEmbed = false
	m.showHelp = false
	m.path = path

	route, entry := gallery.Resolve(path)
	m.log.Debug("navigate", "path", path, "route", route)
	switch route {
	case gallery.Index:
		m.screen = ScreenIndex
		m.entry = gallery.Entry{}
		if m.focus.Current() == "" {
			m.refreshFocus()
		}
		return
	case gallery.Widget:
		env := m.opts.Env
		env.Hits = m.hits
		w, err := widgets.New(entry.ID, env)
		if err == nil {
			m.screen, m.entry, m.widget = ScreenWidget, entry, w
			m.focus.Focus(entry.ID)
			return
		}
		m.log.Error("build widget", "id", entry.ID, "err", err)
		m.toasts.Push(app.ToastEvent{Kind: app.ToastError, Title: "Widget unavailable", Body: err.Error()}, m.opts.Now())
	}
	m.screen = ScreenNotFound
	m.entry = gallery.Entry{}
	m.widget = app.NewNotFound(path, m.hits)
}

func (m *Model) copyCmd() tea.Cmd {
	if m.opts.Copier == nil {
		return app.ToastCmd(app.ToastError, "Copy unavailable", "No clipboard is configured.")
	}
	text := gallery.Snippet(m.opts.Origin, m.entry)
	c := m.opts.Copier
	return func() tea.Msg {
		via, err := c.Copy(text)
		return app.CopyResultEvent{Via: string(via), Err: err}
	}
}

func (m *Model) copyResult(ev app.CopyResultEvent) {
	now := m.opts.Now()
	if ev.Err != nil {
		m.log.Warn("copy embed code", "err", ev.Err)
		m.toasts.Push(app.ToastEvent{Kind: app.ToastError, Title: "Copy failed", Body: ev.Err.Error()}, now)
		return
	}
	body := "Embed code copied to clipboard"
	if ev.Via == string(gallery.ViaOSC52) {
		body = "Embed code sent to the terminal clipboard"
	}
	m.toasts.Push(app.ToastEvent{Kind: app.ToastSuccess, Title: "Copied!", Body: body}, now)
}

func (m *Model) nextThemeCmd() tea.Cmd {
	names := theme.Names()
	next := names[0]
	for i, n := range names {
		if n == theme.Current.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	return func() tea.Msg { return app.ThemeChangeEvent{Theme: next} }
}

func (m *Model) setTheme(name string) {
	t, ok := theme.Lookup(name)
	if !ok {
		m.toasts.Push(app.ToastEvent{Kind: app.ToastError, Title: "Unknown theme", Body: name}, m.opts.Now())
		return
	}
	theme.Current = theme.Adapt(t, m.opts.ColorDepth)
	m.toasts.Push(app.ToastEvent{Kind: app.ToastInfo, Title: "Theme", Body: fmt.Sprintf("Switched to %s", t.Name)}, m.opts.Now())
}

// refreshFocus points the focus ring at the entries passing the search.
func (m *Model) refreshFocus() {
	vis := m.VisibleEntries()
	ids := make([]string, len(vis))
	for i, e := range vis {
		ids[i] = e.ID
	}
	m.focus.SetIDs(ids)
}
