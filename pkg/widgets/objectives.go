package widgets

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/chalkboard/pkg/app"
	"gitlab.com/tinyland/lab/chalkboard/pkg/components"
	"gitlab.com/tinyland/lab/chalkboard/pkg/disclosure"
	"gitlab.com/tinyland/lab/chalkboard/pkg/theme"
)

// ObjectivesID is the gallery ID of the learning objectives panel.
const ObjectivesID = "learning-objectives"

const objectivesHeaderZone = "header"

var objectivesKeys = struct {
	Toggle key.Binding
}{
	Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand / collapse")),
}

// Objectives is the unfolding learning objectives menu. Opening it grows
// the panel with a spring and reveals the items one after another.
type Objectives struct {
	env    Env
	panel  *disclosure.Panel
	height *disclosure.Height

	openedAt  time.Time
	animating bool
}

// NewObjectives creates the panel closed.
func NewObjectives(env Env) *Objectives {
	env = env.withDefaults()
	return &Objectives{
		env:    env,
		panel:  disclosure.New(len(env.Catalog.Objectives), env.Timing.Stagger, env.Timing.Reveal),
		height: disclosure.NewHeight(env.Timing.FPS),
	}
}

// ID returns the unique identifier for this widget.
func (w *Objectives) ID() string { return ObjectivesID }

// Title returns the human-readable display name.
func (w *Objectives) Title() string { return "Learning Objectives" }

// MinSize returns the minimum width and height this widget requires.
func (w *Objectives) MinSize() (int, int) { return 40, 10 }

// Open reports whether the panel is expanded.
func (w *Objectives) Open() bool { return w.panel.IsOpen() }

// Keys implements app.KeyMapper.
func (w *Objectives) Keys() []key.Binding { return []key.Binding{objectivesKeys.Toggle} }

// Update steps the height spring and the reveal clock.
func (w *Objectives) Update(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(app.FrameEvent)
	if !ok || ev.WidgetID != ObjectivesID || !w.animating {
		return nil
	}
	target := w.targetRows()
	w.height.Step(target)
	revealing := w.panel.IsOpen() && w.env.Now().Sub(w.openedAt) < w.panel.Duration()
	if w.height.Settled(target) && !revealing {
		w.height.Snap(target)
		w.animating = false
		return nil
	}
	return app.FrameCmd(ObjectivesID, w.env.Timing.FPS)
}

// HandleKey toggles the panel.
func (w *Objectives) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, objectivesKeys.Toggle) {
		return w.toggle()
	}
	return nil
}

// HandleMouse toggles the panel on a click of its header.
func (w *Objectives) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if isRelease(msg) && w.env.Hits.Hit(objectivesHeaderZone, msg) {
		return w.toggle()
	}
	return nil
}

func (w *Objectives) toggle() tea.Cmd {
	open := w.panel.Toggle()
	w.env.Log.Debug("learning-objectives: toggled", "open", open)
	if open {
		w.openedAt = w.env.Now()
	}
	if !w.env.Timing.Animate {
		w.height.Snap(w.targetRows())
		return nil
	}
	if w.animating {
		return nil
	}
	w.animating = true
	return app.FrameCmd(ObjectivesID, w.env.Timing.FPS)
}

// targetRows is the fully open body height: one row per item plus a
// blank separator between items.
func (w *Objectives) targetRows() int {
	if !w.panel.IsOpen() || w.panel.Items() == 0 {
		return 0
	}
	return 2*w.panel.Items() - 1
}

// reveal is item i's visibility. With motion off every item shows at once.
func (w *Objectives) reveal(i int) float64 {
	if !w.panel.IsOpen() {
		return 0
	}
	if !w.env.Timing.Animate {
		return 1
	}
	return w.panel.Reveal(i, w.env.Now().Sub(w.openedAt))
}

// View renders the header card and as much of the body as the height
// spring currently allows.
func (w *Objectives) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	th := theme.Current
	chevron := "▸"
	if w.panel.IsOpen() {
		chevron = "▾"
	}
	head := th.Heading().Render("Learning Objectives") + "\n" +
		th.Muted().Render("What you'll master in this color theory journey")
	header := components.RenderBox(head, width, 4, components.BoxStyle{
		Border:  components.BorderRounded,
		Footer:  chevron,
		FG:      th.BorderColor(w.panel.IsOpen()),
		Padding: components.NewPaddingHV(1, 0),
	})
	lines := strings.Split(w.env.Hits.Mark(objectivesHeaderZone, header), "\n")

	var body []string
	for i, o := range w.env.Catalog.Objectives {
		if i > 0 {
			body = append(body, "")
		}
		r := w.reveal(i)
		if r <= 0 {
			body = append(body, "")
			continue
		}
		num := theme.Fg(th.CategoryColor(o.Category)).Bold(true).Render(fmt.Sprintf("%d.", i+1))
		icon := theme.Fg(th.CategoryColor(o.Category)).Render(o.Icon)
		text := components.Truncate(o.Text, max(width-8, 1))
		style := th.Text()
		if r < 1 {
			style = th.Muted()
		}
		body = append(body, fmt.Sprintf("  %s %s %s", num, icon, style.Render(text)))
	}
	rows := min(w.height.Rows(), len(body))
	lines = append(lines, body[:rows]...)
	return components.Block(strings.Join(lines, "\n"), width, height)
}
