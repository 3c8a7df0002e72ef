package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/chalkboard/pkg/app"
	"gitlab.com/tinyland/lab/chalkboard/pkg/components"
	"gitlab.com/tinyland/lab/chalkboard/pkg/gradient"
	"gitlab.com/tinyland/lab/chalkboard/pkg/theme"
)

// SipSliderID is the gallery ID of the sip slider.
const SipSliderID = "sip-slider"

const (
	sipInstruction = "Drag the spoon to stir and feel the café's mood change"
	sipTrackZone   = "track"
	sipMaxTrack    = 64
)

var sipKeys = struct {
	Warmer, Cooler, Warmest, Coolest key.Binding
}{
	Warmer:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "stir warmer")),
	Cooler:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "stir cooler")),
	Warmest: key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("home", "all warm")),
	Coolest: key.NewBinding(key.WithKeys("end", "$"), key.WithHelp("end", "all cool")),
}

// SipSlider is the coffee-stirring widget: the spoon's horizontal
// position drives a warm-to-cool gradient, a mood label and a temperature
// label.
type SipSlider struct {
	env    Env
	slider *gradient.Slider

	// spoon is the drawn spoon position. It eases toward the slider
	// position after keyboard nudges and tracks it exactly while dragging.
	spoon    float64
	spoonVel float64
	spring   harmonica.Spring
	easing   bool
}

// NewSipSlider creates the slider with the spoon at the warm end.
func NewSipSlider(env Env) *SipSlider {
	env = env.withDefaults()
	return &SipSlider{
		env:    env,
		slider: gradient.NewSlider(0),
		spring: harmonica.NewSpring(harmonica.FPS(env.Timing.FPS), 9.0, 0.9),
	}
}

// ID returns the unique identifier for this widget.
func (w *SipSlider) ID() string { return SipSliderID }

// Title returns the human-readable display name.
func (w *SipSlider) Title() string { return "Sip-Slider" }

// MinSize returns the minimum width and height this widget requires.
func (w *SipSlider) MinSize() (int, int) { return 40, 12 }

// Position is the current spoon position in [0,1].
func (w *SipSlider) Position() float64 { return w.slider.Position() }

// Dragging reports whether a pointer drag is in progress.
func (w *SipSlider) Dragging() bool { return w.slider.Dragging() }

// Keys implements app.KeyMapper.
func (w *SipSlider) Keys() []key.Binding {
	return []key.Binding{sipKeys.Warmer, sipKeys.Cooler, sipKeys.Warmest, sipKeys.Coolest}
}

// Update advances the spoon easing animation.
func (w *SipSlider) Update(msg tea.Msg) tea.Cmd {
	if ev, ok := msg.(app.FrameEvent); ok && ev.WidgetID == SipSliderID && w.easing {
		w.spoon, w.spoonVel = w.spring.Update(w.spoon, w.spoonVel, w.slider.Position())
		if math.Abs(w.spoon-w.slider.Position()) < 0.002 && math.Abs(w.spoonVel) < 0.01 {
			w.snap()
			return nil
		}
		return app.FrameCmd(SipSliderID, w.env.Timing.FPS)
	}
	return nil
}

// HandleKey nudges or jumps the spoon.
func (w *SipSlider) HandleKey(msg tea.KeyMsg) tea.Cmd {
	before := w.slider.Position()
	switch {
	case key.Matches(msg, sipKeys.Warmer):
		w.slider.Nudge(-gradient.DefaultStep)
	case key.Matches(msg, sipKeys.Cooler):
		w.slider.Nudge(gradient.DefaultStep)
	case key.Matches(msg, sipKeys.Warmest):
		w.slider.Set(0)
	case key.Matches(msg, sipKeys.Coolest):
		w.slider.Set(1)
	default:
		return nil
	}
	if w.slider.Position() == before {
		return nil
	}
	return w.ease()
}

// HandleMouse implements press-drag-release on the cup track. Once a drag
// has begun, motion anywhere on screen keeps updating the position.
func (w *SipSlider) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case isPress(msg):
		if !w.env.Hits.Hit(sipTrackZone, msg) {
			return nil
		}
		w.slider.BeginDrag()
		w.dragTo(msg)
	case isMotion(msg):
		if !w.slider.Dragging() {
			return nil
		}
		w.dragTo(msg)
	case isRelease(msg):
		if !w.slider.Dragging() {
			return nil
		}
		w.dragTo(msg)
		w.slider.EndDrag()
		w.env.Log.Debug("sip-slider: drag ended", "position", w.slider.Position(), "mood", gradient.Mood(w.slider.Position()))
	}
	return nil
}

// Leave cancels a drag in progress.
func (w *SipSlider) Leave() {
	w.slider.Cancel()
	w.snap()
}

func (w *SipSlider) dragTo(msg tea.MouseMsg) {
	x, width, ok := w.env.Hits.Pos(sipTrackZone, msg)
	if !ok {
		return
	}
	// Cell columns run 0..width-1, so the last cell maps to fully cool.
	if w.slider.DragTo(x, 0, width-1) {
		w.snap()
	}
}

func (w *SipSlider) ease() tea.Cmd {
	if !w.env.Timing.Animate {
		w.snap()
		return nil
	}
	if w.easing {
		return nil
	}
	w.easing = true
	return app.FrameCmd(SipSliderID, w.env.Timing.FPS)
}

func (w *SipSlider) snap() {
	w.spoon, w.spoonVel, w.easing = w.slider.Position(), 0, false
}

// View renders the mood banner, the gradient field, the temperature
// labels, the cup with its spoon and the warm/cool gauges.
func (w *SipSlider) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	th := theme.Current
	p := w.slider.Position()
	center := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }

	header := []string{
		center(th.Heading().Render(gradient.Mood(p))),
		center(th.Text().Render(gradient.Temperature(p))),
		center(th.Muted().Render(components.Truncate(sipInstruction, width))),
	}

	trackW := max(min(width-4, sipMaxTrack), 2)
	footer := []string{
		w.labels(width, th),
		center(w.env.Hits.Mark(sipTrackZone, w.track(trackW, th))),
		center(th.Muted().Render("╰" + strings.Repeat("─", max(trackW-2, 0)) + "╯")),
		center(w.gauges(trackW, th)),
	}

	fieldRows := max(height-len(header)-len(footer)-2, 1)
	field := components.GradientBar(gradient.Sample(p, width))
	lines := append([]string{}, header...)
	lines = append(lines, "")
	for range fieldRows {
		lines = append(lines, field)
	}
	lines = append(lines, "")
	lines = append(lines, footer...)
	return components.Block(strings.Join(lines, "\n"), width, height)
}

func (w *SipSlider) labels(width int, th theme.Theme) string {
	warm := theme.Fg(th.Warm).Render("Warm Colors") + th.Muted().Render(" Energetic • Cozy")
	cool := theme.Fg(th.Cool).Render("Cool Colors") + th.Muted().Render(" Calm • Refreshing")
	gap := width - components.VisibleLen(warm) - components.VisibleLen(cool)
	if gap < 1 {
		return components.Truncate(warm, width)
	}
	return warm + strings.Repeat(" ", gap) + cool
}

// track draws the stirring track with the spoon at its eased position.
// The spoon leans with the stir: left while warm, right while cool.
func (w *SipSlider) track(trackW int, th theme.Theme) string {
	col := int(math.Round(gradient.Clamp(w.spoon) * float64(trackW-1)))
	glyph := "│"
	switch angle := gradient.SpoonAngle(w.spoon); {
	case angle < -5:
		glyph = "╲"
	case angle > 5:
		glyph = "╱"
	}
	style := theme.Fg(th.Accent)
	if w.slider.Dragging() {
		style = style.Bold(true)
	}
	return th.Muted().Render(strings.Repeat("┄", col)) +
		style.Render(glyph) +
		th.Muted().Render(strings.Repeat("┄", trackW-col-1))
}

func (w *SipSlider) gauges(trackW int, th theme.Theme) string {
	g := components.NewGauge(components.GaugeStyle{ShowPercent: true, EmptyColor: th.Border})
	p := w.slider.Position()
	return g.RenderMulti([]components.GaugeData{
		{Label: "Warm", Ratio: 1 - p, Color: th.Warm},
		{Label: "Cool", Ratio: p, Color: th.Cool},
	}, max(trackW-10, 4))
}

