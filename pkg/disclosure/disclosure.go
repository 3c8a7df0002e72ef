// Package disclosure models the unfolding learning-objectives panel: a
// single open/closed flag plus the staggered reveal of its items.
package disclosure

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// Default timings.
const (
	DefaultStep   = 150 * time.Millisecond
	DefaultReveal = 300 * time.Millisecond
)

// Panel is the open/closed state and reveal timing of a disclosure panel
// with a fixed number of items.
type Panel struct {
	open   bool
	items  int
	step   time.Duration
	reveal time.Duration
}

// New returns a closed panel over n items. A zero step reveals every
// item at once; a zero reveal selects DefaultReveal.
func New(n int, step, reveal time.Duration) *Panel {
	if step < 0 {
		step = 0
	}
	if reveal <= 0 {
		reveal = DefaultReveal
	}
	return &Panel{items: n, step: step, reveal: reveal}
}

// IsOpen reports whether the panel is expanded.
func (p *Panel) IsOpen() bool { return p.open }

// Items returns the number of items in the panel.
func (p *Panel) Items() int { return p.items }

// Toggle flips the panel and returns the new state.
func (p *Panel) Toggle() bool {
	p.open = !p.open
	return p.open
}

// Open expands the panel.
func (p *Panel) Open() { p.open = true }

// Close collapses the panel.
func (p *Panel) Close() { p.open = false }

// Delay is when item i starts to appear, measured from opening.
func (p *Panel) Delay(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return time.Duration(i) * p.step
}

// Duration is how long the last item takes to finish appearing.
func (p *Panel) Duration() time.Duration {
	if p.items == 0 {
		return 0
	}
	return p.Delay(p.items-1) + p.reveal
}

// Reveal is item i's visibility in [0,1], elapsed after opening. It is
// always 0 while the panel is closed.
func (p *Panel) Reveal(i int, elapsed time.Duration) float64 {
	if !p.open {
		return 0
	}
	t := elapsed - p.Delay(i)
	switch {
	case t <= 0:
		return 0
	case t >= p.reveal:
		return 1
	}
	return float64(t) / float64(p.reveal)
}

// Height animates the panel's row count toward a target with a damped
// spring.
type Height struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewHeight returns a spring stepped at fps frames per second.
func NewHeight(fps int) *Height {
	return &Height{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
}

// Step advances the spring one frame toward target and returns the
// rounded row count.
func (h *Height) Step(target int) int {
	h.pos, h.vel = h.spring.Update(h.pos, h.vel, float64(target))
	return h.Rows()
}

// Snap jumps straight to target, e.g. when motion is off.
func (h *Height) Snap(target int) {
	h.pos, h.vel = float64(target), 0
}

// Rows returns the current height rounded to whole rows, never negative.
func (h *Height) Rows() int {
	r := int(h.pos + 0.5)
	if r < 0 {
		return 0
	}
	return r
}

// Settled reports whether the spring has come to rest at target.
func (h *Height) Settled(target int) bool {
	d := h.pos - float64(target)
	return d < 0.5 && d > -0.5 && h.vel < 0.05 && h.vel > -0.05
}
