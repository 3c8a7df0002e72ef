// Package widgets provides the six chalkboard teaching widgets. Each one
// wraps a state machine from its domain package, implements app.Widget
// and renders a pure view of that state.
package widgets

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/chalkboard/pkg/app"
	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
	"gitlab.com/tinyland/lab/chalkboard/pkg/config"
)

// ErrUnknownWidget is returned by New for IDs without an implementation.
var ErrUnknownWidget = errors.New("widgets: unknown widget")

// Env carries the shared dependencies of every widget.
type Env struct {
	Catalog *catalog.Catalog
	Timing  config.Timing
	Rand    *rand.Rand
	// Hits resolves mouse input. Nil disables mouse interaction.
	Hits app.HitTester
	Log  *slog.Logger
	// Now overrides the clock for deterministic tests.
	Now func() time.Time
}

func (e Env) withDefaults() Env {
	if e.Catalog == nil {
		e.Catalog = catalog.Default()
	}
	if e.Timing.FPS == 0 {
		e.Timing = config.MotionPreset(config.MotionFull)
	}
	if e.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		e.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if e.Hits == nil {
		e.Hits = noHits{}
	}
	if e.Log == nil {
		e.Log = slog.Default()
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	return e
}

// New builds the widget registered under a gallery entry ID.
func New(id string, env Env) (app.Widget, error) {
	env = env.withDefaults()
	switch id {
	case ObjectivesID:
		return NewObjectives(env), nil
	case SipSliderID:
		return NewSipSlider(env), nil
	case ColorTheoryID:
		return NewColorTheory(env), nil
	case FlavorQuizID:
		return NewFlavorQuiz(env)
	case GelatoID:
		return NewGelato(env), nil
	case PaletteLabID:
		return NewPaletteLab(env)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, id)
}

// noHits is the HitTester used when mouse support is disabled.
type noHits struct{}

func (noHits) Mark(_, s string) string                   { return s }
func (noHits) Hit(string, tea.MouseMsg) bool              { return false }
func (noHits) Pos(string, tea.MouseMsg) (int, int, bool) { return 0, 0, false }

func isPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

func isRelease(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionRelease
}

func isMotion(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionMotion
}
