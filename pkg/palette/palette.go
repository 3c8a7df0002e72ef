// Package palette implements the matching engine behind the palette
// pairing lab: three slots (base, accent, neutral) that the learner fills
// with syrup bottles and checks against a target mood.
package palette

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
)

// SettleDelay is how long the lab shakes after a wrong blend before the
// slots are emptied.
const SettleDelay = 600 * time.Millisecond

var (
	// ErrIncomplete is returned by Check while any slot is empty.
	ErrIncomplete = errors.New("palette: fill all three slots before checking")
	// ErrLocked is returned by edits and checks once the lab is solved.
	ErrLocked = errors.New("palette: solved, start a new challenge")
	// ErrSettling is returned by edits while the lab is shaking.
	ErrSettling = errors.New("palette: settling after a wrong blend")
	// ErrNoMoods is returned by New for an empty mood list.
	ErrNoMoods = errors.New("palette: no target moods")
)

// Slot identifies one of the three cup layers.
type Slot int

const (
	Base Slot = iota
	Accent
	Neutral
)

// Slots lists every slot in cup order, bottom layer first.
var Slots = [...]Slot{Base, Accent, Neutral}

func (s Slot) String() string {
	switch s {
	case Base:
		return "base"
	case Accent:
		return "accent"
	case Neutral:
		return "neutral"
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// ParseSlot converts a slot name into a Slot.
func ParseSlot(s string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base":
		return Base, nil
	case "accent":
		return Accent, nil
	case "neutral":
		return Neutral, nil
	}
	return 0, fmt.Errorf("palette: unknown slot %q", s)
}

func (s Slot) valid() bool { return s >= Base && s <= Neutral }

// Outcome is the result of a completed check.
type Outcome int

const (
	Mismatch Outcome = iota
	Solved
)

func (o Outcome) String() string {
	if o == Solved {
		return "solved"
	}
	return "mismatch"
}

// Lab is the state of one palette pairing challenge.
type Lab struct {
	moods   []catalog.Mood
	rng     *rand.Rand
	target  catalog.Mood
	slots   [len(Slots)]*catalog.Bottle
	solved  bool
	shaking bool
}

// New creates a lab targeting the first mood. rng drives NewChallenge.
func New(moods []catalog.Mood, rng *rand.Rand) (*Lab, error) {
	if len(moods) == 0 {
		return nil, ErrNoMoods
	}
	ms := make([]catalog.Mood, len(moods))
	copy(ms, moods)
	return &Lab{moods: ms, rng: rng, target: ms[0]}, nil
}

// Target returns the mood the learner is trying to build.
func (l *Lab) Target() catalog.Mood { return l.target }

// Required returns the hex value the target expects in slot s.
func (l *Lab) Required(s Slot) string {
	switch s {
	case Base:
		return l.target.Base
	case Accent:
		return l.target.Accent
	case Neutral:
		return l.target.Neutral
	}
	return ""
}

// Bottle returns the bottle in slot s, or nil when the slot is empty.
func (l *Lab) Bottle(s Slot) *catalog.Bottle {
	if !s.valid() {
		return nil
	}
	return l.slots[s]
}

// Filled reports how many slots hold a bottle.
func (l *Lab) Filled() int {
	n := 0
	for _, b := range l.slots {
		if b != nil {
			n++
		}
	}
	return n
}

// Solved reports whether the target has been matched.
func (l *Lab) Solved() bool { return l.solved }

// Shaking reports whether the lab is waiting for Settle after a mismatch.
func (l *Lab) Shaking() bool { return l.shaking }

// Drop places b into slot s, replacing whatever was there.
func (l *Lab) Drop(s Slot, b catalog.Bottle) error {
	if err := l.editable(s); err != nil {
		return err
	}
	l.slots[s] = &b
	return nil
}

// Remove empties slot s. Removing from an empty slot is a no-op.
func (l *Lab) Remove(s Slot) error {
	if err := l.editable(s); err != nil {
		return err
	}
	l.slots[s] = nil
	return nil
}

func (l *Lab) editable(s Slot) error {
	if !s.valid() {
		return fmt.Errorf("palette: unknown slot %d", int(s))
	}
	if l.solved {
		return ErrLocked
	}
	if l.shaking {
		return ErrSettling
	}
	return nil
}

// Check compares the filled slots with the target. An incomplete cup
// returns ErrIncomplete and changes nothing. A match locks the lab; a
// mismatch starts the shake, and the caller must call Settle after
// SettleDelay.
func (l *Lab) Check() (Outcome, error) {
	if l.solved {
		return Solved, ErrLocked
	}
	if l.shaking {
		return Mismatch, ErrSettling
	}
	for _, b := range l.slots {
		if b == nil {
			return Mismatch, ErrIncomplete
		}
	}
	for _, s := range Slots {
		if l.slots[s].Hex != l.Required(s) {
			l.shaking = true
			return Mismatch, nil
		}
	}
	l.solved = true
	return Solved, nil
}

// Settle ends the shake that follows a mismatch and empties every slot.
// It reports whether there was a shake to end, so a stale timer firing
// after NewChallenge is harmless.
func (l *Lab) Settle() bool {
	if !l.shaking {
		return false
	}
	l.shaking = false
	l.clear()
	return true
}

// NewChallenge empties the cup and draws a new target mood uniformly at
// random. The same mood may be drawn twice in a row.
func (l *Lab) NewChallenge() {
	l.clear()
	l.solved = false
	l.shaking = false
	l.target = l.moods[l.rng.IntN(len(l.moods))]
}

func (l *Lab) clear() {
	for i := range l.slots {
		l.slots[i] = nil
	}
}
