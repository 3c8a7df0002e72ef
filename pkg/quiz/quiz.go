// Package quiz implements the flavor-metaphors matching game: the learner
// is shown a flavor and picks the design principle it stands for.
//
// A round moves Playing -> Explaining on each answer and back to Playing
// on Advance, until the number of attempts reaches the number of items,
// at which point Advance moves it to Complete.
package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
)

// Phase is the round's position in its lifecycle.
type Phase int

const (
	Playing Phase = iota
	Explaining
	Complete
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Explaining:
		return "explaining"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

var (
	// ErrWrongPhase is returned for operations the current phase forbids.
	ErrWrongPhase = errors.New("quiz: not allowed in this phase")
	// ErrUnknownOption is returned when an answer names no offered option.
	ErrUnknownOption = errors.New("quiz: unknown option")
	// ErrTooFewItems is returned by New with fewer than two items.
	ErrTooFewItems = errors.New("quiz: need at least two items")
)

// Feedback describes the result of one answer.
type Feedback struct {
	Correct bool
	Prompt  catalog.Principle
	Chosen  catalog.Principle
}

// Round is one play-through of the quiz.
type Round struct {
	items    []catalog.Principle
	rng      *rand.Rand
	current  int
	options  []int
	score    int
	attempts int
	phase    Phase
	last     *Feedback
}

// New starts a round with a random first prompt and shuffled options.
func New(items []catalog.Principle, rng *rand.Rand) (*Round, error) {
	if len(items) < 2 {
		return nil, ErrTooFewItems
	}
	its := make([]catalog.Principle, len(items))
	copy(its, items)
	r := &Round{items: its, rng: rng}
	r.Restart()
	return r, nil
}

// Phase returns the current phase.
func (r *Round) Phase() Phase { return r.phase }

// Score returns the number of correct answers so far.
func (r *Round) Score() int { return r.score }

// Attempts returns the number of answers given so far.
func (r *Round) Attempts() int { return r.attempts }

// Total is the number of answers that complete the round.
func (r *Round) Total() int { return len(r.items) }

// Prompt returns the flavor currently being asked about.
func (r *Round) Prompt() catalog.Principle { return r.items[r.current] }

// Options returns the answer choices in display order.
func (r *Round) Options() []catalog.Principle {
	out := make([]catalog.Principle, len(r.options))
	for i, idx := range r.options {
		out[i] = r.items[idx]
	}
	return out
}

// Last returns the feedback for the most recent answer, or nil while a
// prompt is open.
func (r *Round) Last() *Feedback { return r.last }

// Answer grades the option with the given ID against the current prompt.
func (r *Round) Answer(optionID string) (Feedback, error) {
	if r.phase != Playing {
		return Feedback{}, fmt.Errorf("%w: answer while %s", ErrWrongPhase, r.phase)
	}
	chosen := -1
	for _, idx := range r.options {
		if r.items[idx].ID == optionID {
			chosen = idx
			break
		}
	}
	if chosen < 0 {
		return Feedback{}, fmt.Errorf("%w: %q", ErrUnknownOption, optionID)
	}

	fb := Feedback{
		Correct: chosen == r.current,
		Prompt:  r.items[r.current],
		Chosen:  r.items[chosen],
	}
	if fb.Correct {
		r.score++
	}
	r.attempts++
	r.phase = Explaining
	r.last = &fb
	return fb, nil
}

// Advance leaves the explanation. Once every attempt has been used the
// round completes; otherwise a different prompt is drawn. Prompts may
// repeat within a round.
func (r *Round) Advance() error {
	if r.phase != Explaining {
		return fmt.Errorf("%w: advance while %s", ErrWrongPhase, r.phase)
	}
	r.last = nil
	if r.attempts >= len(r.items) {
		r.phase = Complete
		return nil
	}
	next := r.rng.IntN(len(r.items) - 1)
	if next >= r.current {
		next++
	}
	r.current = next
	r.shuffle()
	r.phase = Playing
	return nil
}

// Restart zeroes the score and attempts and draws a fresh prompt.
func (r *Round) Restart() {
	r.score = 0
	r.attempts = 0
	r.last = nil
	r.current = r.rng.IntN(len(r.items))
	r.shuffle()
	r.phase = Playing
}

// Recap returns every item in catalog order, for the completion summary.
func (r *Round) Recap() []catalog.Principle {
	out := make([]catalog.Principle, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Round) shuffle() {
	r.options = r.rng.Perm(len(r.items))
}
