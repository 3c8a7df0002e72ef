package quiz

import (
	"errors"
	"math/rand/v2"
	"testing"

	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
)

func newTestRound(t *testing.T, seed uint64) *Round {
	t.Helper()
	r, err := New(catalog.Default().Principles, rand.New(rand.NewPCG(seed, 7)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func wrongOption(r *Round) string {
	for _, o := range r.Options() {
		if o.ID != r.Prompt().ID {
			return o.ID
		}
	}
	return ""
}

func TestNewRound(t *testing.T) {
	r := newTestRound(t, 1)
	if r.Phase() != Playing {
		t.Errorf("Phase = %v, want playing", r.Phase())
	}
	if r.Score() != 0 || r.Attempts() != 0 {
		t.Errorf("score/attempts = %d/%d, want 0/0", r.Score(), r.Attempts())
	}
	if r.Total() != 3 {
		t.Errorf("Total = %d, want 3", r.Total())
	}
	opts := r.Options()
	if len(opts) != 3 {
		t.Fatalf("len(Options) = %d, want 3", len(opts))
	}
	seen := map[string]bool{}
	for _, o := range opts {
		seen[o.ID] = true
	}
	if len(seen) != 3 {
		t.Errorf("options are not a permutation: %v", seen)
	}
}

func TestNewRejectsSingleItem(t *testing.T) {
	items := catalog.Default().Principles[:1]
	if _, err := New(items, rand.New(rand.NewPCG(1, 1))); !errors.Is(err, ErrTooFewItems) {
		t.Errorf("err = %v, want ErrTooFewItems", err)
	}
}

func TestAnswerCorrect(t *testing.T) {
	r := newTestRound(t, 2)
	prompt := r.Prompt()
	fb, err := r.Answer(prompt.ID)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !fb.Correct || fb.Chosen.ID != prompt.ID {
		t.Errorf("feedback = %+v", fb)
	}
	if r.Score() != 1 || r.Attempts() != 1 {
		t.Errorf("score/attempts = %d/%d, want 1/1", r.Score(), r.Attempts())
	}
	if r.Phase() != Explaining {
		t.Errorf("Phase = %v, want explaining", r.Phase())
	}
	if r.Last() == nil || !r.Last().Correct {
		t.Error("Last() does not reflect the answer")
	}
}

func TestAnswerWrong(t *testing.T) {
	r := newTestRound(t, 3)
	fb, err := r.Answer(wrongOption(r))
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if fb.Correct {
		t.Error("wrong option graded correct")
	}
	if r.Score() != 0 || r.Attempts() != 1 {
		t.Errorf("score/attempts = %d/%d, want 0/1", r.Score(), r.Attempts())
	}
}

func TestAnswerErrors(t *testing.T) {
	r := newTestRound(t, 4)
	if _, err := r.Answer("salty-whitespace"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("unknown option err = %v", err)
	}
	if r.Attempts() != 0 || r.Phase() != Playing {
		t.Error("unknown option changed state")
	}

	if _, err := r.Answer(r.Prompt().ID); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Answer(r.Prompt().ID); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("double answer err = %v, want ErrWrongPhase", err)
	}
	if r.Attempts() != 1 {
		t.Errorf("double answer counted: attempts = %d", r.Attempts())
	}
}

func TestAdvanceOnlyWhileExplaining(t *testing.T) {
	r := newTestRound(t, 5)
	if err := r.Advance(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Advance while playing err = %v", err)
	}
}

func TestAdvanceDrawsDifferentPrompt(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		r := newTestRound(t, seed)
		before := r.Prompt().ID
		if _, err := r.Answer(before); err != nil {
			t.Fatal(err)
		}
		if err := r.Advance(); err != nil {
			t.Fatal(err)
		}
		if r.Prompt().ID == before {
			t.Fatalf("seed %d: Advance repeated prompt %q", seed, before)
		}
		if r.Phase() != Playing || r.Last() != nil {
			t.Errorf("seed %d: after Advance phase=%v last=%v", seed, r.Phase(), r.Last())
		}
	}
}

func TestFullRoundCompletes(t *testing.T) {
	r := newTestRound(t, 6)
	for i := 0; i < r.Total(); i++ {
		id := r.Prompt().ID
		if i == 1 {
			id = wrongOption(r)
		}
		if _, err := r.Answer(id); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if r.Attempts() > r.Total() {
			t.Fatalf("attempts %d exceeded total", r.Attempts())
		}
		if r.Phase() == Complete {
			t.Fatal("round completed before the last Advance")
		}
		if err := r.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	if r.Phase() != Complete {
		t.Fatalf("Phase = %v, want complete", r.Phase())
	}
	if r.Score() != 2 || r.Attempts() != 3 {
		t.Errorf("score/attempts = %d/%d, want 2/3", r.Score(), r.Attempts())
	}
	if _, err := r.Answer(r.Prompt().ID); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Answer after complete err = %v", err)
	}
	if err := r.Advance(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Advance after complete err = %v", err)
	}
}

func TestRestart(t *testing.T) {
	r := newTestRound(t, 8)
	_, _ = r.Answer(r.Prompt().ID)
	r.Restart()
	if r.Score() != 0 || r.Attempts() != 0 || r.Phase() != Playing || r.Last() != nil {
		t.Errorf("after Restart score=%d attempts=%d phase=%v", r.Score(), r.Attempts(), r.Phase())
	}
}

func TestRecapCatalogOrder(t *testing.T) {
	r := newTestRound(t, 9)
	want := catalog.Default().Principles
	got := r.Recap()
	if len(got) != len(want) {
		t.Fatalf("len(Recap) = %d", len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("Recap[%d] = %q, want %q", i, got[i].ID, want[i].ID)
		}
	}
}
