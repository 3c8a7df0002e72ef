package widgets

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/chalkboard/pkg/app"
	"gitlab.com/tinyland/lab/chalkboard/pkg/quiz"
)

// correctIndex returns the 1-based option number of the right answer.
func correctIndex(w *FlavorQuiz) int {
	want := w.Round().Prompt().ID
	for i, o := range w.Round().Options() {
		if o.ID == want {
			return i + 1
		}
	}
	return 0
}

func digit(n int) string { return string(rune('0' + n)) }

func TestFlavorQuizCorrectAnswer(t *testing.T) {
	w, err := NewFlavorQuiz(testEnv(nil))
	if err != nil {
		t.Fatal(err)
	}
	p := w.Round().Prompt()
	got := toasts(messages(w.HandleKey(runes(digit(correctIndex(w))))))
	if len(got) != 1 || got[0].Kind != app.ToastSuccess || got[0].Title != "Correct! 🎉" {
		t.Fatalf("toasts = %+v", got)
	}
	if want := p.Flavor + " perfectly matches " + p.Principle + "!"; got[0].Body != want {
		t.Errorf("body = %q, want %q", got[0].Body, want)
	}
	if w.Round().Phase() != quiz.Explaining || w.Round().Score() != 1 {
		t.Errorf("phase = %v score = %d", w.Round().Phase(), w.Round().Score())
	}
	if !strings.Contains(w.View(80, 30), "Examples in Design:") {
		t.Error("explanation view missing examples")
	}
}

func TestFlavorQuizWrongAnswer(t *testing.T) {
	w, _ := NewFlavorQuiz(testEnv(nil))
	wrong := 1
	if correctIndex(w) == 1 {
		wrong = 2
	}
	flavor := w.Round().Prompt().Flavor
	got := toasts(messages(w.HandleKey(runes(digit(wrong)))))
	if len(got) != 1 || got[0].Title != "Not quite right" {
		t.Fatalf("toasts = %+v", got)
	}
	if !strings.Contains(got[0].Body, flavor) {
		t.Errorf("body %q does not name %s", got[0].Body, flavor)
	}
	if w.Round().Score() != 0 || w.Round().Attempts() != 1 {
		t.Errorf("score = %d attempts = %d", w.Round().Score(), w.Round().Attempts())
	}
}

func TestFlavorQuizCursorAnswer(t *testing.T) {
	w, _ := NewFlavorQuiz(testEnv(nil))
	for i := 1; i < correctIndex(w); i++ {
		w.HandleKey(runes("j"))
	}
	w.HandleKey(enterKey)
	if w.Round().Score() != 1 {
		t.Errorf("enter on the right option scored %d", w.Round().Score())
	}
}

func TestFlavorQuizIgnoresOutOfRangeDigit(t *testing.T) {
	w, _ := NewFlavorQuiz(testEnv(nil))
	if cmd := w.HandleKey(runes("9")); cmd != nil {
		t.Error("digit without an option produced a command")
	}
	if w.Round().Attempts() != 0 {
		t.Error("digit without an option was graded")
	}
}

func TestFlavorQuizFullRound(t *testing.T) {
	w, _ := NewFlavorQuiz(testEnv(nil))
	for i := 0; i < w.Round().Total(); i++ {
		if w.Round().Phase() != quiz.Playing {
			t.Fatalf("round %d phase = %v", i, w.Round().Phase())
		}
		w.HandleKey(runes(digit(correctIndex(w))))
		w.HandleKey(runes("n"))
	}
	if w.Round().Phase() != quiz.Complete {
		t.Fatalf("phase = %v, want complete", w.Round().Phase())
	}
	view := w.View(90, 40)
	for _, want := range []string{"Game Complete!", "You scored 3 out of 3", "What You've Learned", "Bitter = Contrast"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary missing %q", want)
		}
	}

	w.HandleKey(runes("r"))
	if w.Round().Phase() != quiz.Playing || w.Round().Score() != 0 {
		t.Error("restart did not reset the round")
	}
}

func TestFlavorQuizMouse(t *testing.T) {
	hits := fakeHits{}
	w, _ := NewFlavorQuiz(testEnv(hits))
	right := w.Round().Prompt()
	hits[optionZone(right)] = region{}
	w.HandleMouse(press)
	if w.Round().Attempts() != 0 {
		t.Error("press graded an answer; answers fire on release")
	}
	w.HandleMouse(release)
	if w.Round().Score() != 1 {
		t.Fatalf("click on the right option scored %d", w.Round().Score())
	}

	delete(hits, optionZone(right))
	hits["next"] = region{}
	w.HandleMouse(release)
	if w.Round().Phase() != quiz.Playing {
		t.Errorf("next button left phase %v", w.Round().Phase())
	}
}
