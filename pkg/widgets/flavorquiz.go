package widgets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/chalkboard/pkg/app"
	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
	"gitlab.com/tinyland/lab/chalkboard/pkg/components"
	"gitlab.com/tinyland/lab/chalkboard/pkg/quiz"
	"gitlab.com/tinyland/lab/chalkboard/pkg/swatch"
	"gitlab.com/tinyland/lab/chalkboard/pkg/theme"
)

// FlavorQuizID is the gallery ID of the flavor metaphors game.
const FlavorQuizID = "flavor-metaphors"

var quizKeys = struct {
	Up, Down, Pick, Choose, Next, Restart key.Binding
}{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous option")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next option")),
	Pick:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "answer")),
	Choose:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "answer / continue")),
	Next:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next flavor")),
	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "play again")),
}

// FlavorQuiz is the flavor-to-principle matching game.
type FlavorQuiz struct {
	env    Env
	round  *quiz.Round
	cursor int
	bar    progress.Model
}

// NewFlavorQuiz starts a round over the catalog principles.
func NewFlavorQuiz(env Env) (*FlavorQuiz, error) {
	env = env.withDefaults()
	round, err := quiz.New(env.Catalog.Principles, env.Rand)
	if err != nil {
		return nil, fmt.Errorf("flavor quiz: %w", err)
	}
	th := theme.Current
	return &FlavorQuiz{
		env:   env,
		round: round,
		bar: progress.New(
			progress.WithGradient(th.Warm, th.Cool),
			progress.WithoutPercentage(),
		),
	}, nil
}

// ID returns the unique identifier for this widget.
func (w *FlavorQuiz) ID() string { return FlavorQuizID }

// Title returns the human-readable display name.
func (w *FlavorQuiz) Title() string { return "Flavor Metaphors" }

// MinSize returns the minimum width and height this widget requires.
func (w *FlavorQuiz) MinSize() (int, int) { return 44, 16 }

// Round exposes the game state for inspection.
func (w *FlavorQuiz) Round() *quiz.Round { return w.round }

// Keys implements app.KeyMapper.
func (w *FlavorQuiz) Keys() []key.Binding {
	return []key.Binding{quizKeys.Up, quizKeys.Down, quizKeys.Pick, quizKeys.Choose, quizKeys.Next, quizKeys.Restart}
}

// Update is a no-op: the game has no timers.
func (w *FlavorQuiz) Update(tea.Msg) tea.Cmd { return nil }

// HandleKey moves the option cursor, answers and advances.
func (w *FlavorQuiz) HandleKey(msg tea.KeyMsg) tea.Cmd {
	opts := w.round.Options()
	switch w.round.Phase() {
	case quiz.Playing:
		switch {
		case key.Matches(msg, quizKeys.Up):
			w.cursor = (w.cursor - 1 + len(opts)) % len(opts)
		case key.Matches(msg, quizKeys.Down):
			w.cursor = (w.cursor + 1) % len(opts)
		case key.Matches(msg, quizKeys.Pick):
			n, _ := strconv.Atoi(msg.String())
			if n >= 1 && n <= len(opts) {
				w.cursor = n - 1
				return w.answer(opts[n-1].ID)
			}
		case key.Matches(msg, quizKeys.Choose):
			return w.answer(opts[w.cursor].ID)
		}
	case quiz.Explaining:
		if key.Matches(msg, quizKeys.Choose, quizKeys.Next) {
			w.advance()
		}
	case quiz.Complete:
		if key.Matches(msg, quizKeys.Restart, quizKeys.Choose) {
			w.restart()
		}
	}
	return nil
}

// HandleMouse answers on a click of an option card and handles the
// continue and play-again buttons.
func (w *FlavorQuiz) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if !isRelease(msg) {
		return nil
	}
	hits := w.env.Hits
	switch w.round.Phase() {
	case quiz.Playing:
		for i, o := range w.round.Options() {
			if hits.Hit(optionZone(o), msg) {
				w.cursor = i
				return w.answer(o.ID)
			}
		}
	case quiz.Explaining:
		if hits.Hit("next", msg) {
			w.advance()
		}
	case quiz.Complete:
		if hits.Hit("restart", msg) {
			w.restart()
		}
	}
	return nil
}

func optionZone(p catalog.Principle) string { return "option-" + p.ID }

func (w *FlavorQuiz) answer(id string) tea.Cmd {
	fb, err := w.round.Answer(id)
	if err != nil {
		w.env.Log.Debug("flavor-metaphors: answer rejected", "option", id, "err", err)
		return nil
	}
	w.env.Log.Debug("flavor-metaphors: answered", "prompt", fb.Prompt.ID, "chosen", fb.Chosen.ID, "correct", fb.Correct)
	if fb.Correct {
		return app.ToastCmd(app.ToastSuccess, "Correct! 🎉",
			fmt.Sprintf("%s perfectly matches %s!", fb.Prompt.Flavor, fb.Prompt.Principle))
	}
	return app.ToastCmd(app.ToastError, "Not quite right",
		fmt.Sprintf("Try thinking about how %s relates to design principles.", fb.Prompt.Flavor))
}

func (w *FlavorQuiz) advance() {
	if err := w.round.Advance(); err != nil {
		w.env.Log.Debug("flavor-metaphors: advance rejected", "err", err)
		return
	}
	w.cursor = 0
}

func (w *FlavorQuiz) restart() {
	w.round.Restart()
	w.cursor = 0
}

// View renders the score header, then either the question, the
// explanation or the completion summary.
func (w *FlavorQuiz) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	th := theme.Current
	r := w.round

	score := fmt.Sprintf("Score: %d/%d", r.Score(), r.Attempts())
	lines := []string{
		spread(th.Heading().Render("Flavor Metaphors"), th.Text().Render(score), width),
	}
	w.bar.Width = max(width-10, 4)
	ratio := float64(r.Attempts()) / float64(r.Total())
	lines = append(lines, th.Muted().Render("Progress  ")+w.bar.ViewAs(ratio), "")

	switch r.Phase() {
	case quiz.Complete:
		lines = append(lines, w.summary(th, width)...)
	case quiz.Explaining:
		lines = append(lines, w.explanation(th, width)...)
	default:
		lines = append(lines, w.question(th, width)...)
	}
	return components.Block(strings.Join(lines, "\n"), width, height)
}

func (w *FlavorQuiz) question(th theme.Theme, width int) []string {
	p := w.round.Prompt()
	center := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }
	lines := []string{
		center(components.Chip(p.Flavor, swatch.Hex(p.Color))),
		"",
		center(th.Text().Render(fmt.Sprintf("Which design principle matches %s?", strings.ToLower(p.Flavor)))),
		"",
	}
	for i, o := range w.round.Options() {
		label := fmt.Sprintf("%d. %s", i+1, o.Principle)
		style := th.Text()
		marker := "  "
		if i == w.cursor {
			style = theme.Fg(th.Accent).Bold(true)
			marker = theme.Fg(th.Accent).Render("▸ ")
		}
		lines = append(lines, marker+w.env.Hits.Mark(optionZone(o), style.Render(label)))
	}
	return lines
}

func (w *FlavorQuiz) explanation(th theme.Theme, width int) []string {
	fb := w.round.Last()
	if fb == nil {
		return nil
	}
	p := fb.Prompt
	verdict := theme.Fg(th.FeedbackColor(fb.Correct))
	head := "✓ " + p.Flavor + " = " + p.Principle
	if !fb.Correct {
		head = "✗ " + p.Flavor + " is not " + fb.Chosen.Principle
	}
	lines := []string{verdict.Bold(true).Render(head), ""}
	lines = append(lines, strings.Split(components.WrapText(p.Description, width), "\n")...)
	lines = append(lines, "", th.Heading().Render("Examples in Design:"))
	for _, ex := range p.Examples {
		lines = append(lines, th.Text().Render("  • "+ex))
	}
	next := "Next Flavor →"
	if w.round.Attempts() >= w.round.Total() {
		next = "See Results →"
	}
	lines = append(lines, "", w.env.Hits.Mark("next", theme.Fg(th.Accent).Bold(true).Render(next)))
	return lines
}

func (w *FlavorQuiz) summary(th theme.Theme, width int) []string {
	r := w.round
	center := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }
	lines := []string{
		center(th.Heading().Render("Game Complete!")),
		center(th.Text().Render(fmt.Sprintf("You scored %d out of %d", r.Score(), r.Total()))),
		"",
		th.Heading().Render("What You've Learned"),
	}
	for _, p := range r.Recap() {
		lines = append(lines, theme.Fg(swatch.Hex(p.Color)).Render("● ")+th.Text().Bold(true).Render(p.Flavor+" = "+p.Principle))
		for _, l := range strings.Split(components.WrapText(p.Description, max(width-2, 1)), "\n") {
			lines = append(lines, "  "+th.Muted().Render(l))
		}
	}
	lines = append(lines, "", center(w.env.Hits.Mark("restart", theme.Fg(th.Accent).Bold(true).Render("↻ Play Again"))))
	return lines
}

// spread places left and right on one line of the given width.
func spread(left, right string, width int) string {
	gap := width - components.VisibleLen(left) - components.VisibleLen(right)
	if gap < 1 {
		return components.Truncate(left+" "+right, width)
	}
	return left + strings.Repeat(" ", gap) + right
}
