package widgets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/chalkboard/pkg/app"
	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
	"gitlab.com/tinyland/lab/chalkboard/pkg/components"
	"gitlab.com/tinyland/lab/chalkboard/pkg/palette"
	"gitlab.com/tinyland/lab/chalkboard/pkg/theme"
)

// PaletteLabID is the gallery ID of the palette pairing lab.
const PaletteLabID = "palette-pairing"

var labKeys = struct {
	Prev, Next, Pour, Empty, Check, New key.Binding
}{
	Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous bottle")),
	Next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next bottle")),
	Pour:  key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "pour into base/accent/neutral")),
	Empty: key.NewBinding(key.WithKeys("!", "@", "#"), key.WithHelp("shift+1-3", "empty slot")),
	Check: key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "check blend")),
	New:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new challenge")),
}

// shakeOffsets is the horizontal cup offset per frame while shaking.
var shakeOffsets = [...]int{0, 2, 0, -2}

// PaletteLab is the palette pairing widget: syrup bottles are poured into
// the three layers of a latte cup and checked against a target mood.
type PaletteLab struct {
	env Env
	lab *palette.Lab

	cursor int
	// carrying is the drag payload of the bottle picked up with the mouse.
	carrying []byte

	seq        int // settle timer generation
	shakeFrame int
	steam      int
}

// NewPaletteLab creates the lab targeting the first mood of the catalog.
func NewPaletteLab(env Env) (*PaletteLab, error) {
	env = env.withDefaults()
	lab, err := palette.New(env.Catalog.Moods, env.Rand)
	if err != nil {
		return nil, fmt.Errorf("palette lab: %w", err)
	}
	return &PaletteLab{env: env, lab: lab}, nil
}

// ID returns the unique identifier for this widget.
func (w *PaletteLab) ID() string { return PaletteLabID }

// Title returns the human-readable display name.
func (w *PaletteLab) Title() string { return "Palette Pairing Lab" }

// MinSize returns the minimum width and height this widget requires.
func (w *PaletteLab) MinSize() (int, int) { return 48, 18 }

// Lab exposes the matching engine for inspection.
func (w *PaletteLab) Lab() *palette.Lab { return w.lab }

// Keys implements app.KeyMapper.
func (w *PaletteLab) Keys() []key.Binding {
	return []key.Binding{labKeys.Prev, labKeys.Next, labKeys.Pour, labKeys.Empty, labKeys.Check, labKeys.New}
}

// Update handles the settle timer, shake frames and the steam tick.
func (w *PaletteLab) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.SettleEvent:
		if msg.WidgetID != PaletteLabID || msg.Seq != w.seq {
			return nil
		}
		if w.lab.Settle() {
			w.shakeFrame = 0
			w.env.Log.Debug("palette-pairing: settled", "target", w.lab.Target().ID)
		}
	case app.FrameEvent:
		if msg.WidgetID == PaletteLabID && w.lab.Shaking() {
			w.shakeFrame++
			return app.FrameCmd(PaletteLabID, w.env.Timing.FPS)
		}
	case app.TickEvent:
		if w.lab.Solved() {
			w.steam++
		}
	}
	return nil
}

// HandleKey implements the keyboard path for pouring and checking.
func (w *PaletteLab) HandleKey(msg tea.KeyMsg) tea.Cmd {
	bottles := w.env.Catalog.Bottles
	switch {
	case key.Matches(msg, labKeys.Prev):
		w.cursor = (w.cursor - 1 + len(bottles)) % len(bottles)
	case key.Matches(msg, labKeys.Next):
		w.cursor = (w.cursor + 1) % len(bottles)
	case key.Matches(msg, labKeys.Pour):
		return w.pour(slotForKey(msg.String(), "123"), bottles[w.cursor])
	case key.Matches(msg, labKeys.Empty):
		return w.empty(slotForKey(msg.String(), "!@#"))
	case key.Matches(msg, labKeys.Check):
		return w.check()
	case key.Matches(msg, labKeys.New):
		w.newChallenge()
	}
	return nil
}

func slotForKey(k, keys string) palette.Slot {
	return palette.Slot(strings.Index(keys, k))
}

// HandleMouse implements drag-and-drop from the shelf to the cup and the
// click targets (slot remove marks and the two buttons).
func (w *PaletteLab) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	hits := w.env.Hits
	switch {
	case isPress(msg):
		for i, b := range w.env.Catalog.Bottles {
			if hits.Hit(bottleZone(b), msg) {
				w.cursor = i
				payload, err := palette.EncodePayload(b)
				if err != nil {
					w.env.Log.Warn("palette-pairing: pick up", "bottle", b.ID, "err", err)
					return nil
				}
				w.carrying = payload
				return nil
			}
		}
	case isRelease(msg):
		if w.carrying != nil {
			payload := w.carrying
			w.carrying = nil
			for _, s := range palette.Slots {
				if hits.Hit(slotZone(s), msg) {
					b, err := palette.DecodePayload(payload)
					if err != nil {
						w.env.Log.Warn("palette-pairing: drop", "err", err)
						return nil
					}
					return w.pour(s, b)
				}
			}
			return nil
		}
		for _, s := range palette.Slots {
			if hits.Hit(removeZone(s), msg) {
				return w.empty(s)
			}
		}
		switch {
		case hits.Hit("check", msg):
			return w.check()
		case hits.Hit("new", msg):
			w.newChallenge()
		}
	}
	return nil
}

// Leave drops a carried bottle and invalidates a pending settle timer.
func (w *PaletteLab) Leave() {
	w.carrying = nil
	w.seq++
}

func (w *PaletteLab) pour(s palette.Slot, b catalog.Bottle) tea.Cmd {
	if err := w.lab.Drop(s, b); err != nil {
		w.env.Log.Debug("palette-pairing: drop rejected", "slot", s, "err", err)
		return nil
	}
	w.env.Log.Debug("palette-pairing: poured", "slot", s, "bottle", b.ID)
	return nil
}

func (w *PaletteLab) empty(s palette.Slot) tea.Cmd {
	if err := w.lab.Remove(s); err != nil {
		w.env.Log.Debug("palette-pairing: remove rejected", "slot", s, "err", err)
	}
	return nil
}

func (w *PaletteLab) check() tea.Cmd {
	outcome, err := w.lab.Check()
	switch {
	case errors.Is(err, palette.ErrIncomplete):
		return app.ToastCmd(app.ToastError, "Incomplete palette",
			"Please fill all three slots before checking your palette.")
	case err != nil:
		// Locked or settling: the button is inert.
		return nil
	case outcome == palette.Solved:
		w.env.Log.Debug("palette-pairing: solved", "target", w.lab.Target().ID)
		return app.ToastCmd(app.ToastSuccess, "Perfect blend! ☕",
			fmt.Sprintf("You've created the %s mood palette!", w.lab.Target().Name))
	}

	w.seq++
	w.shakeFrame = 0
	delay := w.env.Timing.Shake
	if delay <= 0 {
		delay = palette.SettleDelay
	}
	cmds := []tea.Cmd{
		app.ToastCmd(app.ToastError, "Not quite right",
			"The colors don't create the target mood. Try a different combination!"),
		app.SettleCmd(PaletteLabID, w.seq, delay),
	}
	if w.env.Timing.Animate {
		cmds = append(cmds, app.FrameCmd(PaletteLabID, w.env.Timing.FPS))
	}
	return tea.Batch(cmds...)
}

func (w *PaletteLab) newChallenge() {
	w.seq++
	w.shakeFrame, w.steam = 0, 0
	w.lab.NewChallenge()
	w.env.Log.Debug("palette-pairing: new challenge", "target", w.lab.Target().ID)
}

func bottleZone(b catalog.Bottle) string { return "bottle-" + b.ID }
func slotZone(s palette.Slot) string     { return "slot-" + s.String() }
func removeZone(s palette.Slot) string   { return "remove-" + s.String() }

// View renders the target mood, the cup, the buttons and the bottle shelf.
func (w *PaletteLab) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	th := theme.Current
	target := w.lab.Target()
	center := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }

	lines := []string{
		center(th.Muted().Render("Drag syrup bottles into the latte cup to create the perfect color mood")),
		"",
		center(th.Heading().Render("Target Mood: " + target.Name)),
		center(th.Muted().Render(components.Truncate(target.Description, width))),
		"",
	}
	if w.lab.Solved() {
		lines = append(lines, center(theme.Fg(th.Dim).Render(steamFrames[w.steam%len(steamFrames)])))
	} else {
		lines = append(lines, "")
	}
	for _, row := range strings.Split(w.cup(th), "\n") {
		lines = append(lines, center(row))
	}
	if w.lab.Solved() {
		lines = append(lines, center(components.Chip("✦ "+target.Name, th.Accent)))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, "", center(w.buttons(th)), "")
	for _, row := range strings.Split(w.shelf(th, width), "\n") {
		lines = append(lines, center(row))
	}
	return components.Block(strings.Join(lines, "\n"), width, height)
}

var steamFrames = [...]string{"  ∿  ∿  ∿  ", " ∿  ∿  ∿   ", "   ∿  ∿  ∿ "}

// cup draws the three layers, neutral on top and base at the bottom.
func (w *PaletteLab) cup(th theme.Theme) string {
	const cupW = 28
	offset := 0
	if w.lab.Shaking() {
		offset = shakeOffsets[w.shakeFrame%len(shakeOffsets)]
	}

	var rows []string
	for i := len(palette.Slots) - 1; i >= 0; i-- {
		s := palette.Slots[i]
		label := components.PadRight(strings.ToUpper(s.String()[:1])+s.String()[1:], 8)
		var layer string
		if b := w.lab.Bottle(s); b != nil {
			layer = label + components.Swatch(b.Color, cupW-2-8-3) + " " + w.env.Hits.Mark(removeZone(s), th.Muted().Render("×"))
		} else {
			layer = label + th.Muted().Render(components.PadRight("┄ drop here", cupW-2-8-1))
		}
		rows = append(rows, w.env.Hits.Mark(slotZone(s), layer))
	}

	border := th.Border
	if w.lab.Solved() {
		border = th.Success
	} else if w.lab.Shaking() {
		border = th.Failure
	}
	box := components.RenderBox(strings.Join(rows, "\n"), cupW, len(rows)+2, components.BoxStyle{
		Border: components.BorderRounded,
		Title:  "latte",
		FG:     border,
	})

	pad := strings.Repeat(" ", 2+offset)
	out := strings.Split(box, "\n")
	for i := range out {
		out[i] = pad + out[i] + strings.Repeat(" ", 2-offset)
	}
	return strings.Join(out, "\n")
}

func (w *PaletteLab) buttons(th theme.Theme) string {
	check := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Background)).Background(lipgloss.Color(th.Accent)).Padding(0, 1)
	if w.lab.Solved() {
		check = check.Background(lipgloss.Color(th.Dim))
	}
	next := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent)).Padding(0, 1)
	return w.env.Hits.Mark("check", check.Render("Check Blend")) + "  " +
		w.env.Hits.Mark("new", next.Render("↻ New Challenge"))
}

// shelf lists the bottles. The keyboard cursor is underlined and a bottle
// picked up with the mouse is shown lifted.
func (w *PaletteLab) shelf(th theme.Theme, width int) string {
	var cells []string
	for i, b := range w.env.Catalog.Bottles {
		chip := components.Chip(b.Label, b.Color)
		marker := " "
		if i == w.cursor {
			marker = theme.Fg(th.Accent).Render("▲")
		}
		cells = append(cells, w.env.Hits.Mark(bottleZone(b), chip)+marker)
	}
	perRow := max(width/12, 1)
	var rows []string
	for start := 0; start < len(cells); start += perRow {
		end := min(start+perRow, len(cells))
		rows = append(rows, strings.Join(cells[start:end], " "))
	}
	return strings.Join(rows, "\n")
}
