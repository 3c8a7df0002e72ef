package gradient

// DefaultStep is the keyboard nudge distance.
const DefaultStep = 0.05

// Slider is the drag state of the sip-slider. Motion events only move the
// position while a drag is in progress; the position freezes on release.
type Slider struct {
	pos      float64
	dragging bool
}

// NewSlider returns a slider resting at p.
func NewSlider(p float64) *Slider {
	return &Slider{pos: Clamp(p)}
}

// Position returns the current normalized position.
func (s *Slider) Position() float64 { return s.pos }

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool { return s.dragging }

// Set moves the slider directly, e.g. on a click that is not a drag.
func (s *Slider) Set(p float64) { s.pos = Clamp(p) }

// BeginDrag starts a drag. If the press landed inside the track, the caller
// follows up with DragTo for the press position.
func (s *Slider) BeginDrag() { s.dragging = true }

// DragTo moves the slider to the pointer column while dragging. The bounds
// are the track's bounds at the time of the event. It reports whether the
// position changed.
func (s *Slider) DragTo(x, left, width int) bool {
	if !s.dragging {
		return false
	}
	p := FromPointer(x, left, width)
	if p == s.pos {
		return false
	}
	s.pos = p
	return true
}

// EndDrag releases the slider; the position stays where it was.
func (s *Slider) EndDrag() { s.dragging = false }

// Nudge moves the slider by delta, clamped.
func (s *Slider) Nudge(delta float64) {
	s.pos = Clamp(s.pos + delta)
}

// Cancel drops any in-progress drag without moving. Called when the widget
// is torn down mid-drag.
func (s *Slider) Cancel() { s.dragging = false }
