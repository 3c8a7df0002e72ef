package widgets

import (
	"math"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/chalkboard/pkg/app"
)

func TestSipSliderKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want float64
	}{
		{"cooler", []string{"l"}, 0.05},
		{"twice cooler", []string{"l", "l"}, 0.10},
		{"warmer clamps", []string{"h"}, 0},
		{"coolest", []string{"$"}, 1},
		{"coolest then warmest", []string{"$", "0"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewSipSlider(testEnv(nil))
			for _, k := range tt.keys {
				w.HandleKey(runes(k))
			}
			if got := w.Position(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Position() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSipSliderNamedKeys(t *testing.T) {
	w := NewSipSlider(testEnv(nil))
	w.HandleKey(endKey)
	if w.Position() != 1 {
		t.Errorf("end: Position() = %v, want 1", w.Position())
	}
	w.HandleKey(leftKey)
	if math.Abs(w.Position()-0.95) > 1e-9 {
		t.Errorf("left: Position() = %v, want 0.95", w.Position())
	}
	w.HandleKey(homeKey)
	w.HandleKey(rightKey)
	if math.Abs(w.Position()-0.05) > 1e-9 {
		t.Errorf("home, right: Position() = %v, want 0.05", w.Position())
	}
}

func TestSipSliderSnapsWithoutMotion(t *testing.T) {
	w := NewSipSlider(testEnv(nil))
	if cmd := w.HandleKey(rightKey); cmd != nil {
		t.Error("motion off should not request frames")
	}
	if w.spoon != w.Position() {
		t.Errorf("spoon = %v, want snapped to %v", w.spoon, w.Position())
	}
	if cmd := w.HandleKey(leftKey); cmd != nil {
		t.Error("unchanged position should not request frames")
	}
	if cmd := w.HandleKey(leftKey); cmd != nil {
		t.Error("nudge at the warm end should be a no-op")
	}
}

func TestSipSliderEasesToTarget(t *testing.T) {
	env := testEnv(nil)
	env.Timing.Animate = true
	env.Timing.FPS = 60
	w := NewSipSlider(env)

	if cmd := w.HandleKey(endKey); cmd == nil {
		t.Fatal("expected a frame request")
	}
	frames := 0
	for ; frames < 1000; frames++ {
		if w.Update(app.FrameEvent{WidgetID: SipSliderID}) == nil {
			break
		}
	}
	if frames == 1000 {
		t.Fatal("spoon never settled")
	}
	if frames == 0 {
		t.Error("spoon snapped without easing")
	}
	if w.spoon != 1 || w.easing {
		t.Errorf("spoon = %v easing = %v, want 1 and settled", w.spoon, w.easing)
	}
}

func TestSipSliderIgnoresOtherFrames(t *testing.T) {
	env := testEnv(nil)
	env.Timing.Animate = true
	w := NewSipSlider(env)
	w.HandleKey(endKey)
	if cmd := w.Update(app.FrameEvent{WidgetID: GelatoID}); cmd != nil {
		t.Error("frame for another widget was consumed")
	}
	if w.spoon != 0 {
		t.Errorf("spoon moved to %v on a foreign frame", w.spoon)
	}
}

func TestSipSliderDrag(t *testing.T) {
	hits := fakeHits{sipTrackZone: {x: 5, width: 11}}
	w := NewSipSlider(testEnv(hits))

	w.HandleMouse(press)
	if !w.Dragging() {
		t.Fatal("press on the track did not start a drag")
	}
	if w.Position() != 0.5 {
		t.Errorf("after press Position() = %v, want 0.5", w.Position())
	}

	hits[sipTrackZone] = region{x: 20, width: 11}
	w.HandleMouse(motion)
	if w.Position() != 1 {
		t.Errorf("motion past the end: Position() = %v, want 1", w.Position())
	}

	hits[sipTrackZone] = region{x: 2, width: 11}
	w.HandleMouse(release)
	if w.Dragging() {
		t.Error("release did not end the drag")
	}
	if w.Position() != 0.2 {
		t.Errorf("after release Position() = %v, want 0.2", w.Position())
	}

	hits[sipTrackZone] = region{x: 8, width: 11}
	w.HandleMouse(motion)
	if w.Position() != 0.2 {
		t.Errorf("motion after release moved the spoon to %v", w.Position())
	}
}

func TestSipSliderPressOffTrack(t *testing.T) {
	w := NewSipSlider(testEnv(fakeHits{}))
	w.HandleMouse(press)
	if w.Dragging() {
		t.Error("press off the track started a drag")
	}
}

func TestSipSliderLeaveCancelsDrag(t *testing.T) {
	w := NewSipSlider(testEnv(fakeHits{sipTrackZone: {x: 3, width: 11}}))
	w.HandleMouse(press)
	w.Leave()
	if w.Dragging() {
		t.Error("Leave did not cancel the drag")
	}
	if w.Position() != 0.3 {
		t.Errorf("Leave moved the spoon: %v", w.Position())
	}
}

func TestSipSliderViewShowsMood(t *testing.T) {
	w := NewSipSlider(testEnv(nil))
	view := w.View(80, 20)
	for _, want := range []string{"Warm Colors", "Cool Colors", sipInstruction} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
