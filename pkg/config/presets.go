package config

import "time"

// Motion levels.
const (
	MotionFull    = "full"
	MotionReduced = "reduced"
	MotionOff     = "off"
)

// Timing is the resolved animation timing for a motion level.
type Timing struct {
	Stagger time.Duration
	Reveal  time.Duration
	Shake   time.Duration
	FPS     int
	// Animate is false when every transition should snap.
	Animate bool
}

var motionPresets = map[string]Timing{
	MotionFull: {
		Stagger: 150 * time.Millisecond,
		Reveal:  300 * time.Millisecond,
		Shake:   600 * time.Millisecond,
		FPS:     60,
		Animate: true,
	},
	MotionReduced: {
		Stagger: 50 * time.Millisecond,
		Reveal:  100 * time.Millisecond,
		Shake:   600 * time.Millisecond,
		FPS:     30,
		Animate: true,
	},
	MotionOff: {
		Shake: 600 * time.Millisecond,
		FPS:   10,
	},
}

// MotionPreset returns the timing for a named level. Unknown names fall
// back to "full".
func MotionPreset(level string) Timing {
	if t, ok := motionPresets[level]; ok {
		return t
	}
	return motionPresets[MotionFull]
}

// Timing resolves the configured level and applies any explicit overrides.
// The shake delay is never overridden to zero: the palette lab relies on
// it to settle.
func (m MotionConfig) Timing() Timing {
	t := MotionPreset(m.Level)
	if m.Stagger.Duration > 0 {
		t.Stagger = m.Stagger.Duration
	}
	if m.Reveal.Duration > 0 {
		t.Reveal = m.Reveal.Duration
	}
	if m.Shake.Duration > 0 {
		t.Shake = m.Shake.Duration
	}
	if m.FPS > 0 {
		t.FPS = m.FPS
	}
	return t
}
