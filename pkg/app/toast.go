package app

import "time"

// MaxToasts is the number of toasts shown at once. Older toasts are
// dropped when a new one arrives.
const MaxToasts = 3

// Toast is a queued notification with its expiry.
type Toast struct {
	ToastEvent
	Expires time.Time
}

// Toasts is the shell's notification queue.
type Toasts struct {
	ttl   time.Duration
	items []Toast
}

// NewToasts creates a queue whose toasts live for ttl.
func NewToasts(ttl time.Duration) *Toasts {
	return &Toasts{ttl: ttl}
}

// Push queues ev, dropping the oldest toast when the queue is full.
func (t *Toasts) Push(ev ToastEvent, now time.Time) {
	t.items = append(t.items, Toast{ToastEvent: ev, Expires: now.Add(t.ttl)})
	if len(t.items) > MaxToasts {
		t.items = t.items[len(t.items)-MaxToasts:]
	}
}

// Expire removes toasts whose expiry is not after now and reports whether
// any were removed.
func (t *Toasts) Expire(now time.Time) bool {
	kept := t.items[:0]
	for _, it := range t.items {
		if it.Expires.After(now) {
			kept = append(kept, it)
		}
	}
	changed := len(kept) != len(t.items)
	t.items = kept
	return changed
}

// Active returns the queued toasts, oldest first.
func (t *Toasts) Active() []Toast {
	return t.items
}
