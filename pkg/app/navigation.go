package app

// FocusRing tracks which of an ordered set of focusable elements has
// focus. Movement wraps at both ends.
type FocusRing struct {
	ids []string
	cur int
}

// NewFocusRing creates a ring focused on the first id.
func NewFocusRing(ids ...string) *FocusRing {
	return &FocusRing{ids: ids}
}

// SetIDs replaces the ring contents. Focus stays on the current id when
// it survives, otherwise it moves to the first element.
func (r *FocusRing) SetIDs(ids []string) {
	cur := r.Current()
	r.ids = ids
	r.cur = 0
	r.Focus(cur)
}

// Len is the number of focusable elements.
func (r *FocusRing) Len() int { return len(r.ids) }

// Index is the position of the focused element, 0 when empty.
func (r *FocusRing) Index() int { return r.cur }

// Current returns the focused id, or "" when the ring is empty.
func (r *FocusRing) Current() string {
	if len(r.ids) == 0 {
		return ""
	}
	return r.ids[r.cur]
}

// Forward moves focus to the next element, wrapping around to the first
// after the last.
func (r *FocusRing) Forward() {
	if len(r.ids) == 0 {
		return
	}
	r.cur = (r.cur + 1) % len(r.ids)
}

// Backward moves focus to the previous element, wrapping around to the
// last before the first.
func (r *FocusRing) Backward() {
	if len(r.ids) == 0 {
		return
	}
	r.cur = (r.cur - 1 + len(r.ids)) % len(r.ids)
}

// Focus moves focus to id. It reports false and leaves focus unchanged
// when id is not in the ring.
func (r *FocusRing) Focus(id string) bool {
	for i, v := range r.ids {
		if v == id {
			r.cur = i
			return true
		}
	}
	return false
}
