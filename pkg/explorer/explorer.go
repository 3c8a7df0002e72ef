// Package explorer is the click-to-reveal state shared by the gelato
// harmony and color theory widgets: a filtered list of swatch sets with at
// most one active item and, optionally, a transient hover preview.
package explorer

import (
	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
)

// All is the filter value that shows every category.
const All catalog.Category = "all"

// Options configures an Explorer.
type Options struct {
	// Hover enables the transient hover preview.
	Hover bool
	// Tip renders the design tip shown with the active item. Nil means
	// the item description is used.
	Tip func(catalog.SwatchSet) string
}

// Detail is what the widget shows for the active item.
type Detail struct {
	Item catalog.SwatchSet
	Tip  string
}

// Explorer holds the selection state over a fixed item list.
type Explorer struct {
	items   []catalog.SwatchSet
	opts    Options
	filter  catalog.Category
	active  string
	hovered string
	cursor  int
}

// New creates an explorer over items with no filter and no selection.
func New(items []catalog.SwatchSet, opts Options) *Explorer {
	its := make([]catalog.SwatchSet, len(items))
	copy(its, items)
	return &Explorer{items: its, opts: opts, filter: All}
}

// Items returns every item in catalog order, regardless of the filter.
func (e *Explorer) Items() []catalog.SwatchSet {
	out := make([]catalog.SwatchSet, len(e.items))
	copy(out, e.items)
	return out
}

// Filter returns the active category filter.
func (e *Explorer) Filter() catalog.Category { return e.filter }

// SetFilter narrows Visible to one category, or to everything with All.
// Unknown categories are ignored. The active item survives a filter change
// even when the filter hides it.
func (e *Explorer) SetFilter(c catalog.Category) {
	if c != All && !c.Valid() {
		return
	}
	e.filter = c
	if n := len(e.Visible()); e.cursor >= n {
		e.cursor = max(0, n-1)
	}
}

// Visible returns the items passing the filter, in catalog order.
func (e *Explorer) Visible() []catalog.SwatchSet {
	if e.filter == All {
		return e.Items()
	}
	var out []catalog.SwatchSet
	for _, it := range e.items {
		if it.Category == e.filter {
			out = append(out, it)
		}
	}
	return out
}

// Toggle activates the item with the given ID, or clears the selection if
// it is already active. Unknown IDs are ignored.
func (e *Explorer) Toggle(id string) {
	if _, ok := e.find(id); !ok {
		return
	}
	if e.active == id {
		e.active = ""
		return
	}
	e.active = id
}

// Clear drops the selection.
func (e *Explorer) Clear() { e.active = "" }

// Hover sets the preview item when hover is enabled.
func (e *Explorer) Hover(id string) {
	if !e.opts.Hover {
		return
	}
	if _, ok := e.find(id); !ok {
		return
	}
	e.hovered = id
}

// Leave clears the hover preview.
func (e *Explorer) Leave() { e.hovered = "" }

// Active returns the active item.
func (e *Explorer) Active() (catalog.SwatchSet, bool) {
	if e.active == "" {
		return catalog.SwatchSet{}, false
	}
	return e.find(e.active)
}

// Hovered returns the item under the pointer.
func (e *Explorer) Hovered() (catalog.SwatchSet, bool) {
	if e.hovered == "" {
		return catalog.SwatchSet{}, false
	}
	return e.find(e.hovered)
}

// Detail returns the active item with its design tip.
func (e *Explorer) Detail() (Detail, bool) {
	it, ok := e.Active()
	if !ok {
		return Detail{}, false
	}
	tip := it.Description
	if e.opts.Tip != nil {
		tip = e.opts.Tip(it)
	}
	return Detail{Item: it, Tip: tip}, true
}

// Cursor returns the keyboard cursor's index into Visible.
func (e *Explorer) Cursor() int { return e.cursor }

// Move shifts the keyboard cursor by delta within Visible, wrapping.
func (e *Explorer) Move(delta int) {
	n := len(e.Visible())
	if n == 0 {
		e.cursor = 0
		return
	}
	e.cursor = ((e.cursor+delta)%n + n) % n
}

// ToggleCursor toggles the item under the keyboard cursor.
func (e *Explorer) ToggleCursor() {
	vis := e.Visible()
	if e.cursor < len(vis) {
		e.Toggle(vis[e.cursor].ID)
	}
}

func (e *Explorer) find(id string) (catalog.SwatchSet, bool) {
	for _, it := range e.items {
		if it.ID == id {
			return it, true
		}
	}
	return catalog.SwatchSet{}, false
}
