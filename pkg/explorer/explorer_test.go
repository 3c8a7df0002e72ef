package explorer

import (
	"testing"

	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
)

func palettes() []catalog.SwatchSet {
	return catalog.Default().PaletteSets()
}

func ids(items []catalog.SwatchSet) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	tests := []struct {
		filter catalog.Category
		want   []string
	}{
		{All, []string{"sunset", "cozy", "ocean", "electric"}},
		{catalog.Warm, []string{"sunset", "cozy"}},
		{catalog.Cool, []string{"ocean", "electric"}},
		{catalog.Neutral, []string{}},
	}
	for _, tt := range tests {
		e := New(palettes(), Options{})
		e.SetFilter(tt.filter)
		if got := ids(e.Visible()); !equal(got, tt.want) {
			t.Errorf("filter %q: Visible = %v, want %v", tt.filter, got, tt.want)
		}
		if len(e.Items()) != 4 {
			t.Errorf("filter %q mutated the item list", tt.filter)
		}
	}
}

func TestSetFilterIgnoresUnknown(t *testing.T) {
	e := New(palettes(), Options{})
	e.SetFilter(catalog.Warm)
	e.SetFilter("tepid")
	if e.Filter() != catalog.Warm {
		t.Errorf("Filter = %q, want warm", e.Filter())
	}
}

func TestToggle(t *testing.T) {
	e := New(palettes(), Options{})
	if _, ok := e.Active(); ok {
		t.Fatal("new explorer has an active item")
	}

	e.Toggle("ocean")
	if a, ok := e.Active(); !ok || a.ID != "ocean" {
		t.Errorf("Active = %v, %v; want ocean", a.ID, ok)
	}

	e.Toggle("sunset")
	if a, _ := e.Active(); a.ID != "sunset" {
		t.Errorf("Active = %q, want sunset", a.ID)
	}

	e.Toggle("sunset")
	if _, ok := e.Active(); ok {
		t.Error("toggling the active item did not clear it")
	}

	e.Toggle("ocean")
	e.Toggle("nope")
	if a, _ := e.Active(); a.ID != "ocean" {
		t.Errorf("unknown id changed selection to %q", a.ID)
	}
}

func TestActiveSurvivesFilter(t *testing.T) {
	e := New(palettes(), Options{})
	e.Toggle("ocean")
	e.SetFilter(catalog.Warm)
	if a, ok := e.Active(); !ok || a.ID != "ocean" {
		t.Errorf("Active after hiding filter = %q, %v", a.ID, ok)
	}
}

func TestHover(t *testing.T) {
	e := New(catalog.Default().JarSets(), Options{Hover: true})
	e.Toggle("vanilla")
	e.Hover("chili")
	if h, ok := e.Hovered(); !ok || h.ID != "chili" {
		t.Errorf("Hovered = %q, %v", h.ID, ok)
	}
	if a, _ := e.Active(); a.ID != "vanilla" {
		t.Errorf("hover changed the active item to %q", a.ID)
	}
	e.Leave()
	if _, ok := e.Hovered(); ok {
		t.Error("Leave did not clear the hover")
	}
	if a, _ := e.Active(); a.ID != "vanilla" {
		t.Error("Leave cleared the active item")
	}
}

func TestHoverDisabled(t *testing.T) {
	e := New(palettes(), Options{})
	e.Hover("ocean")
	if _, ok := e.Hovered(); ok {
		t.Error("hover preview set with Hover disabled")
	}
}

func TestDetail(t *testing.T) {
	c := catalog.Default()
	e := New(c.JarSets(), Options{Tip: func(s catalog.SwatchSet) string {
		j, _ := c.Jar(s.ID)
		return j.DesignTip()
	}})
	if _, ok := e.Detail(); ok {
		t.Fatal("Detail without selection")
	}
	e.Toggle("cinnamon")
	d, ok := e.Detail()
	if !ok || d.Item.ID != "cinnamon" {
		t.Fatalf("Detail = %+v, %v", d, ok)
	}
	want := "Use this analogous reds approach when you want to evoke the same emotional response as warm & energizing."
	if d.Tip != want {
		t.Errorf("Tip = %q, want %q", d.Tip, want)
	}
}

func TestDetailDefaultsToDescription(t *testing.T) {
	e := New(palettes(), Options{})
	e.Toggle("cozy")
	d, _ := e.Detail()
	if d.Tip != d.Item.Description {
		t.Errorf("Tip = %q, want description", d.Tip)
	}
}

func TestCursor(t *testing.T) {
	e := New(palettes(), Options{})
	e.Move(-1)
	if e.Cursor() != 3 {
		t.Errorf("Move(-1) from 0 = %d, want 3", e.Cursor())
	}
	e.SetFilter(catalog.Cool)
	if e.Cursor() != 1 {
		t.Errorf("cursor not clamped after filter: %d", e.Cursor())
	}
	e.ToggleCursor()
	if a, _ := e.Active(); a.ID != "electric" {
		t.Errorf("ToggleCursor activated %q, want electric", a.ID)
	}
	e.Move(1)
	if e.Cursor() != 0 {
		t.Errorf("Move(1) wrap = %d, want 0", e.Cursor())
	}
}
