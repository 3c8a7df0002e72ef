package widgets

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
	"gitlab.com/tinyland/lab/chalkboard/pkg/explorer"
)

func TestGelatoHoverPreview(t *testing.T) {
	hits := fakeHits{jarZone("mint"): {}}
	w := NewGelato(testEnv(hits))

	w.HandleMouse(motion)
	if h, ok := w.Explorer().Hovered(); !ok || h.ID != "mint" {
		t.Fatalf("hovered = %q, want mint", h.ID)
	}
	if _, ok := w.opened(); ok {
		t.Error("hover opened the detail panel")
	}
	view := w.View(100, 40)
	if !strings.Contains(view, "✦") {
		t.Error("hovered jar missing its preview mark")
	}
	for _, absent := range []string{"Complementary Blues", "Color Harmony Example"} {
		if strings.Contains(view, absent) {
			t.Errorf("hover view shows detail text %q", absent)
		}
	}
	if !strings.Contains(view, "Hover or tap the spice jars") {
		t.Error("hover view missing the hint")
	}

	delete(hits, jarZone("mint"))
	w.HandleMouse(motion)
	if _, ok := w.Explorer().Hovered(); ok {
		t.Error("moving off the jar kept the preview")
	}
	if strings.Contains(w.View(100, 40), "✦") {
		t.Error("preview mark left after moving off")
	}
}

func TestGelatoClickPins(t *testing.T) {
	hits := fakeHits{jarZone("chili"): {}}
	w := NewGelato(testEnv(hits))
	w.HandleMouse(release)
	d, ok := w.Explorer().Detail()
	if !ok || d.Item.ID != "chili" {
		t.Fatalf("click pinned %q", d.Item.ID)
	}
	jar, _ := catalog.Default().Jar("chili")
	if d.Tip != jar.DesignTip() {
		t.Errorf("tip = %q, want the jar design tip", d.Tip)
	}

	w.HandleMouse(release)
	if _, ok := w.Explorer().Active(); ok {
		t.Error("second click did not close the jar")
	}
}

func TestGelatoHoverKeepsOpenedDetail(t *testing.T) {
	hits := fakeHits{jarZone("vanilla"): {}}
	w := NewGelato(testEnv(hits))
	w.HandleMouse(release)
	delete(hits, jarZone("vanilla"))
	hits[jarZone("cinnamon")] = region{}
	w.HandleMouse(motion)

	if j, _ := w.opened(); j.ID != "vanilla" {
		t.Errorf("opened = %q, want vanilla", j.ID)
	}
	view := w.View(100, 40)
	if !strings.Contains(view, "Monochromatic Creams") {
		t.Error("detail panel lost the opened jar")
	}
	if strings.Contains(view, "Analogous Reds") {
		t.Error("detail panel switched to the hovered jar")
	}
	if !strings.Contains(view, "✦") {
		t.Error("hovered jar missing its preview mark")
	}
	w.Leave()
	if j, _ := w.opened(); j.ID != "vanilla" {
		t.Errorf("after Leave opened = %q, want vanilla", j.ID)
	}
}

func TestGelatoKeyboard(t *testing.T) {
	w := NewGelato(testEnv(nil))
	w.HandleKey(rightKey)
	w.HandleKey(enterKey)
	if a, ok := w.Explorer().Active(); !ok || a.ID != "cinnamon" {
		t.Errorf("active = %q, want cinnamon", a.ID)
	}
	w.HandleKey(runes("x"))
	if _, ok := w.Explorer().Active(); ok {
		t.Error("x did not close the jar")
	}
}

func TestColorTheoryFilterKeys(t *testing.T) {
	tests := []struct {
		key  string
		want catalog.Category
		ids  []string
	}{
		{"w", catalog.Warm, []string{"sunset", "cozy"}},
		{"c", catalog.Cool, []string{"ocean", "electric"}},
		{"a", explorer.All, []string{"sunset", "cozy", "ocean", "electric"}},
	}
	w := NewColorTheory(testEnv(nil))
	for _, tt := range tests {
		w.HandleKey(runes(tt.key))
		if w.Explorer().Filter() != tt.want {
			t.Errorf("%s: filter = %q, want %q", tt.key, w.Explorer().Filter(), tt.want)
		}
		var got []string
		for _, it := range w.Explorer().Visible() {
			got = append(got, it.ID)
		}
		if strings.Join(got, ",") != strings.Join(tt.ids, ",") {
			t.Errorf("%s: visible = %v, want %v", tt.key, got, tt.ids)
		}
	}
}

func TestColorTheoryClicks(t *testing.T) {
	hits := fakeHits{filterZone(catalog.Cool): {}}
	w := NewColorTheory(testEnv(hits))
	w.HandleMouse(release)
	if w.Explorer().Filter() != catalog.Cool {
		t.Fatalf("filter button left %q", w.Explorer().Filter())
	}

	delete(hits, filterZone(catalog.Cool))
	hits[paletteZone("ocean")] = region{}
	w.HandleMouse(release)
	d, ok := w.Explorer().Detail()
	if !ok || d.Item.ID != "ocean" {
		t.Fatalf("click opened %q", d.Item.ID)
	}
	if !strings.Contains(w.View(100, 60), "Calm & Professional") {
		t.Error("detail view missing the emotion")
	}
}

func TestColorTheoryHiddenPaletteNotClickable(t *testing.T) {
	hits := fakeHits{paletteZone("sunset"): {}}
	w := NewColorTheory(testEnv(hits))
	w.HandleKey(runes("c"))
	w.HandleMouse(release)
	if _, ok := w.Explorer().Active(); ok {
		t.Error("click on a filtered-out palette toggled it")
	}
}

func TestColorTheoryViewHasReferenceCards(t *testing.T) {
	w := NewColorTheory(testEnv(nil))
	view := w.View(100, 60)
	for _, want := range []string{"All Colors", "Warm Colors", "Cool Colors", "Draw attention and encourage action"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
