package gallery

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestEntries(t *testing.T) {
	want := []string{"learning-objectives", "sip-slider", "color-theory", "flavor-metaphors", "gelato-harmony", "palette-pairing"}
	got := Entries()
	if len(got) != len(want) {
		t.Fatalf("len(Entries) = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Entries[%d] = %q, want %q", i, got[i].ID, id)
		}
		if !got[i].Accent.Valid() {
			t.Errorf("%s accent %q invalid", id, got[i].Accent)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		path  string
		route Route
		id    string
	}{
		{"/", Index, ""},
		{"", Index, ""},
		{"/widgets/sip-slider", Widget, "sip-slider"},
		{"/widgets/palette-pairing/", Widget, "palette-pairing"},
		{"/widgets/gelato-harmony", Widget, "gelato-harmony"},
		{"/widgets/espresso", NotFound, ""},
		{"/widgets", NotFound, ""},
		{"/about", NotFound, ""},
	}
	for _, tt := range tests {
		route, e := Resolve(tt.path)
		if route != tt.route || e.ID != tt.id {
			t.Errorf("Resolve(%q) = %v, %q; want %v, %q", tt.path, route, e.ID, tt.route, tt.id)
		}
	}
}

func TestSnippet(t *testing.T) {
	e, ok := Lookup("sip-slider")
	if !ok {
		t.Fatal("sip-slider missing")
	}
	got := Snippet("https://course.example.org/", e)
	for _, want := range []string{
		`src="https://course.example.org/widgets/sip-slider"`,
		`width="100%"`,
		`height="600"`,
		`frameborder="0"`,
		`title="Sip-Slider Color Theory Widget"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("snippet missing %s:\n%s", want, got)
		}
	}
	if !strings.HasPrefix(got, "<iframe") || !strings.HasSuffix(got, "</iframe>") {
		t.Errorf("snippet not an iframe element:\n%s", got)
	}
}

func TestSnippetHeights(t *testing.T) {
	want := map[string]int{
		"learning-objectives": 400,
		"sip-slider":          600,
		"color-theory":        800,
		"flavor-metaphors":    700,
		"gelato-harmony":      700,
		"palette-pairing":     800,
	}
	for id, h := range want {
		e, _ := Lookup(id)
		if e.EmbedHeight != h {
			t.Errorf("%s height = %d, want %d", id, e.EmbedHeight, h)
		}
	}
}

func TestSnippetDefaultOrigin(t *testing.T) {
	e, _ := Lookup("color-theory")
	if got := Snippet("", e); !strings.Contains(got, DefaultOrigin+"/widgets/color-theory") {
		t.Errorf("snippet without origin:\n%s", got)
	}
}

func TestCopyUsesClipboard(t *testing.T) {
	var got string
	var out bytes.Buffer
	c := &Copier{Out: &out, write: func(s string) error { got = s; return nil }}
	m, err := c.Copy("hello")
	if err != nil || m != ViaClipboard {
		t.Fatalf("Copy = %v, %v", m, err)
	}
	if got != "hello" || out.Len() != 0 {
		t.Errorf("clipboard got %q, terminal got %q", got, out.String())
	}
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	var out bytes.Buffer
	c := &Copier{
		Out:    &out,
		Getenv: func(string) string { return "" },
		write:  func(string) error { return errors.New("no xclip") },
	}
	m, err := c.Copy("snippet")
	if err != nil || m != ViaOSC52 {
		t.Fatalf("Copy = %v, %v", m, err)
	}
	enc := base64.StdEncoding.EncodeToString([]byte("snippet"))
	if !strings.Contains(out.String(), "\x1b]52;c;"+enc) {
		t.Errorf("osc52 output = %q", out.String())
	}
}

func TestCopyUnsupportedSkipsClipboard(t *testing.T) {
	var out bytes.Buffer
	called := false
	c := &Copier{
		Out:         &out,
		Getenv:      func(k string) string { return map[string]string{"TMUX": "/tmp/tmux"}[k] },
		write:       func(string) error { called = true; return nil },
		unsupported: true,
	}
	if m, err := c.Copy("x"); err != nil || m != ViaOSC52 {
		t.Fatalf("Copy = %v, %v", m, err)
	}
	if called {
		t.Error("clipboard used while unsupported")
	}
	if !strings.HasPrefix(out.String(), "\x1bPtmux;") {
		t.Errorf("tmux passthrough missing: %q", out.String())
	}
}

func TestCopyNoTarget(t *testing.T) {
	c := &Copier{unsupported: true}
	if _, err := c.Copy("x"); err == nil {
		t.Error("expected error with no clipboard and no writer")
	}
}
