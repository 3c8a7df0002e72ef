// Package theme holds the color themes the gallery renders with: a
// registry of built-in themes, TOML theme files, and 256-color adaptation
// for terminals without true color.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// DefaultName is the theme used when a requested name is unknown.
const DefaultName = "chalkboard"

// Theme defines the complete color palette for the gallery.
type Theme struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#1f2a24"
	Foreground string // chalk text
	Dim        string // secondary text
	Accent     string // highlights, selected buttons

	// Widget colors
	Border      string // card borders
	BorderFocus string // focused card border
	Title       string // card and hero titles

	// Temperature colors, one per catalog category
	Warm    string
	Cool    string
	Neutral string

	// Feedback colors for toasts and results
	Success string
	Failure string
	Info    string

	// Special
	SearchHighlight string
	HelpKey         string // keybinding highlight color
	HelpDesc        string // help description color
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
	Current = thChalkboardTheme()
}

// Get returns a named theme, falling back to the chalkboard theme if not
// found.
func Get(name string) Theme {
	t, _ := Lookup(name)
	return t
}

// Lookup returns a named theme and whether it was registered.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t, true
	}
	return registry[DefaultName], false
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// Register validates t and adds it to the registry, replacing any theme
// with the same name.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return err
	}
	thRegister(t)
	return nil
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
