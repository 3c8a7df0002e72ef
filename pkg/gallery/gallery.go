// Package gallery is the static directory of widgets: the cards on the
// index screen, the /widgets/<id> routes and the iframe embed snippet for
// each widget.
package gallery

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
)

// IndexPath is the route of the widget index.
const IndexPath = "/"

// DefaultOrigin is used in embed snippets when no origin is configured.
const DefaultOrigin = "https://widgets.example.com"

// Entry describes one widget in the gallery.
type Entry struct {
	ID          string
	Title       string
	Description string
	Headline    string
	Tags        []string
	Accent      catalog.Category
	EmbedTitle  string
	EmbedHeight int
}

// Path is the entry's route.
func (e Entry) Path() string { return "/widgets/" + e.ID }

var entries = []Entry{
	{
		ID:          "learning-objectives",
		Title:       "Learning Objectives",
		Description: "Interactive unfolding menu displaying course learning objectives with smooth animations",
		Headline:    "Interactive widget for displaying course learning objectives with an elegant unfolding animation",
		Tags:        []string{"Color Theory", "Sensory Learning", "Interactive Design"},
		Accent:      catalog.Warm,
		EmbedTitle:  "Learning Objectives Widget",
		EmbedHeight: 400,
	},
	{
		ID:          "sip-slider",
		Title:       "Sip-Slider",
		Description: "Interactive coffee stirring experience with real-time gradient changes to explore color temperature",
		Headline:    "Interactive coffee stirring experience that teaches color temperature and emotional impact through real-time gradient changes",
		Tags:        []string{"Color Temperature", "Sensory Play"},
		Accent:      catalog.Warm,
		EmbedTitle:  "Sip-Slider Color Theory Widget",
		EmbedHeight: 600,
	},
	{
		ID:          "color-theory",
		Title:       "Color Theory Explorer",
		Description: "Interactive tool for exploring warm vs cool colors and their emotional impact",
		Headline:    "Interactive tool for exploring warm vs cool colors and their emotional impact",
		Tags:        []string{"Color Psychology", "Interactive Learning"},
		Accent:      catalog.Cool,
		EmbedTitle:  "Color Theory Explorer Widget",
		EmbedHeight: 800,
	},
	{
		ID:          "flavor-metaphors",
		Title:       "Flavor Metaphors",
		Description: "Match taste sensations to design principles through interactive gameplay",
		Headline:    "Match taste sensations to design principles through interactive gameplay",
		Tags:        []string{"Interactive Game", "Design Principles"},
		Accent:      catalog.Neutral,
		EmbedTitle:  "Flavor Metaphors Widget",
		EmbedHeight: 700,
	},
	{
		ID:          "gelato-harmony",
		Title:       "Gelato of Harmony",
		Description: "Hover spice jars to discover how scents connect to color harmony rules",
		Headline:    "Discover how scents connect to color harmony rules through interactive spice exploration",
		Tags:        []string{"Sensory Learning", "Color Harmony"},
		Accent:      catalog.Warm,
		EmbedTitle:  "Gelato of Harmony Widget",
		EmbedHeight: 700,
	},
	{
		ID:          "palette-pairing",
		Title:       "Palette Pairing Lab",
		Description: "Drag syrup bottles into a latte cup to create perfect color moods",
		Headline:    "Create perfect color moods by combining base, accent, and neutral colors",
		Tags:        []string{"Drag & Drop", "Color Mixing"},
		Accent:      catalog.Cool,
		EmbedTitle:  "Palette Pairing Lab Widget",
		EmbedHeight: 800,
	},
}

// Entries returns every gallery entry in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup finds an entry by widget ID.
func Lookup(id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Route is the result of resolving a path.
type Route int

const (
	NotFound Route = iota
	Index
	Widget
)

func (r Route) String() string {
	switch r {
	case Index:
		return "index"
	case Widget:
		return "widget"
	}
	return "not-found"
}

// Resolve maps a path to a route. A trailing slash is ignored; anything
// that is neither the index nor a known widget path is NotFound.
func Resolve(path string) (Route, Entry) {
	path = strings.TrimSpace(path)
	if path == "" || path == IndexPath {
		return Index, Entry{}
	}
	path = strings.TrimSuffix(path, "/")
	for _, e := range entries {
		if e.Path() == path {
			return Widget, e
		}
	}
	return NotFound, Entry{}
}

// Snippet returns the iframe markup that embeds e from origin.
func Snippet(origin string, e Entry) string {
	if origin == "" {
		origin = DefaultOrigin
	}
	origin = strings.TrimSuffix(origin, "/")
	return fmt.Sprintf(`<iframe
  src="%s%s"
  width="100%%"
  height="%d"
  frameborder="0"
  title="%s">
</iframe>`, origin, e.Path(), e.EmbedHeight, e.EmbedTitle)
}
