// Package catalog holds the static, read-only data every widget is built
// from: syrup bottles and target moods, flavor principles, spice jars,
// color palettes and learning objectives.
//
// Catalogs are created once at startup (built-in data, optionally overlaid
// from a YAML file) and never mutated afterwards. Widgets receive copies of
// the slices they need.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the temperature tag carried by every swatch set.
type Category string

const (
	Warm    Category = "warm"
	Cool    Category = "cool"
	Neutral Category = "neutral"
)

// ErrInvalid is wrapped by every validation failure in this package.
var ErrInvalid = errors.New("catalog: invalid entry")

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	switch c {
	case Warm, Cool, Neutral:
		return true
	}
	return false
}

// ParseCategory converts a case-insensitive name into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalid, s)
	}
	return c, nil
}

// SwatchSet is an ordered sequence of colors with a category tag and
// descriptive text.
type SwatchSet struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Colors      []string `yaml:"colors"`
	Category    Category `yaml:"category"`
	Description string   `yaml:"description"`
}

// Validate checks the swatch set invariants: an identity, at least one
// color and a known category.
func (s SwatchSet) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: swatch set without id", ErrInvalid)
	}
	if len(s.Colors) == 0 {
		return fmt.Errorf("%w: swatch set %q has no colors", ErrInvalid, s.ID)
	}
	if !s.Category.Valid() {
		return fmt.Errorf("%w: swatch set %q has category %q", ErrInvalid, s.ID, s.Category)
	}
	return nil
}

// Bottle is a draggable syrup bottle in the palette lab. Role names the
// slot the bottle is intended for ("base", "accent" or "neutral"), which
// is informational only: any bottle may be dropped into any slot.
type Bottle struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
	Hex   string `yaml:"hex" json:"hex"`
	Role  string `yaml:"role" json:"role"`
	Color string `yaml:"color" json:"color"`
}

// Mood is a target triple for the palette lab.
type Mood struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Base        string `yaml:"base"`
	Accent      string `yaml:"accent"`
	Neutral     string `yaml:"neutral"`
}

// Principle pairs a flavor with the design principle it stands for.
type Principle struct {
	ID          string   `yaml:"id"`
	Flavor      string   `yaml:"flavor"`
	Principle   string   `yaml:"principle"`
	Description string   `yaml:"description"`
	Color       string   `yaml:"color"`
	Examples    []string `yaml:"examples"`
}

// SpiceJar is a harmony-rule card in the gelato explorer.
type SpiceJar struct {
	SwatchSet `yaml:",inline"`
	Scent     string `yaml:"scent"`
	ColorRule string `yaml:"color_rule"`
	ImageURL  string `yaml:"image_url"`
}

// DesignTip is the advice shown when the jar is opened.
func (j SpiceJar) DesignTip() string {
	return fmt.Sprintf("Use this %s approach when you want to evoke the same emotional response as %s.",
		strings.ToLower(j.ColorRule), strings.ToLower(j.Scent))
}

// Palette is an emotion card in the color theory explorer.
type Palette struct {
	SwatchSet `yaml:",inline"`
	Emotion   string `yaml:"emotion"`
	Icon      string `yaml:"icon"`
}

// Objective is one line of the learning objectives panel.
type Objective struct {
	ID       string   `yaml:"id"`
	Text     string   `yaml:"text"`
	Category Category `yaml:"category"`
	Icon     string   `yaml:"icon"`
}

// Catalog is the complete set of static widget data.
type Catalog struct {
	Bottles    []Bottle    `yaml:"bottles"`
	Moods      []Mood      `yaml:"moods"`
	Principles []Principle `yaml:"principles"`
	Jars       []SpiceJar  `yaml:"jars"`
	Palettes   []Palette   `yaml:"palettes"`
	Objectives []Objective `yaml:"objectives"`
}

// Validate checks every section. Empty sections are rejected because each
// widget needs at least one record to render.
func (c *Catalog) Validate() error {
	if len(c.Bottles) == 0 || len(c.Moods) == 0 || len(c.Principles) == 0 ||
		len(c.Jars) == 0 || len(c.Palettes) == 0 || len(c.Objectives) == 0 {
		return fmt.Errorf("%w: every section needs at least one entry", ErrInvalid)
	}

	bottleIDs := make(map[string]bool, len(c.Bottles))
	for _, b := range c.Bottles {
		if b.ID == "" || b.Hex == "" {
			return fmt.Errorf("%w: bottle %q needs id and hex", ErrInvalid, b.ID)
		}
		if bottleIDs[b.ID] {
			return fmt.Errorf("%w: duplicate bottle %q", ErrInvalid, b.ID)
		}
		bottleIDs[b.ID] = true
	}
	for _, m := range c.Moods {
		if m.ID == "" || m.Base == "" || m.Accent == "" || m.Neutral == "" {
			return fmt.Errorf("%w: mood %q needs id and three colors", ErrInvalid, m.ID)
		}
	}
	if len(c.Principles) < 2 {
		return fmt.Errorf("%w: the quiz needs at least two principles", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Principles))
	for _, p := range c.Principles {
		if p.ID == "" || p.Flavor == "" || p.Principle == "" {
			return fmt.Errorf("%w: principle %q is incomplete", ErrInvalid, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate principle %q", ErrInvalid, p.ID)
		}
		seen[p.ID] = true
	}
	for _, j := range c.Jars {
		if err := j.Validate(); err != nil {
			return err
		}
	}
	for _, p := range c.Palettes {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	for _, o := range c.Objectives {
		if o.Text == "" {
			return fmt.Errorf("%w: objective %q has no text", ErrInvalid, o.ID)
		}
		if !o.Category.Valid() {
			return fmt.Errorf("%w: objective %q has category %q", ErrInvalid, o.ID, o.Category)
		}
	}
	return nil
}

// JarSets returns the swatch sets of all jars, in catalog order.
func (c *Catalog) JarSets() []SwatchSet {
	out := make([]SwatchSet, len(c.Jars))
	for i, j := range c.Jars {
		out[i] = j.SwatchSet
	}
	return out
}

// PaletteSets returns the swatch sets of all palettes, in catalog order.
func (c *Catalog) PaletteSets() []SwatchSet {
	out := make([]SwatchSet, len(c.Palettes))
	for i, p := range c.Palettes {
		out[i] = p.SwatchSet
	}
	return out
}

// Jar looks up a spice jar by ID.
func (c *Catalog) Jar(id string) (SpiceJar, bool) {
	for _, j := range c.Jars {
		if j.ID == id {
			return j, true
		}
	}
	return SpiceJar{}, false
}

// Palette looks up a color palette by ID.
func (c *Catalog) Palette(id string) (Palette, bool) {
	for _, p := range c.Palettes {
		if p.ID == id {
			return p, true
		}
	}
	return Palette{}, false
}
