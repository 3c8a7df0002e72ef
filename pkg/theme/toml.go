package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name        string            `toml:"name"`
	Base        thTOMLBase        `toml:"base"`
	Widget      thTOMLWidget      `toml:"widget"`
	Temperature thTOMLTemperature `toml:"temperature"`
	Feedback    thTOMLFeedback    `toml:"feedback"`
	Special     thTOMLSpecial     `toml:"special"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLWidget struct {
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	Title       string `toml:"title"`
}

type thTOMLTemperature struct {
	Warm    string `toml:"warm"`
	Cool    string `toml:"cool"`
	Neutral string `toml:"neutral"`
}

type thTOMLFeedback struct {
	Success string `toml:"success"`
	Failure string `toml:"failure"`
	Info    string `toml:"info"`
}

type thTOMLSpecial struct {
	SearchHighlight string `toml:"search_highlight"`
	HelpKey         string `toml:"help_key"`
	HelpDesc        string `toml:"help_desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFile reads a TOML theme file and registers it.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	thRegister(t)
	return t, nil
}

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		Border:      tt.Widget.Border,
		BorderFocus: tt.Widget.BorderFocus,
		Title:       tt.Widget.Title,

		Warm:    tt.Temperature.Warm,
		Cool:    tt.Temperature.Cool,
		Neutral: tt.Temperature.Neutral,

		Success: tt.Feedback.Success,
		Failure: tt.Feedback.Failure,
		Info:    tt.Feedback.Info,

		SearchHighlight: tt.Special.SearchHighlight,
		HelpKey:         tt.Special.HelpKey,
		HelpDesc:        tt.Special.HelpDesc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Widget: thTOMLWidget{
			Border:      t.Border,
			BorderFocus: t.BorderFocus,
			Title:       t.Title,
		},
		Temperature: thTOMLTemperature{
			Warm:    t.Warm,
			Cool:    t.Cool,
			Neutral: t.Neutral,
		},
		Feedback: thTOMLFeedback{
			Success: t.Success,
			Failure: t.Failure,
			Info:    t.Info,
		},
		Special: thTOMLSpecial{
			SearchHighlight: t.SearchHighlight,
			HelpKey:         t.HelpKey,
			HelpDesc:        t.HelpDesc,
		},
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thColorFields lists every color of t by its TOML field name.
func thColorFields(t Theme) map[string]string {
	return map[string]string{
		"background":       t.Background,
		"foreground":       t.Foreground,
		"dim":              t.Dim,
		"accent":           t.Accent,
		"border":           t.Border,
		"border_focus":     t.BorderFocus,
		"title":            t.Title,
		"warm":             t.Warm,
		"cool":             t.Cool,
		"neutral":          t.Neutral,
		"success":          t.Success,
		"failure":          t.Failure,
		"info":             t.Info,
		"search_highlight": t.SearchHighlight,
		"help_key":         t.HelpKey,
		"help_desc":        t.HelpDesc,
	}
}

// thValidateTheme checks that all required color fields are present and
// valid hex. Fields are checked in name order so errors are stable.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	fields := thColorFields(t)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, field := range names {
		if fields[field] == "" {
			return fmt.Errorf("theme: missing required field %q", field)
		}
	}
	for _, field := range names {
		if !thHexColorRegex.MatchString(fields[field]) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", fields[field], field)
		}
	}
	return nil
}
