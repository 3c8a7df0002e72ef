package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOverlay reads a YAML catalog file and merges it over the built-in
// catalog. Every section present in the file replaces the built-in section
// wholesale; absent sections keep their defaults. An empty path returns
// the built-in catalog.
func LoadOverlay(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return ParseOverlay(data)
}

// ParseOverlay merges raw YAML over the built-in catalog and validates the
// result. Unknown keys are rejected so typos do not silently fall back.
func ParseOverlay(data []byte) (*Catalog, error) {
	var overlay Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&overlay); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog: parse YAML: %w", err)
	}

	c := Default()
	if len(overlay.Bottles) > 0 {
		c.Bottles = overlay.Bottles
	}
	if len(overlay.Moods) > 0 {
		c.Moods = overlay.Moods
	}
	if len(overlay.Principles) > 0 {
		c.Principles = overlay.Principles
	}
	if len(overlay.Jars) > 0 {
		c.Jars = overlay.Jars
	}
	if len(overlay.Palettes) > 0 {
		c.Palettes = overlay.Palettes
	}
	if len(overlay.Objectives) > 0 {
		c.Objectives = overlay.Objectives
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// EncodeYAML renders a catalog as YAML, suitable as a starting point for
// an overlay file.
func (c *Catalog) EncodeYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("catalog: encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("catalog: encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}
