package config

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/chalkboard/pkg/gallery"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete chalkboard configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Theme   ThemeConfig   `toml:"theme"`
	Embed   EmbedConfig   `toml:"embed"`
	Motion  MotionConfig  `toml:"motion"`
	Toast   ToastConfig   `toml:"toast"`
	Catalog CatalogConfig `toml:"catalog"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	// Seed fixes the random source for challenges and quiz prompts.
	// Zero means seed from the clock.
	Seed uint64 `toml:"seed"`
}

// ThemeConfig selects the color theme. File, when set, is a TOML theme
// loaded and registered before Name is resolved.
type ThemeConfig struct {
	Name string `toml:"name"`
	File string `toml:"file"`
}

// EmbedConfig controls the iframe snippets.
type EmbedConfig struct {
	Origin string `toml:"origin"`
}

// MotionConfig controls animation. Level is "full", "reduced" or "off";
// the durations override the level's preset when non-zero.
type MotionConfig struct {
	Level   string   `toml:"level"`
	Stagger Duration `toml:"stagger"`
	Reveal  Duration `toml:"reveal"`
	Shake   Duration `toml:"shake"`
	FPS     int      `toml:"fps"`
}

// ToastConfig controls transient notifications.
type ToastConfig struct {
	Duration Duration `toml:"duration"`
}

// CatalogConfig points at an optional YAML overlay for the built-in data.
type CatalogConfig struct {
	File string `toml:"file"`
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks values that cannot be caught by decoding alone.
func (c *Config) Validate() error {
	var errs []error
	if !logLevels[strings.ToLower(c.General.LogLevel)] {
		errs = append(errs, fmt.Errorf("%w: log_level %q", ErrInvalid, c.General.LogLevel))
	}
	if c.Theme.Name == "" {
		errs = append(errs, fmt.Errorf("%w: theme name is empty", ErrInvalid))
	}
	if _, ok := motionPresets[c.Motion.Level]; !ok {
		errs = append(errs, fmt.Errorf("%w: motion level %q (want full, reduced or off)", ErrInvalid, c.Motion.Level))
	}
	if c.Motion.FPS < 0 || c.Motion.FPS > 240 {
		errs = append(errs, fmt.Errorf("%w: motion fps %d", ErrInvalid, c.Motion.FPS))
	}
	if c.Toast.Duration.Duration <= 0 {
		errs = append(errs, fmt.Errorf("%w: toast duration must be positive", ErrInvalid))
	}
	if o := c.Embed.Origin; o != "" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
		errs = append(errs, fmt.Errorf("%w: embed origin %q is not an http(s) URL", ErrInvalid, o))
	}
	return errors.Join(errs...)
}

// Origin returns the embed origin, falling back to the gallery default.
func (c *Config) Origin() string {
	if c.Embed.Origin == "" {
		return gallery.DefaultOrigin
	}
	return c.Embed.Origin
}
