// chalkboard is a terminal gallery of interactive color theory lessons.
//
// It serves six small widgets (learning objectives, a temperature slider,
// palette psychology cards, a flavor quiz, a spice jar harmony explorer
// and a latte palette mixing game) behind an index page, and produces the
// iframe snippet that embeds each one on the web.
//
// Usage:
//
//	chalkboard [flags]
//
// Flags:
//
//	-config string   Path to configuration file (default: ~/.config/chalkboard/config.toml)
//	-theme string    Color theme override (chalkboard|latte|espresso|mint)
//	-widget string   Open a widget directly, by gallery ID
//	-embed string    Print the embed snippet for a widget and exit
//	-seed uint       Fix the random source for challenges and quizzes
//	-dump-catalog    Print the active catalog as YAML and exit
//	-dump-config     Print the active configuration as TOML and exit
//	-verbose         Enable debug logging
//	-version         Print version and exit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"

	"gitlab.com/tinyland/lab/chalkboard/pkg/app"
	"gitlab.com/tinyland/lab/chalkboard/pkg/catalog"
	"gitlab.com/tinyland/lab/chalkboard/pkg/config"
	"gitlab.com/tinyland/lab/chalkboard/pkg/gallery"
	"gitlab.com/tinyland/lab/chalkboard/pkg/terminal"
	"gitlab.com/tinyland/lab/chalkboard/pkg/theme"
	"gitlab.com/tinyland/lab/chalkboard/pkg/tui"
	"gitlab.com/tinyland/lab/chalkboard/pkg/widgets"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run does the work of main and returns the process exit code, so
// deferred cleanup runs before exit.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("chalkboard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "Path to configuration file")
		themeName   = fs.String("theme", "", "Color theme override")
		widgetID    = fs.String("widget", "", "Open a widget directly, by gallery ID")
		embedID     = fs.String("embed", "", "Print the embed snippet for a widget and exit")
		seed        = fs.Uint64("seed", 0, "Random seed for challenges and quizzes (0 = config or clock)")
		dumpCatalog = fs.Bool("dump-catalog", false, "Print the active catalog as YAML and exit")
		dumpConfig  = fs.Bool("dump-config", false, "Print the active configuration as TOML and exit")
		verbose     = fs.Bool("verbose", false, "Enable verbose logging")
		showVersion = fs.Bool("version", false, "Print version and exit")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "chalkboard %s (%s) built %s\n", version, commit, date)
		return 0
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	if *themeName != "" {
		cfg.Theme.Name = *themeName
	}
	if *seed != 0 {
		cfg.General.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 1
	}

	if *dumpConfig {
		if err := cfg.Encode(stdout); err != nil {
			fmt.Fprintf(stderr, "encode config: %v\n", err)
			return 1
		}
		return 0
	}

	// Embed snippets need neither the catalog nor a terminal.
	if *embedID != "" {
		e, ok := gallery.Lookup(*embedID)
		if !ok {
			fmt.Fprintf(stderr, "unknown widget: %s (known: %s)\n", *embedID, strings.Join(widgetIDs(), ", "))
			return 1
		}
		fmt.Fprintln(stdout, gallery.Snippet(cfg.Origin(), e))
		return 0
	}

	cat, err := catalog.LoadOverlay(cfg.Catalog.File)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load catalog: %v\n", err)
		return 1
	}
	if *dumpCatalog {
		out, err := cat.EncodeYAML()
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		stdout.Write(out)
		return 0
	}

	start := gallery.IndexPath
	if *widgetID != "" {
		e, ok := gallery.Lookup(*widgetID)
		if !ok {
			fmt.Fprintf(stderr, "unknown widget: %s (known: %s)\n", *widgetID, strings.Join(widgetIDs(), ", "))
			return 1
		}
		start = e.Path()
	}

	caps := terminal.DetectCapabilities()
	if !caps.TTY {
		fmt.Fprintln(stderr, "chalkboard needs a terminal; use -embed or -dump-catalog when piping")
		return 1
	}
	depth := terminal.ProfileDepth(caps.Profile)
	if err := applyTheme(cfg.Theme, depth); err != nil {
		fmt.Fprintf(stderr, "theme: %v\n", err)
		return 1
	}

	// The TUI owns stdout, so logs only go to the file.
	logFile, err := openLog(cfg.General.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "failed to open log file: %v\n", err)
		return 1
	}
	defer logFile.Close()

	level := cfg.General.LogLevel
	if *verbose {
		level = "debug"
	}
	logger, err := newLogger(logFile, level)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	slog.SetDefault(logger)

	s := cfg.General.Seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	logger.Info("starting chalkboard",
		"version", version,
		"terminal", caps.Term,
		"size", fmt.Sprintf("%dx%d", caps.Size.Cols, caps.Size.Rows),
		"color_depth", depth,
		"ssh", caps.SSH,
		"theme", theme.Current.Name,
		"motion", cfg.Motion.Level,
		"seed", s,
	)

	zones := app.NewZones()
	defer zones.Close()

	copier := gallery.NewCopier(os.Stdout)
	if !caps.Term.SupportsOSC52() && !caps.Mux {
		// The terminal would drop an OSC 52 write silently.
		copier.Out = nil
	}

	model := tui.New(tui.Options{
		Env: widgets.Env{
			Catalog: cat,
			Timing:  cfg.Motion.Timing(),
			Rand:    rand.New(rand.NewPCG(s, s>>1)),
			Log:     logger,
		},
		Origin:     cfg.Origin(),
		ToastTTL:   cfg.Toast.Duration.Duration,
		Copier:     copier,
		Start:      start,
		Zones:      zones,
		ColorDepth: depth,
	})

	mouse := tea.WithMouseCellMotion()
	if caps.Term.SupportsMouseMotion() {
		mouse = tea.WithMouseAllMotion()
	}
	p := tea.NewProgram(model, tea.WithAltScreen(), mouse)
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return 1
	}
	return 0
}

// loadConfig reads path, or searches the standard locations when empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromFile(path)
}

// applyTheme registers the configured theme file, resolves the theme name
// and adapts it to the terminal color depth.
func applyTheme(tc config.ThemeConfig, depth int) error {
	if tc.File != "" {
		if _, err := theme.LoadFile(tc.File); err != nil {
			return err
		}
	}
	t, ok := theme.Lookup(tc.Name)
	if !ok {
		return fmt.Errorf("unknown theme %q (known: %s)", tc.Name, strings.Join(theme.Names(), ", "))
	}
	theme.Current = theme.Adapt(t, depth)
	return nil
}

func openLog(path string) (*os.File, error) {
	if path == "" {
		return nil, errors.New("no log file configured")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// newLogger returns an slog logger backed by a charmbracelet/log handler.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	h := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "chalkboard",
	})
	return slog.New(h), nil
}

func widgetIDs() []string {
	var ids []string
	for _, e := range gallery.Entries() {
		ids = append(ids, e.ID)
	}
	return ids
}
