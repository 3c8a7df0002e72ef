package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities is the cached terminal summary for the current session.
type Capabilities struct {
	Term       Terminal        // Detected terminal emulator
	Profile    termenv.Profile // Color profile
	ColorDepth int             // Bits per color: 24, 8, 4 or 1
	Size       Size            // Terminal dimensions
	TTY        bool            // Stdout is a terminal
	SSH        bool            // Running over SSH
	Tmux       bool            // Inside tmux
	Mux        bool            // Inside any multiplexer (tmux, screen)
}

// TrueColor reports whether 24-bit color is available.
func (c *Capabilities) TrueColor() bool { return c.ColorDepth >= 24 }

var (
	cached     *Capabilities
	detectOnce sync.Once
	mu         sync.Mutex // guards ForceRefresh reset
)

// DetectCapabilities performs full terminal detection and caches the result.
// Safe to call from multiple goroutines.
func DetectCapabilities() *Capabilities {
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// ForceRefresh re-detects terminal capabilities, replacing the cached
// value.
func ForceRefresh() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	detectOnce = sync.Once{}
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// Cached returns the previously cached capabilities without re-detection.
// Returns nil if DetectCapabilities has not been called yet.
func Cached() *Capabilities {
	return cached
}

// ProfileDepth converts a termenv profile into bits per color.
func ProfileDepth(p termenv.Profile) int {
	switch p {
	case termenv.TrueColor:
		return 24
	case termenv.ANSI256:
		return 8
	case termenv.ANSI:
		return 4
	default:
		return 1
	}
}

func detect() *Capabilities {
	t := Detect()
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	tmux := os.Getenv("TMUX") != ""

	profile := termenv.NewOutput(os.Stdout).EnvColorProfile()
	// termenv only looks at the environment when stdout is not a TTY,
	// so a known true-color emulator still upgrades the profile.
	if profile < termenv.TrueColor && profile != termenv.Ascii && t.SupportsTrueColor() {
		profile = termenv.TrueColor
	}
	if ct := os.Getenv("COLORTERM"); (ct == "truecolor" || ct == "24bit") && profile != termenv.Ascii {
		profile = termenv.TrueColor
	}

	return &Capabilities{
		Term:       t,
		Profile:    profile,
		ColorDepth: ProfileDepth(profile),
		Size:       GetSize(),
		TTY:        tty,
		SSH:        isSSH(),
		Tmux:       tmux,
		Mux:        tmux || os.Getenv("STY") != "",
	}
}

// isSSH reports whether the current session is running over SSH.
func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
