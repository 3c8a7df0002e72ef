// Package terminal detects the terminal the gallery runs in: which
// emulator it is, how many colors it renders, whether stdout is a TTY and
// how large the window is.
//
// Emulator detection only inspects environment variables and does no I/O.
// Color depth comes from termenv, which also honors NO_COLOR and
// CLICOLOR_FORCE.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown   Terminal = iota
	TermGhostty            // Ghostty
	TermKitty              // Kitty
	TermWezTerm            // WezTerm
	TermITerm2             // iTerm2
	TermAlacritty          // Alacritty
	TermGNOME              // VTE-based (GNOME Terminal, Tilix)
	TermTmux               // tmux multiplexer
	TermScreen             // GNU Screen multiplexer
	TermVSCode             // VS Code integrated terminal
	TermGeneric            // Unknown terminal with basic capabilities
)

// terminalNames maps Terminal values to human-readable strings.
var terminalNames = [...]string{
	TermUnknown:   "unknown",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermGNOME:     "vte",
	TermTmux:      "tmux",
	TermScreen:    "screen",
	TermVSCode:    "vscode",
	TermGeneric:   "generic",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsTrueColor reports whether the terminal is known to render
// 24-bit color.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermGNOME, TermVSCode:
		return true
	default:
		return false
	}
}

// SupportsOSC52 reports whether the terminal accepts OSC 52 clipboard
// writes. VTE terminals ignore them.
func (t Terminal) SupportsOSC52() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermTmux, TermScreen, TermVSCode:
		return true
	default:
		return false
	}
}

// SupportsMouseMotion reports whether the terminal reports pointer motion
// without a held button, which hover previews rely on.
func (t Terminal) SupportsMouseMotion() bool {
	switch t {
	case TermUnknown, TermScreen:
		return false
	default:
		return true
	}
}

// Detect identifies the terminal emulator from environment variables.
// Signals are checked in order of reliability:
//
//  1. TERM_PROGRAM (most terminals set this)
//  2. TERM (xterm-ghostty, xterm-kitty, alacritty)
//  3. Terminal-specific vars (KITTY_WINDOW_ID, ITERM_SESSION_ID, etc.)
//  4. VTE_VERSION for VTE-based terminals
//  5. TMUX / STY for multiplexers
//  6. Fallback to TermGeneric
func Detect() Terminal {
	if tp := os.Getenv("TERM_PROGRAM"); tp != "" {
		switch strings.ToLower(tp) {
		case "ghostty":
			return TermGhostty
		case "kitty":
			return TermKitty
		case "wezterm":
			return TermWezTerm
		case "iterm.app":
			return TermITerm2
		case "vscode":
			return TermVSCode
		case "alacritty":
			return TermAlacritty
		case "tmux":
			return TermTmux
		}
	}

	if term := os.Getenv("TERM"); term != "" {
		switch {
		case term == "xterm-ghostty":
			return TermGhostty
		case term == "xterm-kitty":
			return TermKitty
		case strings.HasPrefix(term, "alacritty"):
			return TermAlacritty
		case strings.HasPrefix(term, "screen") && os.Getenv("STY") != "":
			return TermScreen
		}
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return TermKitty
	}
	if os.Getenv("ITERM_SESSION_ID") != "" || os.Getenv("LC_TERMINAL") == "iTerm2" {
		return TermITerm2
	}
	if os.Getenv("WEZTERM_EXECUTABLE") != "" {
		return TermWezTerm
	}
	if os.Getenv("VTE_VERSION") != "" {
		return TermGNOME
	}

	// Multiplexers last so the inner terminal wins when it is known.
	if os.Getenv("TMUX") != "" {
		return TermTmux
	}
	if os.Getenv("STY") != "" {
		return TermScreen
	}

	return TermGeneric
}
