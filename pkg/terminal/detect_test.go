package terminal

import (
	"os"
	"testing"

	"github.com/muesli/termenv"
)

// termEnvVars lists all environment variables inspected during detection.
// Tests clear these before each case to ensure isolation.
var termEnvVars = []string{
	"TERM_PROGRAM", "TERM", "COLORTERM",
	"KITTY_WINDOW_ID", "ITERM_SESSION_ID", "WEZTERM_EXECUTABLE",
	"VTE_VERSION", "LC_TERMINAL", "TMUX", "STY",
	"SSH_TTY", "SSH_CONNECTION", "SSH_CLIENT",
	"NO_COLOR", "CLICOLOR_FORCE",
	"COLUMNS", "LINES",
}

// clearTermEnv unsets all terminal-related env vars for test isolation.
// Uses t.Setenv under the hood (via save/restore) so cleanup is automatic.
func clearTermEnv(t *testing.T) {
	t.Helper()
	for _, v := range termEnvVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

// --- Terminal Detection Tests ---

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Terminal
	}{
		{"ghostty program", map[string]string{"TERM_PROGRAM": "ghostty"}, TermGhostty},
		{"ghostty term", map[string]string{"TERM": "xterm-ghostty"}, TermGhostty},
		{"kitty program", map[string]string{"TERM_PROGRAM": "kitty"}, TermKitty},
		{"kitty term", map[string]string{"TERM": "xterm-kitty"}, TermKitty},
		{"kitty window id", map[string]string{"KITTY_WINDOW_ID": "3"}, TermKitty},
		{"wezterm program", map[string]string{"TERM_PROGRAM": "WezTerm"}, TermWezTerm},
		{"wezterm executable", map[string]string{"WEZTERM_EXECUTABLE": "/usr/bin/wezterm"}, TermWezTerm},
		{"iterm2 program", map[string]string{"TERM_PROGRAM": "iTerm.app"}, TermITerm2},
		{"iterm2 session", map[string]string{"ITERM_SESSION_ID": "w0t0p0"}, TermITerm2},
		{"iterm2 lc_terminal", map[string]string{"LC_TERMINAL": "iTerm2"}, TermITerm2},
		{"alacritty term", map[string]string{"TERM": "alacritty"}, TermAlacritty},
		{"vscode", map[string]string{"TERM_PROGRAM": "vscode"}, TermVSCode},
		{"vte", map[string]string{"VTE_VERSION": "7201"}, TermGNOME},
		{"tmux", map[string]string{"TMUX": "/tmp/tmux-1000/default,1,0"}, TermTmux},
		{"screen", map[string]string{"TERM": "screen-256color", "STY": "1.pts-0"}, TermScreen},
		{"generic", map[string]string{"TERM": "xterm-256color"}, TermGeneric},
		{"program wins over tmux", map[string]string{"TERM_PROGRAM": "ghostty", "TMUX": "x"}, TermGhostty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTermEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := Detect(); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminal_String(t *testing.T) {
	tests := []struct {
		term Terminal
		want string
	}{
		{TermUnknown, "unknown"},
		{TermGhostty, "ghostty"},
		{TermGNOME, "vte"},
		{TermScreen, "screen"},
		{TermGeneric, "generic"},
		{Terminal(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.term.String(); got != tt.want {
			t.Errorf("Terminal(%d).String() = %q, want %q", int(tt.term), got, tt.want)
		}
	}
}

func TestTerminal_Capabilities(t *testing.T) {
	tests := []struct {
		term                     Terminal
		trueColor, osc52, motion bool
	}{
		{TermGhostty, true, true, true},
		{TermGNOME, true, false, true},
		{TermTmux, false, true, true},
		{TermScreen, false, true, false},
		{TermGeneric, false, false, true},
		{TermUnknown, false, false, false},
	}
	for _, tt := range tests {
		if got := tt.term.SupportsTrueColor(); got != tt.trueColor {
			t.Errorf("%v.SupportsTrueColor() = %v, want %v", tt.term, got, tt.trueColor)
		}
		if got := tt.term.SupportsOSC52(); got != tt.osc52 {
			t.Errorf("%v.SupportsOSC52() = %v, want %v", tt.term, got, tt.osc52)
		}
		if got := tt.term.SupportsMouseMotion(); got != tt.motion {
			t.Errorf("%v.SupportsMouseMotion() = %v, want %v", tt.term, got, tt.motion)
		}
	}
}

// --- Size Tests ---

func TestGetSizeFromEnv(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "43")

	got := getSizeFromEnv()
	if got.Cols != 132 || got.Rows != 43 {
		t.Errorf("getSizeFromEnv() = %+v, want 132x43", got)
	}
}

func TestGetSizeFromEnv_Defaults(t *testing.T) {
	clearTermEnv(t)

	got := getSizeFromEnv()
	if got.Cols != 80 || got.Rows != 24 {
		t.Errorf("getSizeFromEnv() = %+v, want 80x24", got)
	}
}

func TestGetSizeFromFd_InvalidFd(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("COLUMNS", "100")
	t.Setenv("LINES", "30")

	got := GetSizeFromFd(^uintptr(0))
	if got.Cols != 100 || got.Rows != 30 {
		t.Errorf("GetSizeFromFd(invalid) = %+v, want env fallback 100x30", got)
	}
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 7},
		{"42", 42},
		{"abc", 7},
		{"0", 7},
		{"-5", 7},
	}
	for _, tt := range tests {
		t.Setenv("CHALKBOARD_TEST_INT", tt.value)
		if got := envInt("CHALKBOARD_TEST_INT", 7); got != tt.want {
			t.Errorf("envInt(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

// --- Capabilities Tests ---

func TestProfileDepth(t *testing.T) {
	tests := []struct {
		p    termenv.Profile
		want int
	}{
		{termenv.TrueColor, 24},
		{termenv.ANSI256, 8},
		{termenv.ANSI, 4},
		{termenv.Ascii, 1},
	}
	for _, tt := range tests {
		if got := ProfileDepth(tt.p); got != tt.want {
			t.Errorf("ProfileDepth(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestDetectCapabilities_Multiplexers(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")

	caps := ForceRefresh()
	if !caps.Tmux || !caps.Mux {
		t.Errorf("tmux: Tmux=%v Mux=%v, want both true", caps.Tmux, caps.Mux)
	}

	clearTermEnv(t)
	t.Setenv("STY", "1.pts-0")
	caps = ForceRefresh()
	if caps.Tmux || !caps.Mux {
		t.Errorf("screen: Tmux=%v Mux=%v, want false/true", caps.Tmux, caps.Mux)
	}
}

func TestDetectCapabilities_SSH(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("SSH_CONNECTION", "10.0.0.1 52000 10.0.0.2 22")

	if caps := ForceRefresh(); !caps.SSH {
		t.Error("SSH = false with SSH_CONNECTION set")
	}
}

func TestDetectCapabilities_ForcedTrueColor(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("CLICOLOR_FORCE", "1")
	t.Setenv("COLORTERM", "truecolor")

	caps := ForceRefresh()
	if caps.ColorDepth != 24 || !caps.TrueColor() {
		t.Errorf("ColorDepth = %d, want 24", caps.ColorDepth)
	}
}

func TestDetectCapabilities_NoColor(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("NO_COLOR", "1")
	t.Setenv("COLORTERM", "truecolor")

	caps := ForceRefresh()
	if caps.Profile != termenv.Ascii || caps.ColorDepth != 1 {
		t.Errorf("Profile = %v depth %d, want Ascii/1", caps.Profile, caps.ColorDepth)
	}
}

func TestCached_ReturnsLastDetection(t *testing.T) {
	clearTermEnv(t)
	caps := ForceRefresh()
	if Cached() != caps {
		t.Error("Cached() did not return the refreshed capabilities")
	}
	if DetectCapabilities() != caps {
		t.Error("DetectCapabilities() re-detected after ForceRefresh")
	}
}
