package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickCmd returns a bubbletea Cmd that sends a TickEvent after the given
// duration.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// FrameCmd schedules the next animation frame for widget id at fps frames
// per second. A non-positive fps falls back to 30.
func FrameCmd(id string, fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameEvent{WidgetID: id, Time: t}
	})
}

// SettleCmd delivers a SettleEvent for widget id after d.
func SettleCmd(id string, seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return SettleEvent{WidgetID: id, Seq: seq}
	})
}

// ToastCmd emits a ToastEvent immediately.
func ToastCmd(kind ToastKind, title, body string) tea.Cmd {
	return func() tea.Msg {
		return ToastEvent{Kind: kind, Title: title, Body: body}
	}
}

// NavigateCmd emits a NavigateEvent immediately.
func NavigateCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateEvent{Path: path}
	}
}
