// Package app provides the event types, widget contract, focus ring, toast
// queue and mouse hit-testing shared by the chalkboard shell and its
// widgets.
//
// This package is designed against bubbletea v1.3.x.
package app

import "time"

// TickEvent is sent periodically by the shell ticker to expire toasts.
type TickEvent struct {
	Time time.Time
}

// FrameEvent drives a widget animation. Widgets request frames with
// FrameCmd and ignore frames addressed to other widgets.
type FrameEvent struct {
	WidgetID string
	Time     time.Time
}

// ToastKind selects the toast color.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// ToastEvent asks the shell to show a transient notification.
type ToastEvent struct {
	Kind  ToastKind
	Title string
	Body  string
}

// NavigateEvent moves the shell to a route such as "/" or
// "/widgets/sip-slider".
type NavigateEvent struct {
	Path string
}

// CopyResultEvent reports the outcome of an embed snippet copy. Via names
// the path that carried the text ("clipboard" or "osc52").
type CopyResultEvent struct {
	Via string
	Err error
}

// SettleEvent fires after a delayed state change was scheduled by a
// widget. Seq lets the widget discard events from superseded timers.
type SettleEvent struct {
	WidgetID string
	Seq      int
}

// ThemeChangeEvent switches the active color theme.
type ThemeChangeEvent struct {
	Theme string
}
