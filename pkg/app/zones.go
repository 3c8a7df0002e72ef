package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// HitTester resolves mouse events against named regions of the last
// rendered frame. Widgets mark regions while rendering and query them when
// mouse input arrives.
type HitTester interface {
	Mark(name, s string) string
	Hit(name string, msg tea.MouseMsg) bool
	// Pos returns msg's column relative to the region and the region's
	// width.
	Pos(name string, msg tea.MouseMsg) (x, width int, ok bool)
}

// Zones is the bubblezone-backed HitTester. A nil *Zones is valid and
// never reports a hit, which keeps widgets usable without a terminal.
type Zones struct {
	m      *zone.Manager
	prefix string
}

// NewZones creates a root zone manager. The shell calls Scan on every
// frame it renders.
func NewZones() *Zones {
	return &Zones{m: zone.New()}
}

// Child returns a HitTester sharing the manager under a fresh prefix so
// widgets can use short region names without colliding.
func (z *Zones) Child() *Zones {
	if z == nil {
		return nil
	}
	return &Zones{m: z.m, prefix: z.m.NewPrefix()}
}

// Mark wraps s in zone markers for name.
func (z *Zones) Mark(name, s string) string {
	if z == nil {
		return s
	}
	return z.m.Mark(z.prefix+name, s)
}

// Scan strips zone markers from a complete frame and records positions.
func (z *Zones) Scan(s string) string {
	if z == nil {
		return s
	}
	return z.m.Scan(s)
}

// Hit reports whether msg lies inside region name.
func (z *Zones) Hit(name string, msg tea.MouseMsg) bool {
	if z == nil {
		return false
	}
	info := z.m.Get(z.prefix + name)
	return info != nil && info.InBounds(msg)
}

// Pos implements HitTester.
func (z *Zones) Pos(name string, msg tea.MouseMsg) (x, width int, ok bool) {
	if z == nil {
		return 0, 0, false
	}
	info := z.m.Get(z.prefix + name)
	if info == nil || info.IsZero() {
		return 0, 0, false
	}
	return msg.X - info.StartX, info.EndX - info.StartX + 1, true
}

// Close stops the manager's worker. Only the root should be closed.
func (z *Zones) Close() {
	if z != nil && z.prefix == "" {
		z.m.Close()
	}
}
