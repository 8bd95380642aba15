package models

import "time"

// BackgroundPreset is a named terminal background: a base color the clock
// floats on plus the color stars are drawn in. Presets stand in for the
// background images of a graphical stopwatch; builtins are seeded at first
// run and cannot be deleted.
type BackgroundPreset struct {
	ID        int64
	Name      string
	Color     string // lipgloss color, e.g. "#1a1b26" or "235"
	StarColor string
	Builtin   bool
	CreatedAt time.Time
}

// Preferences are the runtime-mutable display settings persisted between
// sessions. Elapsed time is deliberately absent: the stopwatch always
// starts from zero.
type Preferences struct {
	Theme        string
	Background   string
	DimLevel     int // 0 (opaque) .. 255 (fully dimmed)
	StarsEnabled bool
	TickInterval time.Duration
}
