package tui

import (
	"fmt"
	"time"
)

// FormatClock splits a duration into the two-part display: "HH:MM:SS" and
// ".CC" (centiseconds). Hours are not wrapped; a stopwatch left running
// past a day reads 25:00:00.
func FormatClock(d time.Duration) (string, string) {
	if d < 0 {
		d = 0
	}
	total := d / time.Second
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	cc := (d % time.Second) / (10 * time.Millisecond)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s), fmt.Sprintf(".%02d", cc)
}

// FormatDuration formats a duration for prose contexts (e.g., "2h 15m",
// "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
