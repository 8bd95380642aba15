package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func truncate(text string, max int) string {
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}

// dimHex blends a hex color toward black by level/255.
func dimHex(hex string, level int) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	k := float64(level) / 255.0
	return c.BlendRgb(colorful.Color{}, k).Hex()
}

// validHex reports whether s parses as a #rrggbb color.
func validHex(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}

// overlayRow splices styled content into the center of a star row. The
// surrounding star segments keep their own style so the field stays
// visible right up to the content edges.
func overlayRow(starRow string, content string, contentWidth int, totalWidth int, starStyle lipgloss.Style) string {
	pad := (totalWidth - contentWidth) / 2
	if pad < 0 {
		pad = 0
	}
	runes := []rune(starRow)
	left, right := "", ""
	if pad <= len(runes) {
		left = string(runes[:pad])
	} else {
		left = string(runes) + strings.Repeat(" ", pad-len(runes))
	}
	rightStart := pad + contentWidth
	if rightStart < len(runes) {
		right = string(runes[rightStart:])
	}
	return starStyle.Render(left) + content + starStyle.Render(right)
}

// centerBlock overlays content rows onto the star rows starting at
// startRow, styling untouched star rows whole.
func centerBlock(starRows []string, content []string, startRow int, totalWidth int, starStyle lipgloss.Style) []string {
	out := make([]string, len(starRows))
	for i, row := range starRows {
		ci := i - startRow
		if ci >= 0 && ci < len(content) {
			out[i] = overlayRow(row, content[ci], ansi.StringWidth(content[ci]), totalWidth, starStyle)
		} else {
			out[i] = starStyle.Render(row)
		}
	}
	return out
}
