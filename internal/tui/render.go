package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/yumegusa/nekotoki/internal/stopwatch"
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}

	bg := m.currentBackground()
	bgColor := lipgloss.Color(dimHex(bg.Color, m.prefs.DimLevel))
	starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(bg.StarColor)).Background(bgColor)

	starRows := m.backdrop()
	content := m.contentBlock(bgColor)

	startRow := (m.height - len(content)) / 2
	if startRow < 1 {
		startRow = 1
	}
	rows := centerBlock(starRows, content, startRow, m.width, starStyle)

	// Title on the first row, key hints on the last.
	title := m.theme.Dim.Background(bgColor).Render("NekoToki " + versionLabel())
	rows[0] = overlayRow(starRows[0], title, lipgloss.Width(title), m.width, starStyle)
	if len(rows) > 1 {
		footer := m.footerLine(bgColor)
		rows[len(rows)-1] = overlayRow(starRows[len(rows)-1], footer, lipgloss.Width(footer), m.width, starStyle)
	}

	return strings.Join(rows, "\n")
}

// backdrop returns the star rows, or blank rows when stars are off.
func (m Model) backdrop() []string {
	if m.prefs.StarsEnabled {
		return m.stars.Lines()
	}
	rows := make([]string, m.height)
	blank := strings.Repeat(" ", m.width)
	for i := range rows {
		rows[i] = blank
	}
	return rows
}

// contentBlock renders whatever floats mid-screen: the clock in normal
// mode, or the active modal.
func (m Model) contentBlock(bgColor lipgloss.Color) []string {
	switch m.mode {
	case modeThemePick:
		return m.themePickerBlock(bgColor)
	case modeNewPreset:
		return m.presetInputBlock(bgColor)
	case modeHelp:
		return m.helpBlock(bgColor)
	}
	return m.clockBlock(bgColor)
}

func (m Model) clockBlock(bgColor lipgloss.Color) []string {
	clock, centis := FormatClock(m.sw.Elapsed())
	clockLine := m.theme.Clock.Background(bgColor).Render(clock) +
		m.theme.Centis.Background(bgColor).Render(centis)

	block := []string{clockLine, "", m.controlsLine(bgColor)}

	if time.Now().Before(m.flash.until) {
		block = append(block, "", m.theme.Flash.Background(bgColor).Render(m.flash.text))
	}
	if m.Message != "" {
		block = append(block, "", m.theme.Dim.Background(bgColor).Render(truncate(m.Message, m.width-4)))
	}
	return block
}

// controlsLine renders the start/pause/reset hints, highlighting the one
// that applies in the current state.
func (m Model) controlsLine(bgColor lipgloss.Color) string {
	on := m.theme.ControlOn.Background(bgColor)
	off := m.theme.ControlOff.Background(bgColor)

	render := func(label string, active bool) string {
		if active {
			return on.Render("[" + label + "]")
		}
		return off.Render("[" + label + "]")
	}

	running := m.sw.State() == stopwatch.Running
	paused := m.sw.State() == stopwatch.Paused
	sep := off.Render("  ")
	return render("start", !running) + sep +
		render("pause", running) + sep +
		render("reset", running || paused)
}

func (m Model) themePickerBlock(bgColor lipgloss.Color) []string {
	base := m.theme.Dim.Background(bgColor)
	sel := m.theme.Highlight.Background(bgColor).Bold(true)

	block := []string{m.theme.Flash.Background(bgColor).Render("Select theme"), ""}
	for i, name := range ThemeNames() {
		label := Themes[name].Name
		if i == m.themeCursor {
			block = append(block, sel.Render("> "+label))
		} else {
			block = append(block, base.Render("  "+label))
		}
	}
	block = append(block, "", base.Render("enter apply · esc cancel"))
	return block
}

func (m Model) presetInputBlock(bgColor lipgloss.Color) []string {
	return []string{
		m.theme.Flash.Background(bgColor).Render("New background preset"),
		"",
		m.theme.Input.Render(m.presetInput.View()),
		"",
		m.theme.Dim.Background(bgColor).Render("name #rrggbb [#rrggbb] · enter save · esc cancel"),
	}
}

func (m Model) helpBlock(bgColor lipgloss.Color) []string {
	base := m.theme.Dim.Background(bgColor)
	lines := []string{
		m.theme.Flash.Background(bgColor).Render("Keys"),
		"",
		"space  start / pause",
		"p      pause",
		"r      reset",
		"b      next background",
		"B      new background preset",
		"X      remove background preset",
		"[ ]    adjust background dim",
		"s      toggle stars",
		"t      theme picker",
		"e      export PDF snapshot",
		"q      quit",
		"",
		"any key to close",
	}
	block := make([]string, len(lines))
	for i, l := range lines {
		if i < 2 {
			block[i] = l
			continue
		}
		block[i] = base.Render(l)
	}
	return block
}

func (m Model) footerLine(bgColor lipgloss.Color) string {
	hint := "space start/pause · r reset · b background · t theme · ? help · q quit"
	if m.err != nil {
		hint = fmt.Sprintf("error: %v", m.err)
	}
	return m.theme.Dim.Background(bgColor).Render(truncate(hint, m.width-2))
}
