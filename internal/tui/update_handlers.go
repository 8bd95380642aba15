package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yumegusa/nekotoki/internal/config"
	"github.com/yumegusa/nekotoki/internal/util"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeThemePick:
		return m.handleThemePickKey(msg)
	case modeNewPreset:
		return m.handleNewPresetKey(msg)
	case modeHelp:
		m.mode = modeNormal
		return m, nil
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case " ":
		m.sw.Toggle()
		return m, nil
	case "p":
		m.sw.Pause()
		return m, nil
	case "r":
		m.sw.Reset()
		return m, nil
	case "s":
		return m.handleToggleStars()
	case "b":
		return m.handleCycleBackground()
	case "B":
		m.mode = modeNewPreset
		m.presetInput.Reset()
		m.presetInput.Focus()
		return m, nil
	case "X":
		return m.handleDeleteBackground()
	case "[":
		return m.handleAdjustDim(-config.DimStep)
	case "]":
		return m.handleAdjustDim(config.DimStep)
	case "t":
		m.mode = modeThemePick
		m.themeCursor = 0
		for i, name := range ThemeNames() {
			if name == m.prefs.Theme {
				m.themeCursor = i
			}
		}
		return m, nil
	case "e":
		return m.handleExportPDF()
	case "?":
		m.mode = modeHelp
		return m, nil
	}
	return m, nil
}

func (m Model) handleToggleStars() (tea.Model, tea.Cmd) {
	m.prefs.StarsEnabled = !m.prefs.StarsEnabled
	m.savePref(config.PrefStarsEnabled, strconv.Itoa(util.BoolToInt(m.prefs.StarsEnabled)))
	return m, nil
}

func (m Model) handleCycleBackground() (tea.Model, tea.Cmd) {
	if len(m.backgrounds) == 0 {
		return m, nil
	}
	m.bgIdx = (m.bgIdx + 1) % len(m.backgrounds)
	m.prefs.Background = m.backgrounds[m.bgIdx].Name
	m.savePref(config.PrefBackground, m.prefs.Background)
	m.setStatus("background: " + m.prefs.Background)
	return m, nil
}

func (m Model) handleDeleteBackground() (tea.Model, tea.Cmd) {
	if len(m.backgrounds) == 0 {
		return m, nil
	}
	target := m.backgrounds[m.bgIdx]
	if err := m.db.DeleteBackground(m.ctx, target.ID); err != nil {
		m.setStatus(fmt.Sprintf("cannot remove %s: %v", target.Name, err))
		return m, nil
	}
	m.refreshBackgrounds()
	if m.bgIdx >= len(m.backgrounds) {
		m.bgIdx = 0
	}
	m.prefs.Background = m.currentBackground().Name
	m.savePref(config.PrefBackground, m.prefs.Background)
	m.setStatus("removed " + target.Name)
	return m, nil
}

func (m Model) handleAdjustDim(delta int) (tea.Model, tea.Cmd) {
	m.prefs.DimLevel = util.Clamp(m.prefs.DimLevel+delta, config.DimMin, config.DimMax)
	m.savePref(config.PrefDimLevel, strconv.Itoa(m.prefs.DimLevel))
	return m, nil
}

func (m Model) handleThemePickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := ThemeNames()
	switch msg.String() {
	case "up", "k":
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case "down", "j":
		if m.themeCursor < len(names)-1 {
			m.themeCursor++
		}
	case "enter":
		m.prefs.Theme = names[m.themeCursor]
		m.theme = ResolveTheme(m.prefs.Theme)
		m.savePref(config.PrefTheme, m.prefs.Theme)
		m.mode = modeNormal
	case "esc":
		m.mode = modeNormal
	}
	return m, nil
}

func (m Model) handleNewPresetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.presetInput.Blur()
		return m, nil
	case "enter":
		return m.submitNewPreset()
	}
	var cmd tea.Cmd
	m.presetInput, cmd = m.presetInput.Update(msg)
	return m, cmd
}

func (m Model) submitNewPreset() (tea.Model, tea.Cmd) {
	name, color, starColor, err := parsePresetSpec(m.presetInput.Value())
	if err != nil {
		m.setStatus(err.Error())
		return m, nil
	}
	if _, err := m.db.AddBackground(m.ctx, name, color, starColor); err != nil {
		m.setStatus(fmt.Sprintf("cannot add %s: %v", name, err))
		return m, nil
	}
	m.refreshBackgrounds()
	for i, bg := range m.backgrounds {
		if bg.Name == name {
			m.bgIdx = i
		}
	}
	m.prefs.Background = name
	m.savePref(config.PrefBackground, name)
	m.mode = modeNormal
	m.presetInput.Blur()
	m.setStatus("added " + name)
	return m, nil
}

// parsePresetSpec parses "name #rrggbb [#rrggbb]", the second color being
// the star color (white when omitted).
func parsePresetSpec(s string) (name, color, starColor string, err error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 2 || len(fields) > 3 {
		return "", "", "", fmt.Errorf("expected: name #rrggbb [#rrggbb]")
	}
	name = strings.ToLower(fields[0])
	color = fields[1]
	starColor = "#ffffff"
	if len(fields) == 3 {
		starColor = fields[2]
	}
	if !validHex(color) || !validHex(starColor) {
		return "", "", "", fmt.Errorf("colors must be #rrggbb")
	}
	return name, color, starColor, nil
}

func (m *Model) refreshBackgrounds() {
	backgrounds, err := m.db.GetBackgrounds(m.ctx)
	if err != nil {
		m.err = err
		return
	}
	m.backgrounds = backgrounds
}

func (m Model) handleExportPDF() (tea.Model, tea.Cmd) {
	path, err := GenerateSnapshotPDF(util.ReportsDir(config.AppName), time.Now(), m.sw.Elapsed(), m.sw.State())
	if err != nil {
		m.setStatus(fmt.Sprintf("export failed: %v", err))
		return m, nil
	}
	m.setStatus("exported " + path)
	return m, nil
}
