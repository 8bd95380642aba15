package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Clock      lipgloss.Style
	Centis     lipgloss.Style
	ControlOn  lipgloss.Style
	ControlOff lipgloss.Style
	Flash      lipgloss.Style
	Input      lipgloss.Style
	Dim        lipgloss.Style
	Highlight  lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Clock:      lipgloss.NewStyle().Foreground(lipgloss.Color("#ebe29b")).Bold(true),
		Centis:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ebe29b")),
		ControlOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		ControlOff: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Flash:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(40),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"midnight": {
		Name:       "Midnight",
		Clock:      lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5")).Bold(true),
		Centis:     lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")),
		ControlOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		ControlOff: lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Flash:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(40),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
	"paper": {
		Name:       "Paper",
		Clock:      lipgloss.NewStyle().Foreground(lipgloss.Color("#343b58")).Bold(true),
		Centis:     lipgloss.NewStyle().Foreground(lipgloss.Color("#565a6e")),
		ControlOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		ControlOff: lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
		Flash:      lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("25")).Padding(0, 1).Width(40),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
	},
}

// ResolveTheme returns the named theme, falling back to default.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// ThemeNames returns the selectable theme keys in stable order.
func ThemeNames() []string {
	return []string{"default", "midnight", "paper"}
}
