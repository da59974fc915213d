package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps each style role to a lipgloss style.
type Theme struct {
	Name      string
	Emphasis  lipgloss.Style
	Info      lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Underline lipgloss.Style
	Dim       lipgloss.Style
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:      "default",
		Emphasis:  lipgloss.NewStyle().Bold(true),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Underline: lipgloss.NewStyle().Underline(true),
		Dim:       lipgloss.NewStyle().Faint(true),
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:      "orca",
		Emphasis:  lipgloss.NewStyle().Bold(true),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // pale blue
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("167")), // muted red
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Underline: lipgloss.NewStyle().Underline(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:      "mono",
		Emphasis:  lipgloss.NewStyle().Bold(true),
		Info:      lipgloss.NewStyle(),
		Warn:      lipgloss.NewStyle(),
		Error:     lipgloss.NewStyle(),
		Success:   lipgloss.NewStyle(),
		Underline: lipgloss.NewStyle().Underline(true),
		Dim:       lipgloss.NewStyle(),
	}
}

// ThemeNames lists the built-in themes.
var ThemeNames = []string{"default", "orca", "mono"}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// Style composes the styles of every role and renders text with them.
// Earlier roles win when two roles set the same property.
func (t Theme) Style(text string, roles []Role) string {
	style := lipgloss.NewStyle()
	for _, r := range roles {
		style = style.Inherit(t.role(r))
	}
	return style.Render(text)
}

func (t Theme) role(r Role) lipgloss.Style {
	switch r {
	case Emphasis:
		return t.Emphasis
	case Info:
		return t.Info
	case Warn:
		return t.Warn
	case Error:
		return t.Error
	case Success:
		return t.Success
	case Underline:
		return t.Underline
	case Dim:
		return t.Dim
	}
	return lipgloss.NewStyle()
}
