package assistant

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	module     lipgloss.Style
	connected  lipgloss.Style
	missing    lipgloss.Style
	detail     lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	warning    lipgloss.Style
	user       lipgloss.Style
	assistant  lipgloss.Style
	strong     lipgloss.Style
	suggestion lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		module:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		connected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		missing:    lipgloss.NewStyle().Faint(true),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		user:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		assistant:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
		strong:     lipgloss.NewStyle().Bold(true),
		suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
