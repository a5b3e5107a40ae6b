package progress

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	stage      lipgloss.Style
	finished   lipgloss.Style
	waiting    lipgloss.Style
	failed     lipgloss.Style
	empty      lipgloss.Style
	flagKey    lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		stage:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		finished:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		waiting:    lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		failed:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:      lipgloss.NewStyle().Faint(true),
		flagKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
