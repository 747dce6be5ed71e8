package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	styleLine = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	styleEnabled = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	styleDisabled = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	styleStatus = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Italic(true)
)
