package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	doneStyle       = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
