package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	tokenStyle   = lipgloss.NewStyle().Width(14)
	hexStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginLeft(1)
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func swatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).SetString("      ")
}
