package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/idilsaglam/expenses/internal/model"
)

// ------- styling (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	amountStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	evenRowStyle  = lipgloss.NewStyle().Background(lipgloss.Color("237"))
	oddRowStyle   = lipgloss.NewStyle()
	helpStyle     = lipgloss.NewStyle().Faint(true)
	emptyStyle    = lipgloss.NewStyle().Bold(true).Padding(1, 2)

	chipStyle       = lipgloss.NewStyle().Padding(0, 1)
	chipActiveStyle = lipgloss.NewStyle().Padding(0, 1).Reverse(true)
	labelStyle      = lipgloss.NewStyle().Width(10)
	focusLabelStyle = labelStyle.Foreground(lipgloss.Color("12")).Bold(true)
)

func categoryStyle(c model.Category) lipgloss.Style {
	switch c {
	case model.Food:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	case model.Transport:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	}
}

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
}

func panelString(inner string) string {
	return boxStyle().Render(inner)
}
