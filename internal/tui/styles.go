package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorMuted   = lipgloss.Color("#6C6C6C")
	ColorDanger  = lipgloss.Color("#ED567A")
	ColorSuccess = lipgloss.Color("#59B259")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorPrimary).
			Padding(0, 2)

	SummaryLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	SummaryValueStyle = lipgloss.NewStyle().
				Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
