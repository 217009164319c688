package ui

import "github.com/charmbracelet/lipgloss"

var (
	colAccent     = lipgloss.Color("63")
	colMuted      = lipgloss.Color("241")
	colHeader     = lipgloss.Color("252")
	colError      = lipgloss.Color("203")
	colOk         = lipgloss.Color("78")
	colSelectedFg = lipgloss.Color("229")
	colSelectedBg = lipgloss.Color("57")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colAccent)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colMuted)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colMuted).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(colAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(colHeader).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(colError)

	statusStyle = lipgloss.NewStyle().
			Foreground(colOk)

	helpStyle = lipgloss.NewStyle().
			Foreground(colMuted)
)
