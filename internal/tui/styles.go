package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("#A78BFA") // Purple
	accentColor  = lipgloss.Color("#10B981") // Green
	warningColor = lipgloss.Color("#F59E0B") // Amber
	errorColor   = lipgloss.Color("#F87171") // Red
	mutedColor   = lipgloss.Color("#9CA3AF") // Gray
	textColor    = lipgloss.Color("#F9FAFB") // Light text
	borderColor  = lipgloss.Color("#6B7280") // Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(mutedColor)

	rowStyle = lipgloss.NewStyle().
			Foreground(textColor)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor).
				Background(lipgloss.Color("#1F2937"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// Red badge for overdue stages.
	lateBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(errorColor).
			Padding(0, 1)

	onTimeStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(20)

	toastOKStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	toastErrStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	filterStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
)
