package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	PhraseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	GuessedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AFAF")).
			Bold(true)

	MissedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Faint(true)

	GallowsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)
