package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CBD5E1"))

	headerDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252"))

	repoNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7DD3FC"))

	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	langStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	topicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// applyStyle renders text with the given style when not selected.
// When selected, returns plain text to avoid ANSI reset codes that would
// interrupt the selected row's background highlight.
func applyStyle(s lipgloss.Style, text string, selected bool) string {
	if selected {
		return text
	}
	return s.Render(text)
}
