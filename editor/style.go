package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
