package dialogs

import "github.com/charmbracelet/lipgloss"

// Center places a rendered dialog in the middle of a width x height area.
func Center(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		s,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
	)
}
