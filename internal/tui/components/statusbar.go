package components

import (
	"spendview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. right usually carries
// the month banner and dataset source.
func RenderStatusBar(width int, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	left := " [?]help  [q]uit"
	if right != "" {
		right += " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
