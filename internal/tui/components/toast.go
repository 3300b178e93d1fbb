package components

import (
	"spendview/internal/overview"
	"spendview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderToast renders the transient notification banner, centered in
// width. Success toasts get the celebratory treatment; errors are plain.
func RenderToast(message string, kind overview.ToastKind, width int) string {
	t := theme.Active

	var border lipgloss.Color
	var icon string
	switch kind {
	case overview.ToastError:
		border = t.Red
		icon = "✗ "
	default:
		border = t.Green
		icon = "✦ "
	}

	banner := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(t.TextPrimary).
		Padding(0, 2).
		Render(lipgloss.NewStyle().Foreground(border).Bold(true).Render(icon) + message)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, banner)
}
