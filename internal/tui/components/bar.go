package components

import (
	"fmt"
	"strings"

	"spendview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a spend meter colored by tier percentage.
func ProgressBar(pct int, width int) string {
	t := theme.Active

	frac := float64(pct) / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}

	filledStyle := lipgloss.NewStyle().Foreground(t.TierColor(pct))
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}

// CategoryBar renders one row of the per-category breakdown: category
// name, bar scaled against maxAmount, amount, and share of total spend.
func CategoryBar(label, amount, share string, value, maxAmount float64, labelW, barW int) string {
	t := theme.Active

	barLen := 0
	if maxAmount > 0 {
		barLen = int(value / maxAmount * float64(barW))
	}
	if barLen < 0 {
		barLen = 0
	}
	if barLen > barW {
		barLen = barW
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	restStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	shareStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	return fmt.Sprintf("%s %s%s %s %s",
		nameStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(label, labelW))),
		barStyle.Render(strings.Repeat("█", barLen)),
		restStyle.Render(strings.Repeat("░", barW-barLen)),
		amountStyle.Render(fmt.Sprintf("%10s", amount)),
		shareStyle.Render(fmt.Sprintf("%6s", share)))
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
