package tui

import (
	"fmt"
	"strings"

	"spendview/internal/cli"
	"spendview/internal/tui/components"
	"spendview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTransactionsTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	srcStyle := lipgloss.NewStyle().Foreground(t.Cyan)

	dateW := 7
	amountW := 11
	srcW := 7
	catW := 14
	merchantW := innerW - dateW - amountW - srcW - catW - 4
	if merchantW < 12 {
		merchantW = 12
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %-*s %-*s %-*s %*s",
		dateW, "Date", merchantW, "Merchant", catW, "Category", srcW, "Source", amountW, "Amount")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	for i, txn := range a.ds.Transactions {
		body.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s ", dateW, cli.FormatDate(txn.Date))))
		body.WriteString(rowStyle.Render(fmt.Sprintf("%-*s ", merchantW, truncStr(txn.Merchant, merchantW))))
		body.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s ", catW, truncStr(txn.Category, catW))))
		body.WriteString(srcStyle.Render(fmt.Sprintf("%-*s ", srcW, string(txn.Source))))
		body.WriteString(rowStyle.Render(fmt.Sprintf("%*s", amountW, a.fmtr.Money(txn.Amount))))
		if i < len(a.ds.Transactions)-1 {
			body.WriteString("\n")
		}
	}

	title := fmt.Sprintf("Transactions (%d)", len(a.ds.Transactions))
	return components.ContentCard(title, body.String(), cw, false)
}
