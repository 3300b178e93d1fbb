package tui

import (
	"fmt"
	"strings"

	"spendview/internal/cli"
	"spendview/internal/stats"
	"spendview/internal/tui/components"
	"spendview/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	ds := a.stats
	var b strings.Builder

	// Row 1: totals
	remaining := ds.TotalBudget - ds.TotalSpent
	halves := components.LayoutRow(cw, 3)
	b.WriteString(components.CardRow([]string{
		components.MetricCard("Budget", a.fmtr.Money(ds.TotalBudget), "", halves[0]),
		components.MetricCard("Spent", a.fmtr.Money(ds.TotalSpent), a.fmtr.Percent(ds.SpentPercent)+" of budget", halves[1]),
		components.MetricCard("Remaining", a.fmtr.Money(remaining), "", halves[2]),
	}))
	b.WriteString("\n")

	// Row 2: ring gauge + category breakdown
	pair := components.LayoutRow(cw, 2)
	gaugeCard := components.ContentCard("This Month",
		lipgloss.PlaceHorizontal(components.CardInnerWidth(pair[0]), lipgloss.Center, components.RingGauge(ds.SpentPercent)),
		pair[0], false)
	breakdownCard := components.ContentCard("Where It Went",
		a.renderBreakdown(components.CardInnerWidth(pair[1])),
		pair[1], false)
	b.WriteString(components.CardRow([]string{gaugeCard, breakdownCard}))
	b.WriteString("\n")

	// Budget cards
	for i, budget := range a.ledger.Budgets() {
		b.WriteString(a.renderBudgetCard(i, budget.Category, cw))
		b.WriteString("\n")
	}

	return b.String()
}

func (a App) renderBreakdown(innerW int) string {
	ds := a.stats
	if len(ds.Categories) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("no spend recorded")
	}

	labelW := 0
	for _, cs := range ds.Categories {
		if len(cs.Category) > labelW {
			labelW = len(cs.Category)
		}
	}
	if labelW > 14 {
		labelW = 14
	}
	barW := innerW - labelW - 20
	if barW < 6 {
		barW = 6
	}

	var b strings.Builder
	for i, cs := range ds.Categories {
		b.WriteString(components.CategoryBar(
			cs.Category,
			a.fmtr.Money(cs.Amount),
			a.fmtr.Share(cs.PercentOfTotal),
			cs.Amount, ds.MaxCategoryAmount,
			labelW, barW))
		if i < len(ds.Categories)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (a App) renderBudgetCard(idx int, category string, cw int) string {
	t := theme.Active
	budget, _ := a.ledger.Get(category)
	spent := stats.SpentByCategory(a.ds.Transactions, category)
	pct := stats.SpendPercent(spent, budget.Monthly)
	innerW := components.CardInnerWidth(cw)

	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(t.TierColor(pct)).Bold(true)
	lockStyle := lipgloss.NewStyle().Foreground(t.Yellow)

	var b strings.Builder

	// Spend line + meter
	barW := innerW - 30
	if barW < 10 {
		barW = 10
	}
	b.WriteString(fmt.Sprintf("%s %s %s  %s\n",
		valueStyle.Render(fmt.Sprintf("%s / %s", a.fmtr.Money(spent), a.fmtr.Money(budget.Monthly))),
		mutedStyle.Render("·"),
		pctStyle.Render(a.fmtr.Percent(pct)+" used"),
		components.ProgressBar(pct, barW)))

	// Edit affordance / edit field
	switch {
	case a.editor.Active() && a.editor.Category() == category:
		b.WriteString(mutedStyle.Render("New budget: "))
		b.WriteString(a.editInput.View())
		b.WriteString(dimStyle.Render("  [enter] save  [esc] cancel"))
	case budget.Locked:
		b.WriteString(lockStyle.Render("⚿ locked for this month"))
	default:
		b.WriteString(dimStyle.Render("[e] edit budget  ·  [enter] transactions"))
	}

	// Expanded transaction list
	if a.expand.IsExpanded(category) {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
		b.WriteString("\n")
		for i, txn := range stats.ByCategory(a.ds.Transactions, category) {
			b.WriteString(fmt.Sprintf("%s  %s %s",
				mutedStyle.Render(fmt.Sprintf("%-6s", cli.FormatDate(txn.Date))),
				valueStyle.Render(fmt.Sprintf("%-*s", innerW-22, truncStr(txn.Merchant, innerW-22))),
				valueStyle.Render(fmt.Sprintf("%10s", a.fmtr.Money(txn.Amount)))))
			if i < len(stats.ByCategory(a.ds.Transactions, category))-1 {
				b.WriteString("\n")
			}
		}
	}

	title := category
	if a.expand.IsExpanded(category) {
		title = "▾ " + title
	} else {
		title = "▸ " + title
	}

	return components.ContentCard(title, b.String(), cw, idx == a.cursor)
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
