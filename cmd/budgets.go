package cmd

import (
	"fmt"

	"spendview/internal/cli"
	"spendview/internal/stats"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Budget status per category",
	RunE:  runBudgets,
}

func init() {
	rootCmd.AddCommand(budgetsCmd)
}

func runBudgets(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ds, _, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	f := formatter(cfg)

	rows := make([][]string, 0, len(ds.Budgets))
	for _, b := range ds.Budgets {
		spent := stats.SpentByCategory(ds.Transactions, b.Category)
		pct := stats.SpendPercent(spent, b.Monthly)
		pctStr := lipgloss.NewStyle().Foreground(cli.TierColor(pct)).Render(f.Percent(pct))

		status := "editable"
		if b.Locked {
			status = "locked"
		}

		rows = append(rows, []string{
			b.Category,
			f.Money(spent),
			f.Money(b.Monthly),
			pctStr,
			status,
		})
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Category Budgets",
		Headers: []string{"Category", "Spent", "Budget", "Used", "Status"},
		Rows:    rows,
	}))
	return nil
}
