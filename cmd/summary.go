package cmd

import (
	"fmt"
	"time"

	"spendview/internal/cli"
	"spendview/internal/stats"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Overall spend vs budget for the month",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ds, _, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	f := formatter(cfg)
	derived := stats.Compute(ds.Transactions, ds.Budgets)

	fmt.Println(cli.RenderTitle(fmt.Sprintf("Spend Overview · %s", cli.FormatMonth(time.Now()))))
	fmt.Println()

	pctStyle := lipgloss.NewStyle().Foreground(cli.TierColor(derived.SpentPercent)).Bold(true)
	fmt.Println(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Total budget", f.Money(derived.TotalBudget)},
			{"Total spent", f.Money(derived.TotalSpent)},
			{"Remaining", f.Money(derived.TotalBudget - derived.TotalSpent)},
			{"Used", pctStyle.Render(f.Percent(derived.SpentPercent))},
		},
	}))

	// Per-category breakdown, largest spend first.
	if len(derived.Categories) > 0 {
		labelW := 0
		for _, cs := range derived.Categories {
			if len(cs.Category) > labelW {
				labelW = len(cs.Category)
			}
		}
		for _, cs := range derived.Categories {
			fmt.Println(cli.RenderSpendBar(
				cs.Category,
				f.Money(cs.Amount),
				f.Share(cs.PercentOfTotal),
				cs.Amount, derived.MaxCategoryAmount,
				labelW, 28))
		}
		fmt.Println()
	}

	return nil
}
