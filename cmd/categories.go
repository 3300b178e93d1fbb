package cmd

import (
	"fmt"

	"spendview/internal/cli"
	"spendview/internal/stats"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Per-category spend breakdown",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ds, _, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	f := formatter(cfg)
	derived := stats.Compute(ds.Transactions, ds.Budgets)

	rows := make([][]string, 0, len(derived.Categories))
	for _, cs := range derived.Categories {
		rows = append(rows, []string{
			cs.Category,
			f.Money(cs.Amount),
			f.Share(cs.PercentOfTotal),
		})
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Spend by Category",
		Headers: []string{"Category", "Spent", "Share"},
		Rows:    rows,
	}))
	return nil
}
