package cmd

import (
	"fmt"

	"spendview/internal/cli"
	"spendview/internal/stats"

	"github.com/spf13/cobra"
)

var flagCategory string

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "List transactions, optionally for one category",
	RunE:  runTransactions,
}

func init() {
	transactionsCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Only show this category")
	rootCmd.AddCommand(transactionsCmd)
}

func runTransactions(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ds, _, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	f := formatter(cfg)
	txns := ds.Transactions
	title := "Transactions"
	if flagCategory != "" {
		txns = stats.ByCategory(txns, flagCategory)
		title = fmt.Sprintf("Transactions · %s", flagCategory)
		if len(txns) == 0 {
			return fmt.Errorf("no transactions in category %q", flagCategory)
		}
	}

	rows := make([][]string, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, []string{
			cli.FormatDate(t.Date),
			t.Merchant,
			t.Category,
			string(t.Source),
			f.Money(t.Amount),
		})
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Date", "Merchant", "Category", "Source", "Amount"},
		Rows:    rows,
	}))
	return nil
}
