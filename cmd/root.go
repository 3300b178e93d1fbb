package cmd

import (
	"fmt"
	"os"
	"time"

	"spendview/internal/cli"
	"spendview/internal/config"
	"spendview/internal/dataset"
	"spendview/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagData     string
	flagLocale   string
	flagCurrency string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "spendview",
	Short: "Monthly spend overview for your terminal",
	Long:  "Track monthly spend against category budgets: totals, per-category breakdowns, and one-time budget edits.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagData, "data", "d", "", "Transaction snapshot file (default: bundled demo data)")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Locale for number grouping (e.g. en-IN)")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Currency glyph prefix")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig merges the config file, environment, and command-line flags,
// flags winning.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
	}
	if flagData != "" {
		cfg.General.DataFile = flagData
	}
	if flagLocale != "" {
		cfg.General.Locale = flagLocale
	}
	if flagCurrency != "" {
		cfg.General.CurrencySymbol = flagCurrency
	}
	return cfg
}

// loadDataset is the shared data loading path used by all commands. It
// returns the dataset and a short provenance label for display.
func loadDataset(cfg config.Config) (dataset.Dataset, string, error) {
	if cfg.General.DataFile == "" {
		return dataset.Demo(time.Now()), "demo data", nil
	}

	ds, err := store.LoadDataset(cfg.General.DataFile)
	if err != nil {
		return dataset.Dataset{}, "", fmt.Errorf("loading snapshot %s: %w", cfg.General.DataFile, err)
	}
	ds.SortByDate()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loaded %d transactions, %d budgets from %s\n",
			len(ds.Transactions), len(ds.Budgets), cfg.General.DataFile)
	}
	return ds, cfg.General.DataFile, nil
}

func formatter(cfg config.Config) cli.Formatter {
	return cli.NewFormatter(cfg.General.CurrencySymbol, cfg.General.Locale)
}
