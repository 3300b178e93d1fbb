package cmd

import (
	"fmt"

	"spendview/internal/cli"
	"spendview/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	dataFile := cfg.General.DataFile
	if dataFile == "" {
		dataFile = "(bundled demo data)"
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title: "Configuration",
		Rows: [][]string{
			{"Config file", config.Path()},
			{"Currency", cfg.General.CurrencySymbol},
			{"Locale", cfg.General.Locale},
			{"Data file", dataFile},
			{"Theme", cfg.Appearance.Theme},
		},
	}))
	return nil
}
