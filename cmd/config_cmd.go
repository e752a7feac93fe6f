package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/costbook/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appCfg

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency symbol: %s\n", cfg.Display.CurrencySymbol)
	fmt.Printf("    Decimal places:  %d\n", cfg.Display.DecimalPlaces)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level:  %s\n", cfg.Log.Level)
	fmt.Printf("    Format: %s\n", cfg.Log.Format)
	fmt.Printf("    File:   %s\n", cfg.LogPath())
	fmt.Println()

	fmt.Printf("  Environment overrides: %s, %s, %s\n", config.EnvTheme, config.EnvCurrency, config.EnvLogLevel)
	fmt.Println("  Run `costbook setup` to reconfigure.")
	return nil
}
