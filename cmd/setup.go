package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/costbook/internal/config"
	"github.com/theirongolddev/costbook/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose theme, currency and log level",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFile()
	if err != nil {
		notice(fmt.Errorf("config: %w (starting from defaults)", err))
	}

	vals := tui.SetupValuesFrom(cfg)
	if err := tui.NewSetupForm(vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	if err := config.Save(vals.Apply(cfg)); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `costbook setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
