package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/costbook/internal/ledger"
	"github.com/theirongolddev/costbook/internal/tui"
	"github.com/theirongolddev/costbook/internal/tui/theme"
)

var flagSeed string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive cost tracker",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, tuiCmd} {
		c.Flags().StringVar(&flagSeed, "seed", "", "Scenario file to start from")
	}
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	theme.SetActive(appCfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	book := ledger.New()
	if flagSeed != "" {
		var err error
		if book, err = loadBook(flagSeed); err != nil {
			return err
		}
	}

	app := tui.NewApp(book, money())
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
