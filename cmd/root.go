// Package cmd implements the costbook CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/costbook/internal/cli"
	"github.com/theirongolddev/costbook/internal/config"
	"github.com/theirongolddev/costbook/internal/ledger"
	"github.com/theirongolddev/costbook/internal/logging"
	"github.com/theirongolddev/costbook/internal/scenario"
)

var (
	flagQuiet    bool
	flagCurrency string

	// Effective config for the running command, set in PersistentPreRunE.
	appCfg    = config.DefaultConfig()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "costbook",
	Short: "Project cost tracker",
	Long: "Record budgets per cost component, log incurred and forecast expenses\n" +
		"against them, and read the resulting profit/loss per component.",
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
	PersistentPostRun: closeRuntime,
	RunE:              runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notices on stderr")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Currency symbol for amounts (overrides config)")
}

// initRuntime loads config and starts logging. Neither failure is fatal:
// a broken config falls back to defaults, a broken log file disables logging.
func initRuntime(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		notice(fmt.Errorf("config: %w (using defaults)", err))
	}
	if flagCurrency != "" {
		cfg.Display.CurrencySymbol = flagCurrency
	}
	appCfg = cfg

	closer, err := logging.Setup(cfg)
	if err != nil {
		notice(fmt.Errorf("logging disabled: %w", err))
	}
	logCloser = closer

	log.Debug().Str("command", cmd.CommandPath()).Msg("start")
	return nil
}

func closeRuntime(_ *cobra.Command, _ []string) {
	if logCloser != nil {
		_ = logCloser.Close()
	}
}

func notice(err error) {
	if flagQuiet {
		return
	}
	fmt.Fprintln(os.Stderr, cli.RenderNotice(err))
}

func money() cli.Money {
	return cli.Money{
		Symbol: appCfg.Display.CurrencySymbol,
		Places: appCfg.Display.DecimalPlaces,
	}
}

// loadBook replays a scenario file into a fresh book.
func loadBook(path string) (ledger.Book, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return ledger.Book{}, err
	}
	book, err := sc.Apply(ledger.New(), time.Now)
	if err != nil {
		return ledger.Book{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Info().
		Str("file", path).
		Int("steps", len(sc.Steps)).
		Int("budgets", len(book.Budgets())).
		Int("details", len(book.Details())).
		Msg("scenario loaded")
	return book, nil
}
