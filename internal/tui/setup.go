package tui

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/costbook/internal/config"
	"github.com/theirongolddev/costbook/internal/tui/theme"
)

// SetupValues holds the answers of the setup form.
type SetupValues struct {
	Theme    string
	Currency string
	LogLevel string
}

var logLevels = []string{
	zerolog.DebugLevel.String(),
	zerolog.InfoLevel.String(),
	zerolog.WarnLevel.String(),
	zerolog.ErrorLevel.String(),
}

// SetupValuesFrom seeds the form with the current settings.
func SetupValuesFrom(cfg config.Config) *SetupValues {
	return &SetupValues{
		Theme:    cfg.Appearance.Theme,
		Currency: cfg.Display.CurrencySymbol,
		LogLevel: cfg.Log.Level,
	}
}

// NewSetupForm builds the preferences form bound to v.
func NewSetupForm(v *SetupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("costbook setup").
				Description("Saved to " + config.Path()),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&v.Theme),
			huh.NewInput().
				Title("Currency symbol").
				Description("Shown in front of every amount.").
				Value(&v.Currency).
				Validate(validateCurrency),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions(logLevels...)...).
				Value(&v.LogLevel),
		),
	).WithShowHelp(true)
}

func validateCurrency(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("currency symbol is required")
	}
	if utf8.RuneCountInString(s) > 3 {
		return errors.New("use at most 3 characters")
	}
	return nil
}

// Apply writes the answers into cfg.
func (v SetupValues) Apply(cfg config.Config) config.Config {
	cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	if c := strings.TrimSpace(v.Currency); c != "" {
		cfg.Display.CurrencySymbol = c
	}
	if _, err := zerolog.ParseLevel(v.LogLevel); err == nil && v.LogLevel != "" {
		cfg.Log.Level = v.LogLevel
	}
	return cfg
}
