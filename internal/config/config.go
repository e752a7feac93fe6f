// Package config loads and saves costbook preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all costbook configuration.
type Config struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Display    DisplayConfig    `toml:"display"`
	Log        LogConfig        `toml:"log"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DisplayConfig controls how amounts are printed. It never affects stored values.
type DisplayConfig struct {
	CurrencySymbol string `toml:"currency_symbol"`
	DecimalPlaces  int32  `toml:"decimal_places"`
}

// LogConfig controls the log file. The terminal belongs to the UI, so logs
// never go to stdout.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "human"
	File   string `toml:"file,omitempty"`
}

// Environment overrides, applied after the config file.
const (
	EnvTheme    = "COSTBOOK_THEME"
	EnvCurrency = "COSTBOOK_CURRENCY"
	EnvLogLevel = "COSTBOOK_LOG_LEVEL"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Display: DisplayConfig{
			CurrencySymbol: "€",
			DecimalPlaces:  2,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "costbook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "costbook")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// StateDir returns the XDG state directory used for the log file.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "costbook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "costbook")
}

// LogPath returns the configured log file, or the default under StateDir.
func (c Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(StateDir(), "costbook.log")
}

var dotenvOnce sync.Once

// loadDotEnv reads ./.env into the process environment once. Variables that
// are already set win, and a missing file is not an error.
func loadDotEnv() {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied in both cases.
func Load() (Config, error) {
	loadDotEnv()
	cfg, err := LoadFile()
	return applyEnv(cfg), err
}

// LoadFile reads the config file without environment overrides. It is what
// setup edits, so a temporary override never ends up on disk.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Display.DecimalPlaces < 0 {
		cfg.Display.DecimalPlaces = 2
	}
	return cfg, nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Display.CurrencySymbol = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
