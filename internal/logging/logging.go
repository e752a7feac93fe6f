// Package logging configures the global zerolog logger for costbook.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/theirongolddev/costbook/internal/config"
)

// Setup points the global logger at the configured log file and returns a
// closer for it. If the file cannot be opened, logging is disabled and the
// error is returned; the caller may carry on without logs.
func Setup(cfg config.Config) (io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		Disable()
		return nopCloser{}, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		Disable()
		return nopCloser{}, fmt.Errorf("opening log file: %w", err)
	}

	log.Logger = zerolog.New(writerFor(cfg.Log.Format, f)).With().Timestamp().Logger()
	return f, nil
}

// Disable silences the global logger.
func Disable() {
	log.Logger = zerolog.Nop()
}

func writerFor(format string, w io.Writer) io.Writer {
	if format == "human" {
		return zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return w
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
