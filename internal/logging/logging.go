// Package logging configures the global zerolog logger. The TUI owns the
// terminal, so log output goes to a file under the data directory instead of
// stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global logger at dir/livemark.log and applies the level.
// Unknown level strings fall back to warn.
func Setup(dir, level string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(dir, "livemark.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// Discard silences the global logger. Used by subcommands that only write to
// stdout and by tests.
func Discard() {
	log.Logger = zerolog.Nop()
}
