// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	History HistoryConfig `toml:"history"`
	Log     LogConfig     `toml:"log"`
}

// UIConfig holds editor and rendering settings.
type UIConfig struct {
	// SyntaxTheme is the Chroma theme used to highlight fenced code blocks.
	// Defaults to "monokai" if unset.
	SyntaxTheme string `toml:"syntax_theme"`

	// ShowLineNumbers toggles the line number gutter.
	ShowLineNumbers bool `toml:"show_line_numbers"`

	// Images toggles inline image widgets. When false the raw markup is
	// still hidden but no preview is inserted in its place.
	Images bool `toml:"images"`
}

// SyntaxThemeOrDefault returns the configured syntax theme or "monokai" if unset.
func (u UIConfig) SyntaxThemeOrDefault() string {
	if u.SyntaxTheme == "" {
		return "monokai"
	}
	return u.SyntaxTheme
}

// HistoryConfig holds snapshot store settings.
type HistoryConfig struct {
	// Path to the SQLite database. Defaults to history.db inside DataDir.
	Path string `toml:"path"`

	// Keep is how many snapshots are retained per file. Defaults to 100.
	Keep int `toml:"keep"`
}

// KeepOrDefault returns the configured retention count or 100 if unset.
func (h HistoryConfig) KeepOrDefault() int {
	if h.Keep <= 0 {
		return 100
	}
	return h.Keep
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Defaults to warn.
	Level string `toml:"level"`
}

// LevelOrDefault returns the configured level or "warn" if unset.
func (l LogConfig) LevelOrDefault() string {
	if l.Level == "" {
		return "warn"
	}
	return l.Level
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		UI: UIConfig{ShowLineNumbers: true, Images: true},
	}
}

// Load reads configuration from a TOML file and applies environment variable
// overrides. An empty path means the default location; a missing file there
// is not an error, defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.toml")
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		applyEnvOverrides(cfg)
		return cfg, cfg.Validate()
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	switch c.Log.LevelOrDefault() {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level=%q must be debug, info, warn or error", c.Log.Level))
	}

	if c.History.Keep < 0 {
		errs = append(errs, fmt.Errorf("history.keep=%d must not be negative", c.History.Keep))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"LIVEMARK_SYNTAX_THEME", func(v string) {
			if v != "" {
				cfg.UI.SyntaxTheme = v
			}
		}},
		{"LIVEMARK_HISTORY_PATH", func(v string) {
			if v != "" {
				cfg.History.Path = v
			}
		}},
		{"LIVEMARK_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the livemark data directory (~/.config/livemark).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "livemark"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}

// HistoryDBPath resolves the snapshot database location, creating the data
// directory when the default is used.
func (c *Config) HistoryDBPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := EnsureDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}
