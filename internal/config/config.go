// Package config handles configuration loading from TOML files and
// environment variables.
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
	Storage StorageConfig `toml:"storage"`
	Sheet   SheetConfig   `toml:"sheet"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig holds sheet database settings.
type StorageConfig struct {
	// Path to the SQLite database. Defaults to <data dir>/sheets.db.
	Path string `toml:"path"`
}

// SheetConfig holds defaults for brand-new sheets.
type SheetConfig struct {
	DefaultRows int `toml:"default_rows"`
	DefaultCols int `toml:"default_cols"`
}

// RowsOrDefault returns the configured new-sheet row count or 8.
func (s SheetConfig) RowsOrDefault() int {
	if s.DefaultRows <= 0 {
		return 8
	}
	return s.DefaultRows
}

// ColsOrDefault returns the configured new-sheet column count or 4.
func (s SheetConfig) ColsOrDefault() int {
	if s.DefaultCols <= 0 {
		return 4
	}
	return s.DefaultCols
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// MinColWidth / MaxColWidth bound rendered grid column widths.
	MinColWidth int `toml:"min_col_width"`
	MaxColWidth int `toml:"max_col_width"`
}

// MinColOrDefault returns the configured minimum column width or 4.
func (u UIConfig) MinColOrDefault() int {
	if u.MinColWidth <= 0 {
		return 4
	}
	return u.MinColWidth
}

// MaxColOrDefault returns the configured maximum column width or 24.
func (u UIConfig) MaxColOrDefault() int {
	if u.MaxColWidth <= 0 {
		return 24
	}
	return u.MaxColWidth
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `toml:"level"`
}

// LevelOrDefault returns the configured level or "info".
func (l LogConfig) LevelOrDefault() string {
	if l.Level == "" {
		return "info"
	}
	return l.Level
}

// Load reads configuration from a TOML file and applies environment
// variable overrides. A missing file is not an error (defaults apply),
// but a file that exists and fails to parse or validate is.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
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
	case "trace", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level=%q is not a known level", c.Log.Level))
	}

	if c.UI.MinColWidth < 0 || c.UI.MaxColWidth < 0 {
		errs = append(errs, errors.New("ui: column widths must not be negative"))
	}
	if c.UI.MinColWidth > 0 && c.UI.MaxColWidth > 0 && c.UI.MinColWidth > c.UI.MaxColWidth {
		errs = append(errs, fmt.Errorf("ui: min_col_width=%d exceeds max_col_width=%d",
			c.UI.MinColWidth, c.UI.MaxColWidth))
	}
	if c.Sheet.DefaultRows < 0 || c.Sheet.DefaultCols < 0 {
		errs = append(errs, errors.New("sheet: default dimensions must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"TABLY_DB_PATH", func(v string) {
			if v != "" {
				cfg.Storage.Path = v
			}
		}},
		{"TABLY_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the tably data directory (~/.config/tably).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tably"), nil
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

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
