// Package config loads phantomid settings from PHANTOMID_* environment
// variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/zarlcorp/phantomid/internal/random"
	"github.com/zarlcorp/phantomid/internal/registry"
)

// ErrInvalid is returned when a loaded value fails validation.
var ErrInvalid = errors.New("invalid config")

// Config is the process configuration.
type Config struct {
	// DataDir holds the encrypted profile store.
	DataDir string `env:"PHANTOMID_DATA_DIR"`

	// Locale is the default identity locale.
	Locale string `env:"PHANTOMID_LOCALE" envDefault:"en_US"`

	// Luhn makes card numbers checksum-valid.
	Luhn bool `env:"PHANTOMID_LUHN" envDefault:"false"`

	// Seed selects a deterministic source when non-zero.
	Seed uint64 `env:"PHANTOMID_SEED" envDefault:"0"`

	// Workers bounds batch generation concurrency.
	Workers int `env:"PHANTOMID_WORKERS" envDefault:"4"`

	LogLevel  slog.Level `env:"PHANTOMID_LOG_LEVEL" envDefault:"warn"`
	LogFormat string     `env:"PHANTOMID_LOG_FORMAT" envDefault:"text"`
}

// dotEnvFile is read from the working directory when PHANTOMID_ENV_FILE is
// unset.
const dotEnvFile = ".env"

// Load reads the env file, parses the environment, fills derived defaults
// and validates. Variables already set in the environment win over the file.
func Load() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	cfg.Locale = registry.NormalizeLocale(cfg.Locale)
	return cfg, nil
}

// loadEnvFile applies PHANTOMID_ENV_FILE, or ./.env when it exists. A
// missing file is only an error when named explicitly.
func loadEnvFile() error {
	path := os.Getenv("PHANTOMID_ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = dotEnvFile
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("env file: %w", err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

// Validate checks values that env parsing alone cannot.
func (c Config) Validate() error {
	if _, err := registry.Lookup(c.Locale); err != nil {
		return fmt.Errorf("%w: PHANTOMID_LOCALE: %w", ErrInvalid, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: PHANTOMID_WORKERS must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: PHANTOMID_LOG_FORMAT must be text or json, got %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

// Source returns the random source the generators should use.
func (c Config) Source() random.Source {
	if c.Seed != 0 {
		return random.NewSeeded(c.Seed)
	}
	return random.Crypto()
}

// DefaultDataDir returns $XDG_DATA_HOME/phantomid, falling back to
// ~/.local/share/phantomid.
func DefaultDataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, "phantomid")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".phantomid"
	}
	return filepath.Join(home, ".local", "share", "phantomid")
}
