package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Environment variables read by exp, and passed to extensions.
const (
	EnvLedgerFile     = "EXP_LEDGER_FILE"
	EnvCurrency       = "EXP_CURRENCY"
	EnvVerbose        = "EXP_VERBOSE"
	EnvLogLevel       = "EXP_LOG_LEVEL"
	EnvOpeningBalance = "EXP_OPENING_BALANCE"
)

// Config is the exp configuration, read from the environment. Command line flags take precedence.
type Config struct {
	LedgerFile     string `env:"EXP_LEDGER_FILE" envDefault:"expense.json"`
	Currency       string `env:"EXP_CURRENCY" envDefault:"INR"`
	LogLevel       string `env:"EXP_LOG_LEVEL" envDefault:"warn"`
	OpeningBalance string `env:"EXP_OPENING_BALANCE"`
}

// LoadConfig reads the configuration from the environment.
// It loads the given .env files first, or the .env file of the current directory if there is one.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("ignoring .env file", "error", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

var loadedConfig *Config

// config returns the app configuration, loaded once. Defaults are used if it is invalid.
func config() *Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	cfg, err := LoadConfig()
	if err != nil {
		slog.Warn("using default configuration", "error", err)
		cfg = &Config{LedgerFile: "expense.json", Currency: "INR", LogLevel: "warn"}
	}
	loadedConfig = cfg
	return cfg
}
