// Package config loads simulator settings from the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Seed drives shuffling and dealing. Zero picks a random seed.
	Seed              uint64 `env:"DOMINO_SEED" envDefault:"0"`
	LogLevel          string `env:"DOMINO_LOG_LEVEL" envDefault:"warn"`
	MaxDealIterations int    `env:"DOMINO_MAX_DEAL_ITERATIONS" envDefault:"1000"`

	// Addr serves simulated matches over HTTP when set.
	Addr   string `env:"DOMINO_ADDR"`
	JSON   bool   `env:"DOMINO_JSON" envDefault:"false"`
	Glyphs bool   `env:"DOMINO_GLYPHS" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// BindFlags registers flags that override the environment values already in cfg.
func (cfg *Config) BindFlags(fs *flag.FlagSet) {
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for shuffling and dealing (0 = random)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.IntVar(&cfg.MaxDealIterations, "max-deal-iterations", cfg.MaxDealIterations, "dealing iterations before fairness checks are dropped")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "serve simulated matches over HTTP on this address")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print the match transcript as JSON")
	fs.BoolVar(&cfg.Glyphs, "glyphs", cfg.Glyphs, "draw bones with Unicode domino glyphs")
}

func (cfg Config) Validate() error {
	if cfg.MaxDealIterations < 1 {
		return fmt.Errorf("max deal iterations must be positive, not %d", cfg.MaxDealIterations)
	}
	return nil
}

// ParseConfigFromArgs loads defaults from env and then parses flags.
func ParseConfigFromArgs(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.BindFlags(fs)
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
