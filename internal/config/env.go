// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Color output modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Env is the process configuration.
type Env struct {
	Seed      int64  `env:"MASTERMIND_SEED" envDefault:"0"`
	AIBreaker string `env:"MASTERMIND_AI_BREAKER" envDefault:"random"`
	Color     string `env:"MASTERMIND_COLOR" envDefault:"auto"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`

	Telemetry        bool   `env:"MASTERMIND_TELEMETRY" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_DATASET" envDefault:"mastermind"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates Env.
func Load() (Env, error) {
	var cfg Env
	if err := ParseEnv(&cfg); err != nil {
		return Env{}, err
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return Env{}, fmt.Errorf("MASTERMIND_COLOR: unknown mode %q", cfg.Color)
	}
	switch cfg.AIBreaker {
	case "random", "assisted":
	default:
		return Env{}, fmt.Errorf("MASTERMIND_AI_BREAKER: unknown breaker %q", cfg.AIBreaker)
	}
	return cfg, nil
}

// UseColor resolves the color mode against whether stdout is a terminal.
func (e Env) UseColor(isTerminal bool) bool {
	switch e.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
