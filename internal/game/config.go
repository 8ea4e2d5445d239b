package game

import (
	"github.com/rs/zerolog"

	"github.com/samdwyer/mastermind/internal/player"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible automated players.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// AIBreaker selects the automated code-breaker variant (KindRandom or KindAssisted).
	// The zero value (KindHuman) falls back to KindRandom.
	AIBreaker player.Kind

	// Color enables ANSI colored output.
	Color bool

	// Logger receives diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}
