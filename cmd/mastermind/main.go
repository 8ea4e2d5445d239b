// Package main is the entry point for Mastermind.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/samdwyer/mastermind/internal/config"
	"github.com/samdwyer/mastermind/internal/game"
	"github.com/samdwyer/mastermind/internal/gamedata"
	"github.com/samdwyer/mastermind/internal/player"
	"github.com/samdwyer/mastermind/internal/telemetry"
)

func main() {
	// Load .env file for local development. Not fatal: env vars might be set directly.
	dotenvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootstrap := newLogger(os.Stderr, "")
		bootstrap.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)
	if dotenvErr != nil {
		logger.Debug().Err(dotenvErr).Msg(".env file not loaded")
	}

	if err := run(context.Background(), cfg, &logger); err != nil {
		logger.Error().Err(err).Msg("game error")
		os.Exit(1)
	}
}

// newLogger builds the stderr diagnostics logger. Unknown or empty levels
// fall back to warn so the game transcript on stdout stays readable.
func newLogger(out io.Writer, level string) zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).With().Timestamp().Logger()
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logger = logger.Level(zerolog.WarnLevel)
		if level != "" {
			logger.Warn().Str("level", level).Msg("unknown log level, using warn")
		}
		return logger
	}
	return logger.Level(lvl)
}

// run plays one full game on the process console.
func run(ctx context.Context, cfg config.Env, logger *zerolog.Logger) error {
	if cfg.Telemetry {
		telemetry.ConfigureHoneycomb(cfg.HoneycombAPIKey, cfg.HoneycombDataset)
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("shutting down telemetry")
				}
			}()
		}
	}

	breaker, err := player.ParseKind(cfg.AIBreaker)
	if err != nil {
		return err
	}

	palette, err := gamedata.LoadPalette()
	if err != nil {
		return fmt.Errorf("load palette: %w", err)
	}

	g, err := game.New(game.Config{
		Seed:      cfg.Seed,
		AIBreaker: breaker,
		Color:     cfg.UseColor(term.IsTerminal(int(os.Stdout.Fd()))),
		Logger:    logger,
	}, os.Stdin, os.Stdout, palette)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	_, err = g.Run(ctx)
	return err
}
