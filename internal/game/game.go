package game

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mastermind/internal/board"
	"github.com/samdwyer/mastermind/internal/console"
	"github.com/samdwyer/mastermind/internal/gamedata"
	"github.com/samdwyer/mastermind/internal/player"
	"github.com/samdwyer/mastermind/internal/telemetry"
)

// ErrInvalidCode is returned when a participant produces a code with repeated colors.
var ErrInvalidCode = errors.New("invalid code")

// Result summarizes a finished game.
type Result struct {
	Outcome      State // StateWon or StateLost
	AttemptsUsed int
	Remaining    int
	Secret       board.Code
	Last         board.Feedback
}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	prompter *console.Prompter
	renderer *console.Renderer
	rng      *rand.Rand
	log      zerolog.Logger
	state    State
}

// New creates a new game reading answers from in and writing the transcript to out.
func New(cfg Config, in io.Reader, out io.Writer, palette *gamedata.Palette) (*Game, error) {
	switch cfg.AIBreaker {
	case player.KindHuman:
		// zero value
		cfg.AIBreaker = player.KindRandom
	case player.KindRandom, player.KindAssisted:
	default:
		return nil, fmt.Errorf("unsupported AI breaker kind %v", cfg.AIBreaker)
	}

	if palette == nil {
		var err error
		if palette, err = gamedata.LoadPalette(); err != nil {
			return nil, fmt.Errorf("load palette: %w", err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = newSeed(); err != nil {
			return nil, err
		}
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Game{
		cfg:      cfg,
		prompter: console.NewPrompter(in, out),
		renderer: console.NewRenderer(out, palette, cfg.Color),
		rng:      rand.New(rand.NewSource(seed)),
		log:      logger.With().Int64("seed", seed).Logger(),
		state:    StateSetup,
	}, nil
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Run executes one full session: role selection followed by the game itself.
func (g *Game) Run(ctx context.Context) (Result, error) {
	tracer := telemetry.Tracer("game")

	ctx, span := tracer.Start(ctx, "game.setup")
	g.state = StateSetup
	mode, err := g.selectMode(ctx)
	if err != nil {
		span.End()
		return Result{}, err
	}
	maker, breaker, err := g.players(mode)
	if err != nil {
		span.End()
		return Result{}, err
	}
	span.SetAttributes(
		attribute.String("mode", mode.String()),
		attribute.String("maker.kind", maker.Kind().String()),
		attribute.String("breaker.kind", breaker.Kind().String()),
	)
	span.End()

	g.log.Debug().
		Str("mode", mode.String()).
		Str("maker", maker.Kind().String()).
		Str("breaker", breaker.Kind().String()).
		Msg("roles selected")

	return g.Play(ctx, maker, breaker)
}

// Play runs the game loop for a fixed pair of participants.
func (g *Game) Play(ctx context.Context, maker, breaker player.Player) (Result, error) {
	tracer := telemetry.Tracer("game")

	secret, err := g.chooseSecret(ctx, maker)
	if err != nil {
		return Result{}, err
	}

	remaining := board.MaxAttempts
	var prev *player.Previous
	var fb board.Feedback

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		attempt := board.MaxAttempts - remaining + 1
		g.state = StateAwaitingGuess
		g.renderer.Turn(breaker.Name(), attempt)

		turnCtx, span := tracer.Start(ctx, "game.turn")
		guess, err := breaker.Guess(turnCtx, prev)
		if err != nil {
			span.End()
			return Result{}, fmt.Errorf("guess %d: %w", attempt, err)
		}
		if !guess.Unique() {
			span.End()
			return Result{}, fmt.Errorf("guess %d %v: %w", attempt, guess, ErrInvalidCode)
		}
		if breaker.Kind() != player.KindHuman {
			g.renderer.Line("The AI chose:")
			g.renderer.Guess(guess)
		}

		fb = board.Score(secret, guess)
		g.renderer.Pegs(fb)
		remaining--
		g.state = StateFeedbackGiven

		span.SetAttributes(
			attribute.Int("attempt", attempt),
			attribute.Int("exact", fb.Exact),
			attribute.Int("partial", fb.Partial),
			attribute.Int("remaining", remaining),
		)
		span.End()

		g.log.Debug().
			Int("attempt", attempt).
			Stringer("guess", guess).
			Stringer("feedback", fb).
			Msg("turn scored")

		prev = &player.Previous{
			Guess:    guess,
			Feedback: fb,
			Exact:    board.ExactPositions(secret, guess),
		}

		if fb.Solved() || remaining <= 0 {
			break
		}
	}

	return g.finish(ctx, breaker, secret, remaining, fb), nil
}

// chooseSecret asks the maker for the secret code.
func (g *Game) chooseSecret(ctx context.Context, maker player.Player) (board.Code, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.secret")
	defer span.End()
	span.SetAttributes(attribute.String("maker.kind", maker.Kind().String()))

	secret, err := maker.MakeCode(ctx)
	if err != nil {
		return board.Code{}, fmt.Errorf("make secret: %w", err)
	}
	if !secret.Unique() {
		return board.Code{}, fmt.Errorf("secret %v: %w", secret, ErrInvalidCode)
	}

	g.state = StateSecretChosen
	g.renderer.SecretChosen()
	return secret, nil
}

// finish reports the outcome. A solved final guess counts as a win even when
// it used the last attempt.
func (g *Game) finish(ctx context.Context, breaker player.Player, secret board.Code, remaining int, last board.Feedback) Result {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end")
	defer span.End()

	result := Result{
		AttemptsUsed: board.MaxAttempts - remaining,
		Remaining:    remaining,
		Secret:       secret,
		Last:         last,
	}

	if last.Solved() {
		result.Outcome = StateWon
		g.renderer.Won(breaker.Name(), result.AttemptsUsed)
	} else {
		result.Outcome = StateLost
		g.renderer.Lost(breaker.Name())
		g.renderer.Reveal(secret)
	}
	g.state = result.Outcome

	span.SetAttributes(
		attribute.String("outcome", result.Outcome.String()),
		attribute.Int("attempts_used", result.AttemptsUsed),
	)
	g.log.Info().
		Str("outcome", result.Outcome.String()).
		Int("attempts_used", result.AttemptsUsed).
		Msg("game over")

	return result
}

// newSeed generates a random seed using crypto/rand.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
