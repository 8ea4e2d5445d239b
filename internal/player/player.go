// Package player provides the code-maker and code-breaker participants.
package player

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/samdwyer/mastermind/internal/board"
)

// Kind selects how a participant produces codes.
type Kind int

const (
	// KindHuman reads colors from the console.
	KindHuman Kind = iota
	// KindRandom draws every code at random.
	KindRandom
	// KindAssisted draws at random but keeps the exact matches of its previous guess.
	KindAssisted
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindRandom:
		return "random"
	case KindAssisted:
		return "assisted"
	default:
		return "unknown"
	}
}

// ParseKind parses an automated kind name from configuration.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "human":
		return KindHuman, nil
	case "random":
		return KindRandom, nil
	case "assisted":
		return KindAssisted, nil
	default:
		return 0, fmt.Errorf("unknown player kind %q", s)
	}
}

// Previous is what a breaker learned from its last guess.
type Previous struct {
	Guess    board.Code
	Feedback board.Feedback
	Exact    [board.CodeLength]bool // positions that matched the secret
}

// Player is the capability shared by every participant. A player can take
// either role; the game decides which method it calls.
type Player interface {
	Name() string
	Kind() Kind

	// MakeCode produces the secret code.
	MakeCode(ctx context.Context) (board.Code, error)

	// Guess produces the next guess. prev is nil on the first turn.
	Guess(ctx context.Context, prev *Previous) (board.Code, error)
}

// Prompter is the console used by human players.
type Prompter interface {
	Ask(prompt string) (string, error)
	Say(msg string)
}

// New creates a player of the given kind. Human players need a prompter,
// automated players need an rng.
func New(kind Kind, name string, prompter Prompter, rng *rand.Rand) (Player, error) {
	switch kind {
	case KindHuman:
		if prompter == nil {
			return nil, fmt.Errorf("human player %q: no prompter", name)
		}
		return NewHuman(name, prompter), nil
	case KindRandom:
		if rng == nil {
			return nil, fmt.Errorf("random player %q: no rng", name)
		}
		return NewRandom(name, rng), nil
	case KindAssisted:
		if rng == nil {
			return nil, fmt.Errorf("assisted player %q: no rng", name)
		}
		return NewAssisted(name, rng), nil
	default:
		return nil, fmt.Errorf("player %q: unknown kind %d", name, kind)
	}
}
