package player

import (
	"context"
	"math/rand"

	"github.com/samdwyer/mastermind/internal/board"
)

// Random draws every code independently of any feedback.
type Random struct {
	name string
	rng  *rand.Rand
}

// NewRandom creates an automated player drawing from rng.
func NewRandom(name string, rng *rand.Rand) *Random {
	return &Random{name: name, rng: rng}
}

// Name returns the player's display name.
func (r *Random) Name() string { return r.name }

// Kind returns KindRandom.
func (r *Random) Kind() Kind { return KindRandom }

// MakeCode draws a random code with no repeated colors.
func (r *Random) MakeCode(ctx context.Context) (board.Code, error) {
	return board.RandomCode(r.rng)
}

// Guess draws a random code; prev is ignored.
func (r *Random) Guess(ctx context.Context, prev *Previous) (board.Code, error) {
	return board.RandomCode(r.rng)
}

// Assisted reuses the exact matches of its previous guess and redraws the
// remaining positions.
type Assisted struct {
	name string
	rng  *rand.Rand
}

// NewAssisted creates a feedback-assisted automated player.
func NewAssisted(name string, rng *rand.Rand) *Assisted {
	return &Assisted{name: name, rng: rng}
}

// Name returns the player's display name.
func (a *Assisted) Name() string { return a.name }

// Kind returns KindAssisted.
func (a *Assisted) Kind() Kind { return KindAssisted }

// MakeCode draws a random code with no repeated colors.
func (a *Assisted) MakeCode(ctx context.Context) (board.Code, error) {
	return board.RandomCode(a.rng)
}

// Guess keeps every position that was exact last turn.
func (a *Assisted) Guess(ctx context.Context, prev *Previous) (board.Code, error) {
	if prev == nil || prev.Feedback.Exact == 0 {
		return board.RandomCode(a.rng)
	}
	return board.RandomCodeKeeping(a.rng, prev.Guess, prev.Exact)
}

var (
	_ Player = (*Random)(nil)
	_ Player = (*Assisted)(nil)
)
