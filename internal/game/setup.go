package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/mastermind/internal/player"
)

// Mode is the role assignment picked from the setup menu.
type Mode int

const (
	// ModeMaker: the human makes the code, the AI breaks it.
	ModeMaker Mode = iota + 1
	// ModeBreaker: the AI makes the code, the human breaks it.
	ModeBreaker
	// ModeWatch: the AI plays both roles.
	ModeWatch
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMaker:
		return "maker"
	case ModeBreaker:
		return "breaker"
	case ModeWatch:
		return "watch"
	default:
		return "unknown"
	}
}

const (
	humanMakerName   = "Player (CodeMaker)"
	humanBreakerName = "Player (CodeBreaker)"
	aiMakerName      = "AI (CodeMaker)"
	aiBreakerName    = "AI (CodeBreaker)"
)

// selectMode shows the menu and reads a number until one in range is entered.
func (g *Game) selectMode(ctx context.Context) (Mode, error) {
	g.renderer.Menu()
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		line, err := g.prompter.Ask("")
		if err != nil {
			return 0, fmt.Errorf("read role selection: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= int(ModeMaker) && n <= int(ModeWatch) {
			return Mode(n), nil
		}
		g.prompter.Say(fmt.Sprintf("Please enter a number between %d and %d", int(ModeMaker), int(ModeWatch)))
	}
}

// players builds the maker and breaker for a mode.
func (g *Game) players(mode Mode) (maker, breaker player.Player, err error) {
	switch mode {
	case ModeMaker:
		maker = player.NewHuman(humanMakerName, g.prompter)
		breaker, err = player.New(g.cfg.AIBreaker, aiBreakerName, nil, g.rng)
	case ModeBreaker:
		maker = player.NewRandom(aiMakerName, g.rng)
		breaker = player.NewHuman(humanBreakerName, g.prompter)
	case ModeWatch:
		maker = player.NewRandom(aiMakerName, g.rng)
		breaker, err = player.New(g.cfg.AIBreaker, aiBreakerName, nil, g.rng)
	default:
		err = fmt.Errorf("unknown mode %d", mode)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("create players: %w", err)
	}
	return maker, breaker, nil
}
