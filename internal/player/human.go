package player

import (
	"context"
	"slices"

	"github.com/samdwyer/mastermind/internal/board"
)

const invalidColorMessage = "Invalid or already used color, please try again"

// Human reads codes one color per line.
type Human struct {
	name     string
	prompter Prompter
}

// NewHuman creates a console-driven player.
func NewHuman(name string, prompter Prompter) *Human {
	return &Human{name: name, prompter: prompter}
}

// Name returns the player's display name.
func (h *Human) Name() string { return h.name }

// Kind returns KindHuman.
func (h *Human) Kind() Kind { return KindHuman }

// MakeCode asks for the secret code.
func (h *Human) MakeCode(ctx context.Context) (board.Code, error) {
	return h.readCode(ctx, "Enter a secret code (enter colors one by one): Available Colors are "+board.ColorNames())
}

// Guess asks for the next guess. Feedback is already on screen, so prev is unused.
func (h *Human) Guess(ctx context.Context, prev *Previous) (board.Code, error) {
	return h.readCode(ctx, "Enter your guess colors one by one: Available Colors are "+board.ColorNames())
}

// readCode collects CodeLength distinct colors, re-prompting on bad input.
func (h *Human) readCode(ctx context.Context, prompt string) (board.Code, error) {
	var code board.Code
	h.prompter.Say(prompt)

	for i := 0; i < board.CodeLength; {
		if err := ctx.Err(); err != nil {
			return board.Code{}, err
		}
		line, err := h.prompter.Ask("")
		if err != nil {
			return board.Code{}, err
		}
		color, err := board.ParseColor(line)
		if err != nil || slices.Contains(code[:i], color) {
			h.prompter.Say(invalidColorMessage)
			continue
		}
		code[i] = color
		i++
	}
	return code, nil
}

var _ Player = (*Human)(nil)
