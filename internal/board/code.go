package board

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

const (
	// CodeLength is the number of pegs in a code.
	CodeLength = 4
	// MaxAttempts is the breaker's attempt budget.
	MaxAttempts = 12
	// MaxDrawAttempts caps the resampling loop of RandomCode.
	MaxDrawAttempts = 1000
)

var (
	ErrInvalidColor   = errors.New("invalid color")
	ErrDuplicateColor = errors.New("duplicate color")
	ErrCodeLength     = errors.New("code must have exactly 4 colors")
	ErrDrawExhausted  = errors.New("no unique code drawn")
)

// Code is an ordered sequence of four colors.
type Code [CodeLength]Color

// NewCode builds a code, rejecting wrong lengths, unknown colors and repeats.
func NewCode(colors ...Color) (Code, error) {
	var code Code
	if len(colors) != CodeLength {
		return code, ErrCodeLength
	}
	for i, c := range colors {
		if !c.Valid() {
			return code, fmt.Errorf("position %d: %w", i, ErrInvalidColor)
		}
		if code.containsBefore(c, i) {
			return code, fmt.Errorf("position %d: %w", i, ErrDuplicateColor)
		}
		code[i] = c
	}
	return code, nil
}

// Contains reports whether the color appears anywhere in the code.
func (c Code) Contains(color Color) bool {
	for _, x := range c {
		if x == color {
			return true
		}
	}
	return false
}

// Unique reports whether no color repeats within the code.
func (c Code) Unique() bool {
	for i := range c {
		if c.containsBefore(c[i], i) {
			return false
		}
	}
	return true
}

func (c Code) containsBefore(color Color, n int) bool {
	for i := 0; i < n; i++ {
		if c[i] == color {
			return true
		}
	}
	return false
}

// String returns the color names separated by spaces.
func (c Code) String() string {
	parts := make([]string, CodeLength)
	for i, color := range c {
		parts[i] = color.String()
	}
	return strings.Join(parts, " ")
}

// RandomCode draws four colors independently and redraws the whole code
// until no color repeats.
func RandomCode(rng *rand.Rand) (Code, error) {
	return RandomCodeKeeping(rng, Code{}, [CodeLength]bool{})
}

// RandomCodeKeeping is RandomCode with the positions marked in keep fixed to
// the colors of base. Only the free positions are redrawn.
func RandomCodeKeeping(rng *rand.Rand, base Code, keep [CodeLength]bool) (Code, error) {
	for attempt := 0; attempt < MaxDrawAttempts; attempt++ {
		code := base
		for i := range code {
			if !keep[i] {
				code[i] = Colors[rng.Intn(NumColors)]
			}
		}
		if code.Unique() {
			return code, nil
		}
	}
	return Code{}, fmt.Errorf("draw code after %d attempts: %w", MaxDrawAttempts, ErrDrawExhausted)
}
