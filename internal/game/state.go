// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateSetup is the role selection phase.
	StateSetup State = iota
	// StateSecretChosen means the code-maker has produced the secret.
	StateSecretChosen
	// StateAwaitingGuess waits for the code-breaker's next guess.
	StateAwaitingGuess
	// StateFeedbackGiven means the last guess has been scored.
	StateFeedbackGiven
	// StateWon is terminal: the breaker matched every position.
	StateWon
	// StateLost is terminal: the attempt budget ran out.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateSecretChosen:
		return "secret_chosen"
	case StateAwaitingGuess:
		return "awaiting_guess"
	case StateFeedbackGiven:
		return "feedback_given"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game is over.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}
