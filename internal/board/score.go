package board

import "fmt"

// Feedback is the scorer's answer to a guess.
type Feedback struct {
	Exact   int // right color, right position
	Partial int // right color, wrong position
}

// Solved reports whether every position matched.
func (f Feedback) Solved() bool {
	return f.Exact == CodeLength
}

// String returns a "N exact, M partial" form for logs.
func (f Feedback) String() string {
	return fmt.Sprintf("%d exact, %d partial", f.Exact, f.Partial)
}

// Score computes the feedback for guess against secret.
//
// A secret color counts towards the overlap whenever it appears anywhere in
// the guess; guess occurrences are not consumed. With unique-color codes this
// equals the multiset intersection. With repeated colors it can overcount
// partial matches, and Score(a, b) may differ from Score(b, a).
func Score(secret, guess Code) Feedback {
	exact := 0
	overlap := 0
	for i, color := range secret {
		if guess[i] == color {
			exact++
		}
		if guess.Contains(color) {
			overlap++
		}
	}
	return Feedback{Exact: exact, Partial: overlap - exact}
}

// ExactPositions reports which positions of guess match secret.
func ExactPositions(secret, guess Code) [CodeLength]bool {
	var hits [CodeLength]bool
	for i := range secret {
		hits[i] = guess[i] == secret[i]
	}
	return hits
}
