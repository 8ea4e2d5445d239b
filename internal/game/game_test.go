package game

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/samdwyer/mastermind/internal/board"
	"github.com/samdwyer/mastermind/internal/console"
	"github.com/samdwyer/mastermind/internal/gamedata"
	"github.com/samdwyer/mastermind/internal/player"
)

// scriptedPlayer is a test implementation of the Player interface.
type scriptedPlayer struct {
	name    string
	secret  board.Code
	guesses []board.Code // last entry repeats once exhausted
	prevs   []*player.Previous
}

func (p *scriptedPlayer) Name() string      { return p.name }
func (p *scriptedPlayer) Kind() player.Kind { return player.KindRandom }

func (p *scriptedPlayer) MakeCode(ctx context.Context) (board.Code, error) {
	return p.secret, nil
}

func (p *scriptedPlayer) Guess(ctx context.Context, prev *player.Previous) (board.Code, error) {
	p.prevs = append(p.prevs, prev)
	i := len(p.prevs) - 1
	if i >= len(p.guesses) {
		i = len(p.guesses) - 1
	}
	return p.guesses[i], nil
}

var (
	testSecret = board.Code{board.Red, board.Green, board.Blue, board.Yellow}
	wrongGuess = board.Code{board.Purple, board.Pink, board.Green, board.Red}
)

func newTestGame(t *testing.T, cfg Config, input string) (*Game, *bytes.Buffer) {
	t.Helper()
	if cfg.Seed == 0 {
		cfg.Seed = 12345
	}
	var out bytes.Buffer
	g, err := New(cfg, strings.NewReader(input), &out, gamedata.MustLoadPalette())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g, &out
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateSetup, "setup"},
		{StateSecretChosen, "secret_chosen"},
		{StateAwaitingGuess, "awaiting_guess"},
		{StateFeedbackGiven, "feedback_given"},
		{StateWon, "won"},
		{StateLost, "lost"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.state.String()
		if got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestStateTerminal(t *testing.T) {
	for _, s := range []State{StateSetup, StateSecretChosen, StateAwaitingGuess, StateFeedbackGiven} {
		if s.Terminal() {
			t.Errorf("%v should not be terminal", s)
		}
	}
	for _, s := range []State{StateWon, StateLost} {
		if !s.Terminal() {
			t.Errorf("%v should be terminal", s)
		}
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeMaker, "maker"},
		{ModeBreaker, "breaker"},
		{ModeWatch, "watch"},
		{Mode(0), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.expected {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.expected)
		}
	}
}

func TestNewRejectsUnknownAIBreaker(t *testing.T) {
	_, err := New(Config{Seed: 1, AIBreaker: player.Kind(42)}, strings.NewReader(""), &bytes.Buffer{}, nil)
	if err == nil {
		t.Error("New() with an unknown AI breaker kind should fail")
	}
}

func TestNewDefaultsAIBreaker(t *testing.T) {
	g, _ := newTestGame(t, Config{}, "")
	if g.cfg.AIBreaker != player.KindRandom {
		t.Errorf("AIBreaker = %v, want random", g.cfg.AIBreaker)
	}
	if g.State() != StateSetup {
		t.Errorf("State() = %v, want setup", g.State())
	}
}

func TestPlayWinFirstGuess(t *testing.T) {
	g, out := newTestGame(t, Config{}, "")
	maker := &scriptedPlayer{name: "Maker", secret: testSecret}
	breaker := &scriptedPlayer{name: "Breaker", guesses: []board.Code{testSecret}}

	result, err := g.Play(context.Background(), maker, breaker)
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}

	if result.Outcome != StateWon {
		t.Errorf("Outcome = %v, want won", result.Outcome)
	}
	if result.AttemptsUsed != 1 {
		t.Errorf("AttemptsUsed = %d, want 1", result.AttemptsUsed)
	}
	if result.Remaining != board.MaxAttempts-1 {
		t.Errorf("Remaining = %d, want %d", result.Remaining, board.MaxAttempts-1)
	}
	if result.Last != (board.Feedback{Exact: 4}) {
		t.Errorf("Last = %+v, want {4 0}", result.Last)
	}
	if g.State() != StateWon {
		t.Errorf("State() = %v, want won", g.State())
	}
	if !strings.Contains(out.String(), "Breaker has WON the game in 1 attempt(s)") {
		t.Errorf("output missing win message:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "++++\n") {
		t.Errorf("output missing peg line:\n%s", out.String())
	}
}

func TestPlayLoseAfterBudget(t *testing.T) {
	g, out := newTestGame(t, Config{}, "")
	maker := &scriptedPlayer{name: "Maker", secret: testSecret}
	breaker := &scriptedPlayer{name: "Breaker", guesses: []board.Code{wrongGuess}}

	result, err := g.Play(context.Background(), maker, breaker)
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}

	if result.Outcome != StateLost {
		t.Errorf("Outcome = %v, want lost", result.Outcome)
	}
	if len(breaker.prevs) != board.MaxAttempts {
		t.Errorf("breaker guessed %d times, want %d", len(breaker.prevs), board.MaxAttempts)
	}
	if result.Remaining != 0 {
		t.Errorf("Remaining = %d, want 0", result.Remaining)
	}
	if result.AttemptsUsed != board.MaxAttempts {
		t.Errorf("AttemptsUsed = %d, want %d", result.AttemptsUsed, board.MaxAttempts)
	}
	if !strings.Contains(out.String(), "Breaker has run out of attempts") {
		t.Errorf("output missing loss message:\n%s", out.String())
	}
	if strings.Contains(out.String(), "WON") {
		t.Errorf("output should not contain a win message:\n%s", out.String())
	}
}

func TestPlayWinOnLastAttempt(t *testing.T) {
	g, _ := newTestGame(t, Config{}, "")
	guesses := make([]board.Code, board.MaxAttempts)
	for i := range guesses {
		guesses[i] = wrongGuess
	}
	guesses[board.MaxAttempts-1] = testSecret

	maker := &scriptedPlayer{name: "Maker", secret: testSecret}
	breaker := &scriptedPlayer{name: "Breaker", guesses: guesses}

	result, err := g.Play(context.Background(), maker, breaker)
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}
	if result.Outcome != StateWon {
		t.Errorf("Outcome = %v, want won", result.Outcome)
	}
	if result.Remaining != 0 || result.AttemptsUsed != board.MaxAttempts {
		t.Errorf("Remaining = %d, AttemptsUsed = %d, want 0 and %d", result.Remaining, result.AttemptsUsed, board.MaxAttempts)
	}
}

func TestPlayPassesPreviousFeedback(t *testing.T) {
	g, _ := newTestGame(t, Config{}, "")
	first := board.Code{board.Red, board.Blue, board.Green, board.Pink}
	maker := &scriptedPlayer{name: "Maker", secret: testSecret}
	breaker := &scriptedPlayer{name: "Breaker", guesses: []board.Code{first, testSecret}}

	if _, err := g.Play(context.Background(), maker, breaker); err != nil {
		t.Fatalf("Play() error: %v", err)
	}

	if len(breaker.prevs) != 2 {
		t.Fatalf("breaker guessed %d times, want 2", len(breaker.prevs))
	}
	if breaker.prevs[0] != nil {
		t.Error("first guess should have no previous feedback")
	}
	prev := breaker.prevs[1]
	if prev == nil {
		t.Fatal("second guess should receive previous feedback")
	}
	if prev.Guess != first {
		t.Errorf("prev.Guess = %v, want %v", prev.Guess, first)
	}
	if prev.Feedback != (board.Feedback{Exact: 1, Partial: 2}) {
		t.Errorf("prev.Feedback = %+v, want {1 2}", prev.Feedback)
	}
	if prev.Exact != [board.CodeLength]bool{true, false, false, false} {
		t.Errorf("prev.Exact = %v", prev.Exact)
	}
}

func TestPlayRejectsRepeatedColors(t *testing.T) {
	g, _ := newTestGame(t, Config{}, "")
	maker := &scriptedPlayer{name: "Maker", secret: testSecret}
	breaker := &scriptedPlayer{name: "Breaker", guesses: []board.Code{{board.Red, board.Red, board.Red, board.Red}}}

	if _, err := g.Play(context.Background(), maker, breaker); !errors.Is(err, ErrInvalidCode) {
		t.Errorf("Play() error = %v, want ErrInvalidCode", err)
	}

	g, _ = newTestGame(t, Config{}, "")
	maker = &scriptedPlayer{name: "Maker", secret: board.Code{board.Pink, board.Pink, board.Red, board.Blue}}
	if _, err := g.Play(context.Background(), maker, breaker); !errors.Is(err, ErrInvalidCode) {
		t.Errorf("Play() with a bad secret error = %v, want ErrInvalidCode", err)
	}
}

func TestPlayCanceled(t *testing.T) {
	g, _ := newTestGame(t, Config{}, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	maker := &scriptedPlayer{name: "Maker", secret: testSecret}
	breaker := &scriptedPlayer{name: "Breaker", guesses: []board.Code{testSecret}}
	if _, err := g.Play(ctx, maker, breaker); !errors.Is(err, context.Canceled) {
		t.Errorf("Play() error = %v, want context.Canceled", err)
	}
}

func TestRunHumanMaker(t *testing.T) {
	// Bad menu input is re-prompted, then the human enters the secret.
	input := "abc\n0\n1\nred\norange\ngreen\nblue\nblue\nyellow\n"
	g, out := newTestGame(t, Config{AIBreaker: player.KindAssisted}, input)

	result, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !result.Outcome.Terminal() {
		t.Errorf("Outcome = %v, want terminal", result.Outcome)
	}
	if result.Secret != testSecret {
		t.Errorf("Secret = %v, want %v", result.Secret, testSecret)
	}
	if result.AttemptsUsed < 1 || result.AttemptsUsed > board.MaxAttempts {
		t.Errorf("AttemptsUsed = %d, out of range", result.AttemptsUsed)
	}
	if result.AttemptsUsed+result.Remaining != board.MaxAttempts {
		t.Errorf("AttemptsUsed + Remaining = %d, want %d", result.AttemptsUsed+result.Remaining, board.MaxAttempts)
	}

	text := out.String()
	if n := strings.Count(text, "Please enter a number between 1 and 3"); n != 2 {
		t.Errorf("menu re-prompted %d times, want 2", n)
	}
	if n := strings.Count(text, "Invalid or already used color, please try again"); n != 2 {
		t.Errorf("color re-prompted %d times, want 2", n)
	}
	if !strings.Contains(text, "AI (CodeBreaker), it's guess #1!") {
		t.Errorf("output missing first turn announcement:\n%s", text)
	}
}

func TestRunHumanBreaker(t *testing.T) {
	input := "2\n" + strings.Repeat("red\ngreen\nblue\nyellow\n", board.MaxAttempts)
	g, out := newTestGame(t, Config{}, input)

	result, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !result.Outcome.Terminal() {
		t.Errorf("Outcome = %v, want terminal", result.Outcome)
	}
	if result.Outcome == StateWon && result.Secret != testSecret {
		t.Errorf("won with secret %v", result.Secret)
	}
	if !strings.Contains(out.String(), "Player (CodeBreaker), it's guess #1!") {
		t.Errorf("output missing human turn announcement:\n%s", out.String())
	}
	if strings.Contains(out.String(), "The AI chose:") {
		t.Error("human guesses should not be echoed as AI choices")
	}
}

func TestRunWatchIsReproducible(t *testing.T) {
	run := func() (Result, string) {
		g, out := newTestGame(t, Config{Seed: 777, AIBreaker: player.KindAssisted}, "3\n")
		result, err := g.Run(context.Background())
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		return result, out.String()
	}

	r1, out1 := run()
	r2, out2 := run()
	if r1 != r2 {
		t.Errorf("results differ: %+v != %+v", r1, r2)
	}
	if out1 != out2 {
		t.Error("transcripts differ for the same seed")
	}
	if !r1.Outcome.Terminal() {
		t.Errorf("Outcome = %v, want terminal", r1.Outcome)
	}
}

func TestRunInputClosed(t *testing.T) {
	g, _ := newTestGame(t, Config{}, "")
	if _, err := g.Run(context.Background()); !errors.Is(err, console.ErrInputClosed) {
		t.Errorf("Run() error = %v, want ErrInputClosed", err)
	}

	g, _ = newTestGame(t, Config{}, "1\nred\n")
	if _, err := g.Run(context.Background()); !errors.Is(err, console.ErrInputClosed) {
		t.Errorf("Run() error = %v, want ErrInputClosed", err)
	}
}

func TestRunLongLineIsReprompted(t *testing.T) {
	input := "2\n" + strings.Repeat("x", 70000) + "\n" + strings.Repeat("red\ngreen\nblue\nyellow\n", board.MaxAttempts)
	g, out := newTestGame(t, Config{}, input)

	result, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !result.Outcome.Terminal() {
		t.Errorf("Outcome = %v, want terminal", result.Outcome)
	}
	if n := strings.Count(out.String(), "Invalid or already used color, please try again"); n != 1 {
		t.Errorf("color re-prompted %d times, want 1", n)
	}
	if result.AttemptsUsed+result.Remaining != board.MaxAttempts {
		t.Errorf("AttemptsUsed + Remaining = %d, want %d", result.AttemptsUsed+result.Remaining, board.MaxAttempts)
	}
}
