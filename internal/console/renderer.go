package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mastermind/internal/board"
	"github.com/samdwyer/mastermind/internal/gamedata"
)

// Renderer writes the game transcript.
type Renderer struct {
	out     io.Writer
	palette *gamedata.Palette
	color   bool
}

// NewRenderer creates a renderer. When color is true, color names and pegs
// are wrapped in 24-bit ANSI escapes taken from the palette.
func NewRenderer(out io.Writer, palette *gamedata.Palette, color bool) *Renderer {
	return &Renderer{out: out, palette: palette, color: color}
}

// Line writes a plain line.
func (r *Renderer) Line(msg string) {
	fmt.Fprintln(r.out, msg)
}

// Menu writes the role selection menu.
func (r *Renderer) Menu() {
	r.Line("Do you want to be:")
	r.Line("1) CodeMaker")
	r.Line("2) CodeBreaker")
	r.Line("3) Watch the AI play itself")
	r.Line("Enter the corresponding number")
}

// SecretChosen announces the start of guessing.
func (r *Renderer) SecretChosen() {
	r.Line("A SECRET CODE HAS BEEN CHOSEN! GUESS IT! or DIE!")
}

// Turn announces the breaker's next guess number.
func (r *Renderer) Turn(name string, number int) {
	r.Line(fmt.Sprintf("%s, it's guess #%d!", name, number))
}

// Guess writes the colors of a guess followed by its glyph form.
func (r *Renderer) Guess(code board.Code) {
	r.Line(r.Code(code) + "  [" + r.Glyphs(code) + "]")
}

// Glyphs formats a code as one palette glyph per peg.
func (r *Renderer) Glyphs(code board.Code) string {
	var b strings.Builder
	for _, c := range code {
		b.WriteString(r.paint(string(r.palette.Glyph(c)), r.palette.Color(c)))
	}
	return b.String()
}

// Code formats a code as its color names.
func (r *Renderer) Code(code board.Code) string {
	parts := make([]string, len(code))
	for i, c := range code {
		parts[i] = r.paint(c.String(), r.palette.Color(c))
	}
	return strings.Join(parts, " ")
}

// Pegs writes one exact marker per exact match followed by one partial
// marker per partial match.
func (r *Renderer) Pegs(fb board.Feedback) {
	r.Line(r.PegString(fb))
}

// PegString formats feedback as a run of exact then partial markers.
func (r *Renderer) PegString(fb board.Feedback) string {
	exact := strings.Repeat(string(r.palette.Exact.Glyph), fb.Exact)
	partial := strings.Repeat(string(r.palette.Partial.Glyph), fb.Partial)
	return r.paint(exact, r.palette.Exact.Color) + r.paint(partial, r.palette.Partial.Color)
}

// Won writes the win message.
func (r *Renderer) Won(name string, attempts int) {
	r.Line(fmt.Sprintf("%s has WON the game in %d attempt(s)", name, attempts))
}

// Lost writes the loss message.
func (r *Renderer) Lost(name string) {
	r.Line(fmt.Sprintf("%s has run out of attempts", name))
}

// Reveal writes the secret after a loss.
func (r *Renderer) Reveal(secret board.Code) {
	r.Line("The secret code was: " + r.Code(secret))
}

func (r *Renderer) paint(s string, c tcell.Color) string {
	if !r.color || s == "" || c == tcell.ColorDefault {
		return s
	}
	red, green, blue := c.RGB()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", red, green, blue, s)
}
