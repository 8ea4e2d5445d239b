// Package console provides line-based terminal input and game rendering.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned when input ends while a line is expected.
var ErrInputClosed = errors.New("input closed")

// Prompter reads one line per question from an input stream.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask writes prompt (if any) and returns the next input line without its
// line ending. Lines of any length are returned whole; a final line without
// a newline is still returned.
func (p *Prompter) Ask(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintln(p.out, prompt)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read line: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Say writes a line of output.
func (p *Prompter) Say(msg string) {
	fmt.Fprintln(p.out, msg)
}
