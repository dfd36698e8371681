// Package prompt asks yes/no questions on a terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/burrow/pkg/core"
)

// Prompter reads single-key answers from In and writes prompts to Out.
// When In is a terminal it is switched to raw mode for the duration of the
// read so the answer needs no Enter.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

// New returns a Prompter on the standard streams. Prompts go to stderr so
// that stdout stays clean for piping.
func New() *Prompter {
	return &Prompter{In: os.Stdin, Out: os.Stderr}
}

// Confirm prints message followed by a hint showing the default and waits
// for one key. Enter selects def; any other key answers yes only if it is
// 'y' or 'Y'.
func (p *Prompter) Confirm(message string, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}
	fmt.Fprintf(p.Out, "%s %s: ", message, hint)

	key, err := p.readKey()
	if err != nil {
		fmt.Fprintln(p.Out)
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	answer := def
	if key != '\n' && key != '\r' {
		answer = key == 'y' || key == 'Y'
	}

	if answer {
		fmt.Fprint(p.Out, "y")
	} else {
		fmt.Fprint(p.Out, "n")
	}
	// raw mode disables output post-processing
	fmt.Fprint(p.Out, "\r\n")

	return answer, nil
}

func (p *Prompter) readKey() (byte, error) {
	if f, ok := p.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		state, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return 0, err
		}
		defer term.Restore(int(f.Fd()), state)
	}

	var buf [1]byte
	n, err := p.In.Read(buf[:])
	if n == 1 {
		if buf[0] == 3 { // Ctrl-C in raw mode
			return 0, errors.New("interrupted")
		}
		return buf[0], nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return 0, err
}

var _ core.Confirmer = (*Prompter)(nil)
