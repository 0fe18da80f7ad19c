// Package console provides the assembler driver's optional interactive
// diagnostics paging mode: when a translation unit's error journal is
// long, the driver can page through it one diagnostic at a time instead
// of dumping the whole list to the terminal at once.
//
// This is purely an output-formatting convenience reached through a
// narrow interface (Pager.Show); it has no bearing on how files are
// assembled.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/term"
)

// A Pager prints entries one at a time, waiting for a keypress between
// each when standard input is an interactive terminal.
type Pager struct {
	out         io.Writer
	interactive bool
	state       *term.State
}

// NewPager returns a Pager that writes to out. When enable is true and
// in is a terminal, the pager puts it into raw input mode so a single
// keypress (rather than a full line) advances to the next entry.
func NewPager(in *os.File, out io.Writer, enable bool) *Pager {
	p := &Pager{out: out}
	if !enable {
		return p
	}
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return p
	}
	state, err := term.MakeRawInput(fd)
	if err != nil {
		return p
	}
	p.interactive = true
	p.state = state
	return p
}

// Close restores the terminal to its original mode, if the pager put it
// into raw mode.
func (p *Pager) Close() error {
	if !p.interactive {
		return nil
	}
	return term.Restore(int(os.Stdin.Fd()), p.state)
}

// Show prints one diagnostic line and, in interactive mode, blocks for a
// single keypress before returning.
func (p *Pager) Show(line string) {
	fmt.Fprintln(p.out, line)
	if !p.interactive {
		return
	}
	var b [1]byte
	os.Stdin.Read(b[:])
}
