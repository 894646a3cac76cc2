package core

import (
	"errors"
	"io"

	"github.com/abiosoft/readline"
	"golang.org/x/term"
)

// LineReader supplies lines to the read loop, *readline.Instance implements
// it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

var _ LineReader = (*readline.Instance)(nil)

// Run is the read loop. It prompts, reads and runs lines until input ends or
// a command asks to exit, and returns the interpreter's exit status.
func (s *Shell) Run(rl LineReader) int {
	for {
		rl.SetPrompt(s.RenderPrompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return s.State.LastExitStatus // Input closed, quit.

		case err == readline.ErrInterrupt:
			s.Log.Printf("interrupt")
			continue

		case err != nil:
			s.Log.Printf("readline: %v", err)
			return s.State.LastExitStatus

		case len(line) == 0:
			continue // empty line
		}

		var exitReq *ExitRequest
		if err := s.RunLine(line); errors.As(err, &exitReq) {
			return exitReq.Status
		}
	}
}

type fder interface {
	Fd() uintptr
}

// NewReadline creates a line editor over the shell's streams. History is
// kept in historyFile if it's not empty.
func NewReadline(s *Shell, historyFile string) (*readline.Instance, error) {
	stdin := s.VirtualOS.Stdin()

	isTerminal := func() bool { return false }
	getWidth := func() int { return 80 }
	if f, ok := stdin.(fder); ok {
		fd := int(f.Fd())
		isTerminal = func() bool { return term.IsTerminal(fd) }
		getWidth = func() int {
			width, _, err := term.GetSize(fd)
			if err != nil {
				return 80
			}
			return width
		}
	}

	cfg := &readline.Config{
		Stdin:          readline.NewCancelableStdin(stdin),
		Stdout:         s.VirtualOS.Stdout(),
		Stderr:         s.VirtualOS.Stderr(),
		HistoryFile:    historyFile,
		FuncGetWidth:   getWidth,
		FuncIsTerminal: isTerminal,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	return readline.NewEx(cfg)
}
