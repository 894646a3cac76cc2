package core

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/josephlewis42/chainsh/core/logger"
	"github.com/josephlewis42/chainsh/core/vos"
)

// BuiltinSubcommand is the hidden subcommand that runs a forked builtin in a
// child copy of the interpreter.
const BuiltinSubcommand = "__builtin"

// DefaultPrompt renders as "<working directory> $ ".
const DefaultPrompt = `\w $ `

// Shell is a single interpreter session: the OS it runs against and the
// status bookkeeping carried from unit to unit.
type Shell struct {
	VirtualOS vos.VOS
	State     ShellState

	// Log receives debug lines about each unit.
	Log *log.Logger
	// Events receives one entry per unit.
	Events *logger.SessionLogger

	// Prompt is the prompt template, see Prompt.
	Prompt string
	// Color enables coloured prompts and diagnostics.
	Color bool

	// SelfExec is the argument vector prefix that starts a child copy of the
	// interpreter in builtin mode; the builtin's own argv is appended.
	SelfExec []string
	// ReplaceProcess replaces the running program, it only returns on
	// failure. Used by exec.
	ReplaceProcess func(path string, argv, env []string) error
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Shell) { s.Log = l }
}

// WithEvents sets the event log.
func WithEvents(l *logger.SessionLogger) Option {
	return func(s *Shell) { s.Events = l }
}

// WithPrompt sets the prompt template.
func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.Prompt = prompt }
}

// WithColor turns coloured output on or off.
func WithColor(enabled bool) Option {
	return func(s *Shell) { s.Color = enabled }
}

// WithSelfExec sets how forked builtins are started.
func WithSelfExec(argv ...string) Option {
	return func(s *Shell) { s.SelfExec = argv }
}

// WithReplaceProcess sets the function exec uses to replace the process.
func WithReplaceProcess(fn func(path string, argv, env []string) error) Option {
	return func(s *Shell) { s.ReplaceProcess = fn }
}

// NewShell creates a shell over virtualOS. Without WithSelfExec, forked
// builtins re-run the current executable with BuiltinSubcommand.
func NewShell(virtualOS vos.VOS, opts ...Option) (*Shell, error) {
	s := &Shell{
		VirtualOS:      virtualOS,
		Log:            log.New(io.Discard, "", 0),
		Events:         logger.NewNopLogger().Sessionless(),
		Prompt:         DefaultPrompt,
		ReplaceProcess: replaceProcess,
	}

	for _, opt := range opts {
		opt(s)
	}

	if len(s.SelfExec) == 0 {
		self, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("locating interpreter executable: %w", err)
		}
		s.SelfExec = []string{self, BuiltinSubcommand}
	}

	return s, nil
}

// report prints a unit error to the shell's stderr as "command: message".
func (s *Shell) report(err error) {
	w := s.VirtualOS.Stderr()

	if unitErr, ok := err.(*UnitError); ok {
		fmt.Fprintf(w, "%s %v\n", s.colorize(colorBoldRed, unitErr.Command+":"), unitErr.Err)
		return
	}
	fmt.Fprintf(w, "%s %v\n", s.colorize(colorBoldRed, "chainsh:"), err)
}

var (
	colorBoldBlue = []color.Attribute{color.FgBlue, color.Bold}
	colorBoldRed  = []color.Attribute{color.FgRed, color.Bold}
)

// colorize wraps text in the attributes if the shell has colour turned on,
// regardless of whether stdout is a terminal.
func (s *Shell) colorize(attrs []color.Attribute, text string) string {
	if !s.Color {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}
