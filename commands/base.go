// Package commands holds the builtins that run in their own child process.
//
// The interpreter starts a copy of itself for each of them; the child runs
// exactly one ProcessFunc through Main and exits with its status.
package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/josephlewis42/chainsh/core/vos"
	getopt "github.com/pborman/getopt/v2"
)

// EnvLastExit carries the parent's last recorded exit status to the child.
const EnvLastExit = "CHAINSH_LAST_EXIT"

// ExitNotBuiltin is returned by Main for names that aren't registered.
const ExitNotBuiltin = 127

// Process is the view a builtin has of the process running it.
type Process struct {
	vos.VOS

	Argv []string
}

// Args returns the argument vector, the builtin name is Args()[0].
func (p *Process) Args() []string {
	return p.Argv
}

// ProcessFunc runs a builtin and returns its exit status.
type ProcessFunc func(p *Process) int

// AllCommands holds a list of all registered commands
var AllCommands = make(map[string]ProcessFunc)

func mustAddCmd(name string, cmd ProcessFunc) {
	if _, ok := AllCommands[name]; ok {
		panic(fmt.Sprintf("duplicate builtin %q", name))
	}
	AllCommands[name] = cmd
}

// IsBuiltin returns true if name is a registered builtin.
func IsBuiltin(name string) bool {
	_, ok := AllCommands[name]
	return ok
}

// ListBuiltinCommands returns the sorted names of all builtins.
func ListBuiltinCommands() []string {
	var out []string
	for name := range AllCommands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Main runs the builtin named by argv[0] and returns its status.
func Main(virtOS vos.VOS, argv []string) int {
	if len(argv) == 0 {
		fmt.Fprintln(virtOS.Stderr(), "usage: __builtin NAME [ARG]...")
		return ExitNotBuiltin
	}

	cmd, ok := AllCommands[argv[0]]
	if !ok {
		fmt.Fprintf(virtOS.Stderr(), "%s: not a builtin\n", argv[0])
		return ExitNotBuiltin
	}

	return cmd(&Process{VOS: virtOS, Argv: argv})
}

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a sone line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command, if flag parsing was succcessful call the callback.
func (s *SimpleCommand) Run(p *Process, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	if err := opts.Getopt(p.Args(), nil); err != nil {
		fmt.Fprintf(p.Stderr(), "%s: %s\n\n", p.Args()[0], err)
		s.PrintHelp(p.Stderr())
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(p.Stdout())
		return 0
	}

	return callback()
}
