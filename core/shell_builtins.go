package core

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/josephlewis42/chainsh/core/vos"
)

// AllBuiltins holds a list of all registered shell builtins, they run in the
// shell process because they change its state.
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) Result
}

type ShellBuiltinFunc func(s *Shell, args []string) Result

func (f ShellBuiltinFunc) Main(s *Shell, args []string) Result {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// ListShellBuiltins returns the sorted names of builtins that run in the shell
// process, including exec which Launch handles itself.
func ListShellBuiltins() []string {
	out := []string{"exec"}
	for name := range AllBuiltins {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Cd is the cd shell builtin. With no argument it changes to $HOME.
func Cd(s *Shell, args []string) Result {
	var dir string
	switch len(args) {
	case 1:
		home, err := s.VirtualOS.UserHomeDir()
		if err != nil || home == "" {
			return Result{Status: 1, Err: userError(args[0], ErrHomeNotSet)}
		}
		dir = home
	case 2:
		dir = args[1]
	default:
		return Result{Status: 1, Err: userError(args[0], ErrTooManyArgs)}
	}

	oldwd, oldErr := s.VirtualOS.Getwd()
	if err := s.VirtualOS.Chdir(dir); err != nil {
		return Result{Status: 1, Err: systemError(args[0], err)}
	}

	// Failing to update the variables doesn't undo the directory change.
	if oldErr == nil {
		_ = s.VirtualOS.Setenv(vos.EnvOldPWD, oldwd)
	}
	if wd, err := s.VirtualOS.Getwd(); err == nil {
		_ = s.VirtualOS.Setenv(vos.EnvPWD, wd)
	}

	return Result{Status: 0}
}

// Exit ends the read loop, by default with the last exit status.
func Exit(s *Shell, args []string) Result {
	switch len(args) {
	case 1:
		return Result{NoStatus: true, Err: &ExitRequest{Status: s.State.LastExitStatus}}
	case 2:
		status, err := strconv.Atoi(args[1])
		if err != nil {
			return Result{Status: 2, Err: userError(args[0], fmt.Errorf("%s: numeric argument required", args[1]))}
		}
		return Result{NoStatus: true, Err: &ExitRequest{Status: status}}
	default:
		return Result{Status: 1, Err: userError(args[0], ErrTooManyArgs)}
	}
}

// IfFalse is the command form of "||" for argument vectors handed straight to
// Launch; Tokenize always turns a "||" field into an operator. It skips the
// next unit when the last command succeeded.
func IfFalse(s *Shell, args []string) Result {
	s.State.SkipNext = s.State.LastExitStatus == 0
	return Result{NoStatus: true}
}

func init() {
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
	AllBuiltins["||"] = ShellBuiltinFunc(IfFalse)
}
