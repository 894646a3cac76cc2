package core

import (
	"errors"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/josephlewis42/chainsh/commands"
	"github.com/josephlewis42/chainsh/core/vos"
)

// ExitNotFound is the status of a command that couldn't be found or started.
const ExitNotFound = 127

// Result is the outcome of running one command.
type Result struct {
	// Status is the raw exit status.
	Status int
	// NoStatus is set when the command leaves the last exit status alone.
	NoStatus bool
	// Path is the program that was started, if any.
	Path string
	// Err is reported to the user; an *ExitRequest stops the read loop.
	Err error
}

// Launch runs argv, argv[0] is the command name.
//
// Shell builtins run in this process. exec is dropped from the front of argv
// as many times as it appears and marks the rest as a replacement for this
// process. Everything else runs in a child which is waited on before Launch
// returns.
func (s *Shell) Launch(argv []string) Result {
	replace := false

	for {
		name := argv[0]

		if name == "exec" {
			if len(argv) == 1 {
				return Result{Status: 0}
			}
			argv = argv[1:]
			replace = true
			continue
		}

		if builtin, ok := AllBuiltins[name]; ok {
			return builtin.Main(s, argv)
		}

		if replace {
			return s.replace(argv)
		}
		return s.fork(argv)
	}
}

// fork runs argv in a child process and waits for it.
func (s *Shell) fork(argv []string) Result {
	env := s.VirtualOS.Environ()

	if commands.IsBuiltin(argv[0]) {
		childArgv := append(append([]string{}, s.SelfExec...), argv...)
		env = append(env, commands.EnvLastExit+"="+strconv.Itoa(s.State.LastExitStatus))

		s.Log.Printf("fork builtin %q", argv)
		return s.wait(s.SelfExec[0], childArgv, env)
	}

	path, err := vos.LookPath(s.VirtualOS.FS(), s.VirtualOS, argv[0])
	if err != nil {
		return Result{Status: ExitNotFound, Err: userError(argv[0], ErrCommandNotFound)}
	}

	s.Log.Printf("fork %q as %s", argv, path)
	return s.wait(path, argv, env)
}

func (s *Shell) wait(path string, argv, env []string) Result {
	if env == nil {
		// A nil Env would hand the child our real environment.
		env = []string{}
	}

	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    env,
		Stdin:  s.VirtualOS.Stdin(),
		Stdout: s.VirtualOS.Stdout(),
		Stderr: s.VirtualOS.Stderr(),
	}

	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return Result{Status: 0, Path: path}
	case errors.As(err, &exitErr):
		return Result{Status: waitStatus(exitErr), Path: path}
	default:
		return Result{Status: ExitNotFound, Path: path, Err: systemError(argv[0], err)}
	}
}

// waitStatus maps a child's termination to a shell status, 128+N for a child
// killed by signal N.
func waitStatus(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return exitErr.ExitCode()
}

// replace runs argv in place of the shell. Forked builtins run in this process
// and then end the read loop with their status.
func (s *Shell) replace(argv []string) Result {
	name := argv[0]

	if commands.IsBuiltin(name) {
		// Ignore the error, the builtin falls back to 0.
		_ = s.VirtualOS.Setenv(commands.EnvLastExit, strconv.Itoa(s.State.LastExitStatus))

		s.Log.Printf("exec builtin %q", argv)
		status := commands.Main(s.VirtualOS, argv)
		return Result{NoStatus: true, Err: &ExitRequest{Status: status}}
	}

	path, err := vos.LookPath(s.VirtualOS.FS(), s.VirtualOS, name)
	if err != nil {
		return Result{Status: ExitNotFound, Err: userError(name, ErrCommandNotFound)}
	}

	s.Log.Printf("exec %q as %s", argv, path)
	err = s.ReplaceProcess(path, argv, s.VirtualOS.Environ())
	if err == nil {
		err = errors.New("process was not replaced")
	}
	return Result{Status: ExitNotFound, Path: path, Err: systemError(name, err)}
}
