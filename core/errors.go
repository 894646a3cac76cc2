package core

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrTooManyArgs     = errors.New("too many arguments")
	ErrHomeNotSet      = errors.New("HOME not set")
	ErrCommandNotFound = errors.New("command not found")
)

// ErrorKind classifies unit failures.
type ErrorKind int

const (
	// UserError is a bad invocation: wrong argument count, unknown command.
	UserError ErrorKind = iota
	// SystemError is the environment refusing an operation: chdir, exec or
	// input decoding failed.
	SystemError
)

func (k ErrorKind) String() string {
	switch k {
	case UserError:
		return "user"
	case SystemError:
		return "system"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// UnitError is a failure local to a single unit. It is reported and folded
// into the unit's status, it never stops the chain.
type UnitError struct {
	Kind    ErrorKind
	Command string
	Err     error
}

func (e *UnitError) Error() string {
	if e.Command == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *UnitError) Unwrap() error {
	return e.Err
}

func userError(command string, err error) *UnitError {
	return &UnitError{Kind: UserError, Command: command, Err: err}
}

func systemError(command string, err error) *UnitError {
	// "chdir /x: no such file" reads better as "/x: no such file".
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = fmt.Errorf("%s: %w", pathErr.Path, pathErr.Err)
	}
	return &UnitError{Kind: SystemError, Command: command, Err: err}
}

// ExitRequest ends the read loop with Status. It is the only error a chain
// returns.
type ExitRequest struct {
	Status int
}

func (e *ExitRequest) Error() string {
	return fmt.Sprintf("exit %d", e.Status)
}
