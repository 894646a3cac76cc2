package core

import (
	"errors"

	"github.com/josephlewis42/chainsh/core/logger"
	"github.com/josephlewis42/chainsh/core/shell"
)

// RunLine parses and runs one line of input. Failures of individual units are
// reported and recorded in State; the only error returned is *ExitRequest.
func (s *Shell) RunLine(line string) error {
	units, err := shell.Parse(line)
	if err != nil {
		unitErr := &UnitError{Kind: SystemError, Command: "chainsh", Err: err}
		s.report(unitErr)
		s.State.SetExitStatus(1)
		s.record(&logger.LogEntry{Action: "line", Outcome: logger.OutcomeFailed, Status: s.State.LastExitStatus, Error: err.Error()})
		return nil
	}

	return s.RunUnits(units)
}

// RunUnits runs units left to right.
func (s *Shell) RunUnits(units []shell.Unit) error {
	for _, unit := range units {
		if err := s.Step(unit); err != nil {
			return err
		}
	}
	return nil
}

// Step evaluates a single unit against State.
//
// A pending skip is consumed first and suppresses the unit whatever it is,
// operators included. Otherwise "||" and "&&" arm a skip of the next unit
// from the last status, "!" arms a flip of the next recorded status, and
// commands are launched and their status recorded.
func (s *Shell) Step(unit shell.Unit) error {
	action := unit.Action.Kind.String()

	if s.State.ConsumeSkip() {
		s.Log.Printf("skip %v", unit)
		s.record(&logger.LogEntry{Action: action, Command: unit.Args, Outcome: logger.OutcomeSkipped, Status: s.State.LastExitStatus})
		return nil
	}

	switch unit.Action.Kind {
	case shell.IfFalse:
		s.State.SkipNext = s.State.LastExitStatus == 0
	case shell.IfTrue:
		s.State.SkipNext = s.State.LastExitStatus != 0
	case shell.Negate:
		s.State.FlipExitStatus = true
	case shell.Command:
		return s.command(unit)
	default:
		// Separators and groups don't do anything.
	}

	s.Log.Printf("%v: last=%d skip_next=%t flip=%t", unit, s.State.LastExitStatus, s.State.SkipNext, s.State.FlipExitStatus)
	s.record(&logger.LogEntry{Action: action, Outcome: logger.OutcomeRan, Status: s.State.LastExitStatus})
	return nil
}

func (s *Shell) command(unit shell.Unit) error {
	res := s.Launch(unit.Args)

	var exitReq *ExitRequest
	if errors.As(res.Err, &exitReq) {
		s.record(&logger.LogEntry{Action: "command", Command: unit.Args, ResolvedCommandPath: res.Path, Outcome: logger.OutcomeRan, Status: exitReq.Status})
		return exitReq
	}

	if !res.NoStatus {
		s.State.SetExitStatus(res.Status)
	}
	s.Log.Printf("%v: raw=%d recorded=%d", unit, res.Status, s.State.LastExitStatus)

	entry := &logger.LogEntry{
		Action:              "command",
		Command:             unit.Args,
		ResolvedCommandPath: res.Path,
		Outcome:             logger.OutcomeRan,
		Status:              s.State.LastExitStatus,
	}

	if res.Err != nil {
		s.report(res.Err)

		entry.Error = res.Err.Error()
		entry.Outcome = logger.OutcomeFailed
		if errors.Is(res.Err, ErrCommandNotFound) {
			entry.Outcome = logger.OutcomeNotFound
		}
	}

	s.record(entry)
	return nil
}

func (s *Shell) record(le *logger.LogEntry) {
	if err := s.Events.Record(le); err != nil {
		s.Log.Printf("recording event: %v", err)
	}
}
