package logger

// Outcome is what happened to a unit.
type Outcome string

const (
	// OutcomeRan means the unit executed and, for commands, produced a status.
	OutcomeRan Outcome = "ran"
	// OutcomeSkipped means a short-circuit suppressed the unit.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeNotFound means the command couldn't be resolved.
	OutcomeNotFound Outcome = "not_found"
	// OutcomeFailed means the unit hit a user or system error.
	OutcomeFailed Outcome = "failed"
)

// LogEntry is a single event.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	// Action is the unit kind, e.g. "command" or "if-true".
	Action string `json:"action"`
	// Command holds the argument vector of command units.
	Command []string `json:"command,omitempty"`
	// ResolvedCommandPath is the program that was started, if any.
	ResolvedCommandPath string `json:"resolved_command_path,omitempty"`

	Outcome Outcome `json:"outcome"`
	Status  int     `json:"status"`
	Error   string  `json:"error,omitempty"`
}

// CommandName returns the first element of Command or "".
func (le *LogEntry) CommandName() string {
	if len(le.Command) == 0 {
		return ""
	}
	return le.Command[0]
}
