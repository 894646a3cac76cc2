package core

// ShellState is the status bookkeeping shared by every unit of every line.
//
// SkipNext and FlipExitStatus are each consumed at most once: SkipNext by the
// next unit of any kind, FlipExitStatus by the next recorded status no matter
// how many units come in between.
type ShellState struct {
	// LastExitStatus is the status of the most recently completed command.
	LastExitStatus int
	// FlipExitStatus inverts the next status passed to SetExitStatus.
	FlipExitStatus bool
	// SkipNext suppresses the next unit.
	SkipNext bool
}

// SetExitStatus records the raw status of a completed command, inverting it
// to 1 or 0 if a flip is pending.
func (st *ShellState) SetExitStatus(raw int) {
	if !st.FlipExitStatus {
		st.LastExitStatus = raw
		return
	}

	st.FlipExitStatus = false
	if raw == 0 {
		st.LastExitStatus = 1
	} else {
		st.LastExitStatus = 0
	}
}

// ConsumeSkip reports whether the current unit must be skipped and clears
// the flag.
func (st *ShellState) ConsumeSkip() bool {
	skip := st.SkipNext
	st.SkipNext = false
	return skip
}
