package commands

import (
	"fmt"
	"strconv"
)

// LastExit prints the exit status the parent shell last recorded.
func LastExit(p *Process) int {
	status := 0
	if raw, ok := p.LookupEnv(EnvLastExit); ok {
		if parsed, err := strconv.Atoi(raw); err == nil {
			status = parsed
		}
	}

	fmt.Fprintln(p.Stdout(), status)
	return 0
}

var _ ProcessFunc = LastExit

func init() {
	mustAddCmd("lastexit", LastExit)
}
