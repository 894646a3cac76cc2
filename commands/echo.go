package commands

import (
	"fmt"
	"strings"
)

// Echo writes its arguments joined by single spaces. Nothing is treated as
// an option.
func Echo(p *Process) int {
	fmt.Fprintln(p.Stdout(), strings.Join(p.Args()[1:], " "))
	return 0
}

var _ ProcessFunc = Echo

func init() {
	mustAddCmd("echo", Echo)
}
