package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephlewis42/chainsh/core/vos"
)

// Pwd implements the UNIX pwd command.
func Pwd(p *Process) int {
	cmd := &SimpleCommand{
		Use:   "pwd [-LP]",
		Short: "Print the name of the current working directory.",
	}
	physical := cmd.Flags().Bool('P', "print the physical directory, without any symbolic links")
	logical := cmd.Flags().Bool('L', "print the value of $PWD if it names the current working directory (default)")

	return cmd.Run(p, func() int {
		wd, err := p.Getwd()
		if err != nil {
			fmt.Fprintf(p.Stderr(), "pwd: %v\n", err)
			return 1
		}

		switch {
		case *physical && !*logical:
			if resolved, err := filepath.EvalSymlinks(wd); err == nil {
				wd = resolved
			}
		default:
			if pwd := p.Getenv(vos.EnvPWD); sameDir(p, pwd, wd) {
				wd = pwd
			}
		}

		fmt.Fprintln(p.Stdout(), wd)
		return 0
	})
}

// sameDir reports whether the logical path names the directory wd.
func sameDir(p *Process, logical, wd string) bool {
	if !filepath.IsAbs(logical) {
		return false
	}
	if logical == wd {
		return true
	}

	a, err := p.FS().Stat(logical)
	if err != nil {
		return false
	}
	b, err := p.FS().Stat(wd)
	if err != nil {
		return false
	}
	return os.SameFile(a, b)
}

var _ ProcessFunc = Pwd

func init() {
	mustAddCmd("pwd", Pwd)
}
