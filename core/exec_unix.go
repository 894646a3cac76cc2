//go:build !windows
// +build !windows

package core

import "syscall"

func replaceProcess(path string, argv, env []string) error {
	return syscall.Exec(path, argv, env)
}
