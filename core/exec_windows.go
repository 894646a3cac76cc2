//go:build windows
// +build windows

package core

import "errors"

func replaceProcess(path string, argv, env []string) error {
	return errors.New("exec is not supported on windows")
}
