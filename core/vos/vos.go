// Package vos is the slice of the operating system the interpreter touches:
// environment variables, standard streams, the working directory and the
// filesystem used to search for programs.
package vos

import "github.com/spf13/afero"

// VFS is the filesystem executables are searched for in.
type VFS = afero.Fs

// VDir holds the process working directory.
type VDir interface {
	// Chdir changes the current working directory.
	Chdir(dir string) error

	// Getwd returns an absolute path to the current directory.
	Getwd() (string, error)
}

// VOS provides a virtual OS interface.
type VOS interface {
	VEnv
	VIO
	VDir

	// FS returns the filesystem PATH lookups are performed against.
	FS() VFS
}
