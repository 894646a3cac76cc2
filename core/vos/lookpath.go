package vos

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

// LookPath searches for an entry named file in the directories named by the
// PATH environment variable. If file contains a slash, it is returned as is
// and the PATH is not consulted.
//
// Directories are tried left to right and the search stops at the first one
// holding an entry whose base name is exactly file. Within a directory,
// entries are compared in the order the filesystem lists them. Directories
// that don't exist or can't be listed are skipped.
func LookPath(vfs VFS, env VEnv, file string) (string, error) {
	if strings.Contains(file, "/") {
		return file, nil
	}

	for _, dir := range filepath.SplitList(env.Getenv(EnvPath)) {
		if dir == "" {
			continue
		}

		match, err := scanDir(vfs, dir, file)
		switch {
		case err != nil:
			continue
		case match != "":
			return match, nil
		}
	}

	return "", ErrNotFound
}

func scanDir(vfs VFS, dir, file string) (string, error) {
	fd, err := vfs.Open(dir)
	if err != nil {
		return "", err
	}
	defer fd.Close()

	info, err := fd.Stat()
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", &fs.PathError{Op: "scan", Path: dir, Err: errors.New("not a directory")}
	}

	names, err := fd.Readdirnames(-1)
	if err != nil {
		return "", err
	}

	for _, name := range names {
		if filepath.Base(name) == file {
			return filepath.Join(dir, name), nil
		}
	}

	return "", nil
}
