package vos

import (
	"os"

	"github.com/spf13/afero"
)

// HostOS is a VOS backed by the running process. Chdir changes the working
// directory of the whole process so spawned children inherit it.
type HostOS struct {
	VEnv
	VIO

	fs VFS
}

var _ VOS = (*HostOS)(nil)

// NewHostOS creates a VOS over the real environment, filesystem and working
// directory with the given streams.
func NewHostOS(vio VIO) *HostOS {
	return NewHostOSWithEnv(HostEnv{}, vio, afero.NewOsFs())
}

// NewHostOSWithEnv is like NewHostOS but uses a separate environment and
// search filesystem. The working directory is still the process's.
func NewHostOSWithEnv(env VEnv, vio VIO, fs VFS) *HostOS {
	return &HostOS{
		VEnv: env,
		VIO:  vio,
		fs:   fs,
	}
}

// Chdir implements VDir.Chdir.
func (h *HostOS) Chdir(dir string) error {
	return os.Chdir(dir)
}

// Getwd implements VDir.Getwd.
func (h *HostOS) Getwd() (string, error) {
	return os.Getwd()
}

// FS implements VOS.FS.
func (h *HostOS) FS() VFS {
	return h.fs
}
