// Package vostest has helpers for testing code that runs against a vos.VOS.
package vostest

import (
	"bytes"
	"strings"

	"github.com/josephlewis42/chainsh/core/vos"
	"github.com/spf13/afero"
)

// TestOS is a vos.VOS with an in-memory environment and captured output. The
// working directory is still the test process's.
type TestOS struct {
	*vos.HostOS

	Env    *vos.MapEnv
	OutBuf *bytes.Buffer
	ErrBuf *bytes.Buffer
}

var _ vos.VOS = (*TestOS)(nil)

// NewTestOS creates a TestOS with the given "key=value" environment, empty
// standard input and the real filesystem for lookups.
func NewTestOS(environ ...string) *TestOS {
	return NewTestOSWithInput("", environ...)
}

// NewTestOSWithInput is like NewTestOS, standard input reads from stdin.
func NewTestOSWithInput(stdin string, environ ...string) *TestOS {
	env := vos.NewMapEnvFromEnvList(environ)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	return &TestOS{
		HostOS: vos.NewHostOSWithEnv(env, vos.NewVIOAdapter(strings.NewReader(stdin), stdout, stderr), afero.NewOsFs()),
		Env:    env,
		OutBuf: stdout,
		ErrBuf: stderr,
	}
}

// Output returns everything written to stdout followed by stderr.
func (t *TestOS) Output() string {
	return t.OutBuf.String() + t.ErrBuf.String()
}
