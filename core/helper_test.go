package core

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/josephlewis42/chainsh/commands"
	"github.com/josephlewis42/chainsh/core/vos"
	"github.com/josephlewis42/chainsh/core/vos/vostest"
	"github.com/stretchr/testify/require"
)

const envWantHelper = "CHAINSH_WANT_HELPER_PROCESS"

// TestHelperProcess isn't a real test, it's the child side of forked
// builtins: the shell under test starts this binary in place of the
// interpreter's hidden builtin subcommand.
func TestHelperProcess(t *testing.T) {
	if os.Getenv(envWantHelper) != "1" {
		return
	}

	args := os.Args
	for len(args) > 0 {
		if args[0] == "--" {
			args = args[1:]
			break
		}
		args = args[1:]
	}

	os.Exit(commands.Main(vos.NewHostOS(vos.NewHostIO()), args))
}

type fakeReplace struct {
	calls [][]string
	err   error
}

func (f *fakeReplace) replace(path string, argv, env []string) error {
	f.calls = append(f.calls, append([]string{path}, argv...))
	return f.err
}

// newTestShell creates a shell whose forked builtins re-enter the test
// binary and whose PATH is an empty directory unless environ sets one.
func newTestShell(t *testing.T, environ ...string) (*Shell, *vostest.TestOS, *fakeReplace) {
	t.Helper()

	environ = append([]string{
		vos.EnvPath + "=" + t.TempDir(),
		envWantHelper + "=1",
	}, environ...)
	testOS := vostest.NewTestOS(environ...)

	fake := &fakeReplace{}
	s, err := NewShell(
		testOS,
		WithSelfExec(os.Args[0], "-test.run=^TestHelperProcess$", "--"),
		WithReplaceProcess(fake.replace),
	)
	require.NoError(t, err)

	return s, testOS, fake
}

// transcript runs each line and records its output and resulting status.
func transcript(t *testing.T, s *Shell, testOS *vostest.TestOS, lines ...string) []byte {
	t.Helper()

	var out bytes.Buffer
	for _, line := range lines {
		testOS.OutBuf.Reset()
		testOS.ErrBuf.Reset()

		err := s.RunLine(line)

		fmt.Fprintf(&out, "$ %s\n%s", line, testOS.Output())
		if err != nil {
			fmt.Fprintf(&out, "error: %v\n", err)
		}
		fmt.Fprintf(&out, "[%d]\n", s.State.LastExitStatus)
	}

	return out.Bytes()
}

// chdir changes the working directory for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()

	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatal(err)
		}
	})
}

// restoreWd puts the working directory back after the test changes it.
func restoreWd(t *testing.T) {
	t.Helper()

	chdir(t, ".")
}

// writeScript creates an executable shell script in dir.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

// realpath resolves symlinks so temp dirs compare equal to Getwd.
func realpath(t *testing.T, path string) string {
	t.Helper()

	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}
