package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/josephlewis42/chainsh/core/logger"
	"github.com/josephlewis42/chainsh/core/shell"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithFixtureDir(filepath.Join("testdata", "golden")))
}

func TestRunLine_transcripts(t *testing.T) {
	cases := map[string][]string{
		"short_circuit": {
			"true && echo hi",
			"false && echo hi",
			"true || echo hi",
			"false || echo recovered",
			"! true",
			"! false ; lastexit",
			"false ; lastexit",
			"! echo negated",
		},
		"skip_lands_on_operator": {
			"false && ! echo still runs",
			"true || ! false",
			"true || || echo twice",
			"( echo grouped )",
		},
		"errors": {
			"nosuch arg",
			"cd a b",
			"cd /nonexistent-chainsh-dir",
			"exit 1 2",
			"exit x",
			"nosuch || echo handled",
		},
	}

	for name, lines := range cases {
		t.Run(name, func(t *testing.T) {
			restoreWd(t)
			s, testOS, _ := newTestShell(t)

			newGoldie(t).Assert(t, name, transcript(t, s, testOS, lines...))
		})
	}
}

func TestRunLine_echo(t *testing.T) {
	s, testOS, _ := newTestShell(t)

	require.NoError(t, s.RunLine("true && echo hi"))

	assert.Equal(t, "hi\n", testOS.OutBuf.String())
	assert.Equal(t, 0, s.State.LastExitStatus)
}

func TestRunLine_falseSkipsEcho(t *testing.T) {
	s, testOS, _ := newTestShell(t)

	require.NoError(t, s.RunLine("false && echo hi"))

	assert.Empty(t, testOS.OutBuf.String())
	assert.Equal(t, 1, s.State.LastExitStatus)
	assert.False(t, s.State.SkipNext)
}

func TestRunLine_negate(t *testing.T) {
	s, _, _ := newTestShell(t)

	require.NoError(t, s.RunLine("! true"))

	assert.Equal(t, 1, s.State.LastExitStatus)
	assert.False(t, s.State.FlipExitStatus)
}

func TestRunLine_flipSurvivesOperators(t *testing.T) {
	s, _, _ := newTestShell(t)

	require.NoError(t, s.RunLine("! ; ; true"))

	assert.Equal(t, 1, s.State.LastExitStatus)
}

func TestRunLine_trueIsIdempotent(t *testing.T) {
	s, _, _ := newTestShell(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.RunLine("true"))

		assert.Equal(t, 0, s.State.LastExitStatus)
		assert.False(t, s.State.FlipExitStatus)
		assert.False(t, s.State.SkipNext)
	}
}

func TestRunLine_cd(t *testing.T) {
	restoreWd(t)
	s, _, _ := newTestShell(t)
	dir := t.TempDir()

	require.NoError(t, s.RunLine("cd "+dir))
	assert.Equal(t, 0, s.State.LastExitStatus)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, realpath(t, dir), realpath(t, wd))

	require.NoError(t, s.RunLine("cd a b"))
	assert.Equal(t, 1, s.State.LastExitStatus)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, after)
}

func TestRunLine_badEncoding(t *testing.T) {
	s, testOS, _ := newTestShell(t)

	require.NoError(t, s.RunLine("echo \xff"))

	assert.Equal(t, 1, s.State.LastExitStatus)
	assert.Empty(t, testOS.OutBuf.String())
	assert.Equal(t, "chainsh: invalid UTF-8 in input\n", testOS.ErrBuf.String())
}

func TestRunLine_onlySpaces(t *testing.T) {
	s, testOS, _ := newTestShell(t)

	require.NoError(t, s.RunLine("   "))

	assert.Equal(t, ExitNotFound, s.State.LastExitStatus)
	assert.Equal(t, ": command not found\n", testOS.ErrBuf.String())
}

func TestRunLine_exitStopsChain(t *testing.T) {
	s, testOS, _ := newTestShell(t)

	err := s.RunLine("exit 3 ; echo unreachable")

	var exitReq *ExitRequest
	require.ErrorAs(t, err, &exitReq)
	assert.Equal(t, 3, exitReq.Status)
	assert.Empty(t, testOS.OutBuf.String())
}

func TestRunLine_execThenIfFalse(t *testing.T) {
	s, testOS, _ := newTestShell(t)

	// "||" is an operator after exec, so the bare exec succeeds and the
	// operator skips echo.
	require.NoError(t, s.RunLine("false ; exec || echo hi"))

	assert.Equal(t, 0, s.State.LastExitStatus)
	assert.False(t, s.State.SkipNext)
	assert.Empty(t, testOS.OutBuf.String())
}

func TestStep_skipConsumedOnce(t *testing.T) {
	kinds := []shell.Token{
		shell.Op(shell.Separator),
		shell.Op(shell.IfFalse),
		shell.Op(shell.IfTrue),
		shell.Op(shell.Negate),
		shell.Op(shell.OpenGroup),
		shell.Cmd("true"),
	}

	for _, action := range kinds {
		t.Run(action.String(), func(t *testing.T) {
			s, _, _ := newTestShell(t)
			s.State = ShellState{LastExitStatus: 5, SkipNext: true}

			unit := shell.Unit{Action: action}
			if action.Kind == shell.Command {
				unit.Args = []string{action.Text}
			}

			require.NoError(t, s.Step(unit))

			assert.Equal(t, ShellState{LastExitStatus: 5}, s.State)
		})
	}
}

func TestStep_operators(t *testing.T) {
	cases := map[string]struct {
		kind     shell.Kind
		last     int
		skipNext bool
		flip     bool
	}{
		"if-false after success": {shell.IfFalse, 0, true, false},
		"if-false after failure": {shell.IfFalse, 1, false, false},
		"if-true after success":  {shell.IfTrue, 0, false, false},
		"if-true after failure":  {shell.IfTrue, 2, true, false},
		"negate":                 {shell.Negate, 0, false, true},
		"separator":              {shell.Separator, 1, false, false},
		"close group":            {shell.CloseGroup, 1, false, false},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			s, _, _ := newTestShell(t)
			s.State.LastExitStatus = tc.last

			require.NoError(t, s.Step(shell.Unit{Action: shell.Op(tc.kind)}))

			assert.Equal(t, tc.last, s.State.LastExitStatus)
			assert.Equal(t, tc.skipNext, s.State.SkipNext)
			assert.Equal(t, tc.flip, s.State.FlipExitStatus)
		})
	}
}

func TestRunLine_events(t *testing.T) {
	var buf bytes.Buffer
	s, _, _ := newTestShell(t)
	s.Events = logger.NewJsonLinesLogRecorder(&buf).Sessionless()

	require.NoError(t, s.RunLine("false && echo hi ; nosuch"))

	var got []*logger.LogEntry
	require.NoError(t, logger.ReadJSONLinesLog(&buf, func(le *logger.LogEntry) {
		got = append(got, le)
	}))

	var outcomes []logger.Outcome
	var actions []string
	for _, le := range got {
		outcomes = append(outcomes, le.Outcome)
		actions = append(actions, le.Action)
	}

	assert.Equal(t, []string{"command", "if-true", "command", "separator", "command"}, actions)
	assert.Equal(t, []logger.Outcome{
		logger.OutcomeRan,
		logger.OutcomeRan,
		logger.OutcomeSkipped,
		logger.OutcomeRan,
		logger.OutcomeNotFound,
	}, outcomes)
	assert.Equal(t, []string{"nosuch"}, got[4].Command)
	assert.Equal(t, ExitNotFound, got[4].Status)
}
