package shell

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleParse() {
	units, _ := Parse("false || echo recovered ; pwd")
	for _, u := range units {
		fmt.Println(u)
	}

	// Output: command["false"]
	// if-false
	// command["echo" "recovered"]
	// separator
	// command["pwd"]
}

func TestBuildChain(t *testing.T) {
	cases := map[string]struct {
		line     string
		expected []Unit
	}{
		"single command": {
			line: "ls -la",
			expected: []Unit{
				{Action: Cmd("ls"), Args: []string{"ls", "-la"}},
			},
		},
		"operators stay in order": {
			line: "true && echo hi",
			expected: []Unit{
				{Action: Cmd("true"), Args: []string{"true"}},
				{Action: Op(IfTrue)},
				{Action: Cmd("echo"), Args: []string{"echo", "hi"}},
			},
		},
		"negate before command": {
			line: "! true",
			expected: []Unit{
				{Action: Op(Negate)},
				{Action: Cmd("true"), Args: []string{"true"}},
			},
		},
		"groups are units": {
			line: "( true )",
			expected: []Unit{
				{Action: Op(OpenGroup)},
				{Action: Cmd("true"), Args: []string{"true"}},
				{Action: Op(CloseGroup)},
			},
		},
		"if-false after exec is an operator": {
			line: "exec ||",
			expected: []Unit{
				{Action: Cmd("exec"), Args: []string{"exec"}},
				{Action: Op(IfFalse)},
			},
		},
		"only operators": {
			line: "; &&",
			expected: []Unit{
				{Action: Op(Separator)},
				{Action: Op(IfTrue)},
			},
		},
		"trailing operator": {
			line: "true ;",
			expected: []Unit{
				{Action: Cmd("true"), Args: []string{"true"}},
				{Action: Op(Separator)},
			},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			actual, err := Parse(tc.line)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestBuildChain_noTokens(t *testing.T) {
	assert.Empty(t, BuildChain(nil))
}

func TestBuildChain_orphanArgument(t *testing.T) {
	units := BuildChain([]Token{Arg("stray"), Cmd("true")})
	assert.Equal(t, []Unit{{Action: Cmd("true"), Args: []string{"true"}}}, units)
}

func TestUnit_Name(t *testing.T) {
	assert.Equal(t, "ls", Unit{Action: Cmd("ls"), Args: []string{"ls"}}.Name())
	assert.Equal(t, "", Unit{Action: Op(Negate)}.Name())
}
