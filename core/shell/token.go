package shell

import "fmt"

// Kind identifies what a Token is.
type Kind int

const (
	// Separator is ";".
	Separator Kind = iota
	// IfFalse is "||", it runs the next unit only if the last status was non-zero.
	IfFalse
	// IfTrue is "&&", it runs the next unit only if the last status was zero.
	IfTrue
	// Negate is "!", it inverts the next recorded status.
	Negate
	// OpenGroup is "(", recognized but never interpreted.
	OpenGroup
	// CloseGroup is ")", recognized but never interpreted.
	CloseGroup
	// Command is the first word after an operator or the start of the line.
	Command
	// Argument is any word following a command or another argument.
	Argument
)

var operators = map[string]Kind{
	";":  Separator,
	"||": IfFalse,
	"&&": IfTrue,
	"!":  Negate,
	"(":  OpenGroup,
	")":  CloseGroup,
}

var kindNames = map[Kind]string{
	Separator:  "separator",
	IfFalse:    "if-false",
	IfTrue:     "if-true",
	Negate:     "negate",
	OpenGroup:  "open-group",
	CloseGroup: "close-group",
	Command:    "command",
	Argument:   "argument",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsOperator is true for every kind except Command and Argument.
func (k Kind) IsOperator() bool {
	return k != Command && k != Argument
}

// Token is one lexical element of a line. Text is only set for Command and
// Argument tokens.
type Token struct {
	Kind Kind
	Text string
}

// Op creates an operator token.
func Op(kind Kind) Token {
	return Token{Kind: kind}
}

// Cmd creates a command token.
func Cmd(name string) Token {
	return Token{Kind: Command, Text: name}
}

// Arg creates an argument token.
func Arg(value string) Token {
	return Token{Kind: Argument, Text: value}
}

func (t Token) String() string {
	if t.Kind.IsOperator() {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
