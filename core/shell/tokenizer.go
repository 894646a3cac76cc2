package shell

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrBadEncoding is returned for lines that aren't valid UTF-8.
var ErrBadEncoding = errors.New("invalid UTF-8 in input")

// Tokenize splits a line, without its trailing newline, into tokens.
//
// Fields are separated by single spaces. Leading empty fields are dropped as
// long as more than one field remains; other empty fields are kept. Operator
// fields must match exactly. Any other field is a Command unless the token
// before it is a Command or Argument, in which case it is an Argument.
func Tokenize(line string) ([]Token, error) {
	if !utf8.ValidString(line) {
		return nil, ErrBadEncoding
	}

	fields := strings.Split(line, " ")
	for len(fields) > 1 && fields[0] == "" {
		fields = fields[1:]
	}

	tokens := make([]Token, 0, len(fields))
	for _, field := range fields {
		if kind, ok := operators[field]; ok {
			tokens = append(tokens, Op(kind))
			continue
		}

		if n := len(tokens); n > 0 && !tokens[n-1].Kind.IsOperator() {
			tokens = append(tokens, Arg(field))
		} else {
			tokens = append(tokens, Cmd(field))
		}
	}

	return tokens, nil
}
