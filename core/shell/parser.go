// Package shell turns an input line into the ordered units the interpreter
// executes.
//
// A line is split on single spaces into fields, each field is classified as an
// operator, a command name or an argument (see Tokenize), and the tokens are
// then grouped so every command carries its arguments (see BuildChain).
// There is no quoting, escaping, redirection or pipelining.
package shell
