package shell

import "fmt"

// Unit is one step of a chain: an action and, for commands, the argument
// vector with the command name at index 0.
type Unit struct {
	Action Token
	Args   []string
}

// Name returns the command name, or "" for operator units.
func (u Unit) Name() string {
	if u.Action.Kind != Command {
		return ""
	}
	return u.Action.Text
}

func (u Unit) String() string {
	if u.Action.Kind != Command {
		return u.Action.String()
	}
	return fmt.Sprintf("command%q", u.Args)
}

// BuildChain groups tokens into units in left to right order.
//
// Arguments are appended to the command before them. A new command, an
// operator, or the end of input closes the pending command. Each operator
// becomes a unit of its own with no arguments. Arguments with no command
// before them can't be produced by Tokenize and are dropped.
func BuildChain(tokens []Token) []Unit {
	var (
		out     []Unit
		pending *Unit
	)

	flush := func() {
		if pending != nil {
			out = append(out, *pending)
			pending = nil
		}
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case Argument:
			if pending != nil {
				pending.Args = append(pending.Args, tok.Text)
			}
		case Command:
			flush()
			pending = &Unit{Action: tok, Args: []string{tok.Text}}
		default:
			flush()
			out = append(out, Unit{Action: tok})
		}
	}
	flush()

	return out
}

// Parse tokenizes line and builds its chain.
func Parse(line string) ([]Unit, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	return BuildChain(tokens), nil
}
