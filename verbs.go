package ircv3

import "fmt"

// VerbCategory classifies a registered verb.
type VerbCategory int

const (
	// CategoryCommand is a textual command verb such as PRIVMSG.
	CategoryCommand VerbCategory = iota

	// CategoryNumeric is a three-digit reply code such as 001.
	CategoryNumeric
)

// VerbSpec describes the parameter shape of a known verb. The registry is
// a fixed, read-only table built at process start; typed views validate
// against it on demand.
type VerbSpec struct {
	Verb       string
	MinParams  int
	MaxParams  int // -1 for unbounded
	ParamNames []string
	Category   VerbCategory
}

var verbSpecs = map[string]VerbSpec{
	CmdPrivMsg: {Verb: CmdPrivMsg, MinParams: 2, MaxParams: 2, ParamNames: []string{"target", "text"}},
	CmdNotice:  {Verb: CmdNotice, MinParams: 2, MaxParams: 2, ParamNames: []string{"target", "text"}},
	CmdJoin:    {Verb: CmdJoin, MinParams: 1, MaxParams: 2, ParamNames: []string{"channels", "keys"}},
	CmdPart:    {Verb: CmdPart, MinParams: 1, MaxParams: 2, ParamNames: []string{"channels", "reason"}},
	CmdPing:    {Verb: CmdPing, MinParams: 0, MaxParams: 2, ParamNames: []string{"token", "target"}},
	CmdPong:    {Verb: CmdPong, MinParams: 0, MaxParams: 2, ParamNames: []string{"server", "token"}},
	CmdNick:    {Verb: CmdNick, MinParams: 1, MaxParams: 1, ParamNames: []string{"nickname"}},
	CmdTopic:   {Verb: CmdTopic, MinParams: 1, MaxParams: 2, ParamNames: []string{"channel", "topic"}},
	CmdKick:    {Verb: CmdKick, MinParams: 2, MaxParams: 3, ParamNames: []string{"channel", "user", "reason"}},
	CmdQuit:    {Verb: CmdQuit, MinParams: 0, MaxParams: 1, ParamNames: []string{"reason"}},
	CmdCap:     {Verb: CmdCap, MinParams: 1, MaxParams: -1, ParamNames: []string{"client", "subcommand", "caps"}},
	CmdTagMsg:  {Verb: CmdTagMsg, MinParams: 1, MaxParams: 1, ParamNames: []string{"target"}},
	CmdBatch:   {Verb: CmdBatch, MinParams: 1, MaxParams: -1, ParamNames: []string{"reference", "type", "params"}},

	ReplyWelcome: {Verb: ReplyWelcome, MinParams: 2, MaxParams: 2, ParamNames: []string{"client", "text"}, Category: CategoryNumeric},
}

func init() {
	// The table is static; catch editing mistakes at process start rather
	// than on first use.
	for verb, spec := range verbSpecs {
		if verb != spec.Verb {
			panic(fmt.Sprintf("ircv3: verb spec %q registered under key %q", spec.Verb, verb))
		}
		if spec.MinParams < 0 || (spec.MaxParams >= 0 && spec.MaxParams < spec.MinParams) {
			panic(fmt.Sprintf("ircv3: verb spec %q has inverted parameter bounds", verb))
		}
		if spec.MaxParams > MaxParams {
			panic(fmt.Sprintf("ircv3: verb spec %q exceeds the parameter cap", verb))
		}
	}
}

// LookupVerb returns the registered shape for a canonical verb.
func LookupVerb(verb string) (VerbSpec, bool) {
	spec, ok := verbSpecs[verb]
	return spec, ok
}

// CheckShape validates m against the registered shape for verb. It returns
// a ShapeMismatchError when the verb differs or the parameter count is out
// of bounds, and never modifies m.
func (m *Message) CheckShape(verb string) error {
	spec, ok := verbSpecs[verb]
	if !ok {
		spec = VerbSpec{Verb: verb, MaxParams: -1}
	}
	if m.Verb != verb {
		return &ShapeMismatchError{Verb: verb, Got: m.Verb, Min: spec.MinParams, Max: spec.MaxParams, Actual: len(m.Params)}
	}
	if len(m.Params) < spec.MinParams || (spec.MaxParams >= 0 && len(m.Params) > spec.MaxParams) {
		return &ShapeMismatchError{Verb: verb, Got: m.Verb, Min: spec.MinParams, Max: spec.MaxParams, Actual: len(m.Params)}
	}
	return nil
}
