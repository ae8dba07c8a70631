package ircv3

import "strings"

// Typed views wrap a generic Message and expose verb-appropriate named
// accessors. A view is obtained with an As* function, which validates the
// message's shape against the verb registry and fails with
// ShapeMismatchError when it does not fit. The wrapped Message is embedded
// and stays fully accessible; a failed view never discards it.

// Ping is a typed view over a PING message.
type Ping struct{ *Message }

func AsPing(m *Message) (Ping, error) {
	if err := m.CheckShape(CmdPing); err != nil {
		return Ping{}, err
	}
	return Ping{m}, nil
}

// Token returns the ping token to echo back.
func (v Ping) Token() string { return v.Param(0) }

// Reply builds the PONG answering this ping.
func (v Ping) Reply() *Message {
	if len(v.Params) == 0 {
		return &Message{Verb: CmdPong}
	}
	return &Message{Verb: CmdPong, Params: []string{v.Token()}}
}

// Pong is a typed view over a PONG message.
type Pong struct{ *Message }

func AsPong(m *Message) (Pong, error) {
	if err := m.CheckShape(CmdPong); err != nil {
		return Pong{}, err
	}
	return Pong{m}, nil
}

func (v Pong) Token() string { return v.Trailing() }

// PrivMsg is a typed view over a PRIVMSG message.
type PrivMsg struct{ *Message }

func AsPrivMsg(m *Message) (PrivMsg, error) {
	if err := m.CheckShape(CmdPrivMsg); err != nil {
		return PrivMsg{}, err
	}
	return PrivMsg{m}, nil
}

// Target returns the channel or nickname the message was sent to.
func (v PrivMsg) Target() string { return v.Params[0] }

// Text returns the message body.
func (v PrivMsg) Text() string { return v.Params[1] }

// Notice is a typed view over a NOTICE message.
type Notice struct{ *Message }

func AsNotice(m *Message) (Notice, error) {
	if err := m.CheckShape(CmdNotice); err != nil {
		return Notice{}, err
	}
	return Notice{m}, nil
}

func (v Notice) Target() string { return v.Params[0] }
func (v Notice) Text() string   { return v.Params[1] }

// Join is a typed view over a JOIN message.
type Join struct{ *Message }

func AsJoin(m *Message) (Join, error) {
	if err := m.CheckShape(CmdJoin); err != nil {
		return Join{}, err
	}
	return Join{m}, nil
}

// Channels returns the channel list, splitting the comma-joined form.
func (v Join) Channels() []string { return strings.Split(v.Params[0], ",") }

// Part is a typed view over a PART message.
type Part struct{ *Message }

func AsPart(m *Message) (Part, error) {
	if err := m.CheckShape(CmdPart); err != nil {
		return Part{}, err
	}
	return Part{m}, nil
}

func (v Part) Channels() []string { return strings.Split(v.Params[0], ",") }

// Reason returns the part reason, or "" when absent.
func (v Part) Reason() string { return v.Param(1) }

// Welcome is a typed view over the 001 RPL_WELCOME numeric.
type Welcome struct{ *Message }

func AsWelcome(m *Message) (Welcome, error) {
	if err := m.CheckShape(ReplyWelcome); err != nil {
		return Welcome{}, err
	}
	return Welcome{m}, nil
}

// Client returns the nickname the server welcomed.
func (v Welcome) Client() string { return v.Params[0] }

// Text returns the welcome text.
func (v Welcome) Text() string { return v.Params[1] }

// TagMsg is a typed view over a TAGMSG message, which carries its payload
// entirely in tags.
type TagMsg struct{ *Message }

func AsTagMsg(m *Message) (TagMsg, error) {
	if err := m.CheckShape(CmdTagMsg); err != nil {
		return TagMsg{}, err
	}
	return TagMsg{m}, nil
}

func (v TagMsg) Target() string { return v.Params[0] }

// Capability is one entry of a CAP capability list: name, optional value
// (from the name=value form) and whether the entry was prefixed with '-',
// which servers use in ACK/NAK/DEL to signal removal.
type Capability struct {
	Name     string
	Value    string
	Disabled bool
}

// Cap is a typed view over a CAP message, client or server form. Only the
// message shape is handled here; negotiation sequencing belongs to the
// caller.
type Cap struct{ *Message }

func AsCap(m *Message) (Cap, error) {
	if err := m.CheckShape(CmdCap); err != nil {
		return Cap{}, err
	}
	return Cap{m}, nil
}

// Subcommand returns the CAP subcommand (LS, REQ, ACK, ...). Client lines
// put it first; server lines put the client identifier first.
func (v Cap) Subcommand() string {
	if isCapSubcommand(v.Params[0]) {
		return v.Params[0]
	}
	return v.Param(1)
}

func (v Cap) subcommandIndex() int {
	if isCapSubcommand(v.Params[0]) {
		return 0
	}
	return 1
}

// More reports whether this is a continued multiline LS or LIST reply,
// signalled by a '*' between the subcommand and the capability list.
func (v Cap) More() bool {
	i := v.subcommandIndex()
	return len(v.Params) > i+2 && v.Params[i+1] == "*"
}

// Version returns the protocol version of a client "CAP LS 302" request,
// or "" when the line carries no version.
func (v Cap) Version() string {
	if v.subcommandIndex() != 0 || v.Subcommand() != CapLS {
		return ""
	}
	if ver := v.Param(1); isDigits(ver) {
		return ver
	}
	return ""
}

// Capabilities decodes the space-separated capability list in the final
// parameter. Lines without a list (for example CAP END, or a client LS
// that carries only a version) yield nil.
func (v Cap) Capabilities() []Capability {
	i := v.subcommandIndex()
	if len(v.Params) <= i+1 {
		return nil
	}
	list := v.Trailing()
	if list == "" || list == "*" || v.Version() != "" {
		return nil
	}
	var caps []Capability
	for _, token := range strings.Fields(list) {
		var c Capability
		c.Name = token
		if strings.HasPrefix(c.Name, "-") {
			c.Disabled = true
			c.Name = c.Name[1:]
		}
		if name, value, ok := strings.Cut(c.Name, "="); ok {
			c.Name, c.Value = name, value
		}
		caps = append(caps, c)
	}
	return caps
}

func isCapSubcommand(s string) bool {
	switch s {
	case CapLS, CapList, CapReq, CapAck, CapNak, CapEnd, CapNew, CapDel:
		return true
	}
	return false
}

// Batch is a typed view over a BATCH message. A '+'-prefixed reference
// opens a batch, a '-'-prefixed reference closes it; messages inside the
// batch point back at it through their "batch" tag.
type Batch struct{ *Message }

func AsBatch(m *Message) (Batch, error) {
	if err := m.CheckShape(CmdBatch); err != nil {
		return Batch{}, err
	}
	return Batch{m}, nil
}

// Reference returns the batch reference without its +/- marker.
func (v Batch) Reference() string {
	ref := v.Params[0]
	if len(ref) > 0 && (ref[0] == '+' || ref[0] == '-') {
		return ref[1:]
	}
	return ref
}

// Start reports whether this message opens the batch.
func (v Batch) Start() bool {
	return strings.HasPrefix(v.Params[0], "+")
}

// Type returns the batch type of an opening message, or "" for a close.
func (v Batch) Type() string {
	if !v.Start() {
		return ""
	}
	return v.Param(1)
}

// BatchParams returns the type-specific parameters of an opening message.
func (v Batch) BatchParams() []string {
	if !v.Start() || len(v.Params) <= 2 {
		return nil
	}
	return v.Params[2:]
}
