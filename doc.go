// Package ircv3 implements the IRCv3 wire protocol: parsing raw IRC lines
// into structured messages and serializing messages back into
// protocol-correct lines, with message tags, capability negotiation
// vocabulary and batch framing.
//
// This package is a codec, not a client. It manages no sockets, tracks no
// channel or user state and runs no negotiation sequence; transport and
// bot logic sit on top of it.
//
// # Core Types
//
// Message is an immutable value holding optional tags, an optional source,
// a verb (textual command or three-digit numeric) and an ordered parameter
// list:
//
//	msg, err := ircv3.ParseLine("@id=123 :dan!d@host PRIVMSG #chan :hi\r\n")
//	msg.Verb             // "PRIVMSG"
//	msg.Params           // ["#chan", "hi"]
//	msg.Tags.Value("id") // "123"
//	msg.Source.Name      // "dan"
//
// The reverse direction builds and validates eagerly:
//
//	msg, err := ircv3.NewMessage("PRIVMSG", "#chan", "has space")
//	line, err := msg.Line() // "PRIVMSG #chan :has space\r\n"
//
// # Typed Views
//
// As* functions validate a message's shape against a static verb registry
// and expose named accessors; a mismatch fails with ShapeMismatchError and
// leaves the generic Message untouched:
//
//	if ping, err := ircv3.AsPing(msg); err == nil {
//	    ircv3.WriteMessage(conn, ping.Reply())
//	}
//
// # Stream Framing
//
// Reader splits an io.Reader into lines and parses each one. Parse errors
// are per-line; the stream keeps going:
//
//	r := ircv3.NewReader(conn)
//	for {
//	    msg, err := r.ReadMessage()
//	    if err == io.EOF {
//	        break
//	    }
//	    var malformed *ircv3.MalformedMessageError
//	    if errors.As(err, &malformed) {
//	        continue // discard the line, keep reading
//	    }
//	    ...
//	}
//
// # Error Handling
//
// Parse-time failures (MalformedMessageError) mean "discard this line".
// Construction and serialization failures (InvalidParameterError,
// MessageTooLargeError, MalformedTagError from WithTag) mean the caller
// built an impossible message and should be treated as bugs, not retried.
//
// # Thread Safety
//
// Parsing and serialization are pure functions over immutable values; all
// exported functions are safe for concurrent use. The verb registry is
// read-only after process start.
package ircv3
