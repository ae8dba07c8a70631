package ircv3

import (
	"strings"

	"github.com/zeebo/xxh3"
)

// Message is a structured IRC message: optional tags, optional source, one
// verb and an ordered parameter list. A Message is a value; transformations
// like WithTag return a new Message and never mutate the receiver, so
// messages can be shared across goroutines without synchronization.
type Message struct {
	Tags   Tags
	Source *Source
	Verb   string // canonical: uppercase word or three-digit numeric
	Params []string
}

// NewMessage builds an outgoing message and validates it eagerly: the verb
// must be an alphabetic word (canonicalized to uppercase) or a numeric of
// up to three digits (zero-padded), and the parameters must satisfy the
// wire invariants (at most MaxParams, only the final parameter may be
// empty, contain a space, or start with ':').
func NewMessage(verb string, params ...string) (*Message, error) {
	canonical, err := canonicalVerb(verb)
	if err != nil {
		return nil, err
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}
	return &Message{Verb: canonical, Params: params}, nil
}

// MustMessage is NewMessage for statically known inputs; it panics on error.
func MustMessage(verb string, params ...string) *Message {
	m, err := NewMessage(verb, params...)
	if err != nil {
		panic(err)
	}
	return m
}

// IsNumeric reports whether the verb is a three-digit reply code.
func (m *Message) IsNumeric() bool {
	return len(m.Verb) == 3 && isDigits(m.Verb)
}

// Param returns the parameter at index i, or "" when out of range.
func (m *Message) Param(i int) string {
	if i < 0 || i >= len(m.Params) {
		return ""
	}
	return m.Params[i]
}

// Trailing returns the final parameter, or "" when there are none.
func (m *Message) Trailing() string {
	if len(m.Params) == 0 {
		return ""
	}
	return m.Params[len(m.Params)-1]
}

// WithTag returns a copy of m carrying the tag key=value. The key is
// validated; a bad key is a construction error, not a silent drop.
func (m *Message) WithTag(key, value string) (*Message, error) {
	return m.withTag(key, TagValue{Value: value, HasValue: true})
}

// WithFlagTag returns a copy of m carrying the valueless tag key.
func (m *Message) WithFlagTag(key string) (*Message, error) {
	return m.withTag(key, TagValue{})
}

func (m *Message) withTag(key string, value TagValue) (*Message, error) {
	if !validTagKey(key) {
		return nil, &MalformedTagError{Key: key, Reason: "invalid key"}
	}
	out := m.clone()
	if out.Tags == nil {
		out.Tags = make(Tags, 1)
	}
	out.Tags[key] = value
	return out, nil
}

// WithoutTag returns a copy of m without the tag key.
func (m *Message) WithoutTag(key string) *Message {
	out := m.clone()
	delete(out.Tags, key)
	return out
}

// WithSource returns a copy of m attributed to src.
func (m *Message) WithSource(src Source) *Message {
	out := m.clone()
	out.Source = &src
	return out
}

func (m *Message) clone() *Message {
	out := &Message{
		Tags:   m.Tags.Clone(),
		Verb:   m.Verb,
		Params: append([]string(nil), m.Params...),
	}
	if m.Source != nil {
		src := *m.Source
		out.Source = &src
	}
	return out
}

// Fingerprint returns a stable hash of the message's canonical wire form,
// usable as a dedup key for replayed lines. Equal messages hash equal
// regardless of tag insertion order.
func (m *Message) Fingerprint() uint64 {
	buf := getBuffer()
	defer putBuffer(buf)
	appendMessage(buf, m)
	return xxh3.Hash(buf.Bytes())
}

// canonicalVerb validates and canonicalizes a verb at construction time:
// uppercase for words, zero-padded three digits for numerics.
func canonicalVerb(verb string) (string, error) {
	if verb == "" {
		return "", &MalformedMessageError{Reason: "empty verb"}
	}
	if isDigits(verb) {
		switch len(verb) {
		case 3:
			return verb, nil
		case 1:
			return "00" + verb, nil
		case 2:
			return "0" + verb, nil
		}
		return "", &MalformedMessageError{Reason: "numeric verb longer than three digits"}
	}
	if !isAlpha(verb) {
		return "", &MalformedMessageError{Reason: "verb is neither alphabetic nor numeric"}
	}
	return strings.ToUpper(verb), nil
}

func validateParams(params []string) error {
	if len(params) > MaxParams {
		return &InvalidParameterError{Index: -1, Reason: "more than 15 parameters"}
	}
	for i, p := range params {
		if strings.ContainsAny(p, "\r\n\x00") {
			return &InvalidParameterError{Index: i, Reason: "parameter contains CR, LF or NUL"}
		}
		if i == len(params)-1 {
			continue
		}
		switch {
		case p == "":
			return &InvalidParameterError{Index: i, Reason: "non-final parameter is empty"}
		case strings.Contains(p, " "):
			return &InvalidParameterError{Index: i, Reason: "non-final parameter contains a space"}
		case p[0] == ':':
			return &InvalidParameterError{Index: i, Reason: "non-final parameter starts with ':'"}
		}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
