package ircv3

import (
	"bytes"
	"sort"
	"strings"
	"sync"
)

// Buffer pool for building lines. A typical line is well under 512 bytes.
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}

// Line serializes m to its wire form, CRLF included, enforcing the default
// MaxLineLength ceiling. Serialization is pure and deterministic: the same
// Message always yields byte-identical output.
func (m *Message) Line() (string, error) {
	return m.LineMax(MaxLineLength)
}

// LineMax is Line with an explicit ceiling for the message body, for
// connections that negotiated a higher LINELEN. maxLen counts the source,
// verb, parameters and CRLF; the tag section has its own fixed
// MaxTagsLength budget. maxLen <= 0 disables the body check.
func (m *Message) LineMax(maxLen int) (string, error) {
	if err := m.validate(); err != nil {
		return "", err
	}

	buf := getBuffer()
	defer putBuffer(buf)

	appendTags(buf, m.Tags)
	tagLen := buf.Len()
	if tagLen > MaxTagsLength {
		return "", &MessageTooLargeError{Size: tagLen, Limit: MaxTagsLength}
	}

	appendBody(buf, m)
	if maxLen > 0 && buf.Len()-tagLen > maxLen {
		return "", &MessageTooLargeError{Size: buf.Len() - tagLen, Limit: maxLen}
	}
	return buf.String(), nil
}

// validate re-checks the construction invariants so that messages built by
// hand (struct literals) cannot silently corrupt the wire format.
func (m *Message) validate() error {
	if _, err := canonicalVerb(m.Verb); err != nil {
		return err
	}
	for key := range m.Tags {
		if !validTagKey(key) {
			return &MalformedTagError{Key: key, Reason: "invalid key"}
		}
	}
	return validateParams(m.Params)
}

func appendMessage(buf *bytes.Buffer, m *Message) {
	appendTags(buf, m.Tags)
	appendBody(buf, m)
}

func appendTags(buf *bytes.Buffer, tags Tags) {
	if len(tags) == 0 {
		return
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte('@')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(';')
		}
		buf.WriteString(k)
		if v := tags[k]; v.HasValue {
			buf.WriteByte('=')
			buf.WriteString(EscapeTagValue(v.Value))
		}
	}
	buf.WriteByte(' ')
}

func appendBody(buf *bytes.Buffer, m *Message) {
	if m.Source != nil {
		buf.WriteByte(':')
		buf.WriteString(m.Source.String())
		buf.WriteByte(' ')
	}
	// Hand-built messages may carry a non-canonical verb ("1", "privmsg");
	// the wire form is always canonical so the output parses back.
	verb := m.Verb
	if canonical, err := canonicalVerb(verb); err == nil {
		verb = canonical
	}
	buf.WriteString(verb)
	for i, p := range m.Params {
		buf.WriteByte(' ')
		if i == len(m.Params)-1 && needsTrailingMarker(p) {
			buf.WriteByte(':')
		}
		buf.WriteString(p)
	}
	buf.WriteString(CRLF)
}

// needsTrailingMarker is the exact inverse of the parser's trailing rule:
// the final parameter gets a ':' prefix iff it is empty, contains a space,
// or itself starts with ':'.
func needsTrailingMarker(p string) bool {
	return p == "" || p[0] == ':' || strings.Contains(p, " ")
}
