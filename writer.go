package ircv3

import (
	"bufio"
	"io"
)

// WriteMessage serializes m and writes the line to w, enforcing the
// default MaxLineLength ceiling. The line is built in a pooled buffer and
// written in a single call, so concurrent writers interleave at line
// granularity when w serializes its own writes.
func WriteMessage(w io.Writer, m *Message) error {
	return WriteMessageMax(w, m, MaxLineLength)
}

// WriteMessageMax is WriteMessage with an explicit body ceiling, for
// connections that negotiated a higher LINELEN.
func WriteMessageMax(w io.Writer, m *Message, maxLen int) error {
	if err := m.validate(); err != nil {
		return err
	}

	buf := getBuffer()
	defer putBuffer(buf)

	appendTags(buf, m.Tags)
	tagLen := buf.Len()
	if tagLen > MaxTagsLength {
		return &MessageTooLargeError{Size: tagLen, Limit: MaxTagsLength}
	}

	appendBody(buf, m)
	if maxLen > 0 && buf.Len()-tagLen > maxLen {
		return &MessageTooLargeError{Size: buf.Len() - tagLen, Limit: maxLen}
	}

	if bw, ok := w.(*bufio.Writer); ok {
		if _, err := bw.Write(buf.Bytes()); err != nil {
			return err
		}
		return bw.Flush()
	}
	_, err := w.Write(buf.Bytes())
	return err
}
