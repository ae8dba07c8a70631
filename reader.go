package ircv3

import (
	"bufio"
	"bytes"
	"io"
)

// Reader frames an IRC byte stream into lines and parses each one. It
// owns only the framing: the caller owns the underlying io.Reader and its
// lifecycle (dialing, TLS, reconnects).
//
// A parse failure is local to its line. ReadMessage returns the error for
// that line and the Reader stays usable for the next call, so one hostile
// line cannot abort an entire stream.
type Reader struct {
	r *bufio.Reader
}

// NewReader returns a Reader framing lines from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadMessage reads the next line and parses it into a Message. Lines may
// be terminated by CRLF or bare LF; blank lines are skipped. At end of
// stream it returns io.EOF, with any final unterminated line parsed first.
func (r *Reader) ReadMessage() (*Message, error) {
	for {
		line, err := r.readLine()
		if err != nil {
			return nil, err
		}
		if len(bytes.TrimRight(line, "\r\n")) == 0 {
			continue
		}
		return ParseLine(string(line))
	}
}

// readLine reads one terminated line. ReadSlice avoids an allocation for
// lines that fit the buffer; longer lines fall back to ReadBytes.
func (r *Reader) readLine() ([]byte, error) {
	line, err := r.r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		// ReadSlice consumed the prefix it returned, so keep it and read
		// the remainder of the line.
		buf := append([]byte(nil), line...)
		var rest []byte
		rest, err = r.r.ReadBytes('\n')
		line = append(buf, rest...)
	}
	if err == io.EOF && len(line) > 0 {
		// final line without a terminator
		return line, nil
	}
	if err != nil {
		return nil, err
	}
	return line, nil
}
