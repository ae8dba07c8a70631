package ircv3

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		msg  *Message
		want string
	}{
		{
			name: "trailing marker for space",
			msg:  MustMessage(CmdPrivMsg, "#chan", "has space"),
			want: "PRIVMSG #chan :has space\r\n",
		},
		{
			name: "no marker for plain trailing",
			msg:  MustMessage(CmdJoin, "#chan"),
			want: "JOIN #chan\r\n",
		},
		{
			name: "marker for empty trailing",
			msg:  MustMessage(CmdPrivMsg, "#chan", ""),
			want: "PRIVMSG #chan :\r\n",
		},
		{
			name: "marker for colon-led trailing",
			msg:  MustMessage(CmdPrivMsg, "#chan", ":)"),
			want: "PRIVMSG #chan ::)\r\n",
		},
		{
			name: "numeric zero padded",
			msg:  MustMessage("1", "nick", "Welcome"),
			want: "001 nick Welcome\r\n",
		},
		{
			name: "verb uppercased",
			msg:  MustMessage("privmsg", "#chan", "hi"),
			want: "PRIVMSG #chan hi\r\n",
		},
		{
			name: "source reconstructed",
			msg: &Message{
				Source: &Source{Name: "dan", User: "d", Host: "host"},
				Verb:   CmdPrivMsg,
				Params: []string{"#chan", "Hello"},
			},
			want: ":dan!d@host PRIVMSG #chan Hello\r\n",
		},
		{
			name: "tags escaped and sorted",
			msg: &Message{
				Tags: Tags{
					"time": {Value: "2023-01-01T00:00:00Z", HasValue: true},
					"note": {Value: "a;b c", HasValue: true},
				},
				Verb:   CmdPrivMsg,
				Params: []string{"#chan", "hi"},
			},
			want: `@note=a\:b\sc;time=2023-01-01T00:00:00Z PRIVMSG #chan hi` + "\r\n",
		},
		{
			name: "no params",
			msg:  MustMessage(CmdPing),
			want: "PING\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.msg.Line()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			// serialization is pure: a second call is byte-identical
			again, err := tt.msg.Line()
			require.NoError(t, err)
			require.Equal(t, got, again)
		})
	}
}

func TestLineCanonicalizesStructLiteralVerb(t *testing.T) {
	// Messages built as struct literals bypass NewMessage's
	// canonicalization; serialization must still emit the wire form the
	// parser accepts.
	tests := []struct {
		name string
		msg  *Message
		want string
	}{
		{
			name: "one digit numeric",
			msg:  &Message{Verb: "1", Params: []string{"#chan", "hi"}},
			want: "001 #chan hi\r\n",
		},
		{
			name: "two digit numeric",
			msg:  &Message{Verb: "01", Params: []string{"#chan", "hi"}},
			want: "001 #chan hi\r\n",
		},
		{
			name: "lowercase command",
			msg:  &Message{Verb: "privmsg", Params: []string{"#chan", "hi"}},
			want: "PRIVMSG #chan hi\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := tt.msg.Line()
			require.NoError(t, err)
			require.Equal(t, tt.want, line)

			back, err := ParseLine(line)
			require.NoError(t, err)
			require.Equal(t, strings.Fields(tt.want)[0], back.Verb)

			// identity is verb-notation independent as well
			require.Equal(t, tt.msg.Fingerprint(), back.Fingerprint())
		})
	}
}

func TestLineInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		msg  *Message
	}{
		{
			name: "middle with space",
			msg:  &Message{Verb: CmdPrivMsg, Params: []string{"bad target", "hi"}},
		},
		{
			name: "middle starts with colon",
			msg:  &Message{Verb: CmdPrivMsg, Params: []string{":bad", "hi"}},
		},
		{
			name: "empty middle",
			msg:  &Message{Verb: CmdPrivMsg, Params: []string{"", "hi"}},
		},
		{
			name: "too many params",
			msg:  &Message{Verb: "LIST", Params: make([]string, 16)},
		},
		{
			name: "embedded newline",
			msg:  &Message{Verb: CmdPrivMsg, Params: []string{"#chan", "a\r\nQUIT"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.msg.Line()
			var invalid *InvalidParameterError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestLineTooLarge(t *testing.T) {
	msg := MustMessage(CmdPrivMsg, "#chan", strings.Repeat("x", 600))

	_, err := msg.Line()
	var tooLarge *MessageTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	require.Equal(t, MaxLineLength, tooLarge.Limit)
	require.Greater(t, tooLarge.Size, MaxLineLength)

	// negotiated LINELEN raises the ceiling
	line, err := msg.LineMax(1024)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(line, "\r\n"))

	// zero disables the body check
	_, err = msg.LineMax(0)
	require.NoError(t, err)
}

func TestLineTagBudgetSeparate(t *testing.T) {
	// a large tag section does not count against the 512-byte body
	msg := MustMessage(CmdPrivMsg, "#chan", "hi")
	msg.Tags = Tags{"key": {Value: strings.Repeat("v", 1000), HasValue: true}}

	line, err := msg.Line()
	require.NoError(t, err)
	require.Greater(t, len(line), MaxLineLength)

	// but the tag section has its own ceiling
	msg.Tags = Tags{"key": {Value: strings.Repeat("v", MaxTagsLength), HasValue: true}}
	_, err = msg.Line()
	var tooLarge *MessageTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	require.Equal(t, MaxTagsLength, tooLarge.Limit)
}

func TestLineInvalidTagKey(t *testing.T) {
	msg := MustMessage(CmdPing)
	msg.Tags = Tags{"inv@lid": {Value: "x", HasValue: true}}

	_, err := msg.Line()
	var malformed *MalformedTagError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, "inv@lid", malformed.Key)
}
