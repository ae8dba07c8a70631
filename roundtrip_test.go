package ircv3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Round-trip property: for any well-formed Message, parsing its serialized
// form yields the same Message.
func TestRoundTrip(t *testing.T) {
	messages := []*Message{
		MustMessage(CmdPing),
		MustMessage(CmdPing, "token"),
		MustMessage(CmdPrivMsg, "#chan", "hello there"),
		MustMessage(CmdPrivMsg, "#chan", ""),
		MustMessage(CmdPrivMsg, "#chan", ":)"),
		MustMessage(ReplyWelcome, "nick", "Welcome to the network"),
		{
			Tags: Tags{
				"id":      {Value: "234AB", HasValue: true},
				"flag":    {},
				"empty":   {Value: "", HasValue: true},
				"hostile": {Value: "; \\\r\n=", HasValue: true},
			},
			Source: &Source{Name: "dan", User: "d", Host: "host"},
			Verb:   CmdPrivMsg,
			Params: []string{"#chan", "Hello"},
		},
		{
			Source: &Source{Name: "irc.example.com"},
			Verb:   "001",
			Params: []string{"nick", "Welcome"},
		},
		{
			Verb:   "LIST",
			Params: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "merged tail"},
		},
		{
			Verb:   CmdCap,
			Params: []string{"*", CapLS, "*", "multi-prefix sasl=PLAIN"},
		},
	}

	for _, msg := range messages {
		line, err := msg.Line()
		require.NoError(t, err)

		back, err := ParseLine(line)
		require.NoError(t, err, "line %q", line)
		require.Equal(t, msg, back, "line %q", line)
	}
}

// Non-canonical input normalizes once and is stable afterwards.
func TestRoundTripNormalizes(t *testing.T) {
	msg, err := ParseLine("privmsg   #chan    :hi")
	require.NoError(t, err)

	line, err := msg.Line()
	require.NoError(t, err)
	require.Equal(t, "PRIVMSG #chan hi\r\n", line)

	back, err := ParseLine(line)
	require.NoError(t, err)
	require.Equal(t, msg, back)
}
