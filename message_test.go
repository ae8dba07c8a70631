package ircv3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	msg, err := NewMessage("privmsg", "#chan", "hello there")
	require.NoError(t, err)
	require.Equal(t, CmdPrivMsg, msg.Verb)
	require.False(t, msg.IsNumeric())

	msg, err = NewMessage("1", "nick", "Welcome")
	require.NoError(t, err)
	require.Equal(t, "001", msg.Verb)
	require.True(t, msg.IsNumeric())

	_, err = NewMessage("")
	var malformed *MalformedMessageError
	require.ErrorAs(t, err, &malformed)

	_, err = NewMessage("1234")
	require.ErrorAs(t, err, &malformed)

	_, err = NewMessage("PRIV1MSG")
	require.ErrorAs(t, err, &malformed)
}

func TestNewMessageParamBoundary(t *testing.T) {
	params := make([]string, 15)
	for i := range params {
		params[i] = "p"
	}
	msg, err := NewMessage("LIST", params...)
	require.NoError(t, err)
	require.Len(t, msg.Params, 15)

	// and the cap round-trips through the wire
	line, err := msg.Line()
	require.NoError(t, err)
	back, err := ParseLine(line)
	require.NoError(t, err)
	require.Len(t, back.Params, 15)

	_, err = NewMessage("LIST", append(params, "p")...)
	var invalid *InvalidParameterError
	require.ErrorAs(t, err, &invalid)
}

func TestNewMessageInvalidMiddle(t *testing.T) {
	_, err := NewMessage(CmdPrivMsg, "has space", "text")
	var invalid *InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, 0, invalid.Index)
}

func TestWithTagValueSemantics(t *testing.T) {
	base := MustMessage(CmdPrivMsg, "#chan", "hi")

	tagged, err := base.WithTag("id", "123")
	require.NoError(t, err)
	require.Nil(t, base.Tags, "receiver must not be mutated")
	require.Equal(t, "123", tagged.Tags.Value("id"))

	flagged, err := tagged.WithFlagTag("+typing")
	require.NoError(t, err)
	require.False(t, tagged.Tags.Has("+typing"))
	require.True(t, flagged.Tags.Has("+typing"))

	cleared := flagged.WithoutTag("id")
	require.True(t, flagged.Tags.Has("id"))
	require.False(t, cleared.Tags.Has("id"))

	_, err = base.WithTag("inv@lid", "x")
	var malformed *MalformedTagError
	require.ErrorAs(t, err, &malformed)
}

func TestWithSource(t *testing.T) {
	base := MustMessage(CmdPrivMsg, "#chan", "hi")
	attributed := base.WithSource(Source{Name: "dan", User: "d", Host: "host"})
	require.Nil(t, base.Source)
	require.Equal(t, "dan", attributed.Source.Name)
}

func TestParamAccessors(t *testing.T) {
	msg := MustMessage(CmdKick, "#chan", "dan", "bye")
	require.Equal(t, "#chan", msg.Param(0))
	require.Equal(t, "", msg.Param(3))
	require.Equal(t, "", msg.Param(-1))
	require.Equal(t, "bye", msg.Trailing())

	empty := MustMessage(CmdPing)
	require.Equal(t, "", empty.Trailing())
}

func TestFingerprint(t *testing.T) {
	a, err := ParseLine("@id=1;time=2023-01-01T00:00:00Z PRIVMSG #chan :hi")
	require.NoError(t, err)
	b, err := ParseLine("@time=2023-01-01T00:00:00Z;id=1 PRIVMSG #chan :hi")
	require.NoError(t, err)

	// tag order on the wire does not change identity
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	c, err := ParseLine("@id=2;time=2023-01-01T00:00:00Z PRIVMSG #chan :hi")
	require.NoError(t, err)
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	// stable across calls
	require.Equal(t, a.Fingerprint(), a.Fingerprint())
}
