package ircv3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Shared test helpers.

func mustParse(t *testing.T, line string) *Message {
	t.Helper()
	msg, err := ParseLine(line)
	require.NoError(t, err)
	return msg
}

func mustTag(m *Message, key, value string) *Message {
	out, err := m.WithTag(key, value)
	if err != nil {
		panic(err)
	}
	return out
}
