package twitch

import (
	"strings"

	"github.com/TopOTheHourBot/ircv3"
)

// JoinRooms builds a client JOIN for one or more rooms, comma-joining them
// into a single parameter the way the server expects.
func JoinRooms(rooms ...string) (*ircv3.Message, error) {
	if len(rooms) == 0 {
		return nil, &ircv3.InvalidParameterError{Index: -1, Reason: "no rooms to join"}
	}
	return ircv3.NewMessage(ircv3.CmdJoin, strings.Join(rooms, ","))
}

// PartRooms builds a client PART for one or more rooms.
func PartRooms(rooms ...string) (*ircv3.Message, error) {
	if len(rooms) == 0 {
		return nil, &ircv3.InvalidParameterError{Index: -1, Reason: "no rooms to part"}
	}
	return ircv3.NewMessage(ircv3.CmdPart, strings.Join(rooms, ","))
}

// Membership is a typed view over a server JOIN or PART echo, which names
// the room a user entered or left.
type Membership struct{ *ircv3.Message }

// AsJoined validates a server JOIN echo over m.
func AsJoined(m *ircv3.Message) (Membership, error) {
	return asMembership(ircv3.CmdJoin, m)
}

// AsParted validates a server PART echo over m.
func AsParted(m *ircv3.Message) (Membership, error) {
	return asMembership(ircv3.CmdPart, m)
}

func asMembership(verb string, m *ircv3.Message) (Membership, error) {
	if err := m.CheckShape(verb); err != nil {
		return Membership{}, err
	}
	if m.Source == nil {
		return Membership{}, ErrMissingSource
	}
	return Membership{m}, nil
}

// Room returns the room that was joined or parted.
func (v Membership) Room() string { return v.Params[0] }

// User returns the login name of the user who joined or parted.
func (v Membership) User() string { return v.Source.Name }
