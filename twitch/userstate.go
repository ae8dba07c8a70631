package twitch

import "github.com/TopOTheHourBot/ircv3"

// UserState is a typed view over a USERSTATE message, describing the
// logged-in user's standing in one room.
type UserState struct{ *ircv3.Message }

func AsUserState(m *ircv3.Message) (UserState, error) {
	if err := checkShape(CmdUserState, m, 1, 1); err != nil {
		return UserState{}, err
	}
	return UserState{m}, nil
}

// Room returns the room this state pertains to.
func (v UserState) Room() string { return v.Params[0] }

// DisplayName returns the user's display name, or "" when absent.
func (v UserState) DisplayName() string { return v.Tags.Value(TagDisplayName) }

// IsMod reports whether the user moderates the room.
func (v UserState) IsMod() bool { return v.Tags.Value(TagMod) == "1" }

// IsSubscriber reports whether the user subscribes to the room.
func (v UserState) IsSubscriber() bool { return v.Tags.Value(TagSubscriber) == "1" }

// GlobalUserState is a typed view over a GLOBALUSERSTATE message, sent
// once after login with the user's global identity.
type GlobalUserState struct{ *ircv3.Message }

func AsGlobalUserState(m *ircv3.Message) (GlobalUserState, error) {
	if err := checkShape(CmdGlobalUserState, m, 0, 0); err != nil {
		return GlobalUserState{}, err
	}
	return GlobalUserState{m}, nil
}

// UserID returns the logged-in user's identifier.
func (v GlobalUserState) UserID() string { return v.Tags.Value(TagUserID) }

// DisplayName returns the logged-in user's display name.
func (v GlobalUserState) DisplayName() string { return v.Tags.Value(TagDisplayName) }

// Color returns the logged-in user's name color, or "" when unset.
func (v GlobalUserState) Color() string { return v.Tags.Value(TagColor) }
