package twitch

import (
	"errors"

	"github.com/TopOTheHourBot/ircv3"
)

// Verbs specific to the Twitch IRC dialect.
const (
	CmdRoomState       = "ROOMSTATE"
	CmdUserState       = "USERSTATE"
	CmdGlobalUserState = "GLOBALUSERSTATE"
	CmdClearChat       = "CLEARCHAT"
	CmdClearMsg        = "CLEARMSG"
	CmdUserNotice      = "USERNOTICE"
	CmdWhisper         = "WHISPER"
)

// Tag keys used by the dialect views.
const (
	TagID            = "id"
	TagUserID        = "user-id"
	TagRoomID        = "room-id"
	TagDisplayName   = "display-name"
	TagColor         = "color"
	TagMod           = "mod"
	TagVIP           = "vip"
	TagSubscriber    = "subscriber"
	TagSentTimestamp = "tmi-sent-ts"
	TagBanDuration   = "ban-duration"
	TagTargetMsgID   = "target-msg-id"
	TagMsgID         = "msg-id"
	TagSystemMsg     = "system-msg"
	TagReplyParent   = "reply-parent-msg-id"

	TagSlow          = "slow"
	TagEmoteOnly     = "emote-only"
	TagSubsOnly      = "subs-only"
	TagFollowersOnly = "followers-only"
	TagUniqueOnly    = "r9k"
)

// ErrMissingSource is returned when a server-side view is requested over a
// message that carries no source.
var ErrMissingSource = errors.New("twitch: message has no source")

// shapeError builds the mismatch error for dialect verbs that are not in
// the root registry.
func shapeError(verb string, m *ircv3.Message, min, max int) error {
	return &ircv3.ShapeMismatchError{
		Verb:   verb,
		Got:    m.Verb,
		Min:    min,
		Max:    max,
		Actual: len(m.Params),
	}
}

func checkShape(verb string, m *ircv3.Message, min, max int) error {
	if m.Verb != verb || len(m.Params) < min || (max >= 0 && len(m.Params) > max) {
		return shapeError(verb, m, min, max)
	}
	return nil
}
