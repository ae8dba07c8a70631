package twitch

import (
	"strconv"
	"time"

	"github.com/TopOTheHourBot/ircv3"
)

// ClearChat is a typed view over a CLEARCHAT message: a full chat clear,
// a timeout, or a permanent ban depending on its parameters and tags.
type ClearChat struct{ *ircv3.Message }

func AsClearChat(m *ircv3.Message) (ClearChat, error) {
	if err := checkShape(CmdClearChat, m, 1, 2); err != nil {
		return ClearChat{}, err
	}
	return ClearChat{m}, nil
}

// Room returns the affected channel.
func (v ClearChat) Room() string { return v.Params[0] }

// TargetUser returns the login name of the timed-out or banned user, or
// "" when the whole chat was cleared.
func (v ClearChat) TargetUser() string { return v.Param(1) }

// Duration returns the timeout length. ok is false for a full clear or a
// permanent ban (no ban-duration tag).
func (v ClearChat) Duration() (d time.Duration, ok bool) {
	raw, ok := v.Tags.Get(TagBanDuration)
	if !ok {
		return 0, false
	}
	secs, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

// IsBan reports whether a single user was removed permanently: a target
// with no duration.
func (v ClearChat) IsBan() bool {
	_, timed := v.Duration()
	return v.TargetUser() != "" && !timed
}

// ClearMsg is a typed view over a CLEARMSG message, which deletes a single
// chat line by its id.
type ClearMsg struct{ *ircv3.Message }

func AsClearMsg(m *ircv3.Message) (ClearMsg, error) {
	if err := checkShape(CmdClearMsg, m, 2, 2); err != nil {
		return ClearMsg{}, err
	}
	return ClearMsg{m}, nil
}

// Room returns the affected channel.
func (v ClearMsg) Room() string { return v.Params[0] }

// Text returns the text of the deleted message.
func (v ClearMsg) Text() string { return v.Params[1] }

// TargetID returns the id of the deleted message.
func (v ClearMsg) TargetID() string { return v.Tags.Value(TagTargetMsgID) }

// UserNotice is a typed view over a USERNOTICE message: subscriptions,
// raids, announcements and other server-composed room events.
type UserNotice struct{ *ircv3.Message }

func AsUserNotice(m *ircv3.Message) (UserNotice, error) {
	if err := checkShape(CmdUserNotice, m, 1, 2); err != nil {
		return UserNotice{}, err
	}
	return UserNotice{m}, nil
}

// Room returns the channel the notice was posted to.
func (v UserNotice) Room() string { return v.Params[0] }

// Text returns the user-supplied portion of the notice, or "" when the
// event carries none.
func (v UserNotice) Text() string { return v.Param(1) }

// Kind returns the msg-id tag naming the event type (sub, resub, raid,
// announcement, ...).
func (v UserNotice) Kind() string { return v.Tags.Value(TagMsgID) }

// SystemText returns the server-composed description of the event.
func (v UserNotice) SystemText() string { return v.Tags.Value(TagSystemMsg) }
