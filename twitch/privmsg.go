package twitch

import (
	"strconv"
	"time"

	"github.com/TopOTheHourBot/ircv3"
)

// PrivateMessage is a typed view over a PRIVMSG arriving from the Twitch
// IRC server. The server attaches a source and a tag block to every chat
// line, so both are required for the view.
type PrivateMessage struct{ *ircv3.Message }

// AsPrivateMessage validates the server-PRIVMSG shape over m.
func AsPrivateMessage(m *ircv3.Message) (PrivateMessage, error) {
	if err := m.CheckShape(ircv3.CmdPrivMsg); err != nil {
		return PrivateMessage{}, err
	}
	if m.Source == nil {
		return PrivateMessage{}, ErrMissingSource
	}
	return PrivateMessage{m}, nil
}

// Room returns the channel the message was sent to, '#' included.
func (v PrivateMessage) Room() string { return v.Params[0] }

// Text returns the chat text.
func (v PrivateMessage) Text() string { return v.Params[1] }

// ID returns the message identifier assigned by the server.
func (v PrivateMessage) ID() string { return v.Tags.Value(TagID) }

// Sent returns the server-side send time, or the zero time when the
// tmi-sent-ts tag is absent or unreadable.
func (v PrivateMessage) Sent() time.Time {
	ms, err := strconv.ParseInt(v.Tags.Value(TagSentTimestamp), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// Sender returns the sending client's view.
func (v PrivateMessage) Sender() Chatter { return Chatter{v} }

// Reply builds the client PRIVMSG answering this message in-thread,
// carrying the reply-parent-msg-id tag when this message has an ID.
func (v PrivateMessage) Reply(text string) (*ircv3.Message, error) {
	reply, err := ircv3.NewMessage(ircv3.CmdPrivMsg, v.Room(), text)
	if err != nil {
		return nil, err
	}
	if id := v.ID(); id != "" {
		return reply.WithTag(TagReplyParent, id)
	}
	return reply, nil
}

// Chatter exposes the sending client of a server PRIVMSG through its
// source and tags.
type Chatter struct{ msg PrivateMessage }

// Name returns the sender's login name, taken from the message source.
func (c Chatter) Name() string { return c.msg.Source.Name }

// DisplayName returns the sender's display name, falling back to the
// login name when the tag is absent or empty.
func (c Chatter) DisplayName() string {
	if name := c.msg.Tags.Value(TagDisplayName); name != "" {
		return name
	}
	return c.Name()
}

// Handle returns the sender's @-handle.
func (c Chatter) Handle() string { return "@" + c.DisplayName() }

// ID returns the sender's user identifier.
func (c Chatter) ID() string { return c.msg.Tags.Value(TagUserID) }

// Color returns the sender's name color, or "" when unset.
func (c Chatter) Color() string { return c.msg.Tags.Value(TagColor) }

// IsMod reports whether the sender is a moderator of the room.
func (c Chatter) IsMod() bool { return c.msg.Tags.Value(TagMod) == "1" }

// IsVIP reports whether the sender is a VIP. Presence of the tag is the
// signal; its value is irrelevant.
func (c Chatter) IsVIP() bool { return c.msg.Tags.Has(TagVIP) }

// IsSubscriber reports whether the sender subscribes to the room.
func (c Chatter) IsSubscriber() bool { return c.msg.Tags.Value(TagSubscriber) == "1" }

// IsBroadcaster reports whether the sender owns the room the message was
// sent to.
func (c Chatter) IsBroadcaster() bool { return "#"+c.Name() == c.msg.Room() }

// NewPrivateMessage builds a client PRIVMSG for room.
func NewPrivateMessage(room, text string) (*ircv3.Message, error) {
	return ircv3.NewMessage(ircv3.CmdPrivMsg, room, text)
}
