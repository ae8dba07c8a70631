package twitch

import (
	"strconv"
	"time"

	"github.com/TopOTheHourBot/ircv3"
)

// RoomState is a typed view over a ROOMSTATE message. The server sends the
// full state on join and deltas afterwards; every accessor therefore
// reports presence separately from the value, and an absent tag means
// "unchanged".
type RoomState struct{ *ircv3.Message }

func AsRoomState(m *ircv3.Message) (RoomState, error) {
	if err := checkShape(CmdRoomState, m, 1, 1); err != nil {
		return RoomState{}, err
	}
	return RoomState{m}, nil
}

// Room returns the channel this state pertains to.
func (v RoomState) Room() string { return v.Params[0] }

// RoomID returns the room's numeric identifier, or "" when absent.
func (v RoomState) RoomID() string { return v.Tags.Value(TagRoomID) }

// Cooldown returns the room's message cooldown. ok is false when the
// cooldown did not change; a zero duration with ok true means slow mode
// was switched off.
func (v RoomState) Cooldown() (cooldown time.Duration, ok bool) {
	raw, ok := v.Tags.Get(TagSlow)
	if !ok {
		return 0, false
	}
	secs, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

// EmoteOnly reports the room's emote-only mode; ok is false when unchanged.
func (v RoomState) EmoteOnly() (on, ok bool) { return v.boolTag(TagEmoteOnly) }

// SubscribersOnly reports the room's subscribers-only mode; ok is false
// when unchanged.
func (v RoomState) SubscribersOnly() (on, ok bool) { return v.boolTag(TagSubsOnly) }

// UniqueOnly reports the room's unique-message mode; ok is false when
// unchanged.
func (v RoomState) UniqueOnly() (on, ok bool) { return v.boolTag(TagUniqueOnly) }

// FollowersOnly returns the minimum follow age to chat. ok is false when
// unchanged; a negative duration with ok true means the mode is off, and
// zero means any follower may chat.
func (v RoomState) FollowersOnly() (minAge time.Duration, ok bool) {
	raw, ok := v.Tags.Get(TagFollowersOnly)
	if !ok {
		return 0, false
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return time.Duration(minutes) * time.Minute, true
}

func (v RoomState) boolTag(key string) (on, ok bool) {
	raw, ok := v.Tags.Get(key)
	return raw == "1", ok
}
