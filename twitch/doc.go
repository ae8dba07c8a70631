// Package twitch provides typed views over generic ircv3 Messages for the
// Twitch chat dialect: server PRIVMSG with tag-backed sender metadata,
// ROOMSTATE deltas, CLEARCHAT and USERNOTICE moderation events, and
// constructors for the client side of the conversation.
//
// Like the root package, this is vocabulary only - connection handling and
// bot logic live elsewhere.
package twitch
