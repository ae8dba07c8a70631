package ircv3

import "strings"

// Source identifies the origin of a message: either a bare server name or
// a nickname[!user][@host] triple. A message without a source originates
// from the immediate peer.
type Source struct {
	Name string // nickname or server name, never empty
	User string
	Host string
}

// ParseSource splits a raw source token on the first '!' and then the
// first '@'. It accepts the degenerate forms "nick", "nick@host" and
// "server.example.com".
func ParseSource(raw string) Source {
	var src Source
	src.Name = raw
	if name, rest, ok := strings.Cut(raw, "!"); ok {
		src.Name = name
		src.User = rest
		if user, host, ok := strings.Cut(rest, "@"); ok {
			src.User = user
			src.Host = host
		}
		return src
	}
	if name, host, ok := strings.Cut(raw, "@"); ok {
		src.Name = name
		src.Host = host
	}
	return src
}

// String reconstructs the wire form, without the leading ':'.
func (s Source) String() string {
	if s.User == "" && s.Host == "" {
		return s.Name
	}
	var b strings.Builder
	b.Grow(len(s.Name) + len(s.User) + len(s.Host) + 2)
	b.WriteString(s.Name)
	if s.User != "" {
		b.WriteByte('!')
		b.WriteString(s.User)
	}
	if s.Host != "" {
		b.WriteByte('@')
		b.WriteString(s.Host)
	}
	return b.String()
}

// IsServer reports whether the source looks like a bare server name
// rather than a user: no user or host part and a dotted name.
func (s Source) IsServer() bool {
	return s.User == "" && s.Host == "" && strings.ContainsRune(s.Name, '.')
}
