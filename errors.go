package ircv3

import "fmt"

// Error types for parsing, construction and serialization. Parse failures
// are per-line: the caller discards the offending line and keeps reading.
// Construction and serialization failures indicate a caller bug and are
// meant to fail fast, not to be coerced.

// MalformedMessageError reports a line that could not be parsed into a
// Message: empty input, a missing verb, a verb that is neither an
// alphabetic word nor a three-digit numeric, or (in strict mode) a tag
// block with no valid tags.
type MalformedMessageError struct {
	Reason string
	Line   string // the offending line, without its terminator
}

func (e *MalformedMessageError) Error() string {
	return "ircv3: malformed message: " + e.Reason
}

// MalformedTagError reports a single invalid tag. During parsing the
// offending tag is dropped and parsing continues; during construction
// (WithTag and friends) it is returned to the caller.
type MalformedTagError struct {
	Key    string
	Reason string
}

func (e *MalformedTagError) Error() string {
	return fmt.Sprintf("ircv3: malformed tag %q: %s", e.Key, e.Reason)
}

// InvalidParameterError reports a parameter list that cannot appear on the
// wire: more than MaxParams entries, or a non-final parameter that is
// empty, contains a space, or starts with ':'.
type InvalidParameterError struct {
	Index  int // offending parameter index, -1 for a count violation
	Reason string
}

func (e *InvalidParameterError) Error() string {
	if e.Index < 0 {
		return "ircv3: invalid parameters: " + e.Reason
	}
	return fmt.Sprintf("ircv3: invalid parameter %d: %s", e.Index, e.Reason)
}

// MessageTooLargeError reports a serialized line exceeding the configured
// ceiling. The message is never truncated; the caller decides what to cut.
type MessageTooLargeError struct {
	Size  int // serialized size in bytes, including CRLF
	Limit int
}

func (e *MessageTooLargeError) Error() string {
	return fmt.Sprintf("ircv3: message too large: %d bytes exceeds limit of %d", e.Size, e.Limit)
}

// ShapeMismatchError reports a typed-view request over a message whose
// verb or parameter count does not fit the view. The underlying generic
// Message is untouched and remains accessible.
type ShapeMismatchError struct {
	Verb   string // expected verb
	Got    string // actual verb
	Min    int    // expected minimum parameter count
	Max    int    // expected maximum parameter count, -1 for unbounded
	Actual int    // actual parameter count
}

func (e *ShapeMismatchError) Error() string {
	if e.Got != e.Verb {
		return fmt.Sprintf("ircv3: shape mismatch: got verb %s, want %s", e.Got, e.Verb)
	}
	if e.Max < 0 {
		return fmt.Sprintf("ircv3: shape mismatch: %s takes at least %d params, got %d", e.Verb, e.Min, e.Actual)
	}
	if e.Min == e.Max {
		return fmt.Sprintf("ircv3: shape mismatch: %s takes %d params, got %d", e.Verb, e.Min, e.Actual)
	}
	return fmt.Sprintf("ircv3: shape mismatch: %s takes %d to %d params, got %d", e.Verb, e.Min, e.Max, e.Actual)
}
