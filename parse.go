package ircv3

import "strings"

// ParseLine parses one raw IRC line into a Message. The line terminator,
// CRLF or bare LF, may be present or already stripped. Tags with invalid
// keys are dropped individually; everything else parses as usual.
//
// ParseLine is a pure function: no I/O, no shared state, safe to call
// concurrently.
func ParseLine(line string) (*Message, error) {
	return parseLine(line, false)
}

// ParseLineStrict is ParseLine, except that a tag block in which every tag
// is invalid fails the whole line with MalformedMessageError.
func ParseLineStrict(line string) (*Message, error) {
	return parseLine(line, true)
}

func parseLine(line string, strict bool) (*Message, error) {
	raw := line
	line = strings.TrimRight(line, "\r\n")
	if strings.ContainsAny(line, "\r\n\x00") {
		return nil, &MalformedMessageError{Reason: "embedded CR, LF or NUL", Line: raw}
	}

	msg := &Message{}

	// Tag section: '@' up to the next space. Escaped spaces inside values
	// are written as \s, so a literal space always ends the block.
	if strings.HasPrefix(line, "@") {
		block, rest, ok := strings.Cut(line[1:], " ")
		if !ok {
			return nil, &MalformedMessageError{Reason: "tags without a command", Line: raw}
		}
		tags, dropped := parseTags(block)
		if strict && dropped > 0 && len(tags) == 0 {
			return nil, &MalformedMessageError{Reason: "unparseable tag block", Line: raw}
		}
		if len(tags) > 0 {
			msg.Tags = tags
		}
		line = rest
	}

	line = strings.TrimLeft(line, " ")

	// Source section: ':' up to the next space.
	if strings.HasPrefix(line, ":") {
		token, rest, ok := strings.Cut(line[1:], " ")
		if !ok || token == "" {
			return nil, &MalformedMessageError{Reason: "source without a command", Line: raw}
		}
		src := ParseSource(token)
		msg.Source = &src
		line = strings.TrimLeft(rest, " ")
	}

	verb, rest, _ := strings.Cut(line, " ")
	if verb == "" {
		return nil, &MalformedMessageError{Reason: "missing verb", Line: raw}
	}
	switch {
	case isDigits(verb):
		if len(verb) != 3 {
			return nil, &MalformedMessageError{Reason: "numeric verb is not three digits", Line: raw}
		}
		msg.Verb = verb
	case isAlpha(verb):
		msg.Verb = strings.ToUpper(verb)
	default:
		return nil, &MalformedMessageError{Reason: "verb is neither alphabetic nor numeric", Line: raw}
	}

	msg.Params = splitParams(rest)
	return msg, nil
}

// parseTags parses the ';'-separated tag block. Entries with invalid keys
// are dropped and counted; later duplicates of a key overwrite earlier
// ones, matching deployed server behavior.
func parseTags(block string) (Tags, int) {
	tags := make(Tags)
	dropped := 0
	for block != "" {
		var entry string
		entry, block, _ = strings.Cut(block, ";")
		if entry == "" {
			dropped++
			continue
		}
		key, raw, hasValue := strings.Cut(entry, "=")
		if !validTagKey(key) {
			dropped++
			continue
		}
		if hasValue {
			tags[key] = TagValue{Value: UnescapeTagValue(raw), HasValue: true}
		} else {
			tags[key] = TagValue{}
		}
	}
	return tags, dropped
}

// splitParams splits the text after the verb into parameters. A ':'-led
// remainder is the trailing parameter with the colon stripped. Once 14
// middle parameters have been taken, the entire remainder becomes the 15th
// parameter even without a colon marker, spaces and all.
func splitParams(text string) []string {
	var params []string
	for {
		text = strings.TrimLeft(text, " ")
		if text == "" {
			return params
		}
		if text[0] == ':' {
			return append(params, text[1:])
		}
		if len(params) == MaxParams-1 {
			return append(params, text)
		}
		middle, rest, _ := strings.Cut(text, " ")
		params = append(params, middle)
		text = rest
	}
}
