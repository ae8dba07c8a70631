package ircv3

import "strings"

// TagValue is the value side of a message tag. A tag present without '='
// on the wire has HasValue false; "key=" has HasValue true and an empty
// Value. The two are distinct and both round-trip.
type TagValue struct {
	Value    string
	HasValue bool
}

// Tags maps tag keys to their optional values. Keys are case-sensitive
// ASCII. Insertion order carries no meaning; serialization sorts keys so
// output is byte-stable.
type Tags map[string]TagValue

// Get returns the unescaped value for key and whether the tag is present.
// A tag present without a value yields ("", true).
func (t Tags) Get(key string) (string, bool) {
	v, ok := t[key]
	return v.Value, ok
}

// Has reports whether the tag is present, with or without a value.
func (t Tags) Has(key string) bool {
	_, ok := t[key]
	return ok
}

// Value returns the tag's value, or "" when the tag is absent or valueless.
func (t Tags) Value(key string) string {
	return t[key].Value
}

func (t Tags) Clone() Tags {
	if t == nil {
		return nil
	}
	out := make(Tags, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// valueEscaper replaces literal characters with their tag escapes.
var valueEscaper = strings.NewReplacer(
	"\\", "\\\\",
	";", "\\:",
	" ", "\\s",
	"\r", "\\r",
	"\n", "\\n",
)

// unescapeTable maps the character after a backslash to its literal form.
// Unknown escapes decode to the character itself, dropping the backslash.
var unescapeTable [256]byte

func init() {
	for i := range unescapeTable {
		unescapeTable[i] = byte(i)
	}
	unescapeTable[':'] = ';'
	unescapeTable['s'] = ' '
	unescapeTable['r'] = '\r'
	unescapeTable['n'] = '\n'
}

// EscapeTagValue returns the wire form of a raw tag value.
func EscapeTagValue(value string) string {
	return valueEscaper.Replace(value)
}

// UnescapeTagValue reverses EscapeTagValue. A trailing lone backslash is
// dropped, and unknown escape sequences decode to the escaped character.
func UnescapeTagValue(raw string) string {
	i := strings.IndexByte(raw, '\\')
	if i == -1 {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i != -1 {
		b.WriteString(raw[:i])
		if i == len(raw)-1 {
			// dangling escape at end of input
			return b.String()
		}
		b.WriteByte(unescapeTable[raw[i+1]])
		raw = raw[i+2:]
		i = strings.IndexByte(raw, '\\')
	}
	b.WriteString(raw)
	return b.String()
}

// validTagKey reports whether key is a well-formed tag key: an optional
// '+' client-only marker, an optional vendor prefix ("vendor.tld/"), then
// a non-empty run of ASCII letters, digits and hyphens.
func validTagKey(key string) bool {
	key = strings.TrimPrefix(key, "+")
	if key == "" {
		return false
	}
	if vendor, name, ok := strings.Cut(key, "/"); ok {
		if !validTagVendor(vendor) {
			return false
		}
		key = name
	}
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		if !isTagNameByte(key[i]) {
			return false
		}
	}
	return true
}

func validTagVendor(vendor string) bool {
	if vendor == "" || vendor[0] == '.' || vendor[len(vendor)-1] == '.' {
		return false
	}
	for i := 0; i < len(vendor); i++ {
		c := vendor[i]
		if !isTagNameByte(c) && c != '.' {
			return false
		}
	}
	return true
}

func isTagNameByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '-':
		return true
	}
	return false
}
