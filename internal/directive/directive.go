// Package directive turns raw robots.txt lines into normalized
// (key, value) pairs, stripping comments and rejecting anything that
// isn't a recognized directive.
package directive

import "strings"

// Pair is a normalized directive: Key is one of "user-agent", "allow",
// "disallow"; Value is trimmed and guaranteed to contain no whitespace.
type Pair struct {
	Key   string
	Value string
}

// Parse strips a trailing line comment, splits on the first colon, trims
// and lowercases the key, and accepts the line only if the key is
// recognized and the value contains no internal whitespace. It reports
// false for blank lines, comment-only lines, lines without a colon, and
// lines with an unrecognized key.
func Parse(line string) (Pair, bool) {
	line = StripComment(line)

	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return Pair{}, false
	}
	key := strings.ToLower(strings.TrimSpace(line[:idx]))
	value := strings.TrimSpace(line[idx+1:])

	switch key {
	case "user-agent", "allow", "disallow":
	default:
		return Pair{}, false
	}
	if strings.ContainsAny(value, " \t\r\n\v\f") {
		return Pair{}, false
	}
	return Pair{Key: key, Value: value}, true
}

// StripComment truncates line at the first '#', if any.
func StripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}
