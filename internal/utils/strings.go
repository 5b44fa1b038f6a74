package utils

import (
	"encoding/json"
	"unicode/utf8"
)

// TruncationMarker is the literal suffix appended to content cut at a length
// limit, signalling to downstream consumers that data was shortened.
const TruncationMarker = "... (content truncated)"

// Truncate shortens s to at most maxLen bytes, appending [TruncationMarker]
// when content was cut. Strings at or below the limit are returned unchanged.
// The cut never splits a UTF-8 sequence: when maxLen lands inside a multi-byte
// rune the cut backs off to the preceding rune boundary, so the result is
// always valid UTF-8.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + TruncationMarker
}

// JSONToString serialises object to its JSON representation and returns it as
// a string. When the optional indent argument is true the output is
// pretty-printed with two-space indentation. On marshalling failure it returns
// a JSON-formatted error string rather than panicking, so the result is always
// safe to use in log output.
func JSONToString(object interface{}, indent ...bool) string {
	var encoded []byte
	var err error
	if len(indent) > 0 && indent[0] {
		encoded, err = json.MarshalIndent(object, "", "  ")
	} else {
		encoded, err = json.Marshal(object)
	}
	if err != nil {
		return "{\"error\": \"failed to marshal to JSON: " + err.Error() + "\"}"
	}
	return string(encoded)
}
