package sanitizer

import (
	"html"
	"strings"
)

// DefaultMaxInputLength caps user supplied source text, in runes.
const DefaultMaxInputLength = 100_000

// EscapeHTML escapes &, <, >, ' and " for safe embedding in markup.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// RemoveNullBytes removes null bytes.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// SourceText prepares user supplied text for the pipeline: null bytes and
// control characters are dropped, line endings normalized and the result
// capped at maxLen runes. A maxLen of zero or less uses DefaultMaxInputLength.
func SourceText(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxInputLength
	}
	return Apply(s,
		RemoveNullBytes,
		NormalizeNewlines,
		RemoveControlChars,
		func(v string) string { return MaxLength(v, maxLen) },
	)
}
