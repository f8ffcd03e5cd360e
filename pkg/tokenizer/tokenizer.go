package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// IsLetter reports whether r is a cased letter, i.e. it has distinct upper
// and lower case forms. Digits, punctuation, whitespace and caseless scripts
// are separators.
func IsLetter(r rune) bool {
	if unicode.IsUpper(r) || unicode.IsLower(r) {
		return true
	}
	return unicode.ToLower(r) != unicode.ToUpper(r)
}

// Tokenize splits text into lowercase words made only of letters.
// Every non-letter rune separates words. Text without letters yields an
// empty, non-nil slice.
func Tokenize(text string) []string {
	text = norm.NFC.String(text)

	words := make([]string, 0)
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			words = append(words, b.String())
			b.Reset()
		}
	}

	for _, r := range text {
		if !IsLetter(r) {
			flush()
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	flush()

	return words
}

// Unique returns the distinct words in first-seen order.
func Unique(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	result := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		result = append(result, w)
	}
	return result
}

// LetterCount returns the total number of letters across words.
func LetterCount(words []string) int {
	n := 0
	for _, w := range words {
		n += utf8.RuneCountInString(w)
	}
	return n
}
