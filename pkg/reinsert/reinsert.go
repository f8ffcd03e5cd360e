package reinsert

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNoWords is returned when there is no replacement word to choose from.
var ErrNoWords = errors.New("no words available for reinsertion")

// punctuation lists the characters that may surround a word without being
// part of it: backtick, tilde, ASCII punctuation and symbols, and digits.
const punctuation = "`~!@#$%^&*()\\-_=+\\[\\]{}\\\\|;:'\",.<>/?0-9"

// wordPattern matches optional leading punctuation, a word, optional
// trailing punctuation and the following space (or end of text). A word is
// a run of non-space characters that starts and ends with something other
// than punctuation, so runs made only of punctuation or digits never match.
var wordPattern = regexp.MustCompile(
	`([` + punctuation + `]*)` +
		`([^\s` + punctuation + `](?:\S*?[^\s` + punctuation + `])?)` +
		`([` + punctuation + `]*)` +
		`(\s|$)`,
)

// Intner picks a uniform index in [0, n). *math/rand.Rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// Replacer substitutes the words of a text with randomly chosen words.
type Replacer struct {
	words []string
	src   Intner
	title cases.Caser
}

// New returns a Replacer drawing from words with src.
// It returns ErrNoWords when words is empty.
func New(words []string, src Intner) (*Replacer, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return &Replacer{
		words: words,
		src:   src,
		title: cases.Title(language.Und, cases.NoLower),
	}, nil
}

// Replace rewrites text, replacing every word with a random word while
// keeping the surrounding punctuation and spacing. A replacement is
// capitalized when the original word holds an uppercase letter.
func (r *Replacer) Replace(text string) string {
	matches := wordPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])

		original := text[m[4]:m[5]]
		replacement := r.words[r.src.Intn(len(r.words))]
		if hasUpper(original) {
			replacement = r.title.String(replacement)
		}

		b.WriteString(text[m[2]:m[3]])
		b.WriteString(replacement)
		b.WriteString(text[m[6]:m[7]])
		b.WriteString(text[m[8]:m[9]])
		last = m[1]
	}
	b.WriteString(text[last:])

	return b.String()
}

// Reinsert replaces every word of text with a word picked from words.
// It returns ErrNoWords when words is empty; callers should surface that
// rather than show the unchanged text.
func Reinsert(text string, words []string, src Intner) (string, error) {
	r, err := New(words, src)
	if err != nil {
		return "", err
	}
	return r.Replace(text), nil
}

func hasUpper(s string) bool {
	for _, c := range s {
		if unicode.IsUpper(c) {
			return true
		}
	}
	return false
}
