package stemfilter

import (
	"errors"
	"slices"

	"github.com/kljensen/snowball"
)

// ErrUnsupportedLanguage is returned for languages snowball has no stemmer for.
var ErrUnsupportedLanguage = errors.New("unsupported stemmer language")

var languages = []string{"english", "french", "hungarian", "norwegian", "russian", "spanish", "swedish"}

// Languages returns the supported stemmer languages.
func Languages() []string {
	return slices.Clone(languages)
}

// Filter rejects generated words that share a stem with a corpus word, such
// as "cats" for a corpus holding "cat".
type Filter struct {
	language string
	stems    map[string]struct{}
}

// New stems every corpus word with the snowball stemmer for language.
func New(language string, corpus []string) (*Filter, error) {
	if !slices.Contains(languages, language) {
		return nil, errors.Join(ErrUnsupportedLanguage, errors.New(language))
	}

	f := &Filter{
		language: language,
		stems:    make(map[string]struct{}, len(corpus)),
	}
	for _, word := range corpus {
		f.stems[f.Stem(word)] = struct{}{}
	}
	return f, nil
}

// Stem returns the stem of word, or word itself if stemming fails.
func (f *Filter) Stem(word string) string {
	stemmed, err := snowball.Stem(word, f.language, true)
	if err != nil {
		return word
	}
	return stemmed
}

// Allow reports whether word's stem differs from every corpus stem.
// It has the signature expected by generator.WithValidator.
func (f *Filter) Allow(word string) bool {
	_, found := f.stems[f.Stem(word)]
	return !found
}

// Len returns the number of distinct corpus stems.
func (f *Filter) Len() int {
	return len(f.stems)
}
