// Package tokenizer turns free text into the corpus used for word generation.
//
// A word is a maximal run of letters, where a letter is any rune with distinct
// upper and lower case forms. Everything else (digits, punctuation, whitespace)
// acts as a separator. Input is normalized to NFC first so that a base letter
// followed by a combining accent counts as one letter.
//
// # Usage
//
//	words := tokenizer.Tokenize("The cat, the CAP!")
//	// []string{"the", "cat", "the", "cap"}
//
// Text holding no letters yields an empty slice, never a slice with an empty
// string in it.
package tokenizer
