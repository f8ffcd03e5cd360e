// Package reinsert rewrites a text by replacing each of its words with a
// generated word, keeping punctuation, spacing and capitalization.
//
// The text is scanned for runs of optional leading punctuation, a word,
// optional trailing punctuation and a trailing space. Digits count as
// punctuation. Spans that hold no word pass through unchanged.
//
//	out, err := reinsert.Reinsert("Hello, world!", []string{"zeb"}, rnd)
//	// out == "Zeb, zeb!"
package reinsert
