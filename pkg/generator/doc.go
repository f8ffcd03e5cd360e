// Package generator synthesizes corpus-like words that do not appear in the
// corpus.
//
// A run extracts the letter-adjacency rules of the corpus (see package rules)
// and performs up to MaxPasses random walks over them. A walk starts from a
// rule that opens a word, then repeatedly follows a rule whose (left, center)
// pair equals the last two placed letters, until it reaches a rule that ends a
// word. Rules that occur more often in the corpus are proportionally more
// likely to be followed, so local letter frequencies carry over to the output.
//
// # Termination
//
// Every walk is bounded: it is abandoned as soon as its chunk grows beyond
// MaxWordLength or no rule continues it. The run itself is bounded by
// MaxPasses, and it stops early once MaxWordCount words have been accepted.
// Abandoned walks consume passes too, so a run may return fewer words than
// MaxPasses even on a rich corpus.
//
// # Usage
//
//	gen := generator.New(
//	    generator.WithConfig(generator.Config{MaxPasses: 2000, MaxWordLength: 10}),
//	    generator.WithSeed(42),
//	)
//	res, err := gen.Generate(ctx, tokenizer.Tokenize(text))
//	if errors.Is(err, generator.ErrInsufficientCorpus) {
//	    // ask for more source text
//	}
//
// # Error Handling
//
//   - ErrInsufficientCorpus: nothing could be generated, e.g. an empty corpus.
//   - ErrInvalidConfig: a limit is out of range; the error also wraps
//     validator.ValidationErrors.
//   - context errors: the run was cancelled between passes.
//
// A Generator owns its randomness source and rule set and must not be shared
// between goroutines.
package generator
