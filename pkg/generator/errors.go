package generator

import "errors"

var (
	// ErrInsufficientCorpus is returned when a run accepted no word at all.
	// The caller should ask for more source text.
	ErrInsufficientCorpus = errors.New("insufficient corpus: no new words could be generated")

	// ErrInvalidConfig is returned when the run limits are out of range.
	ErrInvalidConfig = errors.New("invalid generator config")
)
