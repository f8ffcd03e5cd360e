package neologizer

import "errors"

var (
	ErrUnknownMode  = errors.New("unknown mode")
	ErrReadInput    = errors.New("failed to read input")
	ErrShowOutput   = errors.New("failed to show output")
	ErrInputTooLong = errors.New("source text too long")
)
