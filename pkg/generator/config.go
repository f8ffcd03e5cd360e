package generator

import (
	"errors"

	"github.com/cliffjones/neologizer/pkg/validator"
)

// Selection names the strategy used to pick the next transition of a walk.
type Selection string

const (
	// SelectionIndexed picks uniformly from the rules sharing the current
	// context. It is the default.
	SelectionIndexed Selection = "indexed"
	// SelectionShuffle shuffles the whole rule set before every step and takes
	// the first matching rule. Same distribution as SelectionIndexed, much slower
	// on large corpora.
	SelectionShuffle Selection = "shuffle"
)

// Default limits.
const (
	DefaultMaxPasses     = 1000
	DefaultMaxWordLength = 12
	DefaultMaxWordCount  = 500
)

// Config bounds a generation run. It can be populated from the environment
// (caarlos0/env tags) or from a YAML profile.
type Config struct {
	// MaxPasses is the number of walks attempted, successful or not.
	MaxPasses int `env:"MAX_PASSES" envDefault:"1000" yaml:"max_passes" json:"max_passes"`
	// MaxWordLength caps the chunk length of a walk; longer walks are abandoned.
	MaxWordLength int `env:"MAX_WORD_LENGTH" envDefault:"12" yaml:"max_word_length" json:"max_word_length"`
	// MaxWordCount stops the run early once this many words are accepted.
	// A value <= 0 disables the limit; Merge treats zero as unset, so pass a
	// negative value to ask for an unbounded run.
	MaxWordCount int `env:"MAX_WORD_COUNT" envDefault:"500" yaml:"max_word_count" json:"max_word_count"`
	// Selection is the transition picking strategy.
	Selection Selection `env:"SELECTION" envDefault:"indexed" yaml:"selection" json:"selection"`
}

// DefaultConfig returns the default limits with indexed selection.
func DefaultConfig() Config {
	return Config{
		MaxPasses:     DefaultMaxPasses,
		MaxWordLength: DefaultMaxWordLength,
		MaxWordCount:  DefaultMaxWordCount,
		Selection:     SelectionIndexed,
	}
}

// Merge returns c with zero fields replaced by the fields of defaults.
func (c Config) Merge(defaults Config) Config {
	if c.MaxPasses == 0 {
		c.MaxPasses = defaults.MaxPasses
	}
	if c.MaxWordLength == 0 {
		c.MaxWordLength = defaults.MaxWordLength
	}
	if c.MaxWordCount == 0 {
		c.MaxWordCount = defaults.MaxWordCount
	}
	if c.Selection == "" {
		c.Selection = defaults.Selection
	}
	return c
}

// Validate checks the limits. The returned error wraps ErrInvalidConfig and
// carries validator.ValidationErrors describing each offending field.
func (c Config) Validate() error {
	err := validator.Apply(
		validator.MinNum("max_passes", c.MaxPasses, 1),
		validator.MinNum("max_word_length", c.MaxWordLength, 1),
		validator.InList("selection", c.Selection, []Selection{SelectionIndexed, SelectionShuffle}),
	)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
