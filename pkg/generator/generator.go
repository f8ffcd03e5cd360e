package generator

import (
	"context"

	"github.com/cliffjones/neologizer/pkg/rules"
)

// Stats counts what happened during a run.
type Stats struct {
	Passes     int `json:"passes"`      // walks attempted
	Succeeded  int `json:"succeeded"`   // walks that reached a word boundary
	Abandoned  int `json:"abandoned"`   // walks that ran too long or got stuck
	CorpusHits int `json:"corpus_hits"` // candidates equal to a corpus word
	Duplicates int `json:"duplicates"`  // candidates already accepted
	Rejected   int `json:"rejected"`    // candidates refused by the validator
	Rules      int `json:"rules"`       // size of the rule set
}

// Result holds the accepted words in acceptance order.
type Result struct {
	Words []string `json:"words"`
	Stats Stats    `json:"stats"`
}

// Generator synthesizes new words from a corpus by random walks over its
// letter-adjacency rules. A Generator is not safe for concurrent use: build
// one per goroutine, each with its own Source.
type Generator struct {
	cfg       Config
	src       Source
	validator func(string) bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithConfig sets the run limits. Zero fields fall back to DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(g *Generator) {
		g.cfg = cfg.Merge(DefaultConfig())
	}
}

// WithSource sets the randomness source. Nil sources are ignored.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithSeed seeds a math/rand source, making runs reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.src = NewSource(seed)
	}
}

// WithValidator registers an extra acceptance check applied after the
// corpus and duplicate checks. Returning false discards the candidate.
func WithValidator(fn func(word string) bool) Option {
	return func(g *Generator) {
		g.validator = fn
	}
}

// New returns a Generator with default limits and a time-seeded source.
func New(opts ...Option) *Generator {
	g := &Generator{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = newTimeSource()
	}
	return g
}

// Config returns the limits the Generator runs with.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate runs up to MaxPasses walks over the rules extracted from corpus
// and returns the new words it accepted. A word is accepted when it is
// neither a corpus word nor already accepted.
//
// When no word was accepted the Result is still returned, together with
// ErrInsufficientCorpus. The context is checked between passes.
func (g *Generator) Generate(ctx context.Context, corpus []string) (*Result, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	set := rules.Extract(corpus)
	w := newWalker(g.cfg.Selection, set, g.src)

	known := make(map[string]struct{}, len(corpus))
	for _, word := range corpus {
		known[word] = struct{}{}
	}
	accepted := make(map[string]struct{})

	res := &Result{Words: make([]string, 0)}
	res.Stats.Rules = len(set)

	for res.Stats.Passes < g.cfg.MaxPasses {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Stats.Passes++

		word, ok := g.walk(w)
		if !ok {
			res.Stats.Abandoned++
			continue
		}
		res.Stats.Succeeded++

		if _, ok := known[word]; ok {
			res.Stats.CorpusHits++
			continue
		}
		if _, ok := accepted[word]; ok {
			res.Stats.Duplicates++
			continue
		}
		if g.validator != nil && !g.validator(word) {
			res.Stats.Rejected++
			continue
		}

		accepted[word] = struct{}{}
		res.Words = append(res.Words, word)
		if g.cfg.MaxWordCount > 0 && len(res.Words) >= g.cfg.MaxWordCount {
			break
		}
	}

	if len(res.Words) == 0 {
		return res, ErrInsufficientCorpus
	}
	return res, nil
}

// walk performs a single pass. The chunk starts with the first letter of a
// start rule; every step then appends the right-hand side of the chosen
// rule. The pass succeeds when that right-hand side is the boundary, and is
// abandoned when the chunk outgrows MaxWordLength or no rule continues the
// current context.
func (g *Generator) walk(w walker) (string, bool) {
	var (
		chunk     []rune
		prev, cur rune
		started   bool
	)

	for {
		var (
			r  rules.Rule
			ok bool
		)
		if !started {
			r, ok = w.start()
		} else {
			r, ok = w.next(prev, cur)
		}

		if ok {
			if !started {
				chunk = append(chunk, r.Center)
				started = true
			}
			prev, cur = r.Center, r.Right
			chunk = append(chunk, cur)
		}

		switch {
		case len(chunk) > g.cfg.MaxWordLength:
			return "", false
		case ok && len(chunk) > 1 && cur == rules.Boundary:
			return string(chunk[:len(chunk)-1]), true
		case !ok:
			return "", false
		}
	}
}

// Generate is a shorthand for New(opts...).Generate(ctx, corpus).
func Generate(ctx context.Context, corpus []string, opts ...Option) (*Result, error) {
	return New(opts...).Generate(ctx, corpus)
}
