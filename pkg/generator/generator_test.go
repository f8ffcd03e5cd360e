package generator_test

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliffjones/neologizer/pkg/generator"
	"github.com/cliffjones/neologizer/pkg/tokenizer"
	"github.com/cliffjones/neologizer/pkg/validator"
)

const sampleText = `Once upon a midnight dreary, while I pondered, weak and weary,
Over many a quaint and curious volume of forgotten lore,
While I nodded, nearly napping, suddenly there came a tapping,
As of some one gently rapping, rapping at my chamber door.
Tis some visitor, I muttered, tapping at my chamber door,
Only this and nothing more.`

// scriptedSource returns the queued Intn results in order and reverses the
// slice on every Shuffle call.
type scriptedSource struct {
	picks []int
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.picks) == 0 {
		panic("scriptedSource: no picks left")
	}
	v := s.picks[0]
	s.picks = s.picks[1:]
	if v >= n {
		panic("scriptedSource: pick out of range")
	}
	return v
}

func (s *scriptedSource) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func TestGenerateScriptedIndexed(t *testing.T) {
	t.Parallel()

	// Rules: _ca cat at_ _or orc rca ca_
	corpus := []string{"cat", "orca"}
	src := &scriptedSource{picks: []int{
		0, 1, // _ca, then ca_ -> "ca"
		1, 0, 0, 0, 0, // _or, orc, rca, cat, at_ -> "orcat"
		0, 0, 0, // _ca, cat, at_ -> "cat", a corpus word
	}}

	res, err := generator.New(
		generator.WithConfig(generator.Config{MaxPasses: 3}),
		generator.WithSource(src),
	).Generate(context.Background(), corpus)
	require.NoError(t, err)

	assert.Equal(t, []string{"ca", "orcat"}, res.Words)
	assert.Equal(t, generator.Stats{
		Passes:     3,
		Succeeded:  3,
		CorpusHits: 1,
		Rules:      7,
	}, res.Stats)
	assert.Empty(t, src.picks)
}

func TestGenerateScriptedShuffle(t *testing.T) {
	t.Parallel()

	// Every shuffle reverses the private rule set, so steps alternate between
	// scanning it backwards and forwards:
	//   pass 1: _or (rev), orc, rca, cat (fwd), at_ -> "orcat"
	//   pass 2: _ca (fwd), ca_ (rev)              -> "ca"
	corpus := []string{"cat", "orca"}

	res, err := generator.New(
		generator.WithConfig(generator.Config{MaxPasses: 2, Selection: generator.SelectionShuffle}),
		generator.WithSource(&scriptedSource{}),
	).Generate(context.Background(), corpus)
	require.NoError(t, err)

	assert.Equal(t, []string{"orcat", "ca"}, res.Words)
	assert.Equal(t, 2, res.Stats.Succeeded)
}

func TestGenerateDoesNotMutateCorpus(t *testing.T) {
	t.Parallel()

	corpus := []string{"cat", "orca", "tab"}
	snapshot := append([]string(nil), corpus...)

	_, _ = generator.Generate(context.Background(), corpus,
		generator.WithConfig(generator.Config{MaxPasses: 50, Selection: generator.SelectionShuffle}),
		generator.WithSeed(1),
	)
	assert.Equal(t, snapshot, corpus)
}

func TestGenerateRecombination(t *testing.T) {
	t.Parallel()

	// Only "ca" and "orcat" are reachable without reproducing a corpus word.
	for _, sel := range []generator.Selection{generator.SelectionIndexed, generator.SelectionShuffle} {
		t.Run(string(sel), func(t *testing.T) {
			t.Parallel()

			res, err := generator.Generate(context.Background(), []string{"cat", "orca"},
				generator.WithConfig(generator.Config{MaxPasses: 500, Selection: sel}),
				generator.WithSeed(7),
			)
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"ca", "orcat"}, res.Words)
			assert.Positive(t, res.Stats.CorpusHits)
			assert.Positive(t, res.Stats.Duplicates)
		})
	}
}

func TestGenerateOnlyCorpusWords(t *testing.T) {
	t.Parallel()

	// Every walk over "cat" and "cap" reproduces one of them.
	res, err := generator.Generate(context.Background(), []string{"cat", "cap"},
		generator.WithConfig(generator.Config{MaxPasses: 100}),
		generator.WithSeed(3),
	)
	require.ErrorIs(t, err, generator.ErrInsufficientCorpus)
	require.NotNil(t, res)
	assert.Empty(t, res.Words)
	assert.Equal(t, 100, res.Stats.Passes)
	assert.Equal(t, 100, res.Stats.CorpusHits)
}

func TestGenerateEmptyCorpus(t *testing.T) {
	t.Parallel()

	for _, corpus := range [][]string{nil, {}, tokenizer.Tokenize("123 ... !!!")} {
		res, err := generator.Generate(context.Background(), corpus,
			generator.WithConfig(generator.Config{MaxPasses: 25}),
			generator.WithSeed(1),
		)
		require.ErrorIs(t, err, generator.ErrInsufficientCorpus)
		require.NotNil(t, res)
		assert.NotNil(t, res.Words)
		assert.Empty(t, res.Words)
		assert.Equal(t, 25, res.Stats.Passes)
		assert.Equal(t, 25, res.Stats.Abandoned)
		assert.Zero(t, res.Stats.Rules)
	}
}

func TestGenerateLengthCap(t *testing.T) {
	t.Parallel()

	// The only walk spells the 16-letter corpus word, which exceeds the cap.
	res, err := generator.Generate(context.Background(), []string{"abcdefghijklmnop"},
		generator.WithConfig(generator.Config{MaxPasses: 10}),
		generator.WithSeed(1),
	)
	require.ErrorIs(t, err, generator.ErrInsufficientCorpus)
	assert.Equal(t, 10, res.Stats.Abandoned)
	assert.Zero(t, res.Stats.Succeeded)
}

func TestGenerateProperties(t *testing.T) {
	t.Parallel()

	corpus := tokenizer.Tokenize(sampleText)
	known := make(map[string]bool, len(corpus))
	for _, w := range corpus {
		known[w] = true
	}

	for _, cfg := range []generator.Config{
		{MaxPasses: 1000, MaxWordLength: 12, MaxWordCount: 500},
		{MaxPasses: 300, MaxWordLength: 5, MaxWordCount: -1},
		{MaxPasses: 200, MaxWordLength: 8, MaxWordCount: -1, Selection: generator.SelectionShuffle},
	} {
		res, err := generator.Generate(context.Background(), corpus,
			generator.WithConfig(cfg),
			generator.WithSeed(11),
		)
		require.NoError(t, err)
		require.NotEmpty(t, res.Words)

		seen := make(map[string]bool, len(res.Words))
		for _, w := range res.Words {
			n := utf8.RuneCountInString(w)
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, cfg.MaxWordLength)
			assert.False(t, known[w], "corpus word %q generated", w)
			assert.False(t, seen[w], "duplicate word %q", w)
			seen[w] = true
		}

		s := res.Stats
		assert.LessOrEqual(t, s.Passes, cfg.MaxPasses)
		assert.Equal(t, s.Passes, s.Succeeded+s.Abandoned)
		assert.Equal(t, s.Succeeded, len(res.Words)+s.CorpusHits+s.Duplicates+s.Rejected)
		assert.Equal(t, tokenizer.LetterCount(corpus), s.Rules)
	}
}

func TestGenerateMaxWordCount(t *testing.T) {
	t.Parallel()

	res, err := generator.Generate(context.Background(), tokenizer.Tokenize(sampleText),
		generator.WithConfig(generator.Config{MaxPasses: 5000, MaxWordCount: 5}),
		generator.WithSeed(5),
	)
	require.NoError(t, err)
	assert.Len(t, res.Words, 5)
	assert.Less(t, res.Stats.Passes, 5000)
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	corpus := tokenizer.Tokenize(sampleText)
	run := func(sel generator.Selection) []string {
		res, err := generator.Generate(context.Background(), corpus,
			generator.WithConfig(generator.Config{MaxPasses: 300, Selection: sel}),
			generator.WithSeed(2024),
		)
		require.NoError(t, err)
		return res.Words
	}

	for _, sel := range []generator.Selection{generator.SelectionIndexed, generator.SelectionShuffle} {
		assert.Equal(t, run(sel), run(sel), "selection %s", sel)
	}
}

func TestGenerateValidator(t *testing.T) {
	t.Parallel()

	res, err := generator.Generate(context.Background(), []string{"cat", "orca"},
		generator.WithConfig(generator.Config{MaxPasses: 500}),
		generator.WithSeed(9),
		generator.WithValidator(func(w string) bool { return len(w) > 2 }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"orcat"}, res.Words)
	assert.Positive(t, res.Stats.Rejected)
}

func TestGenerateCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := generator.Generate(ctx, []string{"cat", "orca"}, generator.WithSeed(1))
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Zero(t, res.Stats.Passes)
}

func TestGenerateInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cfg   generator.Config
		field string
	}{
		{"negative passes", generator.Config{MaxPasses: -1}, "max_passes"},
		{"negative length", generator.Config{MaxWordLength: -3}, "max_word_length"},
		{"unknown selection", generator.Config{Selection: "random"}, "selection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := generator.Generate(context.Background(), []string{"cat"}, generator.WithConfig(tt.cfg))
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, generator.ErrInvalidConfig))
			assert.True(t, validator.ExtractValidationErrors(err).Has(tt.field))
		})
	}
}

func TestConfigMerge(t *testing.T) {
	t.Parallel()

	cfg := generator.Config{MaxWordLength: 8}.Merge(generator.DefaultConfig())
	assert.Equal(t, generator.Config{
		MaxPasses:     generator.DefaultMaxPasses,
		MaxWordLength: 8,
		MaxWordCount:  generator.DefaultMaxWordCount,
		Selection:     generator.SelectionIndexed,
	}, cfg)

	assert.NoError(t, generator.DefaultConfig().Validate())
}

func BenchmarkGenerate(b *testing.B) {
	corpus := tokenizer.Tokenize(sampleText)

	b.Run("Indexed", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_, _ = generator.Generate(context.Background(), corpus, generator.WithSeed(1))
		}
	})

	b.Run("Shuffle", func(b *testing.B) {
		cfg := generator.Config{MaxPasses: 100, Selection: generator.SelectionShuffle}
		b.ReportAllocs()
		for b.Loop() {
			_, _ = generator.Generate(context.Background(), corpus, generator.WithConfig(cfg), generator.WithSeed(1))
		}
	})
}
