package neologizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/cliffjones/neologizer/pkg/generator"
	"github.com/cliffjones/neologizer/pkg/logger"
	"github.com/cliffjones/neologizer/pkg/present"
	"github.com/cliffjones/neologizer/pkg/reinsert"
	"github.com/cliffjones/neologizer/pkg/sanitizer"
	"github.com/cliffjones/neologizer/pkg/stemfilter"
	"github.com/cliffjones/neologizer/pkg/tokenizer"
)

// Mode selects what a run produces.
type Mode string

const (
	// ModeGenerate returns the list of new words.
	ModeGenerate Mode = "generate"
	// ModeConvert returns the source text with every word replaced.
	ModeConvert Mode = "convert"
)

// ParseMode converts s to a Mode. An empty string yields ModeGenerate.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(sanitizer.TrimToLower(s)); m {
	case "":
		return ModeGenerate, nil
	case ModeGenerate, ModeConvert:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Request describes one run.
type Request struct {
	Source InputSource
	Mode   Mode
	// Config fields left at zero take the Service defaults.
	Config generator.Config
	// Seed makes the run reproducible. Nil seeds from the clock.
	Seed *int64
	// StemLanguage, when set, rejects words sharing a snowball stem with a
	// corpus word.
	StemLanguage string
}

// Response is the outcome of a run.
type Response struct {
	Mode  Mode            `json:"mode"`
	Words []string        `json:"words"`
	Text  string          `json:"text,omitempty"`
	Stats generator.Stats `json:"stats"`
	// CorpusWords and UniqueWords describe the tokenized source.
	CorpusWords int           `json:"corpus_words"`
	UniqueWords int           `json:"unique_words"`
	Duration    time.Duration `json:"duration"`
}

// Service runs requests. It holds no per-request state and is safe for
// concurrent use.
type Service struct {
	log      *slog.Logger
	defaults generator.Config
	maxInput int
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDefaults sets the generator limits used for zero Request.Config fields.
func WithDefaults(cfg generator.Config) Option {
	return func(s *Service) {
		s.defaults = cfg.Merge(generator.DefaultConfig())
	}
}

// WithMaxInputLength caps the source text, in runes. Longer text is
// rejected with ErrInputTooLong. Zero or less keeps the default.
func WithMaxInputLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxInput = n
		}
	}
}

func New(opts ...Option) *Service {
	s := &Service{
		log:      logger.Discard(),
		defaults: generator.DefaultConfig(),
		maxInput: sanitizer.DefaultMaxInputLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Defaults returns the generator limits applied to requests.
func (s *Service) Defaults() generator.Config {
	return s.defaults
}

// Run executes req. When no word could be generated it returns the Response,
// carrying the run statistics, together with generator.ErrInsufficientCorpus.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	started := time.Now()

	mode, err := ParseMode(string(req.Mode))
	if err != nil {
		return nil, err
	}

	text := ""
	if req.Source != nil {
		if text, err = req.Source.InputText(ctx); err != nil {
			return nil, errors.Join(ErrReadInput, err)
		}
	}
	text = sanitizer.RemoveNullBytes(text)
	if n := utf8.RuneCountInString(text); n > s.maxInput {
		return nil, fmt.Errorf("%w: %d runes, limit is %d", ErrInputTooLong, n, s.maxInput)
	}

	log := s.log.With(logger.Component("neologizer"), logger.Mode(string(mode)))

	// the cleaned copy only feeds the tokenizer; convert mode rewrites text
	// as given so its spacing and line endings survive
	corpus := tokenizer.Tokenize(sanitizer.SourceText(text, s.maxInput))
	resp := &Response{
		Mode:        mode,
		Words:       make([]string, 0),
		CorpusWords: len(corpus),
		UniqueWords: len(tokenizer.Unique(corpus)),
	}

	var src generator.Source
	if req.Seed != nil {
		src = generator.NewSource(*req.Seed)
	} else {
		src = generator.NewSource(time.Now().UnixNano())
	}

	opts := []generator.Option{
		generator.WithConfig(req.Config.Merge(s.defaults)),
		generator.WithSource(src),
	}
	if req.StemLanguage != "" {
		filter, err := stemfilter.New(req.StemLanguage, corpus)
		if err != nil {
			return nil, err
		}
		log.DebugContext(ctx, "stem filter ready",
			slog.String("language", req.StemLanguage),
			slog.Int("stems", filter.Len()),
		)
		opts = append(opts, generator.WithValidator(filter.Allow))
	}

	res, err := generator.New(opts...).Generate(ctx, corpus)
	if res != nil {
		resp.Words = res.Words
		resp.Stats = res.Stats
	}
	resp.Duration = time.Since(started)

	switch {
	case errors.Is(err, generator.ErrInsufficientCorpus):
		log.InfoContext(ctx, "nothing generated",
			slog.Int("corpus_words", resp.CorpusWords),
			logger.Stats(resp.Stats),
			logger.Duration(resp.Duration),
		)
		return resp, err
	case err != nil:
		log.WarnContext(ctx, "generation failed", logger.Error(err))
		return nil, err
	}

	if mode == ModeConvert {
		// words is non-empty here, so Reinsert cannot fail
		if resp.Text, err = reinsert.Reinsert(text, resp.Words, src); err != nil {
			return nil, err
		}
	}

	log.DebugContext(ctx, "run finished",
		slog.Int("corpus_words", resp.CorpusWords),
		slog.Int("words", len(resp.Words)),
		logger.Stats(resp.Stats),
		logger.Duration(resp.Duration),
	)
	return resp, nil
}

// Pipe reads from in, runs req with its Source replaced by in, renders the
// result with p and shows it on out. An insufficient corpus is shown as
// present.InsufficientNotice and is not an error.
func (s *Service) Pipe(ctx context.Context, in InputSource, out OutputSink, req Request, p *present.Presenter) error {
	if p == nil {
		p = present.New(present.FormatText)
	}
	req.Source = in

	resp, err := s.Run(ctx, req)

	var rendered string
	switch {
	case errors.Is(err, generator.ErrInsufficientCorpus):
		rendered = p.Notice(present.InsufficientNotice)
	case err != nil:
		return err
	case resp.Mode == ModeConvert:
		rendered = p.Text(resp.Text)
	default:
		rendered = p.Words(resp.Words)
	}

	if err := out.ShowOutput(ctx, rendered); err != nil {
		return errors.Join(ErrShowOutput, err)
	}
	return nil
}
