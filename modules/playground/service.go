package playground

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cliffjones/neologizer/handler"
	"github.com/cliffjones/neologizer/pkg/binder"
	"github.com/cliffjones/neologizer/pkg/generator"
	"github.com/cliffjones/neologizer/pkg/logger"
	"github.com/cliffjones/neologizer/pkg/neologizer"
	"github.com/cliffjones/neologizer/pkg/present"
)

// CodeInsufficientCorpus is the error code of runs that produced no words.
const CodeInsufficientCorpus = "insufficient_corpus"

// Service serves the generation endpoints.
type Service struct {
	svc         *neologizer.Service
	log         *slog.Logger
	maxBodySize int64
}

func NewService(svc *neologizer.Service, log *slog.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		svc:         svc,
		log:         log.With(logger.Component("playground")),
		maxBodySize: binder.DefaultMaxJSONSize,
	}
}

// Handle returns the generation routes.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	bind := handler.WithBinder[GenerateRequest](binder.JSON(s.maxBodySize))
	r.Post("/generate", handler.Wrap(s.generate, bind))
	r.Post("/convert", handler.Wrap(s.convert, bind))

	return r
}

func (s *Service) generate(ctx context.Context, req GenerateRequest) handler.Response {
	return s.run(ctx, req, neologizer.ModeGenerate)
}

func (s *Service) convert(ctx context.Context, req GenerateRequest) handler.Response {
	return s.run(ctx, req, neologizer.ModeConvert)
}

func (s *Service) run(ctx context.Context, req GenerateRequest, mode neologizer.Mode) handler.Response {
	if err := req.Validate(); err != nil {
		return handler.JSONError(err)
	}
	format, err := present.ParseFormat(req.Format)
	if err != nil {
		return handler.JSONError(handler.ErrBadRequest)
	}

	resp, err := s.svc.Run(ctx, req.toRequest(mode))
	switch {
	case errors.Is(err, generator.ErrInsufficientCorpus):
		return handler.JSONError(
			&handler.ErrorDetail{Code: CodeInsufficientCorpus, Message: present.InsufficientNotice},
			handler.WithJSONStatus(http.StatusUnprocessableEntity),
			handler.WithJSONMeta(map[string]any{"stats": resp.Stats}),
		)
	case errors.Is(err, neologizer.ErrInputTooLong):
		return handler.JSONError(&handler.ErrorDetail{
			Code:    handler.ErrRequestEntityTooLarge.Key,
			Message: err.Error(),
		}, handler.WithJSONStatus(handler.ErrRequestEntityTooLarge.Code))
	case err != nil:
		s.log.ErrorContext(ctx, "run failed", logger.Mode(string(mode)), logger.Error(err))
		return handler.JSONError(err)
	}

	p := present.New(format)
	out := GenerateResponse{
		Mode:   resp.Mode,
		Words:  resp.Words,
		Text:   resp.Text,
		Format: p.Format(),
		Stats:  resp.Stats,
	}
	if mode == neologizer.ModeConvert {
		out.Output = p.Text(resp.Text)
	} else {
		out.Output = p.Words(resp.Words)
	}

	return handler.JSON(out, handler.WithJSONMeta(map[string]any{
		"corpus_words": resp.CorpusWords,
		"unique_words": resp.UniqueWords,
		"duration_ms":  resp.Duration.Milliseconds(),
	}))
}
