package main

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/cliffjones/neologizer/modules/playground"
	"github.com/cliffjones/neologizer/pkg/clientip"
	"github.com/cliffjones/neologizer/pkg/environment"
	"github.com/cliffjones/neologizer/pkg/generator"
	"github.com/cliffjones/neologizer/pkg/httpserver"
	"github.com/cliffjones/neologizer/pkg/logger"
	"github.com/cliffjones/neologizer/pkg/neologizer"
	"github.com/cliffjones/neologizer/pkg/ratelimiter"
	"github.com/cliffjones/neologizer/pkg/requestid"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.HTTP.Addr = addr
			}

			log := a.log.With(slog.String("version", version))
			h, cleanup, err := newHandler(cfg, log)
			if err != nil {
				return err
			}
			defer cleanup()

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(cmd.Context(), h)
		},
	}

	cmd.Flags().String("addr", "", "Listen address, overrides NEOLOGIZER_HTTP_ADDR")
	return cmd
}

// newHandler builds the playground router. cleanup releases the rate
// limiter store. Generator settings from the environment are checked here so
// a bad value stops the server from starting.
func newHandler(cfg AppConfig, log *slog.Logger) (http.Handler, func(), error) {
	if err := cfg.Generator.Merge(generator.DefaultConfig()).Validate(); err != nil {
		return nil, nil, err
	}

	svc := neologizer.New(
		neologizer.WithLogger(log),
		neologizer.WithDefaults(cfg.Generator),
		neologizer.WithMaxInputLength(cfg.MaxInputLength),
	)

	resolver := clientip.New()
	if cfg.TrustProxy {
		resolver = clientip.NewBehindProxy()
	}

	opts := playground.RouterOptions{
		Generator:   playground.NewService(svc, log),
		Environment: environment.Parse(cfg.Env),
		ClientIP:    resolver,
	}

	cleanup := func() {}
	if cfg.RateLimitEnabled {
		store := ratelimiter.NewMemoryStore()
		bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			store.Close()
			return nil, nil, err
		}
		opts.RateLimit = bucket
		cleanup = store.Close
	}

	router := playground.Router(opts)
	return withAccessLog(router, log), cleanup, nil
}

// withAccessLog logs every request at debug level. It sits outside the
// router, so the request id is read from the response header.
func withAccessLog(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		log.DebugContext(r.Context(), "request",
			logger.Component("http"),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.RequestID(w.Header().Get(requestid.Header)),
		)
	})
}
