package playground

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cliffjones/neologizer/handler"
	"github.com/cliffjones/neologizer/pkg/clientip"
	"github.com/cliffjones/neologizer/pkg/environment"
	"github.com/cliffjones/neologizer/pkg/ratelimiter"
	"github.com/cliffjones/neologizer/pkg/requestid"
)

// Mountable is anything that serves a sub-tree of routes.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures Router. Nil fields disable what they provide.
type RouterOptions struct {
	Generator   Mountable
	Environment environment.Environment
	ClientIP    *clientip.Resolver
	// RateLimit applies to the generation routes only, keyed by client IP.
	RateLimit *ratelimiter.Bucket
}

// Router assembles the playground API.
//
//	svc := playground.NewService(neologizer.New(), log)
//	r := playground.Router(playground.RouterOptions{
//		Generator: svc,
//		ClientIP:  clientip.New(),
//	})
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	if opts.Environment != "" {
		r.Use(environment.Middleware(opts.Environment))
	}
	if opts.ClientIP == nil {
		opts.ClientIP = clientip.New()
	}
	r.Use(opts.ClientIP.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrMethodNotAllowed).Render(w, r)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSON(map[string]string{"status": "ok"}).Render(w, r)
	})

	if opts.Generator != nil {
		r.Group(func(g chi.Router) {
			if opts.RateLimit != nil {
				g.Use(ratelimiter.Middleware(opts.RateLimit, keyByClientIP, http.HandlerFunc(tooManyRequests)))
			}
			g.Mount("/", opts.Generator.Handle())
		})
	}

	return r
}

func keyByClientIP(r *http.Request) string {
	return clientip.FromContext(r.Context())
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
}
