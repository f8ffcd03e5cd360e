// Package clientip resolves the address of the client behind an HTTP request.
// The playground server keys its rate limiter on it.
//
// Proxy headers are consulted only when the Resolver is told to trust them;
// otherwise the connection's remote address is used.
package clientip

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultProxyHeaders are the headers trusted by NewBehindProxy, in order.
var DefaultProxyHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver extracts the client IP from requests.
type Resolver struct {
	headers []string
}

// New returns a Resolver that trusts the given headers in order. With no
// headers it only looks at the remote address.
func New(headers ...string) *Resolver {
	return &Resolver{headers: headers}
}

// NewBehindProxy returns a Resolver trusting DefaultProxyHeaders.
func NewBehindProxy() *Resolver {
	return New(DefaultProxyHeaders...)
}

// Resolve returns the normalized client IP, or "" when none can be parsed.
// X-Forwarded-For yields its first valid entry.
func (res *Resolver) Resolve(r *http.Request) string {
	for _, h := range res.headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := parse(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

// Middleware stores the resolved IP in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.Resolve(r))))
	})
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

type contextKey struct{}

// WithContext stores ip in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the IP stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}
