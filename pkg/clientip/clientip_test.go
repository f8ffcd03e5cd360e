package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cliffjones/neologizer/pkg/clientip"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resolver *clientip.Resolver
		remote   string
		headers  map[string]string
		expected string
	}{
		{
			name:     "remote address",
			resolver: clientip.New(),
			remote:   "192.0.2.1:1234",
			expected: "192.0.2.1",
		},
		{
			name:     "remote address without port",
			resolver: clientip.New(),
			remote:   "192.0.2.1",
			expected: "192.0.2.1",
		},
		{
			name:     "ipv6 remote address",
			resolver: clientip.New(),
			remote:   "[2001:db8::1]:443",
			expected: "2001:db8::1",
		},
		{
			name:     "headers ignored unless trusted",
			resolver: clientip.New(),
			remote:   "192.0.2.1:1234",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.9"},
			expected: "192.0.2.1",
		},
		{
			name:     "first forwarded entry",
			resolver: clientip.NewBehindProxy(),
			remote:   "10.0.0.1:1234",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.2"},
			expected: "203.0.113.9",
		},
		{
			name:     "skips garbage in forwarded list",
			resolver: clientip.NewBehindProxy(),
			remote:   "10.0.0.1:1234",
			headers:  map[string]string{"X-Forwarded-For": "unknown, 203.0.113.9"},
			expected: "203.0.113.9",
		},
		{
			name:     "header order",
			resolver: clientip.NewBehindProxy(),
			remote:   "10.0.0.1:1234",
			headers: map[string]string{
				"CF-Connecting-IP": "198.51.100.7",
				"X-Real-IP":        "203.0.113.9",
			},
			expected: "198.51.100.7",
		},
		{
			name:     "mapped ipv4",
			resolver: clientip.NewBehindProxy(),
			remote:   "10.0.0.1:1234",
			headers:  map[string]string{"X-Real-IP": "::ffff:192.0.2.5"},
			expected: "192.0.2.5",
		},
		{
			name:     "unparseable everything",
			resolver: clientip.NewBehindProxy(),
			remote:   "pipe",
			headers:  map[string]string{"X-Real-IP": "nope"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, tt.resolver.Resolve(req))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.New().Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "192.0.2.1", got)
	assert.Empty(t, clientip.FromContext(context.Background()))
}
