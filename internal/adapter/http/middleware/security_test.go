package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityHeaders_StaticHeaders(t *testing.T) {
	handler := SecurityHeaders(okHandler())

	tests := []struct {
		header   string
		expected string
	}{
		{header: "X-Content-Type-Options", expected: "nosniff"},
		{header: "X-Frame-Options", expected: "DENY"},
		{header: "Referrer-Policy", expected: "no-referrer"},
		{header: "Permissions-Policy", expected: "camera=(), microphone=(), geolocation=()"},
		{header: "Cross-Origin-Resource-Policy", expected: "same-origin"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/videos/1", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Header().Get(tt.header))
		})
	}
}

func TestSecurityHeaders_CSP(t *testing.T) {
	handler := SecurityHeaders(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	csp := rec.Header().Get("Content-Security-Policy")
	for _, directive := range []string{"default-src 'none'", "frame-ancestors 'none'", "base-uri 'none'", "form-action 'none'"} {
		assert.Contains(t, csp, directive)
	}
	assert.NotContains(t, csp, "'unsafe-inline'")
}

func TestSecurityHeaders_HSTS(t *testing.T) {
	tests := []struct {
		name   string
		tls    bool
		proto  string
		expect bool
	}{
		{name: "plain http", expect: false},
		{name: "forwarded https", proto: "https", expect: true},
		{name: "forwarded http", proto: "http", expect: false},
		{name: "direct tls", tls: true, expect: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			if tt.tls {
				req.TLS = &tls.ConnectionState{}
			}
			rec := httptest.NewRecorder()

			SecurityHeaders(okHandler()).ServeHTTP(rec, req)

			hsts := rec.Header().Get("Strict-Transport-Security")
			if tt.expect {
				assert.Contains(t, hsts, "max-age=")
				assert.Contains(t, hsts, "includeSubDomains")
			} else {
				assert.Empty(t, hsts)
			}
		})
	}
}

func TestSecurityHeaders_PassesThrough(t *testing.T) {
	called := false
	handler := SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"queued":true}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/videos/1/pipeline", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, `{"queued":true}`, rec.Body.String())
}
