package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	detector := NewSuspiciousActivityDetector()
	handler := AuthMiddleware(apiKey, nil, detector)(okHandler())

	tests := []struct {
		name           string
		providedKey    string
		queryKey       string
		websocket      bool
		path           string
		expectedStatus int
	}{
		{name: "valid key", providedKey: apiKey, path: "/api/v1/catalog", expectedStatus: http.StatusOK},
		{name: "wrong key", providedKey: "wrong-key", path: "/api/v1/catalog", expectedStatus: http.StatusUnauthorized},
		{name: "missing key", path: "/api/v1/catalog", expectedStatus: http.StatusUnauthorized},
		{name: "healthz is public", path: "/healthz", expectedStatus: http.StatusOK},
		{name: "metrics is public", path: "/metrics", expectedStatus: http.StatusOK},
		{name: "version is public", path: "/version", expectedStatus: http.StatusOK},
		{name: "swagger is public", path: "/swagger/index.html", expectedStatus: http.StatusOK},
		{name: "websocket query key", queryKey: apiKey, websocket: true, path: "/api/v1/profiles/alice/stream", expectedStatus: http.StatusOK},
		{name: "query key ignored without upgrade", queryKey: apiKey, path: "/api/v1/profiles/alice", expectedStatus: http.StatusUnauthorized},
		{name: "websocket wrong query key", queryKey: "nope", websocket: true, path: "/api/v1/profiles/alice/stream", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.path
			if tt.queryKey != "" {
				target += "?" + QueryParamAPIKey + "=" + tt.queryKey
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			if tt.websocket {
				req.Header.Set("Upgrade", "websocket")
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := AuthMiddleware("secret", nil, detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	_, failed := detector.counts("10.0.0.9")
	assert.Equal(t, 3, failed)
}

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := SecurityLoggingMiddleware(nil, detector)(okHandler())

	ip := "192.168.1.100"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < RequestRateLimit; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	requests, _ := detector.counts(ip)
	assert.Equal(t, RequestRateLimit+1, requests)
}

func TestSuspiciousActivityDetector_WindowResets(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	detector := newDetectorWithClock(func() time.Time { return now })

	for i := 0; i < RequestRateLimit; i++ {
		require.True(t, detector.RecordRequest("10.1.1.1"))
	}
	assert.False(t, detector.RecordRequest("10.1.1.1"))
	assert.True(t, detector.RecordRequest("10.1.1.2"), "limits are per address")

	now = now.Add(DetectorWindow)
	assert.True(t, detector.RecordRequest("10.1.1.1"))
	requests, _ := detector.counts("10.1.1.1")
	assert.Equal(t, 1, requests)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{name: "direct", remote: "1.2.3.4:80", want: "1.2.3.4"},
		{name: "untrusted forwarder ignored", remote: "1.2.3.4:80", forwarded: "9.9.9.9", want: "1.2.3.4"},
		{name: "trusted proxy", remote: "10.0.0.1:80", forwarded: "5.5.5.5, 6.6.6.6", trusted: []string{"10.0.0.1"}, want: "6.6.6.6"},
		{name: "trusted proxy without header", remote: "10.0.0.1:80", trusted: []string{"10.0.0.1"}, want: "10.0.0.1"},
		{name: "no port", remote: "7.7.7.7", want: "7.7.7.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get("X-XSS-Protection"))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get("Referrer-Policy"))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = new(bytes.Buffer).ReadFrom(r.Body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("this body is too long"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Error(t, readErr)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
	// Headers are only logged at debug
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, RedactedValue)
}

func TestLoggingMiddleware_SkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Empty(t, buf.String())
}
