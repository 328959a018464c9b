package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WellnessQuest_Go/internal/logger"
)

func TestWithProfileID_GetProfileID(t *testing.T) {
	t.Run("stores and retrieves profile id", func(t *testing.T) {
		ctx := WithProfileID(context.Background(), "alice")
		assert.Equal(t, "alice", GetProfileID(ctx))
	})

	t.Run("returns empty string when not set", func(t *testing.T) {
		assert.Equal(t, EmptyProfileID, GetProfileID(context.Background()))
	})

	t.Run("handles context with wrong type value", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), ProfileIDKey, 12345)
		assert.Equal(t, EmptyProfileID, GetProfileID(ctx))
	})

	t.Run("setting same key overwrites previous value", func(t *testing.T) {
		ctx := WithProfileID(context.Background(), "first")
		ctx = WithProfileID(ctx, "second")
		assert.Equal(t, "second", GetProfileID(ctx))
	})
}

func TestExtractProfileID(t *testing.T) {
	t.Run("context wins over query", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/stream?profile_id=query", nil)
		req = req.WithContext(WithProfileID(req.Context(), "ctx"))
		assert.Equal(t, "ctx", extractProfileID(req))
	})

	t.Run("query parameter fallback", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/stream?profile_id=query", nil)
		assert.Equal(t, "query", extractProfileID(req))
	})

	t.Run("empty when absent", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/stream", nil)
		assert.Equal(t, EmptyProfileID, extractProfileID(req))
	})
}

func TestProfileContext(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
	logger.InitLoggerWithWriter(logger.Config{Level: "debug", Format: "json"}, &buf)

	var seen string
	r := chi.NewRouter()
	r.Route("/profiles/{profileID}", func(r chi.Router) {
		r.Use(ProfileContext)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			seen = GetProfileID(r.Context())
			Logger(r.Context()).Info("inside handler")
			w.WriteHeader(http.StatusNoContent)
		})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/profiles/bob", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "bob", seen)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, "bob", entry[AttrKeyProfileID])
	}
}

func TestLoggerWithoutProfile(t *testing.T) {
	assert.Same(t, logger.FromContext(context.Background()), Logger(context.Background()))
}
