package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/WellnessQuest_Go/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// ProfileIDKey is the context key for the profile id of the request
const ProfileIDKey contextKey = "profile_id"

// ProfileContext stores the profile id of the request in its context so that
// downstream logs carry it. It must be mounted inside a route that declares {profileID}.
func ProfileContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profileID := extractProfileID(r)
		if profileID != EmptyProfileID {
			r = r.WithContext(WithProfileID(r.Context(), profileID))
			Logger(r.Context()).Debug(LogMsgProfileRequest,
				AttrKeyMethod, r.Method,
				AttrKeyPath, r.URL.Path)
		}
		next.ServeHTTP(w, r)
	})
}

// extractProfileID reads the profile id from the context, the route or the query string.
// The value is not validated here; handlers reject malformed ids.
func extractProfileID(r *http.Request) string {
	if id := GetProfileID(r.Context()); id != EmptyProfileID {
		return id
	}
	if id := chi.URLParam(r, URLParamProfileID); id != EmptyProfileID {
		return id
	}
	return r.URL.Query().Get(QueryParamProfileID)
}

// WithProfileID adds the profile id to ctx
func WithProfileID(ctx context.Context, profileID string) context.Context {
	return context.WithValue(ctx, ProfileIDKey, profileID)
}

// GetProfileID retrieves the profile id from ctx
func GetProfileID(ctx context.Context) string {
	if id, ok := ctx.Value(ProfileIDKey).(string); ok {
		return id
	}
	return EmptyProfileID
}

// Logger returns the request logger with the profile id attached when present
func Logger(ctx context.Context) *slog.Logger {
	log := logger.FromContext(ctx)
	if id := GetProfileID(ctx); id != EmptyProfileID {
		return log.With(AttrKeyProfileID, id)
	}
	return log
}
