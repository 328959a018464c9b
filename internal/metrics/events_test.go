package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/event"
)

func TestEventMetricsCollector_MissionCompleted(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	category := string(domain.CategoryGratitude)
	beforeMissions := testutil.ToFloat64(MissionsCompleted.WithLabelValues(category))
	beforeHearts := testutil.ToFloat64(HeartsEarned)

	mission := domain.Mission{ID: "stress_3", Category: domain.CategoryGratitude}
	require.NoError(t, bus.Publish(context.Background(), event.NewMissionCompletedEvent("alice", mission, 1, 1)))

	assert.Equal(t, beforeMissions+1, testutil.ToFloat64(MissionsCompleted.WithLabelValues(category)))
	assert.Equal(t, beforeHearts+1, testutil.ToFloat64(HeartsEarned))
}

func TestEventMetricsCollector_Counters(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	feeds := testutil.ToFloat64(PetFeeds)
	rollovers := testutil.ToFloat64(DayRollovers)
	resets := testutil.ToFloat64(ProfileResets)
	published := testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.PetFed)))

	require.NoError(t, bus.Publish(ctx, event.NewPetFedEvent("alice", 0, 1)))
	require.NoError(t, bus.Publish(ctx, event.NewDayRolledOverEvent("alice", "2024-01-02", 2)))
	require.NoError(t, bus.Publish(ctx, event.NewProfileEvent(event.ProfileReset, "alice")))

	assert.Equal(t, feeds+1, testutil.ToFloat64(PetFeeds))
	assert.Equal(t, rollovers+1, testutil.ToFloat64(DayRollovers))
	assert.Equal(t, resets+1, testutil.ToFloat64(ProfileResets))
	assert.Equal(t, published+1, testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.PetFed))))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/profiles/{profileID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/profiles/{profileID}", "418"))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profiles/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/profiles/{profileID}", "418")))
}
