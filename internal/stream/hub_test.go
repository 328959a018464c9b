package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/event"
	"github.com/osse101/WellnessQuest_Go/internal/testing/leaktest"
)

type fakeSource struct {
	mu    sync.Mutex
	calls map[string]int
	err   error
}

func newFakeSource() *fakeSource {
	return &fakeSource{calls: make(map[string]int)}
}

func (f *fakeSource) Snapshot(_ context.Context, profileID string) (*domain.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[profileID]++
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Snapshot{
		ProfileID:            profileID,
		State:                &domain.GameState{Hearts: f.calls[profileID]},
		CompletionPercentage: 0,
	}, nil
}

func (f *fakeSource) callsFor(profileID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[profileID]
}

func startServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/profiles/{profileID}/stream", hub.Handler())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, profileID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/profiles/" + profileID + "/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHub_InitialSnapshotAndUpdates(t *testing.T) {
	source := newFakeSource()
	hub := NewHub(source)
	hub.Start()
	defer hub.Stop()

	srv := startServer(t, hub)
	conn := dial(t, srv, "alice")
	defer conn.Close()

	first := readMessage(t, conn)
	assert.Equal(t, MessageTypeSnapshot, first.Type)
	assert.Empty(t, first.Cause)
	require.NotNil(t, first.Snapshot)
	assert.Equal(t, "alice", first.Snapshot.ProfileID)
	assert.Equal(t, 1, first.Snapshot.State.Hearts)

	require.Eventually(t, func() bool { return hub.ClientCount("alice") == 1 }, time.Second, 10*time.Millisecond)

	bus := event.NewMemoryBus()
	hub.Subscribe(bus)
	require.NoError(t, bus.Publish(context.Background(), event.NewPetFedEvent("alice", 2, 1)))

	update := readMessage(t, conn)
	assert.Equal(t, string(event.PetFed), update.Cause)
	assert.Equal(t, 2, update.Snapshot.State.Hearts)
	assert.NotEqual(t, first.ID, update.ID)
}

func TestHub_IgnoresUnwatchedProfiles(t *testing.T) {
	source := newFakeSource()
	hub := NewHub(source)
	hub.Start()
	defer hub.Stop()

	require.NoError(t, hub.HandleEvent(context.Background(), event.NewProfileEvent(event.DemoApplied, "bob")))
	require.NoError(t, hub.HandleEvent(context.Background(), event.NewDailyRolloverCompleteEvent(time.Now(), 1, 1)))

	assert.Zero(t, source.callsFor("bob"))
}

func TestHub_SnapshotFailureSkipsUpdate(t *testing.T) {
	source := newFakeSource()
	hub := NewHub(source)
	hub.Start()
	defer hub.Stop()

	srv := startServer(t, hub)
	conn := dial(t, srv, "alice")
	defer conn.Close()
	readMessage(t, conn)
	require.Eventually(t, func() bool { return hub.ClientCount("alice") == 1 }, time.Second, 10*time.Millisecond)

	source.mu.Lock()
	source.err = assert.AnError
	source.mu.Unlock()

	require.NoError(t, hub.HandleEvent(context.Background(), event.NewProfileEvent(event.ProfileReset, "alice")))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "no frame expected after a failed snapshot")
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	hub := NewHub(newFakeSource())
	hub.Start()
	defer hub.Stop()

	srv := startServer(t, hub)
	a := dial(t, srv, "alice")
	b := dial(t, srv, "alice")
	readMessage(t, a)
	readMessage(t, b)
	require.Eventually(t, func() bool { return hub.ClientCount("alice") == 2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, a.Close())
	require.Eventually(t, func() bool { return hub.ClientCount("alice") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, b.Close())
	require.Eventually(t, func() bool { return hub.TotalClients() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_RejectsInvalidProfileID(t *testing.T) {
	hub := NewHub(newFakeSource())
	hub.Start()
	defer hub.Stop()

	srv := startServer(t, hub)
	resp, err := http.Get(srv.URL + "/profiles/bad%20id/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHub_StopClosesClients(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	hub := NewHub(newFakeSource())
	hub.Start()

	r := chi.NewRouter()
	r.Get("/profiles/{profileID}/stream", hub.Handler())
	srv := httptest.NewServer(r)

	conn := dial(t, srv, "alice")
	readMessage(t, conn)
	require.Eventually(t, func() bool { return hub.ClientCount("alice") == 1 }, time.Second, 10*time.Millisecond)

	hub.Stop()
	hub.Stop()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
	assert.Zero(t, hub.TotalClients())

	_ = conn.Close()
	srv.Close()
	checker.Check(2)
}
