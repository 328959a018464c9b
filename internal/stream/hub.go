package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/event"
	"github.com/osse101/WellnessQuest_Go/internal/metrics"
)

// SnapshotSource loads the read-only view of a profile
type SnapshotSource interface {
	Snapshot(ctx context.Context, profileID string) (*domain.Snapshot, error)
}

// Hub keeps the stream clients of every profile and pushes a fresh snapshot
// to them whenever an event concerns their profile
type Hub struct {
	source     SnapshotSource
	clients    map[string]map[*Client]struct{}
	deliver    chan delivery
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// NewHub creates a hub loading snapshots from source
func NewHub(source SnapshotSource) *Hub {
	return &Hub{
		source:     source,
		clients:    make(map[string]map[*Client]struct{}),
		deliver:    make(chan delivery, DeliveryBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan *Client, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts the hub down and closes every client queue, which closes the connections
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for drained := false; !drained; {
			select {
			case c := <-h.register:
				close(c.send)
			default:
				drained = true
			}
		}
		for _, set := range h.clients {
			for c := range set {
				close(c.send)
			}
		}
		h.clients = make(map[string]map[*Client]struct{})
		h.mu.Unlock()
		metrics.StreamClients.Set(0)
	})
}

// Subscribe registers the hub on every profile event of bus
func (h *Hub) Subscribe(bus event.Bus) {
	for _, t := range event.ProfileEventTypes {
		bus.Subscribe(t, h.HandleEvent)
	}
	slog.Info(LogMsgSubscriberRegistered, "types", event.ProfileEventTypes)
}

// HandleEvent pushes the current snapshot of the event's profile to its clients.
// Profiles nobody watches are skipped without loading anything.
func (h *Hub) HandleEvent(ctx context.Context, evt event.Event) error {
	profileID := evt.ProfileID()
	if profileID == "" || h.ClientCount(profileID) == 0 {
		return nil
	}

	data, ok := h.encodeSnapshot(ctx, profileID, string(evt.Type))
	if !ok {
		return nil
	}

	select {
	case h.deliver <- delivery{profileID: profileID, data: data}:
	case <-h.shutdown:
	default:
		slog.Warn(LogMsgDeliveryDropped, "profile_id", profileID, "type", evt.Type)
	}
	return nil
}

// ClientCount returns the number of clients watching profileID
func (h *Hub) ClientCount(profileID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[profileID])
}

// TotalClients returns the number of connected clients
func (h *Hub) TotalClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.totalLocked()
}

func (h *Hub) totalLocked() int {
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			set, ok := h.clients[c.profileID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[c.profileID] = set
			}
			set[c] = struct{}{}
			metrics.StreamClients.Set(float64(h.totalLocked()))
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(c)
			h.mu.Unlock()

		case d := <-h.deliver:
			h.mu.Lock()
			for c := range h.clients[d.profileID] {
				select {
				case c.send <- d.data:
				default:
					slog.Warn(LogMsgClientDropped, "client_id", c.id, "profile_id", c.profileID)
					h.removeLocked(c)
				}
			}
			h.mu.Unlock()

		case <-h.shutdown:
			return
		}
	}
}

// removeLocked drops c and closes its queue. Caller must hold the write lock.
func (h *Hub) removeLocked(c *Client) {
	set, ok := h.clients[c.profileID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.profileID)
	}
	close(c.send)
	metrics.StreamClients.Set(float64(h.totalLocked()))
}

func (h *Hub) encodeSnapshot(ctx context.Context, profileID, cause string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, SnapshotTimeout)
	defer cancel()

	snap, err := h.source.Snapshot(ctx, profileID)
	if err != nil {
		slog.Warn(LogMsgSnapshotFailed, "profile_id", profileID, "error", err)
		return nil, false
	}

	data, err := json.Marshal(Message{
		ID:        uuid.NewString(),
		Type:      MessageTypeSnapshot,
		Timestamp: time.Now().Unix(),
		Cause:     cause,
		Snapshot:  snap,
	})
	if err != nil {
		slog.Error(LogMsgEncodeFailed, "profile_id", profileID, "error", err)
		return nil, false
	}
	return data, true
}
