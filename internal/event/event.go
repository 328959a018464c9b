package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// ProfileID returns the profile the event concerns, or "" for global events
func (e Event) ProfileID() string {
	id, _ := e.GetMetadataValue(MetadataKeyProfileID).(string)
	return id
}

// Game event types
const (
	MissionCompleted      Type = Type(domain.EventTypeMissionCompleted)
	PetFed                Type = Type(domain.EventTypePetFed)
	DayRolledOver         Type = Type(domain.EventTypeDayRolledOver)
	OnboardingCompleted   Type = Type(domain.EventTypeOnboardingCompleted)
	DemoApplied           Type = Type(domain.EventTypeDemoApplied)
	ProfileReset          Type = Type(domain.EventTypeProfileReset)
	DailyRolloverComplete Type = Type(domain.EventTypeDailyRolloverComplete)
)

// ProfileEventTypes lists every event that concerns a single profile
var ProfileEventTypes = []Type{
	MissionCompleted,
	PetFed,
	DayRolledOver,
	OnboardingCompleted,
	DemoApplied,
	ProfileReset,
}

func profileEvent(eventType Type, profileID string, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
		Metadata: map[string]interface{}{
			MetadataKeyProfileID: profileID,
		},
	}
}

// NewMissionCompletedEvent creates a mission completed event
func NewMissionCompletedEvent(profileID string, mission domain.Mission, heartsEarned, completedToday int) Event {
	return profileEvent(MissionCompleted, profileID, domain.MissionCompletedPayload{
		ProfileID:      profileID,
		MissionID:      mission.ID,
		Category:       mission.Category,
		HeartsEarned:   heartsEarned,
		CompletedToday: completedToday,
	})
}

// NewPetFedEvent creates a pet fed event
func NewPetFedEvent(profileID string, heartsRemaining, petLevel int) Event {
	return profileEvent(PetFed, profileID, domain.PetFedPayload{
		ProfileID:       profileID,
		HeartsRemaining: heartsRemaining,
		PetLevel:        petLevel,
	})
}

// NewDayRolledOverEvent creates a day rolled over event
func NewDayRolledOverEvent(profileID, date string, daysCompleted int) Event {
	return profileEvent(DayRolledOver, profileID, domain.DayRolledOverPayload{
		ProfileID:     profileID,
		Date:          date,
		DaysCompleted: daysCompleted,
	})
}

// NewProfileEvent creates one of the profile-wide events (onboarding, demo, reset)
func NewProfileEvent(eventType Type, profileID string) Event {
	return profileEvent(eventType, profileID, domain.ProfilePayload{ProfileID: profileID})
}

// NewDailyRolloverCompleteEvent creates the event published after a scheduled rollover sweep
func NewDailyRolloverCompleteEvent(date time.Time, scanned, rolled int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DailyRolloverComplete,
		Payload: domain.DailyRolloverCompletePayload{
			Date:            date.Format(domain.DateLayout),
			ProfilesScanned: scanned,
			ProfilesRolled:  rolled,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously, in subscription order.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
