package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestNewMissionCompletedEvent(t *testing.T) {
	mission := domain.Mission{ID: "energy_1", Category: domain.CategoryBreathing}
	evt := NewMissionCompletedEvent("alice", mission, 1, 2)

	if evt.Type != MissionCompleted {
		t.Fatalf("Expected type %s, got %s", MissionCompleted, evt.Type)
	}
	if evt.Version != EventSchemaVersion {
		t.Errorf("Expected version %s, got %s", EventSchemaVersion, evt.Version)
	}
	if evt.ProfileID() != "alice" {
		t.Errorf("Expected profile alice, got %q", evt.ProfileID())
	}

	payload, err := DecodePayload[domain.MissionCompletedPayload](evt.Payload)
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if payload.MissionID != "energy_1" || payload.HeartsEarned != 1 || payload.CompletedToday != 2 {
		t.Errorf("Unexpected payload: %+v", payload)
	}
}

func TestDecodePayload_FromSerializedMap(t *testing.T) {
	raw := map[string]interface{}{
		"profile_id":       "bob",
		"hearts_remaining": float64(3),
		"pet_level":        float64(2),
	}

	payload, err := DecodePayload[domain.PetFedPayload](raw)
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if payload.ProfileID != "bob" || payload.HeartsRemaining != 3 || payload.PetLevel != 2 {
		t.Errorf("Unexpected payload: %+v", payload)
	}
}

func TestDecodePayload_PointerAndNil(t *testing.T) {
	payload, err := DecodePayload[domain.PetFedPayload](&domain.PetFedPayload{ProfileID: "carol", PetLevel: 4})
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if payload.ProfileID != "carol" || payload.PetLevel != 4 {
		t.Errorf("Unexpected payload: %+v", payload)
	}

	if _, err := DecodePayload[domain.PetFedPayload](nil); err == nil {
		t.Error("Expected error for nil payload")
	}
	var missing *domain.PetFedPayload
	if _, err := DecodePayload[domain.PetFedPayload](missing); err == nil {
		t.Error("Expected error for nil pointer payload")
	}
}

func TestDailyRolloverCompleteEvent_HasNoProfile(t *testing.T) {
	evt := NewDailyRolloverCompleteEvent(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), 4, 3)

	if evt.ProfileID() != "" {
		t.Errorf("Expected no profile, got %q", evt.ProfileID())
	}
	payload := evt.Payload.(domain.DailyRolloverCompletePayload)
	if payload.Date != "2026-10-15" || payload.ProfilesScanned != 4 || payload.ProfilesRolled != 3 {
		t.Errorf("Unexpected payload: %+v", payload)
	}
}
