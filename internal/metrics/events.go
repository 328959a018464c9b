package metrics

import (
	"context"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/event"
	"github.com/osse101/WellnessQuest_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := append([]event.Type{event.DailyRolloverComplete}, event.ProfileEventTypes...)
	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.MissionCompleted:
		payload, err := event.DecodePayload[domain.MissionCompletedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnreadable, "type", evt.Type, "error", err)
			return nil
		}
		MissionsCompleted.WithLabelValues(string(payload.Category)).Inc()
		HeartsEarned.Add(float64(payload.HeartsEarned))

	case event.PetFed:
		PetFeeds.Inc()

	case event.DayRolledOver:
		DayRollovers.Inc()

	case event.OnboardingCompleted:
		Onboardings.Inc()

	case event.DemoApplied:
		DemoApplied.Inc()

	case event.ProfileReset:
		ProfileResets.Inc()

	case event.DailyRolloverComplete:
		RolloverSweeps.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
