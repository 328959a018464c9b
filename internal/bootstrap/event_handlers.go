package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/WellnessQuest_Go/internal/event"
	"github.com/osse101/WellnessQuest_Go/internal/metrics"
	"github.com/osse101/WellnessQuest_Go/internal/stream"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *stream.Hub
}

// RegisterEventHandlers subscribes the metrics collector and the stream hub
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		deps.Hub.Subscribe(deps.EventBus)
		slog.Info(LogMsgStreamHubSubscribed)
	}

	return nil
}
