package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/WellnessQuest_Go/internal/event"
	"github.com/osse101/WellnessQuest_Go/internal/server"
	"github.com/osse101/WellnessQuest_Go/internal/stream"
	"github.com/osse101/WellnessQuest_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	RolloverWorker     *worker.DailyRolloverWorker
	Pool               *worker.Pool
	Hub                *stream.Hub
	ResilientPublisher *event.ResilientPublisher
	Store              *Store
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Rollover worker and its pool (finish the sweep in flight)
// 3. Stream hub (close client connections)
// 4. Event publisher (flush pending events)
// 5. Storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.RolloverWorker != nil {
		if err := components.RolloverWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgRolloverWorkerFailed, "error", err)
		}
	}
	if components.Pool != nil {
		components.Pool.Stop()
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Store != nil {
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
