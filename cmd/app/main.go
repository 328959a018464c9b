package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/WellnessQuest_Go/internal/bootstrap"
	"github.com/osse101/WellnessQuest_Go/internal/config"
	"github.com/osse101/WellnessQuest_Go/internal/game"
	"github.com/osse101/WellnessQuest_Go/internal/logger"
	"github.com/osse101/WellnessQuest_Go/internal/mission"
	"github.com/osse101/WellnessQuest_Go/internal/server"
	"github.com/osse101/WellnessQuest_Go/internal/session"
	"github.com/osse101/WellnessQuest_Go/internal/stream"
	"github.com/osse101/WellnessQuest_Go/internal/worker"
)

const shutdownTimeout = 15 * time.Second

// @title Wellness Quest API
// @version 1.0
// @description Daily wellness missions, hearts and a virtual pet.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// replaced by the configured logger once the environment is read
	logger.InitLogger(logger.DefaultConfig())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	bootstrap.SetupLogger(cfg)

	ctx := context.Background()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		store.Close()
		return err
	}

	catalog := bootstrap.LoadMissionCatalog(cfg.MissionCatalogPath)
	var selector *mission.Selector
	if cfg.RandomSeed != 0 {
		selector = mission.NewSeededSelector(catalog, cfg.RandomSeed)
	} else {
		selector = mission.NewSelector(catalog, nil)
	}

	clock := game.NewSystemClock(cfg.Location)
	engine := game.NewEngine(clock, selector)
	sessions := session.NewManager(store.Gateway, engine, publisher)

	hub := stream.NewHub(sessions)
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{EventBus: bus, Hub: hub}); err != nil {
		store.Close()
		return err
	}
	hub.Start()

	pool := worker.NewPool(cfg.WorkerCount, worker.DefaultQueueSize)
	pool.Start()
	rolloverWorker := worker.NewDailyRolloverWorker(sessions, pool, publisher, clock)
	rolloverWorker.Start()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}, store.Gateway, sessions, catalog, hub, rolloverWorker)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		RolloverWorker:     rolloverWorker,
		Pool:               pool,
		Hub:                hub,
		ResilientPublisher: publisher,
		Store:              store,
	})

	return runErr
}
