package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/osse101/WellnessQuest_Go/internal/bootstrap"
	"github.com/osse101/WellnessQuest_Go/internal/config"
	"github.com/osse101/WellnessQuest_Go/internal/event"
	"github.com/osse101/WellnessQuest_Go/internal/game"
	"github.com/osse101/WellnessQuest_Go/internal/mission"
	"github.com/osse101/WellnessQuest_Go/internal/session"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: seed profile-id [profile-id ...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	profiles := flag.Args()
	if len(profiles) == 0 {
		flag.Usage()
		log.Fatal("at least one profile id is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	bootstrap.SetupLogger(cfg)

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	catalog := bootstrap.LoadMissionCatalog(cfg.MissionCatalogPath)
	engine := game.NewEngine(game.NewSystemClock(cfg.Location), mission.NewSelector(catalog, nil))
	sessions := session.NewManager(store.Gateway, engine, event.NewMemoryBus())

	for _, id := range profiles {
		state, err := sessions.ApplyDemoData(ctx, id)
		if err != nil {
			log.Fatalf("Failed to seed %s: %v", id, err)
		}
		fmt.Printf("Seeded %s: %d hearts, %d days, %d missions\n", id, state.Hearts, state.DaysCompleted, len(state.DailyMissions))
	}
}
