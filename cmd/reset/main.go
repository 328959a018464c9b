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
	all := flag.Bool("all", false, "reset every stored profile")
	flag.Parse()

	profiles := flag.Args()
	if !*all && len(profiles) == 0 {
		log.Fatal("usage: reset [-all] [profile-id ...]")
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

	engine := game.NewEngine(game.NewSystemClock(cfg.Location), mission.NewSelector(mission.DefaultCatalog(), nil))
	sessions := session.NewManager(store.Gateway, engine, event.NewMemoryBus())

	if *all {
		profiles = sessions.KnownProfiles(ctx)
	}

	failed := 0
	for _, id := range profiles {
		if err := sessions.Reset(ctx, id); err != nil {
			log.Printf("Failed to reset %s: %v", id, err)
			failed++
			continue
		}
		fmt.Printf("Reset %s\n", id)
	}

	fmt.Printf("\nReset %d of %d profiles\n", len(profiles)-failed, len(profiles))
	if failed > 0 {
		log.Fatalf("%d profiles could not be reset", failed)
	}
}
