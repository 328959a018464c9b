package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/game"
	"github.com/osse101/WellnessQuest_Go/internal/mission"
)

func TestDemoGameState(t *testing.T) {
	engine, clock := newTestEngine(t)

	state, pet := DemoGameState(engine)

	require.NoError(t, state.CheckInvariants())
	assert.Equal(t, DemoHearts, state.Hearts)
	assert.Equal(t, DemoDaysCompleted, state.DaysCompleted)
	assert.Equal(t, DemoTotalMissionsCompleted, state.TotalMissionsCompleted)
	assert.Equal(t, DemoCompletedToday, state.CompletedMissionsToday)
	assert.Equal(t, clock.Today(), state.LastPlayDate)
	assert.Equal(t, domain.PetMoodHappy, state.PetMood)
	assert.Equal(t, domain.PetMoodHappy, engine.DerivePetMood(state, clock.Now()))

	ids := []string{state.DailyMissions[0].ID, state.DailyMissions[1].ID, state.DailyMissions[2].ID}
	assert.Equal(t, []string{"stress_1", "stress_2", "stress_3"}, ids)
	assert.True(t, state.DailyMissions[0].Completed)
	assert.True(t, state.DailyMissions[1].Completed)
	assert.False(t, state.DailyMissions[2].Completed)

	assert.Equal(t, DemoPetLevel, pet.Level)
	assert.Equal(t, DemoPetExperience, pet.Experience)
	require.NotNil(t, pet.LastFed)
}

func TestDemoGameState_JustAfterMidnight(t *testing.T) {
	clock := game.NewSimulatedClock(time.Date(2024, 3, 10, 0, 10, 0, 0, time.UTC), time.UTC)
	engine := game.NewEngine(clock, mission.NewSeededSelector(mission.DefaultCatalog(), 1))

	state, _ := DemoGameState(engine)

	for _, m := range state.DailyMissions {
		if m.CompletedAt != nil {
			assert.Equal(t, clock.Today(), game.DateOf(*m.CompletedAt, time.UTC), "completion stays on today")
		}
	}
	require.NotNil(t, state.LastFedAt)
	assert.Equal(t, clock.Today(), game.DateOf(*state.LastFedAt, time.UTC))
}

func TestApplyDemoData(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	original := svc.Load(ctx)
	original.Hearts = 40
	require.True(t, svc.Save(ctx, original))

	applied, ok := svc.ApplyDemoData(ctx)
	require.True(t, ok)

	loaded, created := svc.LoadOrCreate(ctx)
	assert.False(t, created)
	assert.Equal(t, DemoHearts, loaded.Hearts)
	assert.Equal(t, applied.DailyMissions, loaded.DailyMissions)
	assert.True(t, svc.HasCompletedOnboarding(ctx))
	assert.Equal(t, DemoPreferences(), svc.LoadPreferences(ctx))
	assert.Equal(t, DemoPetLevel, svc.LoadPetState(ctx).Level)
}
