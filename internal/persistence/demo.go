package persistence

import (
	"context"
	"time"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/game"
	"github.com/osse101/WellnessQuest_Go/internal/logger"
)

// DemoPreferences are the onboarding answers of the demo profile
func DemoPreferences() domain.Preferences {
	return domain.Preferences{
		Objective:    domain.ObjectiveStress,
		Availability: domain.AvailabilityMedium,
		Intensity:    domain.IntensityGentle,
		Style:        domain.StyleMindful,
	}
}

// DemoGameState builds the hand-authored showcase state: a week-long streak,
// two of today's three missions done and the pet fed this morning.
func DemoGameState(engine *game.Engine) (*domain.GameState, domain.PetState) {
	clock := engine.Clock()
	now := clock.Now()
	startOfDay := startOfDay(now, clock.Location())

	missions := engine.Selector().SelectDailyMissions(DemoPreferences())
	for i := 0; i < DemoCompletedToday && i < len(missions); i++ {
		at := notBefore(now.Add(-time.Duration(DemoCompletedToday-i)*time.Hour), startOfDay)
		missions[i].Completed = true
		missions[i].CompletedAt = &at
	}

	fedAt := notBefore(now.Add(-30*time.Minute), startOfDay)
	state := &domain.GameState{
		Version:                domain.GameStateVersion,
		Hearts:                 DemoHearts,
		PetMood:                domain.PetMoodHappy,
		DailyMissions:          missions,
		CompletedMissionsToday: DemoCompletedToday,
		TotalMissionsCompleted: DemoTotalMissionsCompleted,
		DaysCompleted:          DemoDaysCompleted,
		LastPlayDate:           clock.Today(),
		LastFedAt:              &fedAt,
		LastUpdated:            now,
	}

	petFedAt := fedAt
	pet := domain.PetState{
		Name:        domain.DefaultPetName,
		Mood:        domain.PetMoodHappy,
		Hunger:      DemoPetHunger,
		Energy:      DemoPetEnergy,
		Level:       DemoPetLevel,
		Experience:  DemoPetExperience,
		LastFed:     &petFedAt,
		LastUpdated: now,
	}
	return state, pet
}

// ApplyDemoData replaces the profile's data with the demo profile. Nothing of
// the previous state is kept. Returns false if any write failed.
func (s *Service) ApplyDemoData(ctx context.Context) (*domain.GameState, bool) {
	state, pet := DemoGameState(s.engine)
	log := logger.FromContext(ctx).With("profile_id", s.profileID)

	ok := s.SavePreferences(ctx, DemoPreferences()) &&
		s.SetOnboardingCompleted(ctx) &&
		s.SavePetState(ctx, pet) &&
		s.Save(ctx, state)
	if !ok {
		log.Error(LogMsgDemoFailed)
		return state, false
	}

	log.Info(LogMsgDemoApplied)
	return state, true
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).UTC()
}

func notBefore(t, floor time.Time) time.Time {
	if t.Before(floor) {
		return floor
	}
	return t
}
