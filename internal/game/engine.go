package game

import (
	"time"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/mission"
)

// Engine applies the game rules to a state.
// Every method works on a copy; the state passed in is never modified.
type Engine struct {
	clock    Clock
	selector *mission.Selector
}

// NewEngine creates an engine
func NewEngine(clock Clock, selector *mission.Selector) *Engine {
	return &Engine{
		clock:    clock,
		selector: selector,
	}
}

// Clock returns the engine's clock
func (e *Engine) Clock() Clock {
	return e.clock
}

// Selector returns the engine's mission selector
func (e *Engine) Selector() *mission.Selector {
	return e.selector
}

// NewGameState builds the state of a first launch: two hearts, a one-day streak
// and a fresh set of missions for today.
func (e *Engine) NewGameState(prefs domain.Preferences) *domain.GameState {
	now := e.clock.Now()
	return &domain.GameState{
		Version:       domain.GameStateVersion,
		Hearts:        domain.InitialHearts,
		PetMood:       domain.PetMoodNeutral,
		DailyMissions: e.selector.SelectDailyMissions(prefs.Normalized()),
		DaysCompleted: domain.InitialDaysCompleted,
		LastPlayDate:  e.clock.Today(),
		LastUpdated:   now,
	}
}

// CompleteMission marks one of today's missions completed and pays out its reward.
// Unknown or already completed ids leave the state untouched and report Completed=false.
func (e *Engine) CompleteMission(state *domain.GameState, missionID string) domain.CompletionResult {
	next := state.Clone()

	idx := -1
	for i, m := range next.DailyMissions {
		if m.ID == missionID {
			idx = i
			break
		}
	}
	if idx < 0 || next.DailyMissions[idx].Completed {
		return domain.CompletionResult{State: next}
	}

	now := e.clock.Now()
	m := &next.DailyMissions[idx]
	m.Completed = true
	m.CompletedAt = &now

	reward := m.Reward()
	next.Hearts += reward
	next.CompletedMissionsToday++
	next.TotalMissionsCompleted++
	next.PetMood = e.DerivePetMood(next, now)

	return domain.CompletionResult{
		Completed:    true,
		HeartsEarned: reward,
		State:        next,
	}
}

// FeedPet spends one heart on the pet. With no hearts nothing changes and Fed is false.
func (e *Engine) FeedPet(state *domain.GameState, pet domain.PetState) domain.FeedResult {
	next := state.Clone()
	if next.Hearts <= 0 {
		return domain.FeedResult{State: next, Pet: pet}
	}

	now := e.clock.Now()
	next.Hearts--
	next.PetMood = domain.PetMoodHappy
	next.LastFedAt = &now

	pet.Hunger = capStat(pet.Hunger + domain.PetFeedHunger)
	pet.Energy = capStat(pet.Energy + domain.PetFeedEnergy)
	pet.Experience++
	if pet.Level < domain.DefaultPetLevel {
		pet.Level = domain.DefaultPetLevel
	}
	if pet.Experience%domain.PetFeedsPerLevel == 0 {
		pet.Level++
	}
	pet.Mood = domain.PetMoodHappy
	fedAt := now
	pet.LastFed = &fedAt
	pet.LastUpdated = now

	return domain.FeedResult{Fed: true, State: next, Pet: pet}
}

// CheckAndResetDailyMissions starts a new day when today differs from the stored play date.
// The comparison is on calendar-date strings; the same date is a no-op.
func (e *Engine) CheckAndResetDailyMissions(state *domain.GameState, prefs domain.Preferences, today string) domain.RolloverResult {
	next := state.Clone()
	if next.LastPlayDate == today {
		return domain.RolloverResult{State: next}
	}

	next.DailyMissions = e.selector.SelectDailyMissions(prefs.Normalized())
	next.CompletedMissionsToday = 0
	next.DaysCompleted++
	next.LastPlayDate = today
	next.PetMood = e.DerivePetMood(next, e.clock.Now())

	return domain.RolloverResult{RolledOver: true, State: next}
}

// CompletionPercentage is round(100 * done / total) with halves rounded up
func CompletionPercentage(state *domain.GameState) int {
	total := len(state.DailyMissions)
	if total == 0 {
		return 0
	}
	done := state.CompletedMissionsToday
	return (200*done + total) / (2 * total)
}

// DerivePetMood computes the mood from engagement. The first matching rule wins:
// fed on the current calendar day is happy, any mission done today is neutral,
// no hearts left is sad, anything else is neutral.
func (e *Engine) DerivePetMood(state *domain.GameState, now time.Time) domain.PetMood {
	if state.LastFedAt != nil && DateOf(*state.LastFedAt, e.clock.Location()) == DateOf(now, e.clock.Location()) {
		return domain.PetMoodHappy
	}
	if state.CompletedMissionsToday > 0 {
		return domain.PetMoodNeutral
	}
	if state.Hearts == 0 {
		return domain.PetMoodSad
	}
	return domain.PetMoodNeutral
}

func capStat(v int) int {
	if v > domain.PetStatMax {
		return domain.PetStatMax
	}
	if v < 0 {
		return 0
	}
	return v
}
