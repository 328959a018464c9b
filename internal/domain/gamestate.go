package domain

import "time"

// PetMood is the display state of the virtual pet
type PetMood string

const (
	PetMoodHappy   PetMood = "happy"
	PetMoodNeutral PetMood = "neutral"
	PetMoodSad     PetMood = "sad"
)

// Valid reports whether m is a known mood
func (m PetMood) Valid() bool {
	switch m {
	case PetMoodHappy, PetMoodNeutral, PetMoodSad:
		return true
	}
	return false
}

// Game state constants
const (
	// GameStateVersion tags every persisted game state
	GameStateVersion = "1.0"

	// DailyMissionCount is the number of missions offered each day
	DailyMissionCount = 3

	// InitialHearts is the heart balance of a brand new player
	InitialHearts = 2

	// InitialDaysCompleted is the streak of a brand new player (the first day counts)
	InitialDaysCompleted = 1

	// DateLayout is the calendar-date format used for day boundaries
	DateLayout = "2006-01-02"
)

// GameState is the aggregate root of a player's progress
type GameState struct {
	Version                string     `json:"version"`
	Hearts                 int        `json:"hearts"`
	PetMood                PetMood    `json:"pet_mood"`
	DailyMissions          []Mission  `json:"daily_missions"`
	CompletedMissionsToday int        `json:"completed_missions_today"`
	TotalMissionsCompleted int        `json:"total_missions_completed"`
	DaysCompleted          int        `json:"days_completed"`
	LastPlayDate           string     `json:"last_play_date"`
	LastFedAt              *time.Time `json:"last_fed_at"`
	LastUpdated            time.Time  `json:"last_updated"`
}

// Clone returns a deep copy so callers can mutate without aliasing the original
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	c := *s
	if s.DailyMissions != nil {
		c.DailyMissions = make([]Mission, len(s.DailyMissions))
		for i, m := range s.DailyMissions {
			if m.CompletedAt != nil {
				t := *m.CompletedAt
				m.CompletedAt = &t
			}
			c.DailyMissions[i] = m
		}
	}
	if s.LastFedAt != nil {
		t := *s.LastFedAt
		c.LastFedAt = &t
	}
	return &c
}

// CountCompleted returns how many of today's missions are completed
func (s *GameState) CountCompleted() int {
	n := 0
	for _, m := range s.DailyMissions {
		if m.Completed {
			n++
		}
	}
	return n
}

// CheckInvariants reports whether the state is one the game model can reach
func (s *GameState) CheckInvariants() error {
	switch {
	case s.Hearts < 0:
		return ErrInvalidGameState
	case len(s.DailyMissions) != DailyMissionCount:
		return ErrInvalidGameState
	case s.CompletedMissionsToday < 0 || s.CompletedMissionsToday > DailyMissionCount:
		return ErrInvalidGameState
	case s.CompletedMissionsToday != s.CountCompleted():
		return ErrInvalidGameState
	case s.TotalMissionsCompleted < s.CompletedMissionsToday:
		return ErrInvalidGameState
	case s.DaysCompleted < 0:
		return ErrInvalidGameState
	case !s.PetMood.Valid():
		return ErrInvalidGameState
	}
	if _, err := time.Parse(DateLayout, s.LastPlayDate); err != nil {
		return ErrInvalidGameState
	}
	seen := make(map[string]bool, len(s.DailyMissions))
	for _, m := range s.DailyMissions {
		if m.ID == "" || seen[m.ID] || !m.Category.Valid() {
			return ErrInvalidGameState
		}
		seen[m.ID] = true
	}
	return nil
}

// PetState is the longer-lived pet record kept alongside the game state
type PetState struct {
	Name        string     `json:"name"`
	Mood        PetMood    `json:"mood"`
	Hunger      int        `json:"hunger"`
	Energy      int        `json:"energy"`
	Level       int        `json:"level"`
	Experience  int        `json:"experience"`
	LastFed     *time.Time `json:"last_fed"`
	LastUpdated time.Time  `json:"last_updated"`
}

// Pet defaults
const (
	DefaultPetName   = "Wellness Buddy"
	DefaultPetHunger = 50
	DefaultPetEnergy = 75
	DefaultPetLevel  = 1
	PetStatMax       = 100
	PetFeedHunger    = 25
	PetFeedEnergy    = 10
	PetFeedsPerLevel = 5
)

// DefaultPetState returns the pet of a brand new player
func DefaultPetState() PetState {
	return PetState{
		Name:   DefaultPetName,
		Mood:   PetMoodNeutral,
		Hunger: DefaultPetHunger,
		Energy: DefaultPetEnergy,
		Level:  DefaultPetLevel,
	}
}

// CompletionResult is returned by CompleteMission
type CompletionResult struct {
	Completed    bool       `json:"completed"`
	HeartsEarned int        `json:"hearts_earned"`
	State        *GameState `json:"state"`
}

// FeedResult is returned by FeedPet
type FeedResult struct {
	Fed   bool       `json:"fed"`
	State *GameState `json:"state"`
	Pet   PetState   `json:"pet"`
}

// RolloverResult is returned by a day-rollover check
type RolloverResult struct {
	RolledOver bool       `json:"rolled_over"`
	State      *GameState `json:"state"`
}

// Snapshot is the read-only view handed to the UI
type Snapshot struct {
	ProfileID            string      `json:"profile_id"`
	State                *GameState  `json:"state"`
	Pet                  PetState    `json:"pet"`
	Preferences          Preferences `json:"preferences"`
	OnboardingCompleted  bool        `json:"onboarding_completed"`
	CompletionPercentage int         `json:"completion_percentage"`
	DerivedMood          PetMood     `json:"derived_mood"`
}
