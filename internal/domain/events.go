package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "mission.completed")
const (
	// EventTypeMissionCompleted is published when a daily mission is completed for the first time
	EventTypeMissionCompleted = "mission.completed"

	// EventTypePetFed is published when hearts are spent to feed the pet
	EventTypePetFed = "pet.fed"

	// EventTypeDayRolledOver is published when a profile moves to a new calendar day
	EventTypeDayRolledOver = "day.rolled_over"

	// EventTypeOnboardingCompleted is published once per profile when preferences are stored
	EventTypeOnboardingCompleted = "onboarding.completed"

	// EventTypeDemoApplied is published when demo data overwrites a profile
	EventTypeDemoApplied = "demo.applied"

	// EventTypeProfileReset is published when all persisted data of a profile is cleared
	EventTypeProfileReset = "profile.reset"

	// EventTypeDailyRolloverComplete is published when the scheduled midnight sweep finishes
	EventTypeDailyRolloverComplete = "daily_rollover.complete"
)

// MissionCompletedPayload is the payload of EventTypeMissionCompleted
type MissionCompletedPayload struct {
	ProfileID      string          `json:"profile_id"`
	MissionID      string          `json:"mission_id"`
	Category       MissionCategory `json:"category"`
	HeartsEarned   int             `json:"hearts_earned"`
	CompletedToday int             `json:"completed_today"`
}

// PetFedPayload is the payload of EventTypePetFed
type PetFedPayload struct {
	ProfileID       string `json:"profile_id"`
	HeartsRemaining int    `json:"hearts_remaining"`
	PetLevel        int    `json:"pet_level"`
}

// DayRolledOverPayload is the payload of EventTypeDayRolledOver
type DayRolledOverPayload struct {
	ProfileID     string `json:"profile_id"`
	Date          string `json:"date"`
	DaysCompleted int    `json:"days_completed"`
}

// ProfilePayload is the payload of profile-wide events (onboarding, demo, reset)
type ProfilePayload struct {
	ProfileID string `json:"profile_id"`
}

// DailyRolloverCompletePayload is the payload of EventTypeDailyRolloverComplete
type DailyRolloverCompletePayload struct {
	Date            string `json:"date"`
	ProfilesScanned int    `json:"profiles_scanned"`
	ProfilesRolled  int    `json:"profiles_rolled"`
}
