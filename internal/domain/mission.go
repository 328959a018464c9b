package domain

import "time"

// MissionCategory is the kind of activity a mission asks for
type MissionCategory string

const (
	CategoryBreathing   MissionCategory = "breathing"
	CategoryMovement    MissionCategory = "movement"
	CategoryMindfulness MissionCategory = "mindfulness"
	CategoryRelaxation  MissionCategory = "relaxation"
	CategoryGratitude   MissionCategory = "gratitude"
	CategoryExercise    MissionCategory = "exercise"
	CategoryHydration   MissionCategory = "hydration"
)

// Valid reports whether c is a known category
func (c MissionCategory) Valid() bool {
	switch c {
	case CategoryBreathing, CategoryMovement, CategoryMindfulness, CategoryRelaxation,
		CategoryGratitude, CategoryExercise, CategoryHydration:
		return true
	}
	return false
}

// DefaultHeartReward is granted when a mission carries no positive reward
const DefaultHeartReward = 1

// MissionTemplate is a catalog entry; missions are instantiated from it each day
type MissionTemplate struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	DurationMinutes int             `json:"duration_minutes"`
	Category        MissionCategory `json:"category"`
	Intensity       Intensity       `json:"intensity"`
	Icon            string          `json:"icon,omitempty"`
	Description     string          `json:"description"`
	HeartReward     int             `json:"heart_reward"`
}

// Mission is one of today's tasks
type Mission struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	DurationMinutes int             `json:"duration_minutes"`
	Category        MissionCategory `json:"category"`
	Intensity       Intensity       `json:"intensity"`
	Icon            string          `json:"icon,omitempty"`
	Description     string          `json:"description"`
	HeartReward     int             `json:"heart_reward"`
	Completed       bool            `json:"completed"`
	CompletedAt     *time.Time      `json:"completed_at"`
}

// Instantiate creates a fresh, not yet completed mission from the template
func (t MissionTemplate) Instantiate() Mission {
	return Mission{
		ID:              t.ID,
		Title:           t.Title,
		DurationMinutes: t.DurationMinutes,
		Category:        t.Category,
		Intensity:       t.Intensity,
		Icon:            t.Icon,
		Description:     t.Description,
		HeartReward:     t.HeartReward,
	}
}

// Reward returns the hearts earned for completing the mission
func (m Mission) Reward() int {
	if m.HeartReward <= 0 {
		return DefaultHeartReward
	}
	return m.HeartReward
}

// DailyMissionsRecord is the stored shape of the daily-missions key
type DailyMissionsRecord struct {
	Missions []Mission `json:"missions"`
	Date     string    `json:"date"`
	SavedAt  time.Time `json:"saved_at"`
}
