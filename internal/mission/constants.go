package mission

import "github.com/osse101/WellnessQuest_Go/internal/domain"

// Availability duration caps in minutes; 0 means no cap
var availabilityLimits = map[domain.Availability]int{
	domain.AvailabilityLow:    3,
	domain.AvailabilityMedium: 8,
	domain.AvailabilityHigh:   0,
}

// Categories kept by the intensity refinement. Normal intensity has no entry and keeps everything.
var intensityCategories = map[domain.Intensity]map[domain.MissionCategory]bool{
	domain.IntensityGentle: {
		domain.CategoryBreathing:   true,
		domain.CategoryMindfulness: true,
		domain.CategoryRelaxation:  true,
		domain.CategoryGratitude:   true,
	},
	domain.IntensityActive: {
		domain.CategoryMovement: true,
		domain.CategoryExercise: true,
	},
}

// Catalog validation error messages
const (
	ErrMsgMissingPool         = "mission catalog is missing a pool"
	ErrMsgEmptyTemplateID     = "mission template without id"
	ErrMsgDuplicateTemplateID = "duplicate mission template id"
	ErrMsgUnknownCategory     = "unknown mission category"
	ErrMsgInvalidDuration     = "mission duration must be positive"
	ErrMsgInvalidReward       = "mission heart reward must be positive"
	ErrMsgPoolTooSmall        = "mission pool has fewer distinct templates than a day needs"
)

// Log messages
const (
	LogMsgCatalogOverrideLoaded = "Loaded mission catalog override"
	LogMsgCatalogOverrideFailed = "Failed to load mission catalog override, using built-in catalog"
)
