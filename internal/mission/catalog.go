package mission

import (
	"fmt"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/utils"
)

// CatalogConfig is the on-disk shape of a mission catalog override
type CatalogConfig struct {
	Version string                                        `json:"version"`
	Pools   map[domain.Objective][]domain.MissionTemplate `json:"pools"`
}

// Catalog is an immutable table of mission templates grouped by objective
type Catalog struct {
	pools map[domain.Objective][]domain.MissionTemplate
}

// NewCatalog validates the pools and builds a catalog from them
func NewCatalog(pools map[domain.Objective][]domain.MissionTemplate) (*Catalog, error) {
	if err := validatePools(pools); err != nil {
		return nil, err
	}

	copied := make(map[domain.Objective][]domain.MissionTemplate, len(pools))
	for objective, templates := range pools {
		copied[objective] = append([]domain.MissionTemplate(nil), templates...)
	}
	return &Catalog{pools: copied}, nil
}

// DefaultCatalog returns the built-in catalog
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(builtinPools())
	if err != nil {
		panic(fmt.Sprintf("built-in mission catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog override from a JSON file
func LoadCatalog(path string) (*Catalog, error) {
	var cfg CatalogConfig
	if err := utils.LoadJSON(path, &cfg); err != nil {
		return nil, err
	}
	return NewCatalog(cfg.Pools)
}

// Pool returns the templates for an objective, falling back to the energy pool
func (c *Catalog) Pool(objective domain.Objective) []domain.MissionTemplate {
	if pool, ok := c.pools[objective]; ok {
		return pool
	}
	return c.pools[domain.DefaultObjective]
}

// Objectives returns the objectives present in the catalog, in canonical order
func (c *Catalog) Objectives() []domain.Objective {
	out := make([]domain.Objective, 0, len(c.pools))
	for _, o := range domain.Objectives {
		if _, ok := c.pools[o]; ok {
			out = append(out, o)
		}
	}
	return out
}

// Lookup finds a template by id across all pools
func (c *Catalog) Lookup(id string) (domain.MissionTemplate, bool) {
	for _, pool := range c.pools {
		for _, t := range pool {
			if t.ID == id {
				return t, true
			}
		}
	}
	return domain.MissionTemplate{}, false
}

func validatePools(pools map[domain.Objective][]domain.MissionTemplate) error {
	for _, objective := range domain.Objectives {
		pool, ok := pools[objective]
		if !ok {
			return fmt.Errorf("%s: %s", ErrMsgMissingPool, objective)
		}

		ids := make(map[string]bool, len(pool))
		for _, t := range pool {
			switch {
			case t.ID == "":
				return fmt.Errorf("%s in pool %s", ErrMsgEmptyTemplateID, objective)
			case ids[t.ID]:
				return fmt.Errorf("%s: %s", ErrMsgDuplicateTemplateID, t.ID)
			case !t.Category.Valid():
				return fmt.Errorf("%s: %s (%s)", ErrMsgUnknownCategory, t.Category, t.ID)
			case t.DurationMinutes <= 0:
				return fmt.Errorf("%s: %s", ErrMsgInvalidDuration, t.ID)
			case t.HeartReward <= 0:
				return fmt.Errorf("%s: %s", ErrMsgInvalidReward, t.ID)
			}
			ids[t.ID] = true
		}

		if len(ids) < domain.DailyMissionCount {
			return fmt.Errorf("%s: %s has %d", ErrMsgPoolTooSmall, objective, len(ids))
		}
	}
	return nil
}

func builtinPools() map[domain.Objective][]domain.MissionTemplate {
	return map[domain.Objective][]domain.MissionTemplate{
		domain.ObjectiveEnergy: {
			{ID: "energy_1", Title: "5 deep breaths", DurationMinutes: 2, Category: domain.CategoryBreathing, Intensity: domain.IntensityGentle, Icon: "🫁", Description: "Inhale for 4 seconds, hold for 4, exhale for 6. Repeat 5 times.", HeartReward: 1},
			{ID: "energy_2", Title: "Gentle stretching", DurationMinutes: 5, Category: domain.CategoryMovement, Intensity: domain.IntensityNormal, Icon: "🤸", Description: "Simple stretches to wake the body up.", HeartReward: 1},
			{ID: "energy_3", Title: "Walk outdoors", DurationMinutes: 10, Category: domain.CategoryMovement, Intensity: domain.IntensityNormal, Icon: "🚶", Description: "A short walk to get the blood flowing.", HeartReward: 1},
			{ID: "energy_4", Title: "Drink a glass of water", DurationMinutes: 1, Category: domain.CategoryHydration, Intensity: domain.IntensityGentle, Icon: "💧", Description: "Staying hydrated helps keep your energy up.", HeartReward: 1},
		},
		domain.ObjectiveStress: {
			{ID: "stress_1", Title: "Guided meditation", DurationMinutes: 8, Category: domain.CategoryMindfulness, Intensity: domain.IntensityGentle, Icon: "🧘", Description: "Find a quiet place and breathe mindfully.", HeartReward: 1},
			{ID: "stress_2", Title: "Listen to relaxing music", DurationMinutes: 5, Category: domain.CategoryRelaxation, Intensity: domain.IntensityGentle, Icon: "🎵", Description: "Soft music to calm the mind.", HeartReward: 1},
			{ID: "stress_3", Title: "Write 3 good things", DurationMinutes: 3, Category: domain.CategoryGratitude, Intensity: domain.IntensityGentle, Icon: "📝", Description: "Reflect on what went well today.", HeartReward: 1},
			{ID: "stress_4", Title: "4-7-8 breathing", DurationMinutes: 4, Category: domain.CategoryBreathing, Intensity: domain.IntensityGentle, Icon: "🌬️", Description: "Inhale for 4, hold for 7, exhale for 8. Repeat 4 times.", HeartReward: 1},
		},
		domain.ObjectiveMovement: {
			{ID: "movement_1", Title: "Take the stairs", DurationMinutes: 2, Category: domain.CategoryExercise, Intensity: domain.IntensityActive, Icon: "🏃", Description: "Work your legs by taking the stairs instead of the lift.", HeartReward: 1},
			{ID: "movement_2", Title: "Desk exercises", DurationMinutes: 5, Category: domain.CategoryExercise, Intensity: domain.IntensityNormal, Icon: "💪", Description: "Simple movements you can do from your chair.", HeartReward: 1},
			{ID: "movement_3", Title: "Free dance", DurationMinutes: 8, Category: domain.CategoryExercise, Intensity: domain.IntensityActive, Icon: "💃", Description: "Put on your favourite song and move.", HeartReward: 1},
			{ID: "movement_4", Title: "Slow squats", DurationMinutes: 3, Category: domain.CategoryExercise, Intensity: domain.IntensityNormal, Icon: "🦵", Description: "10 slow, controlled squats.", HeartReward: 1},
		},
	}
}
