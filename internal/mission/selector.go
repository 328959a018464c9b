package mission

import (
	"math/rand"
	"sync"
	"time"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
)

// RandomSource is the randomness used to backfill short selections.
// *rand.Rand satisfies it; tests inject a seeded or scripted source.
type RandomSource interface {
	Intn(n int) int
}

// Selector turns preferences into the day's missions
type Selector struct {
	catalog *Catalog
	rng     RandomSource
	mu      sync.Mutex
}

// NewSelector creates a selector over catalog drawing from rng.
// A nil rng is replaced by a time-seeded source.
func NewSelector(catalog *Catalog, rng RandomSource) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec
	}
	return &Selector{
		catalog: catalog,
		rng:     rng,
	}
}

// NewSeededSelector creates a selector whose backfill is reproducible for a given seed
func NewSeededSelector(catalog *Catalog, seed int64) *Selector {
	return NewSelector(catalog, rand.New(rand.NewSource(seed))) //nolint:gosec
}

// Catalog returns the catalog the selector draws from
func (s *Selector) Catalog() *Catalog {
	return s.catalog
}

// SelectDailyMissions returns exactly DailyMissionCount distinct, uncompleted missions
func (s *Selector) SelectDailyMissions(prefs domain.Preferences) []domain.Mission {
	pool := s.catalog.Pool(prefs.Objective)

	selected := filterByAvailability(pool, prefs.Availability)
	if len(selected) > domain.DailyMissionCount {
		selected = selected[:domain.DailyMissionCount]
	}
	selected = filterByIntensity(selected, prefs.Intensity)

	selected = s.backfill(selected, pool)

	missions := make([]domain.Mission, len(selected))
	for i, t := range selected {
		missions[i] = t.Instantiate()
	}
	return missions
}

// backfill draws uniformly from the unfiltered pool until the selection is full.
// The catalog guarantees each pool holds at least DailyMissionCount distinct ids.
func (s *Selector) backfill(selected, pool []domain.MissionTemplate) []domain.MissionTemplate {
	if len(selected) >= domain.DailyMissionCount {
		return selected
	}

	present := make(map[string]bool, domain.DailyMissionCount)
	for _, t := range selected {
		present[t.ID] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for len(selected) < domain.DailyMissionCount {
		candidate := pool[s.rng.Intn(len(pool))]
		if present[candidate.ID] {
			continue
		}
		present[candidate.ID] = true
		selected = append(selected, candidate)
	}
	return selected
}

func filterByAvailability(pool []domain.MissionTemplate, availability domain.Availability) []domain.MissionTemplate {
	limit, ok := availabilityLimits[availability]
	if !ok {
		limit = availabilityLimits[domain.DefaultAvailability]
	}

	out := make([]domain.MissionTemplate, 0, len(pool))
	for _, t := range pool {
		if limit == 0 || t.DurationMinutes <= limit {
			out = append(out, t)
		}
	}
	return out
}

func filterByIntensity(selected []domain.MissionTemplate, intensity domain.Intensity) []domain.MissionTemplate {
	allowed, ok := intensityCategories[intensity]
	if !ok {
		return selected
	}

	out := make([]domain.MissionTemplate, 0, len(selected))
	for _, t := range selected {
		if allowed[t.Category] {
			out = append(out, t)
		}
	}
	return out
}
