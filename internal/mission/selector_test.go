package mission

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
)

// scriptedSource returns the scripted values in order, cycling when exhausted
type scriptedSource struct {
	values []int
	next   int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	s.calls++
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func ids(missions []domain.Mission) []string {
	out := make([]string, len(missions))
	for i, m := range missions {
		out[i] = m.ID
	}
	return out
}

func TestSelectDailyMissions_Deterministic(t *testing.T) {
	tests := []struct {
		name  string
		prefs domain.Preferences
		want  []string
	}{
		{
			name:  "energy medium normal keeps short missions in catalog order",
			prefs: domain.Preferences{Objective: domain.ObjectiveEnergy, Availability: domain.AvailabilityMedium, Intensity: domain.IntensityNormal},
			want:  []string{"energy_1", "energy_2", "energy_4"},
		},
		{
			name:  "stress high normal truncates to the first three",
			prefs: domain.Preferences{Objective: domain.ObjectiveStress, Availability: domain.AvailabilityHigh, Intensity: domain.IntensityNormal},
			want:  []string{"stress_1", "stress_2", "stress_3"},
		},
		{
			name:  "stress medium gentle keeps everything calm",
			prefs: domain.Preferences{Objective: domain.ObjectiveStress, Availability: domain.AvailabilityMedium, Intensity: domain.IntensityGentle},
			want:  []string{"stress_1", "stress_2", "stress_3"},
		},
		{
			name:  "movement medium active keeps exercise",
			prefs: domain.Preferences{Objective: domain.ObjectiveMovement, Availability: domain.AvailabilityMedium, Intensity: domain.IntensityActive},
			want:  []string{"movement_1", "movement_2", "movement_3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedSource{values: []int{0}}
			s := NewSelector(DefaultCatalog(), rng)

			got := s.SelectDailyMissions(tt.prefs)

			assert.Equal(t, tt.want, ids(got))
			assert.Zero(t, rng.calls, "no backfill expected")
			for _, m := range got {
				assert.False(t, m.Completed)
				assert.Nil(t, m.CompletedAt)
			}
		})
	}
}

func TestSelectDailyMissions_LowAvailabilityBackfills(t *testing.T) {
	// low availability on movement keeps movement_1 (2 min) and movement_4 (3 min);
	// the scripted draws hit an existing id first, then movement_3
	rng := &scriptedSource{values: []int{0, 2}}
	s := NewSelector(DefaultCatalog(), rng)

	got := s.SelectDailyMissions(domain.Preferences{
		Objective:    domain.ObjectiveMovement,
		Availability: domain.AvailabilityLow,
		Intensity:    domain.IntensityNormal,
	})

	assert.Equal(t, []string{"movement_1", "movement_4", "movement_3"}, ids(got))
	assert.Equal(t, 2, rng.calls)
}

func TestSelectDailyMissions_GentleEnergyBackfillsFromUnfilteredPool(t *testing.T) {
	// medium keeps energy_1, energy_2, energy_4; gentle then keeps only energy_1 (breathing)
	rng := &scriptedSource{values: []int{2, 0, 3}}
	s := NewSelector(DefaultCatalog(), rng)

	got := s.SelectDailyMissions(domain.Preferences{
		Objective:    domain.ObjectiveEnergy,
		Availability: domain.AvailabilityMedium,
		Intensity:    domain.IntensityGentle,
	})

	assert.Equal(t, []string{"energy_1", "energy_3", "energy_4"}, ids(got))
}

func TestSelectDailyMissions_ActiveOnStressBackfillsEverything(t *testing.T) {
	s := NewSeededSelector(DefaultCatalog(), 7)

	got := s.SelectDailyMissions(domain.Preferences{
		Objective:    domain.ObjectiveStress,
		Availability: domain.AvailabilityHigh,
		Intensity:    domain.IntensityActive,
	})

	require.Len(t, got, domain.DailyMissionCount)
	seen := map[string]bool{}
	for _, m := range got {
		assert.Contains(t, m.ID, "stress_")
		assert.False(t, seen[m.ID], "duplicate mission %s", m.ID)
		seen[m.ID] = true
	}
}

func TestSelectDailyMissions_UnknownObjectiveFallsBackToEnergy(t *testing.T) {
	s := NewSeededSelector(DefaultCatalog(), 1)

	got := s.SelectDailyMissions(domain.Preferences{
		Objective:    domain.Objective("sleep"),
		Availability: domain.AvailabilityMedium,
		Intensity:    domain.IntensityNormal,
	})

	assert.Equal(t, []string{"energy_1", "energy_2", "energy_4"}, ids(got))
}

func TestSelectDailyMissions_AlwaysThreeDistinct(t *testing.T) {
	s := NewSeededSelector(DefaultCatalog(), 99)
	availabilities := []domain.Availability{domain.AvailabilityLow, domain.AvailabilityMedium, domain.AvailabilityHigh}
	intensities := []domain.Intensity{domain.IntensityGentle, domain.IntensityNormal, domain.IntensityActive}

	for _, o := range domain.Objectives {
		for _, a := range availabilities {
			for _, i := range intensities {
				got := s.SelectDailyMissions(domain.Preferences{Objective: o, Availability: a, Intensity: i})
				require.Len(t, got, domain.DailyMissionCount)
				seen := map[string]bool{}
				for _, m := range got {
					assert.False(t, seen[m.ID])
					seen[m.ID] = true
				}
			}
		}
	}
}

func TestSelectDailyMissions_ConcurrentUse(t *testing.T) {
	s := NewSeededSelector(DefaultCatalog(), 3)
	prefs := domain.Preferences{Objective: domain.ObjectiveStress, Intensity: domain.IntensityActive, Availability: domain.AvailabilityHigh}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, s.SelectDailyMissions(prefs), domain.DailyMissionCount)
		}()
	}
	wg.Wait()
}

func TestNewSeededSelector_Reproducible(t *testing.T) {
	prefs := domain.Preferences{Objective: domain.ObjectiveStress, Availability: domain.AvailabilityHigh, Intensity: domain.IntensityActive}

	a := NewSeededSelector(DefaultCatalog(), 11).SelectDailyMissions(prefs)
	b := NewSeededSelector(DefaultCatalog(), 11).SelectDailyMissions(prefs)

	assert.Equal(t, ids(a), ids(b))
}
