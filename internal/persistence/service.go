package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/game"
	"github.com/osse101/WellnessQuest_Go/internal/logger"
	"github.com/osse101/WellnessQuest_Go/internal/metrics"
	"github.com/osse101/WellnessQuest_Go/internal/storage"
)

// Service reads and writes one profile's data through a storage gateway.
// Storage and decode failures are logged and counted but never returned:
// reads degrade to defaults and writes report false.
type Service struct {
	store     storage.Gateway
	engine    *game.Engine
	profileID string
}

// NewService creates a service for profileID, scoping gw to that profile's keys
func NewService(gw storage.Gateway, engine *game.Engine, profileID string) *Service {
	return &Service{
		store:     storage.Scoped(gw, profileID),
		engine:    engine,
		profileID: profileID,
	}
}

// ProfileID returns the profile the service is bound to
func (s *Service) ProfileID() string {
	return s.profileID
}

// Load returns the stored game state, or a fresh default when there is none
// or it cannot be trusted. It never fails.
func (s *Service) Load(ctx context.Context) *domain.GameState {
	state, _ := s.LoadOrCreate(ctx)
	return state
}

// LoadOrCreate is Load that also reports whether the state was freshly created
func (s *Service) LoadOrCreate(ctx context.Context) (*domain.GameState, bool) {
	log := logger.FromContext(ctx).With("profile_id", s.profileID)

	var state domain.GameState
	reason, ok := s.read(ctx, KeyGameState, &state)
	if ok {
		if err := state.CheckInvariants(); err == nil {
			return &state, false
		}
		log.Warn(LogMsgInvalidGameState)
		reason = metrics.ReasonInvalid
	}

	metrics.StateFallbacks.WithLabelValues(reason).Inc()
	if reason == metrics.ReasonMissing {
		log.Debug(LogMsgGameStateCreated)
	}
	return s.engine.NewGameState(s.LoadPreferences(ctx)), true
}

// Save stamps the state with the current version and time and writes it.
// The game-state key is the commit point: once it is written Save succeeds,
// and a failed daily-missions mirror write is only logged and counted.
func (s *Service) Save(ctx context.Context, state *domain.GameState) bool {
	now := s.engine.Clock().Now()
	state.Version = domain.GameStateVersion
	state.LastUpdated = now

	if !s.write(ctx, KeyGameState, state) {
		return false
	}

	if !s.write(ctx, KeyDailyMissions, domain.DailyMissionsRecord{
		Missions: state.DailyMissions,
		Date:     state.LastPlayDate,
		SavedAt:  now,
	}) {
		logger.FromContext(ctx).Warn(LogMsgMirrorWriteFailed, "profile_id", s.profileID)
	}
	return true
}

// LoadDailyMissions returns the mirrored missions when they were saved for today
func (s *Service) LoadDailyMissions(ctx context.Context, today string) ([]domain.Mission, bool) {
	var record domain.DailyMissionsRecord
	if _, ok := s.read(ctx, KeyDailyMissions, &record); !ok {
		return nil, false
	}
	if record.Date != today {
		logger.FromContext(ctx).Debug(LogMsgDailyMissionsStale,
			"profile_id", s.profileID, "stored_date", record.Date, "today", today)
		return nil, false
	}
	return record.Missions, true
}

// LoadPreferences returns the stored preferences with unknown values replaced by defaults
func (s *Service) LoadPreferences(ctx context.Context) domain.Preferences {
	prefs, _ := s.LoadStoredPreferences(ctx)
	return prefs
}

// LoadStoredPreferences is LoadPreferences that also reports whether a record existed
func (s *Service) LoadStoredPreferences(ctx context.Context) (domain.Preferences, bool) {
	var prefs domain.Preferences
	if _, ok := s.read(ctx, KeyUserPreferences, &prefs); !ok {
		return domain.DefaultPreferences(), false
	}
	return prefs.Normalized(), true
}

// SavePreferences writes the preferences
func (s *Service) SavePreferences(ctx context.Context, prefs domain.Preferences) bool {
	return s.write(ctx, KeyUserPreferences, prefs)
}

// HasCompletedOnboarding reports whether the onboarding flag is set
func (s *Service) HasCompletedOnboarding(ctx context.Context) bool {
	var done bool
	if _, ok := s.read(ctx, KeyOnboardingCompleted, &done); !ok {
		return false
	}
	return done
}

// SetOnboardingCompleted sets the onboarding flag
func (s *Service) SetOnboardingCompleted(ctx context.Context) bool {
	return s.write(ctx, KeyOnboardingCompleted, true)
}

// LoadPetState returns the stored pet, or the default pet
func (s *Service) LoadPetState(ctx context.Context) domain.PetState {
	pet := domain.DefaultPetState()
	if _, ok := s.read(ctx, KeyPetState, &pet); !ok {
		return domain.DefaultPetState()
	}
	return normalizePet(pet)
}

// SavePetState writes the pet
func (s *Service) SavePetState(ctx context.Context, pet domain.PetState) bool {
	pet.LastUpdated = s.engine.Clock().Now()
	return s.write(ctx, KeyPetState, pet)
}

// ClearAll removes every key of the profile
func (s *Service) ClearAll(ctx context.Context) bool {
	if err := s.store.Remove(ctx, AllKeys...); err != nil {
		metrics.StorageErrors.WithLabelValues(opClear, "*").Inc()
		logger.FromContext(ctx).Error(LogMsgClearFailed, "profile_id", s.profileID, "error", err)
		return false
	}
	return true
}

// read decodes key into target. On failure it returns the fallback reason.
func (s *Service) read(ctx context.Context, key string, target interface{}) (string, bool) {
	log := logger.FromContext(ctx).With("profile_id", s.profileID, "key", key)

	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return metrics.ReasonMissing, false
	}
	if err != nil {
		metrics.StorageErrors.WithLabelValues(opLoad, key).Inc()
		log.Error(LogMsgStorageReadFailed, "error", err)
		return metrics.ReasonMissing, false
	}

	if err := json.Unmarshal(raw, target); err != nil {
		metrics.StorageErrors.WithLabelValues(opDecode, key).Inc()
		log.Warn(LogMsgDecodeFailed, "error", err)
		return metrics.ReasonMalformed, false
	}
	return "", true
}

func (s *Service) write(ctx context.Context, key string, value interface{}) bool {
	log := logger.FromContext(ctx).With("profile_id", s.profileID, "key", key)

	raw, err := json.Marshal(value)
	if err != nil {
		metrics.StorageErrors.WithLabelValues(opEncode, key).Inc()
		log.Error(LogMsgEncodeFailed, "error", err)
		return false
	}

	if err := s.store.Set(ctx, key, raw); err != nil {
		metrics.StorageErrors.WithLabelValues(opSave, key).Inc()
		log.Error(LogMsgStorageWriteFailed, "error", err)
		return false
	}
	return true
}

func normalizePet(pet domain.PetState) domain.PetState {
	if pet.Name == "" {
		pet.Name = domain.DefaultPetName
	}
	if !pet.Mood.Valid() {
		pet.Mood = domain.PetMoodNeutral
	}
	pet.Hunger = clamp(pet.Hunger, 0, domain.PetStatMax)
	pet.Energy = clamp(pet.Energy, 0, domain.PetStatMax)
	if pet.Level < domain.DefaultPetLevel {
		pet.Level = domain.DefaultPetLevel
	}
	if pet.Experience < 0 {
		pet.Experience = 0
	}
	return pet
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
