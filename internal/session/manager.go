package session

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/osse101/WellnessQuest_Go/internal/concurrency"
	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/event"
	"github.com/osse101/WellnessQuest_Go/internal/game"
	"github.com/osse101/WellnessQuest_Go/internal/logger"
	"github.com/osse101/WellnessQuest_Go/internal/mission"
	"github.com/osse101/WellnessQuest_Go/internal/persistence"
	"github.com/osse101/WellnessQuest_Go/internal/storage"
)

// Service is the per-profile game API used by handlers, workers and commands
type Service interface {
	Open(ctx context.Context, profileID string) (*domain.Snapshot, error)
	Snapshot(ctx context.Context, profileID string) (*domain.Snapshot, error)
	CompleteOnboarding(ctx context.Context, profileID string, prefs domain.Preferences) (*domain.GameState, error)
	CompleteMission(ctx context.Context, profileID, missionID string) (domain.CompletionResult, error)
	FeedPet(ctx context.Context, profileID string) (domain.FeedResult, error)
	Rollover(ctx context.Context, profileID string) (domain.RolloverResult, error)
	ApplyDemoData(ctx context.Context, profileID string) (*domain.GameState, error)
	Reset(ctx context.Context, profileID string) error
	KnownProfiles(ctx context.Context) []string
	Catalog() *mission.Catalog
}

// Publisher receives the events produced by successful mutations
type Publisher interface {
	Publish(ctx context.Context, evt event.Event) error
}

// Manager serializes all work on a profile behind that profile's lock.
// Each operation loads, applies the day rollover, mutates and saves before
// the lock is released; events are published after release.
type Manager struct {
	gateway   storage.Gateway
	engine    *game.Engine
	publisher Publisher
	locks     *concurrency.LockManager
	active    *activeSet
}

// Option configures a Manager
type Option func(*Manager)

// WithActiveProfiles sets the capacity and idle expiry of the active profile set
func WithActiveProfiles(size int, ttl time.Duration) Option {
	return func(m *Manager) {
		m.active = newActiveSet(size, ttl)
	}
}

// NewManager creates a manager. publisher may be nil.
func NewManager(gw storage.Gateway, engine *game.Engine, publisher Publisher, opts ...Option) *Manager {
	m := &Manager{
		gateway:   gw,
		engine:    engine,
		publisher: publisher,
		locks:     concurrency.NewLockManager(),
		active:    newActiveSet(DefaultActiveProfiles, DefaultActiveProfileTTL),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Catalog returns the mission catalog missions are drawn from
func (m *Manager) Catalog() *mission.Catalog {
	return m.engine.Selector().Catalog()
}

// day is a profile's state after the rollover check
type day struct {
	state      *domain.GameState
	created    bool
	rolledOver bool
	events     []event.Event
}

// dirty reports whether the loaded state differs from what is stored
func (d *day) dirty() bool {
	return d.created || d.rolledOver
}

// Open loads a profile, starting a new day if the date changed, and returns its snapshot
func (m *Manager) Open(ctx context.Context, profileID string) (*domain.Snapshot, error) {
	var snap *domain.Snapshot
	err := m.withProfile(ctx, profileID, func(svc *persistence.Service) ([]event.Event, error) {
		d := m.load(ctx, svc)
		if d.dirty() && !svc.Save(ctx, d.state) {
			return nil, m.persistFailed(ctx, profileID)
		}
		if d.created {
			logger.FromContext(ctx).Info(LogMsgProfileCreated, "profile_id", profileID)
		}
		logger.FromContext(ctx).Debug(LogMsgProfileOpened, "profile_id", profileID)
		snap = m.snapshot(ctx, svc, d.state)
		return d.events, nil
	})
	return snap, err
}

// Snapshot returns the stored view of a profile without starting a new day or writing anything
func (m *Manager) Snapshot(ctx context.Context, profileID string) (*domain.Snapshot, error) {
	var snap *domain.Snapshot
	err := m.withProfile(ctx, profileID, func(svc *persistence.Service) ([]event.Event, error) {
		snap = m.snapshot(ctx, svc, svc.Load(ctx))
		return nil, nil
	})
	return snap, err
}

// CompleteOnboarding stores the preferences once. Unless a mission was already
// completed today, today's missions are reselected for the new preferences.
func (m *Manager) CompleteOnboarding(ctx context.Context, profileID string, prefs domain.Preferences) (*domain.GameState, error) {
	if !prefs.Valid() {
		return nil, fmt.Errorf("%w: preferences %+v", domain.ErrInvalidInput, prefs)
	}

	var state *domain.GameState
	err := m.withProfile(ctx, profileID, func(svc *persistence.Service) ([]event.Event, error) {
		if svc.HasCompletedOnboarding(ctx) {
			return nil, fmt.Errorf("%w: profile %s", domain.ErrAlreadyOnboarded, profileID)
		}

		d := m.load(ctx, svc)
		if d.state.CompletedMissionsToday == 0 {
			d.state.DailyMissions = m.engine.Selector().SelectDailyMissions(prefs)
		}

		// The flag goes last so a set flag always implies stored preferences
		if !svc.SavePreferences(ctx, prefs) || !svc.Save(ctx, d.state) || !svc.SetOnboardingCompleted(ctx) {
			return nil, m.persistFailed(ctx, profileID)
		}

		logger.FromContext(ctx).Info(LogMsgOnboardingCompleted,
			"profile_id", profileID, "objective", prefs.Objective)
		state = d.state
		return append(d.events, event.NewProfileEvent(event.OnboardingCompleted, profileID)), nil
	})
	return state, err
}

// CompleteMission completes one of today's missions. Unknown or already completed
// missions are not errors: the result reports Completed=false.
func (m *Manager) CompleteMission(ctx context.Context, profileID, missionID string) (domain.CompletionResult, error) {
	var result domain.CompletionResult
	err := m.withProfile(ctx, profileID, func(svc *persistence.Service) ([]event.Event, error) {
		if !svc.HasCompletedOnboarding(ctx) {
			return nil, fmt.Errorf("%w: profile %s", domain.ErrNotOnboarded, profileID)
		}

		d := m.load(ctx, svc)
		result = m.engine.CompleteMission(d.state, missionID)
		log := logger.FromContext(ctx).With("profile_id", profileID, "mission_id", missionID)

		if !result.Completed {
			if _, known := m.Catalog().Lookup(missionID); known {
				log.Debug(LogMsgMissionRejected)
			} else {
				log.Warn(LogMsgMissionUnknown)
			}
			if d.dirty() && !svc.Save(ctx, d.state) {
				return nil, m.persistFailed(ctx, profileID)
			}
			result.State = d.state
			return d.events, nil
		}

		if !svc.Save(ctx, result.State) {
			return nil, m.persistFailed(ctx, profileID)
		}

		log.Info(LogMsgMissionCompleted,
			"hearts_earned", result.HeartsEarned,
			"completed_today", result.State.CompletedMissionsToday)

		completed := findMission(result.State, missionID)
		return append(d.events, event.NewMissionCompletedEvent(
			profileID, completed, result.HeartsEarned, result.State.CompletedMissionsToday)), nil
	})
	return result, err
}

// FeedPet spends a heart on the pet. With no hearts the result reports Fed=false.
func (m *Manager) FeedPet(ctx context.Context, profileID string) (domain.FeedResult, error) {
	var result domain.FeedResult
	err := m.withProfile(ctx, profileID, func(svc *persistence.Service) ([]event.Event, error) {
		if !svc.HasCompletedOnboarding(ctx) {
			return nil, fmt.Errorf("%w: profile %s", domain.ErrNotOnboarded, profileID)
		}

		d := m.load(ctx, svc)
		result = m.engine.FeedPet(d.state, svc.LoadPetState(ctx))
		log := logger.FromContext(ctx).With("profile_id", profileID)

		if !result.Fed {
			log.Debug(LogMsgPetNotFed)
			if d.dirty() && !svc.Save(ctx, d.state) {
				return nil, m.persistFailed(ctx, profileID)
			}
			result.State = d.state
			return d.events, nil
		}

		// Hearts are spent before the pet gains anything
		if !svc.Save(ctx, result.State) || !svc.SavePetState(ctx, result.Pet) {
			return nil, m.persistFailed(ctx, profileID)
		}

		log.Info(LogMsgPetFed, "hearts_remaining", result.State.Hearts, "pet_level", result.Pet.Level)
		return append(d.events, event.NewPetFedEvent(profileID, result.State.Hearts, result.Pet.Level)), nil
	})
	return result, err
}

// Rollover starts a new day for the profile if its play date is not today.
// Profiles with no stored state are not created: the default state is
// returned without saving it.
func (m *Manager) Rollover(ctx context.Context, profileID string) (domain.RolloverResult, error) {
	var result domain.RolloverResult
	err := m.withProfile(ctx, profileID, func(svc *persistence.Service) ([]event.Event, error) {
		d := m.load(ctx, svc)
		if d.created {
			result = domain.RolloverResult{State: d.state}
			return nil, nil
		}
		result = domain.RolloverResult{RolledOver: d.rolledOver, State: d.state}
		if !d.rolledOver {
			return nil, nil
		}
		if !svc.Save(ctx, d.state) {
			result = domain.RolloverResult{}
			return nil, m.persistFailed(ctx, profileID)
		}
		return d.events, nil
	})
	return result, err
}

// ApplyDemoData replaces the profile with the demo profile
func (m *Manager) ApplyDemoData(ctx context.Context, profileID string) (*domain.GameState, error) {
	var state *domain.GameState
	err := m.withProfile(ctx, profileID, func(svc *persistence.Service) ([]event.Event, error) {
		demo, ok := svc.ApplyDemoData(ctx)
		if !ok {
			return nil, m.persistFailed(ctx, profileID)
		}
		logger.FromContext(ctx).Info(LogMsgDemoApplied, "profile_id", profileID)
		state = demo
		return []event.Event{event.NewProfileEvent(event.DemoApplied, profileID)}, nil
	})
	return state, err
}

// Reset removes every stored key of the profile
func (m *Manager) Reset(ctx context.Context, profileID string) error {
	err := m.withProfile(ctx, profileID, func(svc *persistence.Service) ([]event.Event, error) {
		if !svc.ClearAll(ctx) {
			return nil, m.persistFailed(ctx, profileID)
		}
		logger.FromContext(ctx).Info(LogMsgProfileReset, "profile_id", profileID)
		return []event.Event{event.NewProfileEvent(event.ProfileReset, profileID)}, nil
	})
	if err == nil {
		m.active.forget(profileID)
	}
	return err
}

// KnownProfiles returns every profile with stored data plus the recently active ones
func (m *Manager) KnownProfiles(ctx context.Context) []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	stored, err := storage.ListProfiles(ctx, m.gateway)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgListProfilesFailed, "error", err)
	}
	for _, id := range stored {
		add(id)
	}
	for _, id := range m.active.ids() {
		add(id)
	}

	sort.Strings(ids)
	return ids
}

// withProfile validates the id, runs fn under the profile lock and publishes
// the returned events once the lock is released.
func (m *Manager) withProfile(ctx context.Context, profileID string, fn func(*persistence.Service) ([]event.Event, error)) error {
	if !domain.ValidProfileID(profileID) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidProfileID, profileID)
	}

	var events []event.Event
	err := m.locks.WithLock(profileID, func() error {
		var err error
		events, err = fn(persistence.NewService(m.gateway, m.engine, profileID))
		return err
	})
	if err != nil {
		return err
	}

	m.active.touch(profileID, m.engine.Clock().Now())
	m.publish(ctx, events)
	return nil
}

func (m *Manager) load(ctx context.Context, svc *persistence.Service) *day {
	state, created := svc.LoadOrCreate(ctx)
	res := m.engine.CheckAndResetDailyMissions(state, svc.LoadPreferences(ctx), m.engine.Clock().Today())

	d := &day{
		state:      res.State,
		created:    created,
		rolledOver: res.RolledOver,
	}
	if res.RolledOver {
		logger.FromContext(ctx).Info(LogMsgDayRolledOver,
			"profile_id", svc.ProfileID(), "date", res.State.LastPlayDate)
		d.events = append(d.events, event.NewDayRolledOverEvent(
			svc.ProfileID(), res.State.LastPlayDate, res.State.DaysCompleted))
	}
	return d
}

func (m *Manager) snapshot(ctx context.Context, svc *persistence.Service, state *domain.GameState) *domain.Snapshot {
	return &domain.Snapshot{
		ProfileID:            svc.ProfileID(),
		State:                state,
		Pet:                  svc.LoadPetState(ctx),
		Preferences:          svc.LoadPreferences(ctx),
		OnboardingCompleted:  svc.HasCompletedOnboarding(ctx),
		CompletionPercentage: game.CompletionPercentage(state),
		DerivedMood:          m.engine.DerivePetMood(state, m.engine.Clock().Now()),
	}
}

func (m *Manager) publish(ctx context.Context, events []event.Event) {
	if m.publisher == nil {
		return
	}
	for _, evt := range events {
		if err := m.publisher.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
		}
	}
}

func (m *Manager) persistFailed(ctx context.Context, profileID string) error {
	logger.FromContext(ctx).Error(LogMsgPersistFailed, "profile_id", profileID)
	return fmt.Errorf("%w: profile %s", domain.ErrPersistFailed, profileID)
}

func findMission(state *domain.GameState, id string) domain.Mission {
	for _, m := range state.DailyMissions {
		if m.ID == id {
			return m
		}
	}
	return domain.Mission{ID: id}
}
