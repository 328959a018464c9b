package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/mission"
)

// MockSessionService mocks session.Service
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Open(ctx context.Context, profileID string) (*domain.Snapshot, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockSessionService) Snapshot(ctx context.Context, profileID string) (*domain.Snapshot, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockSessionService) CompleteOnboarding(ctx context.Context, profileID string, prefs domain.Preferences) (*domain.GameState, error) {
	args := m.Called(ctx, profileID, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameState), args.Error(1)
}

func (m *MockSessionService) CompleteMission(ctx context.Context, profileID, missionID string) (domain.CompletionResult, error) {
	args := m.Called(ctx, profileID, missionID)
	return args.Get(0).(domain.CompletionResult), args.Error(1)
}

func (m *MockSessionService) FeedPet(ctx context.Context, profileID string) (domain.FeedResult, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(domain.FeedResult), args.Error(1)
}

func (m *MockSessionService) Rollover(ctx context.Context, profileID string) (domain.RolloverResult, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(domain.RolloverResult), args.Error(1)
}

func (m *MockSessionService) ApplyDemoData(ctx context.Context, profileID string) (*domain.GameState, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameState), args.Error(1)
}

func (m *MockSessionService) Reset(ctx context.Context, profileID string) error {
	return m.Called(ctx, profileID).Error(0)
}

func (m *MockSessionService) KnownProfiles(ctx context.Context) []string {
	return m.Called(ctx).Get(0).([]string)
}

func (m *MockSessionService) Catalog() *mission.Catalog {
	return m.Called().Get(0).(*mission.Catalog)
}

// MockPinger mocks a storage backend's Ping
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockRolloverSweeper mocks the daily rollover worker
type MockRolloverSweeper struct {
	mock.Mock
}

func (m *MockRolloverSweeper) Trigger(ctx context.Context) (domain.SweepResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SweepResult), args.Error(1)
}

func (m *MockRolloverSweeper) Status() domain.RolloverStatus {
	return m.Called().Get(0).(domain.RolloverStatus)
}
