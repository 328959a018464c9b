package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/event"
	"github.com/osse101/WellnessQuest_Go/internal/game"
)

// MockRolloverService for testing
type MockRolloverService struct {
	mock.Mock
}

func (m *MockRolloverService) KnownProfiles(ctx context.Context) []string {
	return m.Called(ctx).Get(0).([]string)
}

func (m *MockRolloverService) Rollover(ctx context.Context, profileID string) (domain.RolloverResult, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(domain.RolloverResult), args.Error(1)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) published() []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]event.Event(nil), p.events...)
}

func newTestWorker(t *testing.T, svc RolloverService, clock game.Clock) (*DailyRolloverWorker, *recordingPublisher) {
	t.Helper()
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()
	t.Cleanup(pool.Stop)

	pub := &recordingPublisher{}
	return NewDailyRolloverWorker(svc, pool, pub, clock), pub
}

func TestRunSweep(t *testing.T) {
	clock := game.NewSimulatedClock(time.Date(2024, 3, 11, 0, 0, 1, 0, time.UTC), time.UTC)
	svc := &MockRolloverService{}
	svc.On("KnownProfiles", mock.Anything).Return([]string{"alice", "bob", "carol"})
	svc.On("Rollover", mock.Anything, "alice").Return(domain.RolloverResult{RolledOver: true}, nil)
	svc.On("Rollover", mock.Anything, "bob").Return(domain.RolloverResult{RolledOver: false}, nil)
	svc.On("Rollover", mock.Anything, "carol").Return(domain.RolloverResult{}, domain.ErrPersistFailed)

	w, pub := newTestWorker(t, svc, clock)

	result, err := w.RunSweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.SweepResult{
		Date:            "2024-03-11",
		ProfilesScanned: 3,
		ProfilesRolled:  1,
		ProfilesFailed:  1,
	}, result)
	svc.AssertExpectations(t)

	events := pub.published()
	require.Len(t, events, 1)
	assert.Equal(t, event.DailyRolloverComplete, events[0].Type)
	payload, ok := events[0].Payload.(domain.DailyRolloverCompletePayload)
	require.True(t, ok)
	assert.Equal(t, "2024-03-11", payload.Date)
	assert.Equal(t, 3, payload.ProfilesScanned)
	assert.Equal(t, 1, payload.ProfilesRolled)

	status := w.Status()
	require.NotNil(t, status.LastSweepAt)
	require.NotNil(t, status.LastResult)
	assert.Equal(t, result, *status.LastResult)
}

func TestRunSweep_NoProfiles(t *testing.T) {
	clock := game.NewSimulatedClock(time.Date(2024, 3, 11, 0, 0, 1, 0, time.UTC), time.UTC)
	svc := &MockRolloverService{}
	svc.On("KnownProfiles", mock.Anything).Return([]string{})

	w, pub := newTestWorker(t, svc, clock)

	result, err := w.RunSweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.ProfilesScanned)
	assert.Len(t, pub.published(), 1)
}

func TestRunSweep_StoppedPool(t *testing.T) {
	clock := game.NewSimulatedClock(time.Date(2024, 3, 11, 0, 0, 1, 0, time.UTC), time.UTC)
	svc := &MockRolloverService{}
	svc.On("KnownProfiles", mock.Anything).Return([]string{"alice"})

	pool := NewPool(1, 1)
	pool.Stop()
	w := NewDailyRolloverWorker(svc, pool, nil, clock)

	result, err := w.RunSweep(context.Background())
	assert.ErrorIs(t, err, ErrPoolStopped)
	assert.Equal(t, 1, result.ProfilesScanned)
	assert.Zero(t, result.ProfilesRolled)
	svc.AssertNotCalled(t, "Rollover", mock.Anything, mock.Anything)
}

func TestTimeUntilNextSweep(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)

	tests := []struct {
		name string
		now  time.Time
		loc  *time.Location
		want time.Duration
	}{
		{"mid morning UTC", time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), time.UTC, 15*time.Hour + RolloverGrace},
		{"just before midnight", time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC), time.UTC, time.Second + RolloverGrace},
		{"exactly midnight waits a full day", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), time.UTC, 24*time.Hour + RolloverGrace},
		{"location shifts the boundary", time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC), tokyo, time.Hour + RolloverGrace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewDailyRolloverWorker(&MockRolloverService{}, NewPool(1, 1), nil, game.NewSimulatedClock(tt.now, tt.loc))
			assert.Equal(t, tt.want, w.timeUntilNextSweep())
		})
	}
}

func TestScheduledSweepFiresAfterMidnight(t *testing.T) {
	clock := game.NewSimulatedClock(time.Date(2024, 3, 10, 23, 59, 59, 800_000_000, time.UTC), time.UTC)
	svc := &MockRolloverService{}
	svc.On("KnownProfiles", mock.Anything).Return([]string{"alice"})
	svc.On("Rollover", mock.Anything, "alice").Return(domain.RolloverResult{RolledOver: true}, nil)

	w, pub := newTestWorker(t, svc, clock)
	w.Start()
	t.Cleanup(func() { _ = w.Shutdown(context.Background()) })

	// The simulated clock never moves, so advance it once the real timer is armed
	clock.Advance(2 * RolloverGrace)

	require.Eventually(t, func() bool { return len(pub.published()) == 1 }, 3*time.Second, 20*time.Millisecond)
	svc.AssertCalled(t, "Rollover", mock.Anything, "alice")
}

func TestStatusBeforeFirstSweep(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	w := NewDailyRolloverWorker(&MockRolloverService{}, NewPool(1, 1), nil, game.NewSimulatedClock(now, time.UTC))

	status := w.Status()
	assert.Nil(t, status.LastSweepAt)
	assert.Nil(t, status.LastResult)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC).Add(RolloverGrace), status.NextSweepAt)
}

func TestShutdown(t *testing.T) {
	t.Run("cancels pending timer", func(t *testing.T) {
		clock := game.NewSimulatedClock(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), time.UTC)
		w := NewDailyRolloverWorker(&MockRolloverService{}, NewPool(1, 1), nil, clock)
		w.Start()

		require.NoError(t, w.Shutdown(context.Background()))
		require.NoError(t, w.Shutdown(context.Background()))
	})

	t.Run("times out on a stuck sweep", func(t *testing.T) {
		clock := game.NewSimulatedClock(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), time.UTC)
		w := NewDailyRolloverWorker(&MockRolloverService{}, NewPool(1, 1), nil, clock)
		w.wg.Add(1)
		defer w.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, w.Shutdown(ctx), context.DeadlineExceeded)
	})
}
