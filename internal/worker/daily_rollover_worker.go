package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/WellnessQuest_Go/internal/domain"
	"github.com/osse101/WellnessQuest_Go/internal/event"
	"github.com/osse101/WellnessQuest_Go/internal/game"
	"github.com/osse101/WellnessQuest_Go/internal/logger"
)

// RolloverService is the part of the session layer the sweep needs
type RolloverService interface {
	KnownProfiles(ctx context.Context) []string
	Rollover(ctx context.Context, profileID string) (domain.RolloverResult, error)
}

// EventPublisher publishes the sweep summary; event.ResilientPublisher retries it
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// DailyRolloverWorker rolls every known profile over to the new day shortly
// after midnight in the clock's location, so idle profiles start the day fresh
// without waiting for their next request
type DailyRolloverWorker struct {
	sessions  RolloverService
	pool      *Pool
	publisher EventPublisher
	clock     game.Clock

	timer      *time.Timer
	nextSweep  time.Time
	lastSweep  *time.Time
	lastResult *domain.SweepResult
	shutdown   chan struct{}
	wg         sync.WaitGroup
	mu         sync.Mutex
}

// NewDailyRolloverWorker creates a new DailyRolloverWorker. publisher may be nil.
func NewDailyRolloverWorker(sessions RolloverService, pool *Pool, publisher EventPublisher, clock game.Clock) *DailyRolloverWorker {
	return &DailyRolloverWorker{
		sessions:  sessions,
		pool:      pool,
		publisher: publisher,
		clock:     clock,
		shutdown:  make(chan struct{}),
	}
}

// Start schedules the first sweep
func (w *DailyRolloverWorker) Start() {
	w.scheduleNext()
}

// timeUntilNextSweep is the wait until just after the next midnight
func (w *DailyRolloverWorker) timeUntilNextSweep() time.Duration {
	now := w.clock.Now()
	return game.NextMidnight(now, w.clock.Location()).Add(RolloverGrace).Sub(now)
}

// scheduleNext arms the timer for the next sweep
func (w *DailyRolloverWorker) scheduleNext() {
	select {
	case <-w.shutdown:
		return
	default:
	}

	duration := w.timeUntilNextSweep()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.nextSweep = w.clock.Now().Add(duration)

	// Two stages keep a long timer from drifting past midnight
	if duration > StandbyThreshold {
		wait := duration - StandbyLead
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		log.Info(LogMsgRolloverStandby, "next_check_at", w.clock.Now().Add(wait))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// A timer that fired early still sees most of today ahead of it
		if rem := w.timeUntilNextSweep(); rem > EarlyFireTolerance && rem < LateFireWindow {
			w.scheduleNext()
			return
		}

		w.executeSweep()
		w.scheduleNext()
	})
	log.Info(LogMsgRolloverApproach, "next_sweep_at", w.nextSweep)
}

// executeSweep runs the sweep in a tracked goroutine
func (w *DailyRolloverWorker) executeSweep() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		_, _ = w.RunSweep(context.Background())
	}()
}

// Trigger runs a sweep immediately and waits for it
func (w *DailyRolloverWorker) Trigger(ctx context.Context) (domain.SweepResult, error) {
	logger.FromContext(ctx).Info(LogMsgRolloverManualTrigger)
	w.wg.Add(1)
	defer w.wg.Done()
	return w.RunSweep(ctx)
}

// RunSweep enqueues one rollover job per known profile, waits for all of them,
// records the result and publishes it
func (w *DailyRolloverWorker) RunSweep(ctx context.Context) (domain.SweepResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRolloverStarting)

	ids := w.sessions.KnownProfiles(ctx)
	result := domain.SweepResult{
		Date:            w.clock.Today(),
		ProfilesScanned: len(ids),
	}

	var (
		jobs           sync.WaitGroup
		rolled, failed atomic.Int32
		enqueueErr     error
	)
	for _, id := range ids {
		profileID := id
		jobs.Add(1)
		err := w.pool.Enqueue(ctx, JobFunc(func(jobCtx context.Context) error {
			defer jobs.Done()
			res, err := w.sessions.Rollover(jobCtx, profileID)
			if err != nil {
				failed.Add(1)
				logger.FromContext(jobCtx).Warn(LogMsgRolloverProfileFailed, "profile_id", profileID, "error", err)
				return nil
			}
			if res.RolledOver {
				rolled.Add(1)
			}
			return nil
		}))
		if err != nil {
			jobs.Done()
			enqueueErr = err
			log.Error(LogMsgRolloverEnqueueFailed, "profile_id", profileID, "error", err)
			break
		}
	}
	jobs.Wait()

	result.ProfilesRolled = int(rolled.Load())
	result.ProfilesFailed = int(failed.Load())

	now := w.clock.Now()
	w.mu.Lock()
	w.lastSweep = &now
	w.lastResult = &result
	w.mu.Unlock()

	log.Info(LogMsgRolloverCompleted,
		"date", result.Date,
		"profiles_scanned", result.ProfilesScanned,
		"profiles_rolled", result.ProfilesRolled,
		"profiles_failed", result.ProfilesFailed)

	if w.publisher != nil {
		w.publisher.PublishWithRetry(ctx, event.NewDailyRolloverCompleteEvent(now.In(w.clock.Location()), result.ProfilesScanned, result.ProfilesRolled))
	}

	return result, enqueueErr
}

// Status reports the last and the next sweep
func (w *DailyRolloverWorker) Status() domain.RolloverStatus {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := w.nextSweep
	if next.IsZero() {
		next = w.clock.Now().Add(w.timeUntilNextSweep())
	}
	return domain.RolloverStatus{
		LastSweepAt: w.lastSweep,
		LastResult:  w.lastResult,
		NextSweepAt: next,
	}
}

// Shutdown cancels the pending timer and waits for an in-flight sweep
func (w *DailyRolloverWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRolloverShuttingDown)

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgRolloverShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgRolloverShutdownSlow)
		return ctx.Err()
	}
}
