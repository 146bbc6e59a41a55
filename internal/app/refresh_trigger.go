package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"forecastsync.app/internal/core/synchronization"
	"forecastsync.app/pkg/errors"
	"github.com/go-co-op/gocron"
)

// SyncRequester is the part of the sync orchestrator the refresh trigger drives
type SyncRequester interface {
	RequestSync(ctx context.Context) (*synchronization.Result, error)
}

// RefreshTrigger periodically asks the orchestrator to sync the active location.
// It lives outside the core; the orchestrator never schedules itself.
type RefreshTrigger struct {
	scheduler  *gocron.Scheduler
	requester  SyncRequester
	interval   time.Duration
	runOnStart bool
	timeout    time.Duration

	mutex  sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// NewRefreshTrigger creates a trigger; call Start to schedule it
func NewRefreshTrigger(requester SyncRequester, interval time.Duration, runOnStart bool, timeout time.Duration) *RefreshTrigger {
	return &RefreshTrigger{
		scheduler:  gocron.NewScheduler(time.UTC),
		requester:  requester,
		interval:   interval,
		runOnStart: runOnStart,
		timeout:    timeout,
	}
}

// Start schedules the sync job and starts the underlying scheduler
func (t *RefreshTrigger) Start(ctx context.Context) error {
	if t.interval <= 0 {
		slog.Info("Refresh trigger disabled", "interval", t.interval)
		return nil
	}

	t.mutex.Lock()
	t.ctx, t.cancel = context.WithCancel(ctx)
	t.mutex.Unlock()

	t.scheduler.SingletonModeAll()
	if !t.runOnStart {
		t.scheduler.WaitForScheduleAll()
	}
	if _, err := t.scheduler.Every(t.interval).Do(t.run); err != nil {
		return err
	}

	t.scheduler.StartAsync()
	slog.Info("Refresh trigger started", "interval", t.interval, "run_on_start", t.runOnStart)
	return nil
}

func (t *RefreshTrigger) run() {
	t.mutex.Lock()
	parent := t.ctx
	t.mutex.Unlock()

	ctx, cancel := context.WithTimeout(parent, t.timeout)
	defer cancel()

	result, err := t.requester.RequestSync(ctx)
	switch {
	case err == nil:
		slog.Info("Scheduled sync completed",
			"run_id", result.RunID,
			"location", result.Location.Name,
			"hourly", result.HourlyCount,
			"daily", result.DailyCount)
	case errors.IsNoActiveLocationError(err):
		slog.Info("Scheduled sync skipped, no active location")
	default:
		slog.Error("Scheduled sync failed", "error", err)
	}
}

// Stop cancels the running job, if any, and stops future runs
func (t *RefreshTrigger) Stop() {
	t.mutex.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	t.mutex.Unlock()

	t.scheduler.Stop()
}
