package synchronization

import (
	"context"
	"fmt"
	"sort"
	"time"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/core/retention"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// UseCase orchestrates fetch, normalize, persist and evict for one location at a time
type UseCase struct {
	store      ports.ForecastStore
	selector   ports.SourceSelector
	normalizer ports.ForecastNormalizer
	cache      ports.ForecastCache
	notifier   ports.ChangeNotifier
	config     ports.ConfigProvider
	logger     ports.Logger
	metrics    ports.MetricsCollector
	clock      func() time.Time

	group    singleflight.Group
	flights  cmap.ConcurrentMap[string, *flight]
	inFlight cmap.ConcurrentMap[string, RunStatus]
	recent   cmap.ConcurrentMap[string, RunStatus]
}

type UseCaseDependencies struct {
	Store      ports.ForecastStore
	Selector   ports.SourceSelector
	Normalizer ports.ForecastNormalizer
	Cache      ports.ForecastCache
	Notifier   ports.ChangeNotifier
	Config     ports.ConfigProvider
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
	// Clock defaults to time.Now
	Clock func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("forecast store is required")
	}
	if deps.Selector == nil {
		return nil, errors.NewValidationError("source selector is required")
	}
	if deps.Normalizer == nil {
		return nil, errors.NewValidationError("normalizer is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("forecast cache is required")
	}
	if deps.Notifier == nil {
		return nil, errors.NewValidationError("change notifier is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		store:      deps.Store,
		selector:   deps.Selector,
		normalizer: deps.Normalizer,
		cache:      deps.Cache,
		notifier:   deps.Notifier,
		config:     deps.Config,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		clock:      clock,
		flights:    cmap.New[*flight](),
		inFlight:   cmap.New[RunStatus](),
		recent:     cmap.New[RunStatus](),
	}, nil
}

// RequestSync syncs the active location. Without one it returns a NoActiveLocation
// error and no provider is contacted.
func (uc *UseCase) RequestSync(ctx context.Context) (*Result, error) {
	location, err := uc.store.CurrentLocation(ctx)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.metrics.RecordSyncRun(uc.config.GetWeatherConfig().Source, OutcomeNoTarget, 0)
			return nil, errors.NewNoActiveLocationError()
		}
		return nil, fmt.Errorf("read active location: %w", err)
	}

	return uc.SyncLocation(ctx, *location)
}

// SyncLocation syncs one location. Concurrent calls for the same location and source
// join the run already in flight; each caller still stops waiting when its own ctx ends.
// The shared run is cancelled only after every joined caller has gone away.
func (uc *UseCase) SyncLocation(ctx context.Context, location forecast.Location) (*Result, error) {
	location.Normalize()
	if err := location.Validate(); err != nil {
		return nil, err
	}

	weatherCfg := uc.config.GetWeatherConfig()
	key := runKey(location.Coordinate(), weatherCfg.Source)

	var ch <-chan singleflight.Result
	uc.flights.Upsert(key, nil, func(exist bool, current *flight, _ *flight) *flight {
		f := current
		if !exist {
			f = newFlight(ctx)
		}
		f.join(ctx)
		ch = uc.group.DoChan(key, func() (interface{}, error) {
			defer uc.land(key, f)
			return uc.run(f, key, location, weatherCfg)
		})
		return f
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		result := *res.Val.(*Result)
		result.Coalesced = res.Shared
		return &result, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("wait for sync of %s: %w", location.Coordinate().Key(), ctx.Err())
	}
}

// Status reports runs in flight and the last finished run per location and source
func (uc *UseCase) Status() StatusReport {
	report := StatusReport{
		InFlight: make([]RunStatus, 0, uc.inFlight.Count()),
		Recent:   make([]RunStatus, 0, uc.recent.Count()),
	}
	for _, s := range uc.inFlight.Items() {
		report.InFlight = append(report.InFlight, s)
	}
	for _, s := range uc.recent.Items() {
		report.Recent = append(report.Recent, s)
	}
	sort.Slice(report.InFlight, func(i, j int) bool { return report.InFlight[i].StartedAt.Before(report.InFlight[j].StartedAt) })
	sort.Slice(report.Recent, func(i, j int) bool { return report.Recent[i].StartedAt.After(report.Recent[j].StartedAt) })
	return report
}

// land retires a finished flight so the next caller starts a fresh run
func (uc *UseCase) land(key string, f *flight) {
	uc.flights.RemoveCb(key, func(_ string, current *flight, exists bool) bool {
		uc.group.Forget(key)
		return exists && current == f
	})
	f.finish()
}

type fetchOutcome struct {
	provider ports.ForecastProvider
	raw      ports.RawForecast
	batch    *forecast.Batch
	err      error
}

// run executes one sync. It is only ever entered by the singleflight leader for key.
func (uc *UseCase) run(f *flight, key string, location forecast.Location, weatherCfg ports.WeatherConfig) (*Result, error) {
	ctx := f.ctx
	startedAt := uc.clock()
	status := RunStatus{
		ID:        uuid.NewString(),
		Location:  location,
		Source:    weatherCfg.Source,
		State:     StateIdle,
		Path:      []State{StateIdle},
		StartedAt: startedAt,
	}
	sm := newMachine()
	uc.inFlight.Set(key, status)
	defer uc.inFlight.Remove(key)

	setState := func(next State) {
		if err := sm.to(next); err != nil {
			uc.logger.Error("Sync state machine rejected transition",
				ports.F("run_id", status.ID),
				ports.F("error", err))
			return
		}
		status.State = next
		status.Path = append([]State(nil), sm.path...)
		uc.inFlight.Set(key, status)
	}

	fail := func(outcome string, err error) (*Result, error) {
		if sm.state != StateIdle {
			setState(StateFailed)
			setState(StateIdle)
		}
		finished := uc.clock()
		status.Outcome = outcome
		status.Error = err.Error()
		status.FinishedAt = &finished
		uc.recent.Set(key, status)

		uc.metrics.RecordSyncRun(weatherCfg.Source, outcome, finished.Sub(startedAt))
		uc.logger.Error("Forecast sync failed",
			ports.F("run_id", status.ID),
			ports.F("location", location.Coordinate().Key()),
			ports.F("source", weatherCfg.Source),
			ports.F("outcome", outcome),
			ports.F("error", err))
		return nil, err
	}

	providers, err := uc.selector.Select(ports.SelectionConfig{Source: weatherCfg.Source, Order: weatherCfg.Order})
	if err != nil {
		return fail(OutcomeFailed, fmt.Errorf("select providers: %w", err))
	}
	composite := weatherCfg.Source == forecast.DataSourceComposite.String()

	uc.logger.Info("Forecast sync started",
		ports.F("run_id", status.ID),
		ports.F("location", location.Coordinate().Key()),
		ports.F("source", weatherCfg.Source),
		ports.F("providers", providerNames(providers)))

	setState(StateFetching)
	outcomes := uc.fetchAll(ctx, location.Coordinate(), providers, weatherCfg.FetchTimeout)
	if err := f.err(); err != nil {
		return fail(OutcomeCancelled, fmt.Errorf("sync cancelled while fetching: %w", err))
	}
	if !composite {
		if err := firstError(outcomes); err != nil {
			return fail(OutcomeFailed, err)
		}
	}
	if !anyFetched(outcomes) {
		return fail(OutcomeFailed, fmt.Errorf("every selected provider failed: %w", firstError(outcomes)))
	}

	setState(StateNormalizing)
	for i := range outcomes {
		if outcomes[i].err != nil {
			continue
		}
		batch, err := uc.normalizer.Normalize(outcomes[i].provider.DataSource(), outcomes[i].raw)
		if err != nil {
			outcomes[i].err = fmt.Errorf("normalize %s response: %w", outcomes[i].provider.GetProviderName(), err)
			continue
		}
		outcomes[i].batch = batch
	}

	var (
		batches []*forecast.Batch
		used    []string
		dropped []string
	)
	for _, o := range outcomes {
		if o.err != nil {
			dropped = append(dropped, o.provider.GetProviderName())
			if !composite {
				return fail(OutcomeFailed, o.err)
			}
			uc.logger.Warn("Dropping provider from composite sync",
				ports.F("run_id", status.ID),
				ports.F("provider", o.provider.GetProviderName()),
				ports.F("error", o.err))
			continue
		}
		batches = append(batches, o.batch)
		used = append(used, o.provider.GetProviderName())
	}
	if len(batches) == 0 {
		return fail(OutcomeFailed, fmt.Errorf("every selected provider failed: %w", firstError(outcomes)))
	}

	target := batches[0].Source
	batch := batches[0]
	if composite {
		target = forecast.DataSourceComposite
		batch = forecast.MergeBatches(target, batches...)
	}
	batch.Tag(location.Coordinate(), target)
	if batch.IsEmpty() {
		return fail(OutcomeFailed, errors.NewUpstreamMalformedError("providers returned no forecast records", nil))
	}

	if err := f.err(); err != nil {
		return fail(OutcomeCancelled, fmt.Errorf("sync cancelled before commit: %w", err))
	}

	// the batch write is atomic; cancellation is no longer honoured from here
	commitCtx := context.WithoutCancel(ctx)

	setState(StatePersisting)
	if err := uc.store.SaveForecast(commitCtx, batch.Hourly, batch.Daily); err != nil {
		return fail(OutcomeFailed, fmt.Errorf("persist forecast: %w", err))
	}

	uc.backfillTimezone(commitCtx, status.ID, &location, batch.TimezoneID)

	// readers that loaded before the commit see the signal and drop what they cached
	topic := ports.ForecastTopic(location.Coordinate().Key(), target.String())
	uc.notifier.Publish(topic)
	if err := uc.cache.Invalidate(commitCtx, topic); err != nil {
		uc.logger.Warn("Failed to invalidate forecast projection",
			ports.F("key", topic),
			ports.F("error", err))
	}

	setState(StateEvicting)
	evicted := uc.evict(commitCtx, status.ID)

	setState(StateIdle)
	finishedAt := uc.clock()
	status.Outcome = OutcomeSuccess
	status.FinishedAt = &finishedAt
	uc.recent.Set(key, status)
	uc.metrics.RecordSyncRun(weatherCfg.Source, OutcomeSuccess, finishedAt.Sub(startedAt))

	uc.logger.Info("Forecast sync completed",
		ports.F("run_id", status.ID),
		ports.F("location", location.Coordinate().Key()),
		ports.F("source", target.String()),
		ports.F("hourly", len(batch.Hourly)),
		ports.F("daily", len(batch.Daily)),
		ports.F("evicted", evicted.Total()),
		ports.F("duration_ms", finishedAt.Sub(startedAt).Milliseconds()))

	return &Result{
		RunID:       status.ID,
		Location:    location,
		Source:      target,
		Providers:   used,
		Dropped:     dropped,
		HourlyCount: len(batch.Hourly),
		DailyCount:  len(batch.Daily),
		Evicted:     evicted,
		StartedAt:   startedAt,
		FinishedAt:  finishedAt,
	}, nil
}

// fetchAll queries every provider concurrently and waits for all of them
func (uc *UseCase) fetchAll(ctx context.Context, coord forecast.Coordinate, providers []ports.ForecastProvider, timeout time.Duration) []fetchOutcome {
	outcomes := make([]fetchOutcome, len(providers))

	var g errgroup.Group
	for i, p := range providers {
		i, p := i, p
		outcomes[i].provider = p
		g.Go(func() error {
			fetchCtx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			started := time.Now()
			raw, err := p.Fetch(fetchCtx, coord)
			uc.metrics.RecordProviderFetch(p.GetProviderName(), err == nil, time.Since(started))
			if err != nil {
				outcomes[i].err = fmt.Errorf("fetch from %s: %w", p.GetProviderName(), err)
				return nil
			}
			outcomes[i].raw = raw
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (uc *UseCase) backfillTimezone(ctx context.Context, runID string, location *forecast.Location, timezoneID string) {
	if location.TimezoneID != "" || timezoneID == "" {
		return
	}

	location.TimezoneID = timezoneID
	if err := uc.store.SaveLocation(ctx, *location); err != nil {
		uc.logger.Warn("Failed to store location timezone",
			ports.F("run_id", runID),
			ports.F("location", location.Coordinate().Key()),
			ports.F("error", err))
		return
	}
	uc.notifier.Publish(ports.TopicLocations)
}

// evict applies the retention policy. Failures are logged and never undo the commit.
func (uc *UseCase) evict(ctx context.Context, runID string) ports.EvictionResult {
	policy := retention.Policy{Window: uc.config.GetSyncConfig().RetentionWindow}

	evicted, err := policy.Evict(ctx, uc.store, uc.clock())
	if err != nil {
		uc.logger.Warn("Eviction failed",
			ports.F("run_id", runID),
			ports.F("error", err))
		return ports.EvictionResult{}
	}

	uc.metrics.RecordEviction(evicted)
	if evicted.Locations > 0 {
		uc.notifier.Publish(ports.TopicLocations)
	}
	if evicted.Total() > 0 {
		uc.logger.Debug("Evicted stale rows",
			ports.F("run_id", runID),
			ports.F("hourly", evicted.Hourly),
			ports.F("daily", evicted.Daily),
			ports.F("locations", evicted.Locations))
	}
	return evicted
}

func firstError(outcomes []fetchOutcome) error {
	for _, o := range outcomes {
		if o.err != nil {
			return o.err
		}
	}
	return nil
}

func anyFetched(outcomes []fetchOutcome) bool {
	for _, o := range outcomes {
		if o.err == nil {
			return true
		}
	}
	return false
}

func providerNames(providers []ports.ForecastProvider) []string {
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.GetProviderName())
	}
	return names
}
