package synchronization

import (
	"context"
	"sync"
	"testing"
	"time"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/mocks"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 2023-11-15T10:30:00Z; retention cutoff for a 24h window is 2023-11-14T10:00:00Z
var (
	fixedNow       = time.Date(2023, 11, 15, 10, 30, 0, 0, time.UTC)
	expectedCutoff = int64(1699956000)
	kyiv           = forecast.Location{Name: "Kyiv", Latitude: 50.4501, Longitude: 30.5234, LastUpdated: 1699990000}
)

type fakeRaw struct {
	source forecast.DataSource
}

func (r fakeRaw) Source() forecast.DataSource {
	return r.source
}

type fixture struct {
	store      *mocks.ForecastStore
	selector   *mocks.SourceSelector
	normalizer *mocks.ForecastNormalizer
	cache      *mocks.ForecastCache
	notifier   *mocks.ChangeNotifier
	config     *mocks.ConfigProvider
	logger     *mocks.Logger
	metrics    *mocks.MetricsCollector
	uc         *UseCase
}

func newFixture(t *testing.T, source string, order ...string) *fixture {
	f := &fixture{
		store:      mocks.NewForecastStore(t),
		selector:   mocks.NewSourceSelector(t),
		normalizer: mocks.NewForecastNormalizer(t),
		cache:      mocks.NewForecastCache(t),
		notifier:   mocks.NewChangeNotifier(t),
		config:     mocks.NewConfigProvider(t),
		logger:     mocks.NewLogger(t),
		metrics:    mocks.NewMetricsCollector(t),
	}

	f.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{
		Source:       source,
		Order:        order,
		FetchTimeout: time.Second,
	}).Maybe()
	f.config.EXPECT().GetSyncConfig().Return(ports.SyncConfig{RetentionWindow: 24 * time.Hour}).Maybe()

	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.metrics.EXPECT().RecordProviderFetch(mock.Anything, mock.Anything, mock.Anything).Maybe()
	f.metrics.EXPECT().RecordEviction(mock.Anything).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Store:      f.store,
		Selector:   f.selector,
		Normalizer: f.normalizer,
		Cache:      f.cache,
		Notifier:   f.notifier,
		Config:     f.config,
		Logger:     f.logger,
		Metrics:    f.metrics,
		Clock:      func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	f.uc = uc
	return f
}

func newProvider(t *testing.T, source forecast.DataSource) *mocks.ForecastProvider {
	p := mocks.NewForecastProvider(t)
	p.EXPECT().GetProviderName().Return(source.String()).Maybe()
	p.EXPECT().DataSource().Return(source).Maybe()
	return p
}

func batchOf(source forecast.DataSource, timezone string, hours ...int64) *forecast.Batch {
	b := &forecast.Batch{Source: source, TimezoneID: timezone}
	for _, h := range hours {
		b.Hourly = append(b.Hourly, forecast.HourlyRecord{Datetime: h, Temperature: float64(source) + 10})
	}
	b.Daily = []forecast.DailyRecord{{Datetime: 1700006400, MaxTemperature: float64(source) + 12}}
	return b
}

func (f *fixture) expectCommit(t *testing.T, source forecast.DataSource, captured *[]forecast.HourlyRecord) {
	topic := ports.ForecastTopic(kyiv.Coordinate().Key(), source.String())

	f.store.EXPECT().SaveForecast(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, hourly []forecast.HourlyRecord, _ []forecast.DailyRecord) error {
			if captured != nil {
				*captured = hourly
			}
			return nil
		}).Once()
	f.cache.EXPECT().Invalidate(mock.Anything, topic).Return(nil).Once()
	f.notifier.EXPECT().Publish(topic).Once()
	f.store.EXPECT().ClearOlderThan(mock.Anything, expectedCutoff).Return(ports.EvictionResult{Hourly: 3}, nil).Once()
}

func TestNewUseCase_RequiresDependencies(t *testing.T) {
	uc, err := NewUseCase(UseCaseDependencies{})
	assert.Nil(t, uc)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_RequestSync_NoActiveLocation(t *testing.T) {
	f := newFixture(t, "openmeteo")
	f.store.EXPECT().CurrentLocation(mock.Anything).Return(nil, errors.NewNotFoundError("no location saved"))
	f.metrics.EXPECT().RecordSyncRun("openmeteo", OutcomeNoTarget, time.Duration(0)).Once()

	result, err := f.uc.RequestSync(context.Background())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsNoActiveLocationError(err))
	f.selector.AssertNotCalled(t, "Select", mock.Anything)
}

func TestUseCase_RequestSync_StoreReadFailure(t *testing.T) {
	f := newFixture(t, "openmeteo")
	f.store.EXPECT().CurrentLocation(mock.Anything).Return(nil, errors.NewDatabaseError("query failed", nil))

	_, err := f.uc.RequestSync(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsDatabaseError(err))
}

func TestUseCase_RequestSync_SingleSourceSuccess(t *testing.T) {
	f := newFixture(t, "openmeteo")
	location := kyiv
	location.TimezoneID = "Europe/Kyiv"
	provider := newProvider(t, forecast.DataSourceOpenMeteo)
	raw := fakeRaw{forecast.DataSourceOpenMeteo}

	f.store.EXPECT().CurrentLocation(mock.Anything).Return(&location, nil)
	f.selector.EXPECT().Select(ports.SelectionConfig{Source: "openmeteo"}).Return([]ports.ForecastProvider{provider}, nil)
	provider.EXPECT().Fetch(mock.Anything, location.Coordinate()).Return(raw, nil).Once()
	f.normalizer.EXPECT().Normalize(forecast.DataSourceOpenMeteo, raw).
		Return(batchOf(forecast.DataSourceOpenMeteo, "Europe/Kyiv", 1700038800, 1700042400), nil)

	var saved []forecast.HourlyRecord
	f.expectCommit(t, forecast.DataSourceOpenMeteo, &saved)
	f.metrics.EXPECT().RecordSyncRun("openmeteo", OutcomeSuccess, mock.Anything).Once()

	result, err := f.uc.RequestSync(context.Background())

	require.NoError(t, err)
	assert.Equal(t, forecast.DataSourceOpenMeteo, result.Source)
	assert.Equal(t, []string{"openmeteo"}, result.Providers)
	assert.Equal(t, 2, result.HourlyCount)
	assert.Equal(t, 1, result.DailyCount)
	assert.Equal(t, int64(3), result.Evicted.Hourly)
	assert.False(t, result.Coalesced)
	assert.NotEmpty(t, result.RunID)

	require.Len(t, saved, 2)
	for _, h := range saved {
		assert.Equal(t, 50.4501, h.Latitude)
		assert.Equal(t, 30.5234, h.Longitude)
		assert.Equal(t, forecast.DataSourceOpenMeteo, h.DataSource)
	}

	report := f.uc.Status()
	assert.Empty(t, report.InFlight)
	require.Len(t, report.Recent, 1)
	assert.Equal(t, OutcomeSuccess, report.Recent[0].Outcome)
	assert.Equal(t, StateIdle, report.Recent[0].State)
}

func TestUseCase_SyncLocation_SingleSourceFetchFailureLeavesStoreUntouched(t *testing.T) {
	f := newFixture(t, "weatherapi")
	provider := newProvider(t, forecast.DataSourceWeatherAPI)

	f.selector.EXPECT().Select(mock.Anything).Return([]ports.ForecastProvider{provider}, nil)
	provider.EXPECT().Fetch(mock.Anything, mock.Anything).
		Return(nil, errors.NewUpstreamUnavailableError("weatherapi request failed", nil))
	f.metrics.EXPECT().RecordSyncRun("weatherapi", OutcomeFailed, mock.Anything).Once()

	result, err := f.uc.SyncLocation(context.Background(), kyiv)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsUpstreamUnavailableError(err))
	f.store.AssertNotCalled(t, "SaveForecast", mock.Anything, mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "ClearOlderThan", mock.Anything, mock.Anything)

	report := f.uc.Status()
	require.Len(t, report.Recent, 1)
	assert.Equal(t, OutcomeFailed, report.Recent[0].Outcome)
	assert.Contains(t, report.Recent[0].Error, "weatherapi request failed")
}

func TestUseCase_SyncLocation_SingleSourceNormalizeFailure(t *testing.T) {
	f := newFixture(t, "openmeteo")
	provider := newProvider(t, forecast.DataSourceOpenMeteo)
	raw := fakeRaw{forecast.DataSourceOpenMeteo}

	f.selector.EXPECT().Select(mock.Anything).Return([]ports.ForecastProvider{provider}, nil)
	provider.EXPECT().Fetch(mock.Anything, mock.Anything).Return(raw, nil)
	f.normalizer.EXPECT().Normalize(forecast.DataSourceOpenMeteo, raw).
		Return(nil, errors.NewUpstreamMalformedError("hourly arrays differ in length", nil))
	f.metrics.EXPECT().RecordSyncRun("openmeteo", OutcomeFailed, mock.Anything).Once()

	_, err := f.uc.SyncLocation(context.Background(), kyiv)

	require.Error(t, err)
	assert.True(t, errors.IsUpstreamMalformedError(err))
	f.store.AssertNotCalled(t, "SaveForecast", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_SyncLocation_SelectionFailure(t *testing.T) {
	f := newFixture(t, "accuweather")
	f.selector.EXPECT().Select(mock.Anything).Return(nil, errors.NewValidationError("unknown weather source"))
	f.metrics.EXPECT().RecordSyncRun("accuweather", OutcomeFailed, mock.Anything).Once()

	_, err := f.uc.SyncLocation(context.Background(), kyiv)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_SyncLocation_InvalidLocation(t *testing.T) {
	f := newFixture(t, "openmeteo")

	_, err := f.uc.SyncLocation(context.Background(), forecast.Location{Name: "Nowhere", Latitude: 91})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_SyncLocation_CompositeMergesAndDropsFailedSources(t *testing.T) {
	f := newFixture(t, "composite", "openweathermap", "weatherapi", "openmeteo")
	owm := newProvider(t, forecast.DataSourceOpenWeatherMap)
	wapi := newProvider(t, forecast.DataSourceWeatherAPI)
	meteo := newProvider(t, forecast.DataSourceOpenMeteo)
	wapiRaw := fakeRaw{forecast.DataSourceWeatherAPI}
	meteoRaw := fakeRaw{forecast.DataSourceOpenMeteo}

	f.selector.EXPECT().Select(ports.SelectionConfig{
		Source: "composite",
		Order:  []string{"openweathermap", "weatherapi", "openmeteo"},
	}).Return([]ports.ForecastProvider{owm, wapi, meteo}, nil)
	owm.EXPECT().Fetch(mock.Anything, mock.Anything).Return(nil, errors.NewUpstreamUnavailableError("timeout", nil))
	wapi.EXPECT().Fetch(mock.Anything, mock.Anything).Return(wapiRaw, nil)
	meteo.EXPECT().Fetch(mock.Anything, mock.Anything).Return(meteoRaw, nil)
	f.normalizer.EXPECT().Normalize(forecast.DataSourceWeatherAPI, wapiRaw).
		Return(batchOf(forecast.DataSourceWeatherAPI, "", 1700038800), nil)
	f.normalizer.EXPECT().Normalize(forecast.DataSourceOpenMeteo, meteoRaw).
		Return(batchOf(forecast.DataSourceOpenMeteo, "", 1700038800, 1700042400), nil)

	var saved []forecast.HourlyRecord
	f.expectCommit(t, forecast.DataSourceComposite, &saved)
	f.metrics.EXPECT().RecordSyncRun("composite", OutcomeSuccess, mock.Anything).Once()

	location := kyiv
	location.TimezoneID = "Europe/Kyiv"
	result, err := f.uc.SyncLocation(context.Background(), location)

	require.NoError(t, err)
	assert.Equal(t, forecast.DataSourceComposite, result.Source)
	assert.Equal(t, []string{"weatherapi", "openmeteo"}, result.Providers)
	assert.Equal(t, []string{"openweathermap"}, result.Dropped)

	require.Len(t, saved, 2)
	assert.Equal(t, int64(1700038800), saved[0].Datetime)
	assert.Equal(t, float64(forecast.DataSourceWeatherAPI)+10, saved[0].Temperature, "first provider in order wins a shared hour")
	assert.Equal(t, float64(forecast.DataSourceOpenMeteo)+10, saved[1].Temperature, "later provider fills a missing hour")
	for _, h := range saved {
		assert.Equal(t, forecast.DataSourceComposite, h.DataSource)
	}
}

func TestUseCase_SyncLocation_CompositeAllSourcesFail(t *testing.T) {
	f := newFixture(t, "composite")
	wapi := newProvider(t, forecast.DataSourceWeatherAPI)
	meteo := newProvider(t, forecast.DataSourceOpenMeteo)

	f.selector.EXPECT().Select(mock.Anything).Return([]ports.ForecastProvider{wapi, meteo}, nil)
	wapi.EXPECT().Fetch(mock.Anything, mock.Anything).Return(nil, errors.NewUpstreamMalformedError("bad key", nil))
	meteo.EXPECT().Fetch(mock.Anything, mock.Anything).Return(nil, errors.NewUpstreamUnavailableError("503", nil))
	f.metrics.EXPECT().RecordSyncRun("composite", OutcomeFailed, mock.Anything).Once()

	_, err := f.uc.SyncLocation(context.Background(), kyiv)

	require.Error(t, err)
	assert.True(t, errors.IsUpstreamMalformedError(err))
	assert.Contains(t, err.Error(), "every selected provider failed")
	f.normalizer.AssertNotCalled(t, "Normalize", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "SaveForecast", mock.Anything, mock.Anything, mock.Anything)

	report := f.uc.Status()
	require.Len(t, report.Recent, 1)
	assert.Equal(t, OutcomeFailed, report.Recent[0].Outcome)
	assert.Equal(t, []State{StateIdle, StateFetching, StateFailed, StateIdle}, report.Recent[0].Path)
}

func TestUseCase_SyncLocation_StoreWriteFailure(t *testing.T) {
	f := newFixture(t, "openmeteo")
	provider := newProvider(t, forecast.DataSourceOpenMeteo)
	raw := fakeRaw{forecast.DataSourceOpenMeteo}

	f.selector.EXPECT().Select(mock.Anything).Return([]ports.ForecastProvider{provider}, nil)
	provider.EXPECT().Fetch(mock.Anything, mock.Anything).Return(raw, nil)
	f.normalizer.EXPECT().Normalize(mock.Anything, raw).Return(batchOf(forecast.DataSourceOpenMeteo, "", 1700038800), nil)
	f.store.EXPECT().SaveForecast(mock.Anything, mock.Anything, mock.Anything).
		Return(errors.NewStoreWriteError("failed to save forecast records", nil))
	f.metrics.EXPECT().RecordSyncRun("openmeteo", OutcomeFailed, mock.Anything).Once()

	_, err := f.uc.SyncLocation(context.Background(), kyiv)

	require.Error(t, err)
	assert.True(t, errors.IsStoreWriteError(err))
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "ClearOlderThan", mock.Anything, mock.Anything)
}

func TestUseCase_SyncLocation_EvictionFailureDoesNotFailRun(t *testing.T) {
	f := newFixture(t, "openmeteo")
	provider := newProvider(t, forecast.DataSourceOpenMeteo)
	raw := fakeRaw{forecast.DataSourceOpenMeteo}
	topic := ports.ForecastTopic(kyiv.Coordinate().Key(), "openmeteo")

	f.selector.EXPECT().Select(mock.Anything).Return([]ports.ForecastProvider{provider}, nil)
	provider.EXPECT().Fetch(mock.Anything, mock.Anything).Return(raw, nil)
	f.normalizer.EXPECT().Normalize(mock.Anything, raw).Return(batchOf(forecast.DataSourceOpenMeteo, "", 1700038800), nil)
	f.store.EXPECT().SaveForecast(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.cache.EXPECT().Invalidate(mock.Anything, topic).Return(nil)
	f.notifier.EXPECT().Publish(topic)
	f.store.EXPECT().ClearOlderThan(mock.Anything, expectedCutoff).
		Return(ports.EvictionResult{}, errors.NewStoreWriteError("failed to evict forecast records", nil))
	f.store.EXPECT().SaveLocation(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.metrics.EXPECT().RecordSyncRun("openmeteo", OutcomeSuccess, mock.Anything).Once()

	location := kyiv
	location.TimezoneID = "Europe/Kyiv"
	result, err := f.uc.SyncLocation(context.Background(), location)

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Evicted.Total())
	f.metrics.AssertNotCalled(t, "RecordEviction", mock.Anything)
}

func TestUseCase_SyncLocation_BackfillsTimezone(t *testing.T) {
	f := newFixture(t, "openmeteo")
	provider := newProvider(t, forecast.DataSourceOpenMeteo)
	raw := fakeRaw{forecast.DataSourceOpenMeteo}

	f.selector.EXPECT().Select(mock.Anything).Return([]ports.ForecastProvider{provider}, nil)
	provider.EXPECT().Fetch(mock.Anything, mock.Anything).Return(raw, nil)
	f.normalizer.EXPECT().Normalize(mock.Anything, raw).Return(batchOf(forecast.DataSourceOpenMeteo, "Europe/Kyiv", 1700038800), nil)
	f.expectCommit(t, forecast.DataSourceOpenMeteo, nil)
	f.store.EXPECT().SaveLocation(mock.Anything, mock.MatchedBy(func(l forecast.Location) bool {
		return l.TimezoneID == "Europe/Kyiv" && l.LastUpdated == kyiv.LastUpdated
	})).Return(nil).Once()
	f.notifier.EXPECT().Publish(ports.TopicLocations).Once()
	f.metrics.EXPECT().RecordSyncRun("openmeteo", OutcomeSuccess, mock.Anything).Once()

	result, err := f.uc.SyncLocation(context.Background(), kyiv)

	require.NoError(t, err)
	assert.Equal(t, "Europe/Kyiv", result.Location.TimezoneID)
}

func TestUseCase_SyncLocation_CancelledWhileFetching(t *testing.T) {
	f := newFixture(t, "openmeteo")
	provider := newProvider(t, forecast.DataSourceOpenMeteo)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.selector.EXPECT().Select(mock.Anything).Return([]ports.ForecastProvider{provider}, nil)
	provider.EXPECT().Fetch(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, forecast.Coordinate) (ports.RawForecast, error) {
			cancel()
			return fakeRaw{forecast.DataSourceOpenMeteo}, nil
		})
	f.metrics.EXPECT().RecordSyncRun("openmeteo", OutcomeCancelled, mock.Anything).Maybe()

	_, err := f.uc.SyncLocation(ctx, kyiv)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	f.normalizer.AssertNotCalled(t, "Normalize", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "SaveForecast", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_SyncLocation_CancelledBeforeCommit(t *testing.T) {
	f := newFixture(t, "openmeteo")
	provider := newProvider(t, forecast.DataSourceOpenMeteo)
	raw := fakeRaw{forecast.DataSourceOpenMeteo}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.selector.EXPECT().Select(mock.Anything).Return([]ports.ForecastProvider{provider}, nil)
	provider.EXPECT().Fetch(mock.Anything, mock.Anything).Return(raw, nil)
	f.normalizer.EXPECT().Normalize(mock.Anything, raw).
		RunAndReturn(func(forecast.DataSource, ports.RawForecast) (*forecast.Batch, error) {
			cancel()
			return batchOf(forecast.DataSourceOpenMeteo, "", 1700038800), nil
		})
	f.metrics.EXPECT().RecordSyncRun("openmeteo", OutcomeCancelled, mock.Anything).Maybe()

	_, err := f.uc.SyncLocation(ctx, kyiv)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	f.store.AssertNotCalled(t, "SaveForecast", mock.Anything, mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "ClearOlderThan", mock.Anything, mock.Anything)
}

func TestUseCase_SyncLocation_CoalescesConcurrentRequests(t *testing.T) {
	f := newFixture(t, "openmeteo")
	provider := newProvider(t, forecast.DataSourceOpenMeteo)
	raw := fakeRaw{forecast.DataSourceOpenMeteo}
	started := make(chan struct{})
	release := make(chan struct{})

	f.selector.EXPECT().Select(mock.Anything).Return([]ports.ForecastProvider{provider}, nil).Once()
	provider.EXPECT().Fetch(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, forecast.Coordinate) (ports.RawForecast, error) {
			close(started)
			<-release
			return raw, nil
		}).Once()
	f.normalizer.EXPECT().Normalize(mock.Anything, raw).Return(batchOf(forecast.DataSourceOpenMeteo, "", 1700038800), nil).Once()
	f.store.EXPECT().SaveLocation(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.expectCommit(t, forecast.DataSourceOpenMeteo, nil)
	f.metrics.EXPECT().RecordSyncRun("openmeteo", OutcomeSuccess, mock.Anything).Once()

	location := kyiv
	location.TimezoneID = "Europe/Kyiv"

	const callers = 3
	results := make([]*Result, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = f.uc.SyncLocation(context.Background(), location)
	}()
	<-started

	report := f.uc.Status()
	require.Len(t, report.InFlight, 1)
	assert.Equal(t, StateFetching, report.InFlight[0].State)

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.uc.SyncLocation(context.Background(), location)
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0].RunID, results[i].RunID)
		assert.True(t, results[i].Coalesced)
	}
}

func TestUseCase_SyncLocation_FollowerStopsOnItsOwnCancellation(t *testing.T) {
	f := newFixture(t, "openmeteo")
	provider := newProvider(t, forecast.DataSourceOpenMeteo)
	raw := fakeRaw{forecast.DataSourceOpenMeteo}
	started := make(chan struct{})
	release := make(chan struct{})

	f.selector.EXPECT().Select(mock.Anything).Return([]ports.ForecastProvider{provider}, nil).Once()
	provider.EXPECT().Fetch(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, forecast.Coordinate) (ports.RawForecast, error) {
			close(started)
			<-release
			return raw, nil
		}).Once()
	f.normalizer.EXPECT().Normalize(mock.Anything, raw).Return(batchOf(forecast.DataSourceOpenMeteo, "", 1700038800), nil)
	f.store.EXPECT().SaveLocation(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.expectCommit(t, forecast.DataSourceOpenMeteo, nil)
	f.metrics.EXPECT().RecordSyncRun("openmeteo", OutcomeSuccess, mock.Anything).Once()

	location := kyiv
	location.TimezoneID = "Europe/Kyiv"

	leaderDone := make(chan error, 1)
	go func() {
		_, err := f.uc.SyncLocation(context.Background(), location)
		leaderDone <- err
	}()
	<-started

	followerCtx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.uc.SyncLocation(followerCtx, location)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	assert.NoError(t, <-leaderDone)
}

func TestUseCase_SyncLocation_FollowerOutlivesCancelledLeader(t *testing.T) {
	f := newFixture(t, "openmeteo")
	provider := newProvider(t, forecast.DataSourceOpenMeteo)
	raw := fakeRaw{forecast.DataSourceOpenMeteo}
	started := make(chan struct{})
	release := make(chan struct{})
	var fetchErr error

	f.selector.EXPECT().Select(mock.Anything).Return([]ports.ForecastProvider{provider}, nil).Once()
	provider.EXPECT().Fetch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ forecast.Coordinate) (ports.RawForecast, error) {
			close(started)
			<-release
			fetchErr = ctx.Err()
			return raw, nil
		}).Once()
	f.normalizer.EXPECT().Normalize(mock.Anything, raw).Return(batchOf(forecast.DataSourceOpenMeteo, "", 1700038800), nil).Once()
	f.expectCommit(t, forecast.DataSourceOpenMeteo, nil)
	f.metrics.EXPECT().RecordSyncRun("openmeteo", OutcomeSuccess, mock.Anything).Once()

	location := kyiv
	location.TimezoneID = "Europe/Kyiv"

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	defer cancelLeader()
	leaderDone := make(chan error, 1)
	go func() {
		_, err := f.uc.SyncLocation(leaderCtx, location)
		leaderDone <- err
	}()
	<-started

	type outcome struct {
		result *Result
		err    error
	}
	followerDone := make(chan outcome, 1)
	go func() {
		result, err := f.uc.SyncLocation(context.Background(), location)
		followerDone <- outcome{result, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelLeader()
	assert.ErrorIs(t, <-leaderDone, context.Canceled)

	close(release)
	got := <-followerDone
	require.NoError(t, got.err)
	assert.True(t, got.result.Coalesced)
	assert.Equal(t, 1, got.result.HourlyCount)
	assert.NoError(t, fetchErr)
}

func TestUseCase_SyncLocation_AbandonedRunIsCancelled(t *testing.T) {
	f := newFixture(t, "openmeteo")
	provider := newProvider(t, forecast.DataSourceOpenMeteo)
	started := make(chan struct{})
	finished := make(chan struct{})
	var fetchErr error

	f.selector.EXPECT().Select(mock.Anything).Return([]ports.ForecastProvider{provider}, nil).Once()
	provider.EXPECT().Fetch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ forecast.Coordinate) (ports.RawForecast, error) {
			close(started)
			<-ctx.Done()
			fetchErr = ctx.Err()
			return nil, fetchErr
		}).Once()
	f.metrics.EXPECT().RecordSyncRun("openmeteo", OutcomeCancelled, mock.Anything).
		Run(func(string, string, time.Duration) { close(finished) }).Once()

	first, cancelFirst := context.WithCancel(context.Background())
	second, cancelSecond := context.WithCancel(context.Background())
	defer cancelFirst()
	defer cancelSecond()

	errs := make(chan error, 2)
	go func() {
		_, err := f.uc.SyncLocation(first, kyiv)
		errs <- err
	}()
	<-started
	go func() {
		_, err := f.uc.SyncLocation(second, kyiv)
		errs <- err
	}()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-errs, context.Canceled)
	cancelSecond()
	assert.ErrorIs(t, <-errs, context.Canceled)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("run kept going after every caller left")
	}
	assert.ErrorIs(t, fetchErr, context.Canceled)
	f.normalizer.AssertNotCalled(t, "Normalize", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "SaveForecast", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_SyncLocation_DifferentLocationsRunConcurrently(t *testing.T) {
	f := newFixture(t, "openmeteo")
	provider := newProvider(t, forecast.DataSourceOpenMeteo)
	raw := fakeRaw{forecast.DataSourceOpenMeteo}
	lviv := forecast.Location{Name: "Lviv", Latitude: 49.8397, Longitude: 24.0297, TimezoneID: "Europe/Kyiv", LastUpdated: 1699990000}
	location := kyiv
	location.TimezoneID = "Europe/Kyiv"

	var inFetch sync.WaitGroup
	inFetch.Add(2)
	release := make(chan struct{})

	f.selector.EXPECT().Select(mock.Anything).Return([]ports.ForecastProvider{provider}, nil).Times(2)
	provider.EXPECT().Fetch(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, forecast.Coordinate) (ports.RawForecast, error) {
			inFetch.Done()
			<-release
			return raw, nil
		}).Times(2)
	f.normalizer.EXPECT().Normalize(mock.Anything, raw).
		RunAndReturn(func(forecast.DataSource, ports.RawForecast) (*forecast.Batch, error) {
			return batchOf(forecast.DataSourceOpenMeteo, "", 1700038800), nil
		}).Times(2)
	f.store.EXPECT().SaveForecast(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
	f.cache.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.notifier.EXPECT().Publish(mock.Anything).Times(2)
	f.store.EXPECT().ClearOlderThan(mock.Anything, expectedCutoff).Return(ports.EvictionResult{}, nil).Times(2)
	f.metrics.EXPECT().RecordSyncRun("openmeteo", OutcomeSuccess, mock.Anything).Times(2)

	var wg sync.WaitGroup
	for _, l := range []forecast.Location{location, lviv} {
		wg.Add(1)
		go func(l forecast.Location) {
			defer wg.Done()
			_, err := f.uc.SyncLocation(context.Background(), l)
			assert.NoError(t, err)
		}(l)
	}

	// both fetches are in flight at once before either is released
	inFetch.Wait()
	assert.Len(t, f.uc.Status().InFlight, 2)
	close(release)
	wg.Wait()
}
