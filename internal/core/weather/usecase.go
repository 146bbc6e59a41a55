package weather

import (
	"context"
	"fmt"
	"time"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/core/retention"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
)

// UseCase serves forecast projections and the recent locations list from the local store
type UseCase struct {
	store    ports.ForecastStore
	cache    ports.ForecastCache
	notifier ports.ChangeNotifier
	config   ports.ConfigProvider
	logger   ports.Logger
	clock    func() time.Time
}

type UseCaseDependencies struct {
	Store    ports.ForecastStore
	Cache    ports.ForecastCache
	Notifier ports.ChangeNotifier
	Config   ports.ConfigProvider
	Logger   ports.Logger
	// Clock defaults to time.Now
	Clock func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("forecast store is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
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

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		store:    deps.Store,
		cache:    deps.Cache,
		notifier: deps.Notifier,
		config:   deps.Config,
		logger:   deps.Logger,
		clock:    clock,
	}, nil
}

// GetForecast returns the stored projection for a coordinate and source.
// It returns nil without an error when nothing is stored yet.
func (uc *UseCase) GetForecast(ctx context.Context, request ForecastRequest) (*forecast.Forecast, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	source, err := request.resolveSource(uc.config.GetWeatherConfig().Source)
	if err != nil {
		return nil, err
	}

	coord := request.Coordinate()
	cutoff := uc.cutoff()
	key := ports.ForecastTopic(coord.Key(), source.String())

	if cached, err := uc.cache.Get(ctx, key); err == nil && cached != nil {
		uc.logger.Debug("Forecast found in cache", ports.F("key", key))
		cached.TrimBefore(cutoff)
		if cached.IsEmpty() {
			return nil, nil
		}
		// the location may have been renamed since the projection was cached
		cached.Location = uc.describeLocation(ctx, coord)
		return cached, nil
	} else if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Warn("Failed to read forecast cache",
			ports.F("key", key),
			ports.F("error", err))
	}

	changed, unsubscribe := uc.notifier.Subscribe(key)
	defer unsubscribe()

	projection, err := uc.load(ctx, coord, source, cutoff)
	if err != nil || projection == nil {
		return nil, err
	}

	uc.cacheProjection(ctx, key, projection, changed)
	return projection, nil
}

// GetActiveForecast returns the projection for the active location, or nil when there is none
func (uc *UseCase) GetActiveForecast(ctx context.Context, source string) (*forecast.Forecast, error) {
	location, err := uc.store.CurrentLocation(ctx)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read active location: %w", err)
	}

	return uc.GetForecast(ctx, ForecastRequest{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Source:    source,
	})
}

// WatchForecast blocks until the next write affecting the request's coordinate and
// source, then returns the new projection read from the store. It returns ctx.Err()
// if ctx ends first.
func (uc *UseCase) WatchForecast(ctx context.Context, request ForecastRequest) (*forecast.Forecast, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	source, err := request.resolveSource(uc.config.GetWeatherConfig().Source)
	if err != nil {
		return nil, err
	}

	changed, unsubscribe := uc.notifier.Subscribe(ports.ForecastTopic(request.Coordinate().Key(), source.String()))
	defer unsubscribe()

	select {
	case <-changed:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return uc.load(ctx, request.Coordinate(), source, uc.cutoff())
}

// GetRecentLocations returns up to five locations, most recently used first
func (uc *UseCase) GetRecentLocations(ctx context.Context) ([]forecast.Location, error) {
	locations, err := uc.store.QueryRecentLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent locations: %w", err)
	}
	return locations, nil
}

// WatchLocations blocks until the location history changes, then returns it
func (uc *UseCase) WatchLocations(ctx context.Context) ([]forecast.Location, error) {
	changed, unsubscribe := uc.notifier.Subscribe(ports.TopicLocations)
	defer unsubscribe()

	select {
	case <-changed:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return uc.GetRecentLocations(ctx)
}

func (uc *UseCase) cutoff() int64 {
	policy := retention.Policy{Window: uc.config.GetSyncConfig().RetentionWindow}
	return policy.Cutoff(uc.clock())
}

func (uc *UseCase) load(ctx context.Context, coord forecast.Coordinate, source forecast.DataSource, cutoff int64) (*forecast.Forecast, error) {
	projection, err := uc.loadForecast(ctx, coord, source, cutoff)
	if err != nil {
		uc.logger.Error("Failed to load forecast",
			ports.F("location", coord.Key()),
			ports.F("source", source.String()),
			ports.F("error", err))
		return nil, fmt.Errorf("load forecast for %s: %w", coord.Key(), err)
	}
	return projection, nil
}

// cacheProjection stores a freshly loaded projection unless a sync committed while it
// was being read. A commit signalled after Set drops the entry again.
func (uc *UseCase) cacheProjection(ctx context.Context, key string, projection *forecast.Forecast, changed <-chan struct{}) {
	select {
	case <-changed:
		uc.logger.Debug("Forecast changed while loading, not caching", ports.F("key", key))
		return
	default:
	}

	if err := uc.cache.Set(ctx, key, projection, uc.config.GetCacheConfig().TTL); err != nil {
		uc.logger.Warn("Failed to cache forecast",
			ports.F("key", key),
			ports.F("error", err))
		return
	}

	select {
	case <-changed:
		if err := uc.cache.Invalidate(ctx, key); err != nil {
			uc.logger.Warn("Failed to drop superseded forecast projection",
				ports.F("key", key),
				ports.F("error", err))
		}
	default:
	}
}

func (uc *UseCase) loadForecast(ctx context.Context, coord forecast.Coordinate, source forecast.DataSource, cutoff int64) (*forecast.Forecast, error) {
	hourly, err := uc.store.QueryHourly(ctx, coord.Latitude, coord.Longitude, cutoff, source)
	if err != nil {
		return nil, err
	}
	daily, err := uc.store.QueryDaily(ctx, coord.Latitude, coord.Longitude, cutoff, source)
	if err != nil {
		return nil, err
	}
	if len(hourly) == 0 && len(daily) == 0 {
		return nil, nil
	}

	return &forecast.Forecast{
		Location:   uc.describeLocation(ctx, coord),
		DataSource: source,
		Hourly:     hourly,
		Daily:      daily,
	}, nil
}

// describeLocation names the coordinate from the location history when it is there
func (uc *UseCase) describeLocation(ctx context.Context, coord forecast.Coordinate) forecast.Location {
	location := forecast.Location{Latitude: coord.Latitude, Longitude: coord.Longitude}

	recent, err := uc.store.QueryRecentLocations(ctx)
	if err != nil {
		uc.logger.Warn("Failed to read location history", ports.F("error", err))
		return location
	}
	for _, l := range recent {
		if l.Coordinate() == coord {
			return l
		}
	}
	return location
}
