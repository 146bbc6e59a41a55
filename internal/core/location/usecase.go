package location

import (
	"context"
	"fmt"
	"time"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
)

// UseCase searches for places and maintains the active location
type UseCase struct {
	resolver ports.LocationResolver
	store    ports.ForecastStore
	notifier ports.ChangeNotifier
	logger   ports.Logger
	clock    func() time.Time
}

type UseCaseDependencies struct {
	Resolver ports.LocationResolver
	Store    ports.ForecastStore
	Notifier ports.ChangeNotifier
	Logger   ports.Logger
	// Clock defaults to time.Now
	Clock func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("location resolver is required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("forecast store is required")
	}
	if deps.Notifier == nil {
		return nil, errors.NewValidationError("change notifier is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		resolver: deps.Resolver,
		store:    deps.Store,
		notifier: deps.Notifier,
		logger:   deps.Logger,
		clock:    clock,
	}, nil
}

// Search looks places up by name
func (uc *UseCase) Search(ctx context.Context, query string) ([]forecast.Location, error) {
	query, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	locations, err := uc.resolver.Search(ctx, query)
	if err != nil {
		uc.logger.Error("Location search failed",
			ports.F("query", query),
			ports.F("error", err))
		return nil, fmt.Errorf("search locations for %q: %w", query, err)
	}

	for i := range locations {
		locations[i].Normalize()
	}
	uc.logger.Debug("Location search completed",
		ports.F("query", query),
		ports.F("results", len(locations)))
	return locations, nil
}

// Select makes a location active. A missing timezone is looked up first;
// failing that the location is stored without one and sync fills it in later.
func (uc *UseCase) Select(ctx context.Context, params SelectParams) (*forecast.Location, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return uc.activate(ctx, params.toLocation())
}

// ResolveNearby names the place at a coordinate and makes it active
func (uc *UseCase) ResolveNearby(ctx context.Context, lat, lon float64) (*forecast.Location, error) {
	coord := forecast.NewCoordinate(lat, lon)
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	resolved, err := uc.resolver.ResolveNearby(ctx, coord)
	if err != nil {
		uc.logger.Error("Failed to resolve nearby location",
			ports.F("location", coord.Key()),
			ports.F("error", err))
		return nil, fmt.Errorf("resolve location at %s: %w", coord.Key(), err)
	}
	if resolved == nil {
		return nil, errors.NewNotFoundError("no place found at " + coord.Key())
	}

	// keep the caller's coordinate so the active location matches the device position
	location := *resolved
	location.Latitude = coord.Latitude
	location.Longitude = coord.Longitude
	if location.Name == "" {
		location.Name = coord.Key()
	}
	return uc.activate(ctx, location)
}

func (uc *UseCase) activate(ctx context.Context, location forecast.Location) (*forecast.Location, error) {
	location.Normalize()
	location.LastUpdated = uc.clock().Unix()

	if location.TimezoneID == "" {
		tz, err := uc.resolver.TimezoneOf(ctx, location.Coordinate())
		if err != nil {
			uc.logger.Warn("Failed to resolve timezone",
				ports.F("location", location.Coordinate().Key()),
				ports.F("error", err))
		} else {
			location.TimezoneID = tz
		}
	}

	if err := uc.store.SaveLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("save location %s: %w", location.Name, err)
	}
	uc.notifier.Publish(ports.TopicLocations)

	uc.logger.Info("Active location changed",
		ports.F("name", location.Name),
		ports.F("location", location.Coordinate().Key()),
		ports.F("timezone", location.TimezoneID))
	return &location, nil
}
