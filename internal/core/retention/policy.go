// Package retention decides which forecast rows and locations outlive an eviction run.
package retention

import (
	"context"
	"fmt"
	"sort"
	"time"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
)

// DefaultWindow is used when no retention window is configured
const DefaultWindow = 24 * time.Hour

// Policy computes eviction cutoffs. It holds no clock; callers pass "now".
type Policy struct {
	Window time.Duration
}

// NewPolicy creates a retention policy for the given window
func NewPolicy(window time.Duration) (Policy, error) {
	if window <= 0 {
		return Policy{}, errors.NewValidationError("retention window must be positive")
	}
	return Policy{Window: window}, nil
}

// Cutoff returns the oldest retained hour: now truncated to the hour minus the window
func (p Policy) Cutoff(now time.Time) int64 {
	window := p.Window
	if window <= 0 {
		window = DefaultWindow
	}
	return now.UTC().Truncate(time.Hour).Add(-window).Unix()
}

// Evict removes everything older than the cutoff for now
func (p Policy) Evict(ctx context.Context, store ports.ForecastStore, now time.Time) (ports.EvictionResult, error) {
	result, err := store.ClearOlderThan(ctx, p.Cutoff(now))
	if err != nil {
		return ports.EvictionResult{}, fmt.Errorf("evict records: %w", err)
	}
	return result, nil
}

// RankedLocation pairs a stored location row with its insertion order
type RankedLocation struct {
	ID       uint
	Location forecast.Location
	Sequence int64
}

// RankLocations orders locations most recent first. Equal LastUpdated values are
// broken by Sequence, the later insertion ranking higher.
func RankLocations(locations []RankedLocation) []RankedLocation {
	ranked := make([]RankedLocation, len(locations))
	copy(ranked, locations)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Location.LastUpdated != ranked[j].Location.LastUpdated {
			return ranked[i].Location.LastUpdated > ranked[j].Location.LastUpdated
		}
		return ranked[i].Sequence > ranked[j].Sequence
	})
	return ranked
}

// Survivors splits ranked locations into the retained history and the rows eligible for deletion
func Survivors(locations []RankedLocation) (kept, evictable []RankedLocation) {
	ranked := RankLocations(locations)
	if len(ranked) <= forecast.MaxRecentLocations {
		return ranked, nil
	}
	return ranked[:forecast.MaxRecentLocations], ranked[forecast.MaxRecentLocations:]
}
