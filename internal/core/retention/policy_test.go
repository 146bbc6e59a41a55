package retention

import (
	"context"
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

func TestNewPolicy(t *testing.T) {
	p, err := NewPolicy(48 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, p.Window)

	_, err = NewPolicy(0)
	assert.True(t, errors.IsValidationError(err))
}

func TestPolicy_Cutoff(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 37, 12, 0, time.UTC)

	tests := []struct {
		name     string
		window   time.Duration
		expected time.Time
	}{
		{"OneDay", 24 * time.Hour, time.Date(2024, 5, 9, 14, 0, 0, 0, time.UTC)},
		{"SixHours", 6 * time.Hour, time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)},
		{"ZeroFallsBackToDefault", 0, time.Date(2024, 5, 9, 14, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected.Unix(), Policy{Window: tt.window}.Cutoff(now))
		})
	}
}

func TestPolicy_Cutoff_IgnoresTimezone(t *testing.T) {
	p := Policy{Window: time.Hour}
	kyiv := time.FixedZone("EEST", 3*3600)
	local := time.Date(2024, 5, 10, 17, 37, 0, 0, kyiv)
	utc := time.Date(2024, 5, 10, 14, 37, 0, 0, time.UTC)
	assert.Equal(t, p.Cutoff(utc), p.Cutoff(local))
}

func TestPolicy_Evict(t *testing.T) {
	store := mocks.NewForecastStore(t)
	p := Policy{Window: 24 * time.Hour}
	now := time.Date(2024, 5, 10, 14, 37, 0, 0, time.UTC)

	store.EXPECT().ClearOlderThan(mock.Anything, p.Cutoff(now)).
		Return(ports.EvictionResult{Hourly: 3, Daily: 1}, nil).Once()

	result, err := p.Evict(context.Background(), store, now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Total())
}

func TestPolicy_Evict_StoreFailure(t *testing.T) {
	store := mocks.NewForecastStore(t)
	p := Policy{Window: time.Hour}

	store.EXPECT().ClearOlderThan(mock.Anything, mock.Anything).
		Return(ports.EvictionResult{}, errors.NewStoreWriteError("boom", nil))

	_, err := p.Evict(context.Background(), store, time.Now())
	require.Error(t, err)
	assert.True(t, errors.IsStoreWriteError(err))
}

func ranked(name string, lastUpdated, sequence int64) RankedLocation {
	return RankedLocation{
		Location: forecast.Location{Name: name, LastUpdated: lastUpdated},
		Sequence: sequence,
	}
}

func names(locations []RankedLocation) []string {
	out := make([]string, 0, len(locations))
	for _, l := range locations {
		out = append(out, l.Location.Name)
	}
	return out
}

func TestRankLocations(t *testing.T) {
	input := []RankedLocation{
		ranked("old", 100, 1),
		ranked("tieFirst", 200, 2),
		ranked("newest", 300, 3),
		ranked("tieSecond", 200, 4),
	}

	assert.Equal(t, []string{"newest", "tieSecond", "tieFirst", "old"}, names(RankLocations(input)))
	assert.Equal(t, "old", input[0].Location.Name)
}

func TestSurvivors(t *testing.T) {
	var input []RankedLocation
	for i := int64(0); i < 7; i++ {
		input = append(input, ranked(string(rune('a'+i)), 1000+i, i))
	}

	kept, evictable := Survivors(input)
	assert.Equal(t, []string{"g", "f", "e", "d", "c"}, names(kept))
	assert.Equal(t, []string{"b", "a"}, names(evictable))

	kept, evictable = Survivors(input[:3])
	assert.Len(t, kept, 3)
	assert.Empty(t, evictable)
}

func TestSurvivors_KeepsRowIdentityOnEqualSequences(t *testing.T) {
	var input []RankedLocation
	for i := int64(0); i < 6; i++ {
		l := ranked(string(rune('a'+i)), 1000+i, 1)
		l.ID = uint(10 + i)
		input = append(input, l)
	}

	_, evictable := Survivors(input)
	require.Len(t, evictable, 1)
	assert.Equal(t, uint(10), evictable[0].ID)
	assert.Equal(t, "a", evictable[0].Location.Name)
}
