package database

import (
	"context"
	"math/rand"
	"testing"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const baseTime = int64(1_700_000_000)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := Open(ports.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func hourlyAt(datetime int64, lat, lon float64, source forecast.DataSource, temp float64) forecast.HourlyRecord {
	return forecast.HourlyRecord{
		Datetime:    datetime,
		Temperature: temp,
		Humidity:    50,
		Latitude:    lat,
		Longitude:   lon,
		DataSource:  source,
	}
}

func dailyAt(datetime int64, lat, lon float64, source forecast.DataSource) forecast.DailyRecord {
	return forecast.DailyRecord{
		Datetime:       datetime,
		MinTemperature: 1,
		MaxTemperature: 9,
		MoonPhaseID:    forecast.MoonPhaseFull,
		Latitude:       lat,
		Longitude:      lon,
		DataSource:     source,
	}
}

func TestForecastStore_QueryHourly_FiveRecords(t *testing.T) {
	store := NewForecastStoreAdapter(setupTestDB(t))
	ctx := context.Background()

	var records []forecast.HourlyRecord
	for i := int64(4); i >= 0; i-- {
		records = append(records, hourlyAt(baseTime+i*3600, 0, 0, forecast.DataSourceOpenWeatherMap, float64(i)))
	}
	require.NoError(t, store.SaveHourly(ctx, records))

	got, err := store.QueryHourly(ctx, 0, 0, baseTime, forecast.DataSourceOpenWeatherMap)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, r := range got {
		assert.Equal(t, baseTime+int64(i)*3600, r.Datetime)
		assert.Equal(t, float64(i), r.Temperature)
	}

	other, err := store.QueryHourly(ctx, 100, 100, baseTime, forecast.DataSourceOpenWeatherMap)
	require.NoError(t, err)
	assert.NotNil(t, other)
	assert.Empty(t, other)

	wrongSource, err := store.QueryHourly(ctx, 0, 0, baseTime, forecast.DataSourceWeatherAPI)
	require.NoError(t, err)
	assert.Empty(t, wrongSource)
}

func TestForecastStore_SaveHourly_UpsertReplacesRecord(t *testing.T) {
	db := setupTestDB(t)
	store := NewForecastStoreAdapter(db)
	ctx := context.Background()

	first := hourlyAt(baseTime, 50.45, 30.52, forecast.DataSourceOpenMeteo, 10)
	first.WindSpeed = 4
	first.PrecipitationAmount = 1.5
	require.NoError(t, store.SaveHourly(ctx, []forecast.HourlyRecord{first}))

	second := hourlyAt(baseTime, 50.45, 30.52, forecast.DataSourceOpenMeteo, 12)
	require.NoError(t, store.SaveHourly(ctx, []forecast.HourlyRecord{second}))

	var count int64
	require.NoError(t, db.Model(&HourlyForecastModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := store.QueryHourly(ctx, 50.45, 30.52, baseTime, forecast.DataSourceOpenMeteo)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, second, got[0])
}

func TestForecastStore_SaveHourly_DuplicateKeysInBatch(t *testing.T) {
	store := NewForecastStoreAdapter(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.SaveHourly(ctx, []forecast.HourlyRecord{
		hourlyAt(baseTime, 1, 1, forecast.DataSourceWeatherAPI, 1),
		hourlyAt(baseTime, 1, 1, forecast.DataSourceWeatherAPI, 2),
	}))

	got, err := store.QueryHourly(ctx, 1, 1, 0, forecast.DataSourceWeatherAPI)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2.0, got[0].Temperature)
}

func TestForecastStore_SaveHourly_RoundsCoordinates(t *testing.T) {
	store := NewForecastStoreAdapter(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.SaveHourly(ctx, []forecast.HourlyRecord{
		hourlyAt(baseTime, 50.450012, 30.523401, forecast.DataSourceOpenMeteo, 5),
	}))

	got, err := store.QueryHourly(ctx, 50.45, 30.5234, baseTime, forecast.DataSourceOpenMeteo)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 50.45, got[0].Latitude)
}

func TestForecastStore_SaveHourly_Validation(t *testing.T) {
	store := NewForecastStoreAdapter(setupTestDB(t))
	ctx := context.Background()

	err := store.SaveHourly(ctx, []forecast.HourlyRecord{hourlyAt(baseTime, 0, 0, forecast.DataSource(7), 1)})
	assert.True(t, errors.IsValidationError(err))

	err = store.SaveHourly(ctx, []forecast.HourlyRecord{hourlyAt(baseTime, 95, 0, forecast.DataSourceOpenMeteo, 1)})
	assert.True(t, errors.IsValidationError(err))

	assert.NoError(t, store.SaveHourly(ctx, nil))
}

func TestForecastStore_SaveDaily_QueryDaily(t *testing.T) {
	store := NewForecastStoreAdapter(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.SaveDaily(ctx, []forecast.DailyRecord{
		dailyAt(baseTime+86400, 10, 20, forecast.DataSourceWeatherAPI),
		dailyAt(baseTime, 10, 20, forecast.DataSourceWeatherAPI),
	}))

	got, err := store.QueryDaily(ctx, 10, 20, baseTime, forecast.DataSourceWeatherAPI)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, baseTime, got[0].Datetime)
	assert.Equal(t, forecast.MoonPhaseFull, got[0].MoonPhaseID)

	later, err := store.QueryDaily(ctx, 10, 20, baseTime+1, forecast.DataSourceWeatherAPI)
	require.NoError(t, err)
	assert.Len(t, later, 1)
}

func TestForecastStore_SaveForecast_RollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	store := NewForecastStoreAdapter(db)
	ctx := context.Background()

	require.NoError(t, db.Migrator().DropTable(&DailyForecastModel{}))

	err := store.SaveForecast(ctx,
		[]forecast.HourlyRecord{hourlyAt(baseTime, 0, 0, forecast.DataSourceOpenMeteo, 1)},
		[]forecast.DailyRecord{dailyAt(baseTime, 0, 0, forecast.DataSourceOpenMeteo)},
	)
	require.Error(t, err)
	assert.True(t, errors.IsStoreWriteError(err))

	got, err := store.QueryHourly(ctx, 0, 0, 0, forecast.DataSourceOpenMeteo)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestForecastStore_ClearOlderThan_TwoSources(t *testing.T) {
	store := NewForecastStoreAdapter(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.SaveHourly(ctx, []forecast.HourlyRecord{
		hourlyAt(baseTime, 0, 0, forecast.DataSourceOpenWeatherMap, 1),
		hourlyAt(baseTime+3600, 0, 0, forecast.DataSourceOpenWeatherMap, 2),
		hourlyAt(baseTime, 0, 0, forecast.DataSourceWeatherAPI, 3),
	}))

	evicted, err := store.ClearOlderThan(ctx, baseTime+3600)
	require.NoError(t, err)
	assert.Equal(t, int64(2), evicted.Hourly)

	owm, err := store.QueryHourly(ctx, 0, 0, 0, forecast.DataSourceOpenWeatherMap)
	require.NoError(t, err)
	require.Len(t, owm, 1)
	assert.Equal(t, baseTime+3600, owm[0].Datetime)

	wapi, err := store.QueryHourly(ctx, 0, 0, 0, forecast.DataSourceWeatherAPI)
	require.NoError(t, err)
	assert.Empty(t, wapi)

	again, err := store.ClearOlderThan(ctx, baseTime+3600)
	require.NoError(t, err)
	assert.Zero(t, again.Total())
}

func TestForecastStore_ClearOlderThan_RemovesExactlyOlderRows(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 10; run++ {
		store := NewForecastStoreAdapter(setupTestDB(t))
		ctx := context.Background()

		var hourly []forecast.HourlyRecord
		var daily []forecast.DailyRecord
		for i := int64(0); i < 24; i++ {
			hourly = append(hourly, hourlyAt(baseTime+i*3600, 0, 0, forecast.DataSourceOpenMeteo, float64(i)))
		}
		for i := int64(0); i < 5; i++ {
			daily = append(daily, dailyAt(baseTime+i*86400, 0, 0, forecast.DataSourceOpenMeteo))
		}
		require.NoError(t, store.SaveForecast(ctx, hourly, daily))

		cutoff := baseTime + rng.Int63n(5*86400)
		_, err := store.ClearOlderThan(ctx, cutoff)
		require.NoError(t, err)

		gotHourly, err := store.QueryHourly(ctx, 0, 0, 0, forecast.DataSourceOpenMeteo)
		require.NoError(t, err)
		gotDaily, err := store.QueryDaily(ctx, 0, 0, 0, forecast.DataSourceOpenMeteo)
		require.NoError(t, err)

		expectedHourly := 0
		for _, h := range hourly {
			if h.Datetime >= cutoff {
				expectedHourly++
			}
		}
		expectedDaily := 0
		for _, d := range daily {
			if d.Datetime >= cutoff {
				expectedDaily++
			}
		}

		assert.Len(t, gotHourly, expectedHourly, "cutoff %d", cutoff)
		assert.Len(t, gotDaily, expectedDaily, "cutoff %d", cutoff)
		for _, h := range gotHourly {
			assert.GreaterOrEqual(t, h.Datetime, cutoff)
		}
		for _, d := range gotDaily {
			assert.GreaterOrEqual(t, d.Datetime, cutoff)
		}
	}
}

func TestForecastStore_SaveLocation_KeepsFiveMostRecent(t *testing.T) {
	store := NewForecastStoreAdapter(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		require.NoError(t, store.SaveLocation(ctx, forecast.Location{
			Name:        string(rune('A' + i)),
			Latitude:    float64(i),
			Longitude:   float64(i),
			LastUpdated: baseTime + int64(i),
		}))
	}

	recent, err := store.QueryRecentLocations(ctx)
	require.NoError(t, err)
	require.Len(t, recent, forecast.MaxRecentLocations)

	names := make([]string, 0, len(recent))
	for _, l := range recent {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"G", "F", "E", "D", "C"}, names)

	current, err := store.CurrentLocation(ctx)
	require.NoError(t, err)
	assert.Equal(t, "G", current.Name)
}

func TestForecastStore_SaveLocation_TieBrokenByInsertionOrder(t *testing.T) {
	store := NewForecastStoreAdapter(setupTestDB(t))
	ctx := context.Background()

	for i, name := range []string{"first", "second", "third"} {
		require.NoError(t, store.SaveLocation(ctx, forecast.Location{
			Name: name, Latitude: float64(i), Longitude: 0, LastUpdated: baseTime,
		}))
	}

	recent, err := store.QueryRecentLocations(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "third", recent[0].Name)
	assert.Equal(t, "first", recent[2].Name)
}

func TestForecastStore_SaveLocation_Reselect(t *testing.T) {
	db := setupTestDB(t)
	store := NewForecastStoreAdapter(db)
	ctx := context.Background()

	require.NoError(t, store.SaveLocation(ctx, forecast.Location{
		Name: "Kyiv", Latitude: 50.4501, Longitude: 30.5234, TimezoneID: "Europe/Kyiv", LastUpdated: baseTime,
	}))
	require.NoError(t, store.SaveLocation(ctx, forecast.Location{
		Name: "Lviv", Latitude: 49.8397, Longitude: 24.0297, LastUpdated: baseTime + 10,
	}))
	require.NoError(t, store.SaveLocation(ctx, forecast.Location{
		Name: "Kyiv city", Latitude: 50.45012, Longitude: 30.52338, LastUpdated: baseTime + 20,
	}))

	var count int64
	require.NoError(t, db.Model(&LocationModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	current, err := store.CurrentLocation(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Kyiv city", current.Name)
	assert.Equal(t, "Europe/Kyiv", current.TimezoneID)
	assert.Equal(t, baseTime+20, current.LastUpdated)
}

func TestForecastStore_SaveLocation_Validation(t *testing.T) {
	store := NewForecastStoreAdapter(setupTestDB(t))

	err := store.SaveLocation(context.Background(), forecast.Location{Latitude: 1, Longitude: 1})
	assert.True(t, errors.IsValidationError(err))
}

func TestForecastStore_CurrentLocation_Empty(t *testing.T) {
	store := NewForecastStoreAdapter(setupTestDB(t))
	ctx := context.Background()

	current, err := store.CurrentLocation(ctx)
	assert.Nil(t, current)
	assert.True(t, errors.IsNotFoundError(err))

	recent, err := store.QueryRecentLocations(ctx)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestForecastStore_ClearOlderThan_StaleLocations(t *testing.T) {
	db := setupTestDB(t)
	store := NewForecastStoreAdapter(db)
	ctx := context.Background()

	for i := 0; i < forecast.MaxRecentLocations+2; i++ {
		require.NoError(t, db.Create(&LocationModel{
			Name:        "loc",
			Latitude:    float64(i),
			Longitude:   float64(i),
			LastUpdated: baseTime + int64(i)*3600,
			Sequence:    int64(i + 1),
		}).Error)
	}

	// only the oldest row beyond the history is older than the cutoff
	evicted, err := store.ClearOlderThan(ctx, baseTime+3600)
	require.NoError(t, err)
	assert.Equal(t, int64(1), evicted.Locations)

	evicted, err = store.ClearOlderThan(ctx, baseTime+10*3600)
	require.NoError(t, err)
	assert.Equal(t, int64(1), evicted.Locations)

	var count int64
	require.NoError(t, db.Model(&LocationModel{}).Count(&count).Error)
	assert.Equal(t, int64(forecast.MaxRecentLocations), count)
}

func TestForecastStore_ClearOlderThan_EvictsByRowWhenSequencesCollide(t *testing.T) {
	db := setupTestDB(t)
	store := NewForecastStoreAdapter(db)
	ctx := context.Background()

	// rows written before sequence numbers were unique
	require.NoError(t, db.Migrator().DropIndex(&LocationModel{}, "idx_locations_sequence"))
	for i := 0; i < forecast.MaxRecentLocations+1; i++ {
		require.NoError(t, db.Create(&LocationModel{
			Name:        string(rune('A' + i)),
			Latitude:    float64(i),
			Longitude:   float64(i),
			LastUpdated: baseTime + int64(i)*3600,
			Sequence:    7,
		}).Error)
	}

	evicted, err := store.ClearOlderThan(ctx, baseTime+10*3600)
	require.NoError(t, err)
	assert.Equal(t, int64(1), evicted.Locations)

	recent, err := store.QueryRecentLocations(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(recent))
	for _, l := range recent {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"F", "E", "D", "C", "B"}, names)
}

func TestForecastStore_SaveLocation_SequenceIsUnique(t *testing.T) {
	db := setupTestDB(t)
	store := NewForecastStoreAdapter(db)
	ctx := context.Background()

	require.NoError(t, store.SaveLocation(ctx, forecast.Location{
		Name: "Kyiv", Latitude: 50.4501, Longitude: 30.5234, LastUpdated: baseTime,
	}))

	var saved LocationModel
	require.NoError(t, db.First(&saved).Error)

	err := db.Create(&LocationModel{
		Name: "Lviv", Latitude: 49.8397, Longitude: 24.0297, LastUpdated: baseTime, Sequence: saved.Sequence,
	}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// the next save still takes a fresh sequence number
	require.NoError(t, store.SaveLocation(ctx, forecast.Location{
		Name: "Lviv", Latitude: 49.8397, Longitude: 24.0297, LastUpdated: baseTime,
	}))
	recent, err := store.QueryRecentLocations(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Lviv", recent[0].Name)
}
