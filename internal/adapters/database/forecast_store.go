package database

import (
	"context"
	stderrors "errors"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/core/retention"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	upsertBatchSize      = 200
	saveLocationAttempts = 3
)

var forecastKeyColumns = []clause.Column{
	{Name: "latitude"},
	{Name: "longitude"},
	{Name: "datetime"},
	{Name: "data_source"},
}

// ForecastStoreAdapter implements the ForecastStore port using GORM
type ForecastStoreAdapter struct {
	db *gorm.DB
}

// NewForecastStoreAdapter creates a new forecast store adapter
func NewForecastStoreAdapter(db *gorm.DB) *ForecastStoreAdapter {
	return &ForecastStoreAdapter{db: db}
}

var _ ports.ForecastStore = (*ForecastStoreAdapter)(nil)

// SaveHourly upserts hourly records in a single transaction
func (s *ForecastStoreAdapter) SaveHourly(ctx context.Context, records []forecast.HourlyRecord) error {
	return s.SaveForecast(ctx, records, nil)
}

// SaveDaily upserts daily records in a single transaction
func (s *ForecastStoreAdapter) SaveDaily(ctx context.Context, records []forecast.DailyRecord) error {
	return s.SaveForecast(ctx, nil, records)
}

// SaveForecast upserts hourly and daily records together; either every row is written or none is
func (s *ForecastStoreAdapter) SaveForecast(ctx context.Context, hourly []forecast.HourlyRecord, daily []forecast.DailyRecord) error {
	hourlyModels, err := toHourlyModels(hourly)
	if err != nil {
		return err
	}
	dailyModels, err := toDailyModels(daily)
	if err != nil {
		return err
	}
	if len(hourlyModels) == 0 && len(dailyModels) == 0 {
		return nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(hourlyModels) > 0 {
			if err := upsertForecastRows(tx, &hourlyModels); err != nil {
				return err
			}
		}
		if len(dailyModels) > 0 {
			if err := upsertForecastRows(tx, &dailyModels); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.NewStoreWriteError("failed to save forecast records", err)
	}

	return nil
}

func upsertForecastRows(tx *gorm.DB, rows interface{}) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   forecastKeyColumns,
		UpdateAll: true,
	}).CreateInBatches(rows, upsertBatchSize).Error
}

// toHourlyModels converts and de-duplicates records by key; a later record replaces an earlier one
func toHourlyModels(records []forecast.HourlyRecord) ([]HourlyForecastModel, error) {
	index := make(map[recordKey]int, len(records))
	models := make([]HourlyForecastModel, 0, len(records))
	for _, r := range records {
		if err := validateRecordKey(r.Latitude, r.Longitude, r.DataSource); err != nil {
			return nil, err
		}
		m := hourlyToModel(r)
		key := recordKey{m.Latitude, m.Longitude, m.Datetime, m.DataSource}
		if i, ok := index[key]; ok {
			models[i] = m
			continue
		}
		index[key] = len(models)
		models = append(models, m)
	}
	return models, nil
}

func toDailyModels(records []forecast.DailyRecord) ([]DailyForecastModel, error) {
	index := make(map[recordKey]int, len(records))
	models := make([]DailyForecastModel, 0, len(records))
	for _, r := range records {
		if err := validateRecordKey(r.Latitude, r.Longitude, r.DataSource); err != nil {
			return nil, err
		}
		m := dailyToModel(r)
		key := recordKey{m.Latitude, m.Longitude, m.Datetime, m.DataSource}
		if i, ok := index[key]; ok {
			models[i] = m
			continue
		}
		index[key] = len(models)
		models = append(models, m)
	}
	return models, nil
}

type recordKey struct {
	lat, lon float64
	datetime int64
	source   int
}

func validateRecordKey(lat, lon float64, source forecast.DataSource) error {
	if err := forecast.NewCoordinate(lat, lon).Validate(); err != nil {
		return err
	}
	if !source.IsValid() {
		return errors.NewValidationError("record has an unknown data source")
	}
	return nil
}

// QueryHourly returns hourly records at or after since, ascending by datetime
func (s *ForecastStoreAdapter) QueryHourly(ctx context.Context, lat, lon float64, since int64, source forecast.DataSource) ([]forecast.HourlyRecord, error) {
	var models []HourlyForecastModel
	result := s.db.WithContext(ctx).
		Where("latitude = ? AND longitude = ? AND datetime >= ? AND data_source = ?",
			forecast.RoundCoordinate(lat), forecast.RoundCoordinate(lon), since, int(source)).
		Order("datetime ASC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to query hourly forecast", result.Error)
	}

	records := make([]forecast.HourlyRecord, 0, len(models))
	for i := range models {
		records = append(records, models[i].toRecord())
	}
	return records, nil
}

// QueryDaily returns daily records at or after since, ascending by datetime
func (s *ForecastStoreAdapter) QueryDaily(ctx context.Context, lat, lon float64, since int64, source forecast.DataSource) ([]forecast.DailyRecord, error) {
	var models []DailyForecastModel
	result := s.db.WithContext(ctx).
		Where("latitude = ? AND longitude = ? AND datetime >= ? AND data_source = ?",
			forecast.RoundCoordinate(lat), forecast.RoundCoordinate(lon), since, int(source)).
		Order("datetime ASC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to query daily forecast", result.Error)
	}

	records := make([]forecast.DailyRecord, 0, len(models))
	for i := range models {
		records = append(records, models[i].toRecord())
	}
	return records, nil
}

// SaveLocation upserts a location by coordinate and trims the history to the most recent entries
func (s *ForecastStoreAdapter) SaveLocation(ctx context.Context, location forecast.Location) error {
	location.Normalize()
	if err := location.Validate(); err != nil {
		return err
	}

	var err error
	for attempt := 1; attempt <= saveLocationAttempts; attempt++ {
		err = s.saveLocation(ctx, location)
		// a concurrent writer took the same sequence number
		if !stderrors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if err != nil {
		return errors.NewStoreWriteError("failed to save location", err)
	}

	return nil
}

func (s *ForecastStoreAdapter) saveLocation(ctx context.Context, location forecast.Location) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sequence int64
		if err := tx.Model(&LocationModel{}).Select("COALESCE(MAX(sequence), 0)").Scan(&sequence).Error; err != nil {
			return err
		}

		var existing LocationModel
		result := tx.Where("latitude = ? AND longitude = ?", location.Latitude, location.Longitude).
			Limit(1).Find(&existing)
		if result.Error != nil {
			return result.Error
		}

		model := LocationModel{
			Name:        location.Name,
			Latitude:    location.Latitude,
			Longitude:   location.Longitude,
			TimezoneID:  location.TimezoneID,
			LastUpdated: location.LastUpdated,
			Sequence:    sequence + 1,
		}
		if result.RowsAffected > 0 {
			model.ID = existing.ID
			if model.TimezoneID == "" {
				model.TimezoneID = existing.TimezoneID
			}
		}
		if err := tx.Save(&model).Error; err != nil {
			return err
		}

		_, err := deleteLocationsBeyondHistory(tx, nil)
		return err
	})
}

// QueryRecentLocations returns the location history, most recently updated first
func (s *ForecastStoreAdapter) QueryRecentLocations(ctx context.Context) ([]forecast.Location, error) {
	var models []LocationModel
	result := recentLocationsOrder(s.db.WithContext(ctx)).
		Limit(forecast.MaxRecentLocations).
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to query recent locations", result.Error)
	}

	locations := make([]forecast.Location, 0, len(models))
	for i := range models {
		locations = append(locations, models[i].toLocation())
	}
	return locations, nil
}

// CurrentLocation returns the most recently selected location
func (s *ForecastStoreAdapter) CurrentLocation(ctx context.Context) (*forecast.Location, error) {
	var model LocationModel
	result := recentLocationsOrder(s.db.WithContext(ctx)).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("no location saved")
		}
		return nil, errors.NewDatabaseError("failed to find current location", result.Error)
	}

	location := model.toLocation()
	return &location, nil
}

// ClearOlderThan deletes forecast rows dated before cutoff and stale locations beyond the history
func (s *ForecastStoreAdapter) ClearOlderThan(ctx context.Context, cutoff int64) (ports.EvictionResult, error) {
	var evicted ports.EvictionResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("datetime < ?", cutoff).Delete(&HourlyForecastModel{})
		if result.Error != nil {
			return result.Error
		}
		evicted.Hourly = result.RowsAffected

		result = tx.Where("datetime < ?", cutoff).Delete(&DailyForecastModel{})
		if result.Error != nil {
			return result.Error
		}
		evicted.Daily = result.RowsAffected

		removed, err := deleteLocationsBeyondHistory(tx, &cutoff)
		if err != nil {
			return err
		}
		evicted.Locations = removed
		return nil
	})
	if err != nil {
		return ports.EvictionResult{}, errors.NewStoreWriteError("failed to evict forecast records", err)
	}

	return evicted, nil
}

func recentLocationsOrder(db *gorm.DB) *gorm.DB {
	return db.Order("last_updated DESC").Order("sequence DESC")
}

// deleteLocationsBeyondHistory removes locations ranked past the history size.
// When cutoff is set only rows last updated before it are removed.
func deleteLocationsBeyondHistory(tx *gorm.DB, cutoff *int64) (int64, error) {
	var models []LocationModel
	if err := tx.Find(&models).Error; err != nil {
		return 0, err
	}
	if len(models) <= forecast.MaxRecentLocations {
		return 0, nil
	}

	ranked := make([]retention.RankedLocation, 0, len(models))
	for i := range models {
		ranked = append(ranked, retention.RankedLocation{
			ID:       models[i].ID,
			Location: models[i].toLocation(),
			Sequence: models[i].Sequence,
		})
	}

	_, evictable := retention.Survivors(ranked)
	ids := make([]uint, 0, len(evictable))
	for _, l := range evictable {
		if cutoff != nil && l.Location.LastUpdated >= *cutoff {
			continue
		}
		ids = append(ids, l.ID)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result := tx.Delete(&LocationModel{}, ids)
	return result.RowsAffected, result.Error
}
