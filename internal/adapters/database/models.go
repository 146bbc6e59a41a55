package database

import (
	"forecastsync.app/internal/core/forecast"
)

// HourlyForecastModel represents the database model for hourly forecast rows
type HourlyForecastModel struct {
	ID                       uint    `gorm:"primaryKey"`
	Latitude                 float64 `gorm:"not null;uniqueIndex:idx_hourly_key,priority:1"`
	Longitude                float64 `gorm:"not null;uniqueIndex:idx_hourly_key,priority:2"`
	Datetime                 int64   `gorm:"not null;index;uniqueIndex:idx_hourly_key,priority:3"`
	DataSource               int     `gorm:"not null;uniqueIndex:idx_hourly_key,priority:4"`
	Temperature              float64
	FeelsLike                float64
	Pressure                 float64
	Humidity                 int
	UVI                      float64 `gorm:"column:uvi"`
	Clouds                   int
	Visibility               int
	WindSpeed                float64
	WindDegrees              int
	WeatherCode              int
	PrecipitationProbability int
	PrecipitationAmount      float64
}

func (HourlyForecastModel) TableName() string {
	return "hourly_forecasts"
}

// DailyForecastModel represents the database model for daily forecast rows
type DailyForecastModel struct {
	ID                  uint    `gorm:"primaryKey"`
	Latitude            float64 `gorm:"not null;uniqueIndex:idx_daily_key,priority:1"`
	Longitude           float64 `gorm:"not null;uniqueIndex:idx_daily_key,priority:2"`
	Datetime            int64   `gorm:"not null;index;uniqueIndex:idx_daily_key,priority:3"`
	DataSource          int     `gorm:"not null;uniqueIndex:idx_daily_key,priority:4"`
	MinTemperature      float64
	MaxTemperature      float64
	Pressure            float64
	Humidity            int
	UVI                 float64 `gorm:"column:uvi"`
	Clouds              int
	WindSpeed           float64
	WindDegrees         int
	WeatherCode         int
	PrecipitationAmount float64
	MoonPhaseID         int
	Sunrise             int64
	Sunset              int64
}

func (DailyForecastModel) TableName() string {
	return "daily_forecasts"
}

// LocationModel represents the database model for the recent locations history
type LocationModel struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"not null"`
	Latitude    float64 `gorm:"not null;uniqueIndex:idx_location_coord,priority:1"`
	Longitude   float64 `gorm:"not null;uniqueIndex:idx_location_coord,priority:2"`
	TimezoneID  string
	LastUpdated int64 `gorm:"not null;index"`
	Sequence    int64 `gorm:"not null;uniqueIndex"`
}

func (LocationModel) TableName() string {
	return "locations"
}

// Models returns every model the store needs migrated
func Models() []interface{} {
	return []interface{}{
		&HourlyForecastModel{},
		&DailyForecastModel{},
		&LocationModel{},
	}
}

func hourlyToModel(r forecast.HourlyRecord) HourlyForecastModel {
	return HourlyForecastModel{
		Latitude:                 forecast.RoundCoordinate(r.Latitude),
		Longitude:                forecast.RoundCoordinate(r.Longitude),
		Datetime:                 r.Datetime,
		DataSource:               int(r.DataSource),
		Temperature:              r.Temperature,
		FeelsLike:                r.FeelsLike,
		Pressure:                 r.Pressure,
		Humidity:                 r.Humidity,
		UVI:                      r.UVI,
		Clouds:                   r.Clouds,
		Visibility:               r.Visibility,
		WindSpeed:                r.WindSpeed,
		WindDegrees:              r.WindDegrees,
		WeatherCode:              int(r.WeatherCode),
		PrecipitationProbability: r.PrecipitationProbability,
		PrecipitationAmount:      r.PrecipitationAmount,
	}
}

func (m *HourlyForecastModel) toRecord() forecast.HourlyRecord {
	return forecast.HourlyRecord{
		Datetime:                 m.Datetime,
		Temperature:              m.Temperature,
		FeelsLike:                m.FeelsLike,
		Pressure:                 m.Pressure,
		Humidity:                 m.Humidity,
		UVI:                      m.UVI,
		Clouds:                   m.Clouds,
		Visibility:               m.Visibility,
		WindSpeed:                m.WindSpeed,
		WindDegrees:              m.WindDegrees,
		WeatherCode:              forecast.WeatherCode(m.WeatherCode),
		PrecipitationProbability: m.PrecipitationProbability,
		PrecipitationAmount:      m.PrecipitationAmount,
		Latitude:                 m.Latitude,
		Longitude:                m.Longitude,
		DataSource:               forecast.DataSource(m.DataSource),
	}
}

func dailyToModel(r forecast.DailyRecord) DailyForecastModel {
	return DailyForecastModel{
		Latitude:            forecast.RoundCoordinate(r.Latitude),
		Longitude:           forecast.RoundCoordinate(r.Longitude),
		Datetime:            r.Datetime,
		DataSource:          int(r.DataSource),
		MinTemperature:      r.MinTemperature,
		MaxTemperature:      r.MaxTemperature,
		Pressure:            r.Pressure,
		Humidity:            r.Humidity,
		UVI:                 r.UVI,
		Clouds:              r.Clouds,
		WindSpeed:           r.WindSpeed,
		WindDegrees:         r.WindDegrees,
		WeatherCode:         int(r.WeatherCode),
		PrecipitationAmount: r.PrecipitationAmount,
		MoonPhaseID:         int(r.MoonPhaseID),
		Sunrise:             r.Sunrise,
		Sunset:              r.Sunset,
	}
}

func (m *DailyForecastModel) toRecord() forecast.DailyRecord {
	return forecast.DailyRecord{
		Datetime:            m.Datetime,
		MinTemperature:      m.MinTemperature,
		MaxTemperature:      m.MaxTemperature,
		Pressure:            m.Pressure,
		Humidity:            m.Humidity,
		UVI:                 m.UVI,
		Clouds:              m.Clouds,
		WindSpeed:           m.WindSpeed,
		WindDegrees:         m.WindDegrees,
		WeatherCode:         forecast.WeatherCode(m.WeatherCode),
		PrecipitationAmount: m.PrecipitationAmount,
		MoonPhaseID:         forecast.MoonPhase(m.MoonPhaseID),
		Sunrise:             m.Sunrise,
		Sunset:              m.Sunset,
		Latitude:            m.Latitude,
		Longitude:           m.Longitude,
		DataSource:          forecast.DataSource(m.DataSource),
	}
}

func (m *LocationModel) toLocation() forecast.Location {
	return forecast.Location{
		Name:        m.Name,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		TimezoneID:  m.TimezoneID,
		LastUpdated: m.LastUpdated,
	}
}
