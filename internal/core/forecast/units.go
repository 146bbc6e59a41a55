package forecast

import (
	"math"
	"time"
)

const localDateLayout = "2006-01-02"

// KphToMs converts km/h to m/s
func KphToMs(kph float64) float64 {
	return roundTo(kph/3.6, 2)
}

// KmToMeters converts kilometres to whole metres
func KmToMeters(km float64) int {
	return int(math.Round(km * 1000))
}

// FractionToPercent converts a 0..1 probability to a clamped percentage
func FractionToPercent(f float64) int {
	return ClampPercent(int(math.Round(f * 100)))
}

// ClampPercent bounds v to 0..100
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampNonNegative replaces negative or NaN amounts with 0
func ClampNonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// NormalizeDegrees folds a bearing into 0..359
func NormalizeDegrees(deg int) int {
	return ((deg % 360) + 360) % 360
}

// HourStart truncates an epoch to the start of its UTC hour
func HourStart(unix int64) int64 {
	return unix - ((unix%3600)+3600)%3600
}

// DayStartFromLocalDate returns 00:00 UTC of a "2006-01-02" calendar date
func DayStartFromLocalDate(date string) (int64, error) {
	t, err := time.ParseInLocation(localDateLayout, date, time.UTC)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// DayStartFromUnix returns 00:00 UTC of the local calendar date of unix shifted by offsetSeconds
func DayStartFromUnix(unix int64, offsetSeconds int) int64 {
	local := time.Unix(unix+int64(offsetSeconds), 0).UTC()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC).Unix()
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
