package external

import (
	"fmt"

	"forecastsync.app/internal/core/forecast"
	"forecastsync.app/internal/ports"
	"forecastsync.app/pkg/errors"
)

// Normalizer converts provider payloads into canonical forecast batches.
// It holds no state; the same input always produces the same batch.
type Normalizer struct{}

// NewNormalizer creates a new normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

var _ ports.ForecastNormalizer = (*Normalizer)(nil)

// Normalize converts raw into a batch tagged with source. Hourly and daily records come
// back ascending by datetime with duplicate datetimes collapsed to the last occurrence.
func (n *Normalizer) Normalize(source forecast.DataSource, raw ports.RawForecast) (*forecast.Batch, error) {
	if raw == nil {
		return nil, errors.NewUpstreamMalformedError(fmt.Sprintf("%s returned no payload", source), nil)
	}
	if raw.Source() != source {
		return nil, errors.NewUpstreamMalformedError(
			fmt.Sprintf("payload from %s cannot be normalized as %s", raw.Source(), source), nil)
	}

	var batch *forecast.Batch
	var err error
	switch r := raw.(type) {
	case *openWeatherMapForecast:
		batch = r.normalize()
	case *weatherAPIForecast:
		batch, err = r.normalize()
	case *openMeteoForecast:
		batch, err = r.normalize()
	default:
		return nil, errors.NewUpstreamMalformedError(fmt.Sprintf("unsupported payload type %T", raw), nil)
	}
	if err != nil {
		return nil, err
	}

	batch.Hourly = dedupHourly(batch.Hourly)
	batch.Daily = dedupDaily(batch.Daily)
	forecast.SortHourly(batch.Hourly)
	forecast.SortDaily(batch.Daily)
	return batch, nil
}

func dedupHourly(records []forecast.HourlyRecord) []forecast.HourlyRecord {
	index := make(map[int64]int, len(records))
	out := make([]forecast.HourlyRecord, 0, len(records))
	for _, r := range records {
		if i, ok := index[r.Datetime]; ok {
			out[i] = r
			continue
		}
		index[r.Datetime] = len(out)
		out = append(out, r)
	}
	return out
}

func dedupDaily(records []forecast.DailyRecord) []forecast.DailyRecord {
	index := make(map[int64]int, len(records))
	out := make([]forecast.DailyRecord, 0, len(records))
	for _, r := range records {
		if i, ok := index[r.Datetime]; ok {
			out[i] = r
			continue
		}
		index[r.Datetime] = len(out)
		out = append(out, r)
	}
	return out
}
