package forecast

// MergeBatches combines batches given in precedence order. For every datetime key the
// record of the first batch that has it wins; later batches only fill missing keys.
// The result is tagged with target and sorted ascending.
func MergeBatches(target DataSource, batches ...*Batch) *Batch {
	merged := &Batch{Source: target}

	seenHourly := make(map[int64]struct{})
	seenDaily := make(map[int64]struct{})

	for _, b := range batches {
		if b == nil {
			continue
		}
		if merged.TimezoneID == "" {
			merged.TimezoneID = b.TimezoneID
		}
		for _, h := range b.Hourly {
			if _, ok := seenHourly[h.Datetime]; ok {
				continue
			}
			seenHourly[h.Datetime] = struct{}{}
			h.DataSource = target
			merged.Hourly = append(merged.Hourly, h)
		}
		for _, d := range b.Daily {
			if _, ok := seenDaily[d.Datetime]; ok {
				continue
			}
			seenDaily[d.Datetime] = struct{}{}
			d.DataSource = target
			merged.Daily = append(merged.Daily, d)
		}
	}

	SortHourly(merged.Hourly)
	SortDaily(merged.Daily)
	return merged
}
