package simulator

import (
	"fmt"
	"time"

	"dcasim/internal/model"
)

// addBusinessDays advances n business days (Mon-Fri). Market holidays are not
// modeled here; holiday candidates fall out later in the trading-date filter.
func addBusinessDays(t time.Time, n int) time.Time {
	for i := 0; i < n; i++ {
		t = t.AddDate(0, 0, 1)
		for t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
			t = t.AddDate(0, 0, 1)
		}
	}
	return t
}

// nextMonthBegin returns the first day of the month after t.
func nextMonthBegin(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// stepFunc maps the cadence parameters to a date-advancing function.
// A positive CustomIntervalDays takes precedence over Frequency.
func stepFunc(p model.ScheduleParams) (func(time.Time) time.Time, error) {
	if p.CustomIntervalDays < 0 {
		return nil, fmt.Errorf("%w: custom interval %d must be positive", ErrInvalidSchedule, p.CustomIntervalDays)
	}
	if p.CustomIntervalDays > 0 {
		n := p.CustomIntervalDays
		return func(t time.Time) time.Time { return addBusinessDays(t, n) }, nil
	}
	switch p.Frequency {
	case model.FrequencyDaily:
		return func(t time.Time) time.Time { return addBusinessDays(t, 1) }, nil
	case model.FrequencyWeekly:
		return func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }, nil
	case model.FrequencyMonthly:
		return nextMonthBegin, nil
	case "":
		return nil, fmt.Errorf("%w: neither frequency nor custom interval given", ErrInvalidSchedule)
	default:
		return nil, fmt.Errorf("%w: unknown frequency %q", ErrInvalidSchedule, p.Frequency)
	}
}

// candidateDates generates the purchase-date candidates from start to end
// inclusive. The start date itself is always the first candidate.
func candidateDates(start, end time.Time, step func(time.Time) time.Time) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = step(d) {
		dates = append(dates, d)
	}
	return dates
}

// filterTradingDates keeps only the candidates that are trading dates in the
// series. Non-trading candidates (weekends, holidays) are dropped, not
// snapped: a skipped period stays skipped.
func filterTradingDates(series *model.PriceSeries, candidates []time.Time) []time.Time {
	kept := make([]time.Time, 0, len(candidates))
	for _, d := range candidates {
		if _, ok := series.At(d); ok {
			kept = append(kept, d)
		}
	}
	return kept
}
