package model

import (
	"fmt"
	"sort"
	"time"
)

// Day normalizes a timestamp to midnight UTC so that prices and schedule
// candidates compare at day granularity.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PricePoint is one trading day's closing price.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds the daily closing prices for one ticker, ordered by date.
// It is immutable after construction; the engine only reads from it.
type PriceSeries struct {
	Ticker string
	points []PricePoint
}

// NewPriceSeries builds a series from points, enforcing strictly increasing
// dates and positive prices.
func NewPriceSeries(ticker string, points []PricePoint) (*PriceSeries, error) {
	if ticker == "" {
		return nil, fmt.Errorf("price series: empty ticker")
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("price series %s: no data points", ticker)
	}
	normalized := make([]PricePoint, len(points))
	for i, p := range points {
		if p.Close <= 0 {
			return nil, fmt.Errorf("price series %s: non-positive close %.4f at %s",
				ticker, p.Close, p.Date.Format("2006-01-02"))
		}
		normalized[i] = PricePoint{Date: Day(p.Date), Close: p.Close}
	}
	for i := 1; i < len(normalized); i++ {
		if !normalized[i-1].Date.Before(normalized[i].Date) {
			return nil, fmt.Errorf("price series %s: dates not strictly increasing at %s",
				ticker, normalized[i].Date.Format("2006-01-02"))
		}
	}
	return &PriceSeries{Ticker: ticker, points: normalized}, nil
}

// Len returns the number of trading days in the series.
func (s *PriceSeries) Len() int { return len(s.points) }

// FirstDate returns the earliest trading date.
func (s *PriceSeries) FirstDate() time.Time { return s.points[0].Date }

// LastDate returns the latest trading date.
func (s *PriceSeries) LastDate() time.Time { return s.points[len(s.points)-1].Date }

// At returns the closing price on the given trading date.
// The second return is false when the date is not a trading date in the series.
func (s *PriceSeries) At(date time.Time) (float64, bool) {
	d := Day(date)
	i := sort.Search(len(s.points), func(i int) bool {
		return !s.points[i].Date.Before(d)
	})
	if i < len(s.points) && s.points[i].Date.Equal(d) {
		return s.points[i].Close, true
	}
	return 0, false
}

// AlignTo returns the latest trading date that is on or before the given date
// (pad semantics). The second return is false when the date precedes all data.
func (s *PriceSeries) AlignTo(date time.Time) (time.Time, bool) {
	d := Day(date)
	i := sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Date.After(d)
	})
	if i == 0 {
		return time.Time{}, false
	}
	return s.points[i-1].Date, true
}

// Range returns the points between from and to, inclusive.
func (s *PriceSeries) Range(from, to time.Time) ([]PricePoint, error) {
	lo, hi := Day(from), Day(to)
	if lo.After(hi) {
		return nil, fmt.Errorf("price series %s: range start %s after end %s",
			s.Ticker, lo.Format("2006-01-02"), hi.Format("2006-01-02"))
	}
	i := sort.Search(len(s.points), func(i int) bool {
		return !s.points[i].Date.Before(lo)
	})
	j := sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Date.After(hi)
	})
	out := make([]PricePoint, j-i)
	copy(out, s.points[i:j])
	return out, nil
}

// Points returns a copy of all points in date order.
func (s *PriceSeries) Points() []PricePoint {
	out := make([]PricePoint, len(s.points))
	copy(out, s.points)
	return out
}
