package provider

import (
	"time"

	"dcasim/internal/model"
)

// Fetcher defines the interface for retrieving daily closing prices.
type Fetcher interface {
	// FetchDailyCloses returns the daily closes for symbol from the given
	// date up to the most recent trading day, in chronological order.
	FetchDailyCloses(symbol string, from time.Time) ([]model.PricePoint, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Points []model.PricePoint
	Err    error
	Calls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(_ string, from time.Time) ([]model.PricePoint, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Points != nil {
		return m.Points, nil
	}
	return GenerateMockPoints(100, 30, from), nil
}

// GenerateMockPoints produces count weekday closes drifting around basePrice,
// starting at the first weekday on or after from.
func GenerateMockPoints(basePrice float64, count int, from time.Time) []model.PricePoint {
	points := make([]model.PricePoint, 0, count)
	d := model.Day(from)
	for len(points) < count {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			i := len(points)
			points = append(points, model.PricePoint{
				Date:  d,
				Close: basePrice * (1 + float64(i-count/2)*0.001),
			})
		}
		d = d.AddDate(0, 0, 1)
	}
	return points
}
