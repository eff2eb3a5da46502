package provider

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dcasim/internal/model"
)

// StooqFetcher implements Fetcher using the Stooq daily-history CSV endpoint.
// Useful as a fallback when the Yahoo chart API is unreachable.
type StooqFetcher struct {
	Client *http.Client
}

// NewStooqFetcher creates a new Stooq fetcher with optional proxy support.
func NewStooqFetcher(proxyURL string) *StooqFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &StooqFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *StooqFetcher) Name() string { return "stooq" }

// stooqSymbol lowercases the ticker and appends the ".us" market suffix when
// none is given, matching Stooq's naming for US listings.
func stooqSymbol(symbol string) string {
	s := strings.ToLower(symbol)
	if !strings.Contains(s, ".") {
		s += ".us"
	}
	return s
}

func (f *StooqFetcher) FetchDailyCloses(symbol string, from time.Time) ([]model.PricePoint, error) {
	u := fmt.Sprintf("https://stooq.com/q/d/l/?s=%s&d1=%s&d2=%s&i=d",
		url.QueryEscape(stooqSymbol(symbol)),
		model.Day(from).Format("20060102"),
		time.Now().UTC().Format("20060102"))

	resp, err := f.Client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("stooq fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stooq: status %d", resp.StatusCode)
	}

	points, err := parseDailyCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("stooq %s: %w", symbol, err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("stooq: no data returned for %s", symbol)
	}
	return points, nil
}

// parseDailyCSV reads Stooq's Date,Open,High,Low,Close,Volume history format.
// Rows with a missing or zero close are skipped.
func parseDailyCSV(r io.Reader) ([]model.PricePoint, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // stooq omits volume for some instruments

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	dateCol, closeCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Date":
			dateCol = i
		case "Close":
			closeCol = i
		}
	}
	if dateCol < 0 || closeCol < 0 {
		return nil, fmt.Errorf("unexpected csv header: %v", header)
	}

	var points []model.PricePoint
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if len(row) <= dateCol || len(row) <= closeCol {
			continue
		}
		date, err := time.Parse("2006-01-02", strings.TrimSpace(row[dateCol]))
		if err != nil {
			continue
		}
		c, err := strconv.ParseFloat(strings.TrimSpace(row[closeCol]), 64)
		if err != nil || c <= 0 {
			continue
		}
		points = append(points, model.PricePoint{Date: model.Day(date), Close: c})
	}
	return points, nil
}
