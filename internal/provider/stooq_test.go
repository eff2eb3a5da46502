package provider

import (
	"strings"
	"testing"
)

func TestParseDailyCSV(t *testing.T) {
	csv := `Date,Open,High,Low,Close,Volume
2021-01-04,133.52,133.61,126.76,129.41,143301900
2021-01-05,128.89,131.74,128.43,131.01,97664900
2021-01-06,127.72,131.05,126.38,0,155088000
2021-01-07,128.36,131.63,127.86,130.92,109578200
`
	points, err := parseDailyCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parseDailyCSV: %v", err)
	}
	// The zero-close row is skipped.
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if !points[0].Date.Equal(day("2021-01-04")) || points[0].Close != 129.41 {
		t.Errorf("unexpected first point: %+v", points[0])
	}
	if !points[2].Date.Equal(day("2021-01-07")) || points[2].Close != 130.92 {
		t.Errorf("unexpected last point: %+v", points[2])
	}
}

func TestParseDailyCSV_BadHeader(t *testing.T) {
	if _, err := parseDailyCSV(strings.NewReader("No data\n")); err == nil {
		t.Error("expected error for missing Date/Close columns")
	}
}

func TestStooqSymbol(t *testing.T) {
	tests := []struct{ in, want string }{
		{"AAPL", "aapl.us"},
		{"aapl.us", "aapl.us"},
		{"CDR.WA", "cdr.wa"},
	}
	for _, tt := range tests {
		if got := stooqSymbol(tt.in); got != tt.want {
			t.Errorf("stooqSymbol(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
