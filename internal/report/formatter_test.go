package report

import (
	"strings"
	"testing"
	"time"

	"dcasim/internal/ledger"
	"dcasim/internal/model"
)

func TestFormatLedger(t *testing.T) {
	start := time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC)
	rows := []ledger.Row{
		{Ticker: "AAPL", StartDate: start, Investment: 100, Frequency: model.FrequencyMonthly, Fee: 1, PercentageIncrease: 12.3456},
		{Ticker: "MSFT", StartDate: start, Investment: 50, CustomInterval: 10, Fee: 0, PercentageIncrease: -2.5},
	}
	out := FormatLedger(rows)

	if !strings.Contains(out, "AAPL") || !strings.Contains(out, "MSFT") {
		t.Errorf("missing tickers in output:\n%s", out)
	}
	if !strings.Contains(out, "monthly") {
		t.Errorf("missing frequency label in output:\n%s", out)
	}
	if !strings.Contains(out, "every 10 bdays") {
		t.Errorf("missing custom cadence label in output:\n%s", out)
	}
	if !strings.Contains(out, "+12.35") || !strings.Contains(out, "-2.50") {
		t.Errorf("percentage not rounded to two decimals:\n%s", out)
	}
}

func TestFormatLedger_Empty(t *testing.T) {
	out := FormatLedger(nil)
	if !strings.Contains(out, "(empty)") {
		t.Errorf("expected empty marker:\n%s", out)
	}
}

func TestFormatRecords_NoPurchases(t *testing.T) {
	out := FormatRecords("AAPL", nil)
	if !strings.Contains(out, "no purchases") {
		t.Errorf("expected no-purchases note:\n%s", out)
	}
}
