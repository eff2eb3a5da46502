package simulator

import (
	"errors"
	"testing"
	"time"

	"dcasim/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAddBusinessDays(t *testing.T) {
	tests := []struct {
		start string
		n     int
		want  string
	}{
		{"2021-01-04", 1, "2021-01-05"}, // Mon -> Tue
		{"2021-01-08", 1, "2021-01-11"}, // Fri -> Mon
		{"2021-01-04", 5, "2021-01-11"}, // one full business week
		{"2021-01-07", 2, "2021-01-11"}, // Thu -> Mon across weekend
	}
	for _, tt := range tests {
		got := addBusinessDays(day(tt.start), tt.n)
		if !got.Equal(day(tt.want)) {
			t.Errorf("addBusinessDays(%s, %d) = %s, want %s",
				tt.start, tt.n, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestNextMonthBegin(t *testing.T) {
	tests := []struct{ in, want string }{
		{"2021-01-04", "2021-02-01"},
		{"2021-02-01", "2021-03-01"},
		{"2021-12-15", "2022-01-01"},
	}
	for _, tt := range tests {
		if got := nextMonthBegin(day(tt.in)); !got.Equal(day(tt.want)) {
			t.Errorf("nextMonthBegin(%s) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestStepFunc_Errors(t *testing.T) {
	tests := []struct {
		name string
		p    model.ScheduleParams
	}{
		{"neither cadence", model.ScheduleParams{}},
		{"unknown frequency", model.ScheduleParams{Frequency: "quarterly"}},
		{"negative interval", model.ScheduleParams{CustomIntervalDays: -3}},
	}
	for _, tt := range tests {
		if _, err := stepFunc(tt.p); !errors.Is(err, ErrInvalidSchedule) {
			t.Errorf("%s: expected ErrInvalidSchedule, got %v", tt.name, err)
		}
	}
}

func TestStepFunc_CustomIntervalWinsOverFrequency(t *testing.T) {
	step, err := stepFunc(model.ScheduleParams{Frequency: model.FrequencyMonthly, CustomIntervalDays: 2})
	if err != nil {
		t.Fatalf("stepFunc: %v", err)
	}
	// 2 business days, not one month
	if got := step(day("2021-01-04")); !got.Equal(day("2021-01-06")) {
		t.Errorf("custom interval step = %s, want 2021-01-06", got.Format("2006-01-02"))
	}
}

func TestCandidateDates_MonthlyIncludesAlignedStart(t *testing.T) {
	step, err := stepFunc(model.ScheduleParams{Frequency: model.FrequencyMonthly})
	if err != nil {
		t.Fatalf("stepFunc: %v", err)
	}
	got := candidateDates(day("2021-01-04"), day("2021-03-01"), step)
	want := []string{"2021-01-04", "2021-02-01", "2021-03-01"}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	for i := range want {
		if !got[i].Equal(day(want[i])) {
			t.Errorf("candidate %d = %s, want %s", i, got[i].Format("2006-01-02"), want[i])
		}
	}
}

func TestCandidateDates_Weekly(t *testing.T) {
	step, err := stepFunc(model.ScheduleParams{Frequency: model.FrequencyWeekly})
	if err != nil {
		t.Fatalf("stepFunc: %v", err)
	}
	got := candidateDates(day("2021-01-04"), day("2021-01-18"), step)
	want := []string{"2021-01-04", "2021-01-11", "2021-01-18"}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(day(want[i])) {
			t.Errorf("candidate %d = %s, want %s", i, got[i].Format("2006-01-02"), want[i])
		}
	}
}

func TestFilterTradingDates_DropsNonTrading(t *testing.T) {
	series := mustSeries(t,
		point("2021-01-04", 100),
		point("2021-01-05", 101),
		point("2021-01-07", 103),
	)
	candidates := []time.Time{
		day("2021-01-04"),
		day("2021-01-06"), // not a trading date: dropped, not snapped
		day("2021-01-07"),
	}
	got := filterTradingDates(series, candidates)
	if len(got) != 2 {
		t.Fatalf("expected 2 surviving dates, got %d", len(got))
	}
	if !got[0].Equal(day("2021-01-04")) || !got[1].Equal(day("2021-01-07")) {
		t.Errorf("unexpected surviving dates: %v", got)
	}
}
