package model

import "time"

// Frequency selects a built-in purchase cadence.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// ScheduleParams describes one recurring-investment plan.
// Exactly one of Frequency and CustomIntervalDays determines the cadence;
// a positive CustomIntervalDays (business days) takes precedence.
type ScheduleParams struct {
	Investment         float64
	StartDate          time.Time
	Frequency          Frequency
	CustomIntervalDays int
	Fee                float64 // fixed per-purchase deduction, not a percentage
}
