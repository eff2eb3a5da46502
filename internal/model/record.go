package model

import "time"

// SimulationRecord is the outcome of one scheduled purchase.
// CumulativeInvestment counts the gross amount per period; the fee is only
// deducted from the capital converted into shares, and shows up separately
// in CumulativeFees.
type SimulationRecord struct {
	Date                 time.Time
	CumulativeInvestment float64
	SharesPurchased      float64
	CumulativeShares     float64
	PortfolioValue       float64
	CumulativeFees       float64
}
