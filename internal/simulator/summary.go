package simulator

import "dcasim/internal/model"

// Summary condenses a completed run for display and ledger insertion.
type Summary struct {
	Purchases       int
	TotalInvested   float64
	PortfolioValue  float64
	TotalFees       float64
	PercentIncrease float64
}

// Summarize derives the run summary from the last record.
// ok is false when no purchases occurred; callers must not compute percentage
// metrics against an empty run.
func Summarize(records []model.SimulationRecord) (Summary, bool) {
	if len(records) == 0 {
		return Summary{}, false
	}
	last := records[len(records)-1]
	return Summary{
		Purchases:       len(records),
		TotalInvested:   last.CumulativeInvestment,
		PortfolioValue:  last.PortfolioValue,
		TotalFees:       last.CumulativeFees,
		PercentIncrease: 100 * (last.PortfolioValue - last.CumulativeInvestment) / last.CumulativeInvestment,
	}, true
}
