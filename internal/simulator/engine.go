package simulator

import (
	"errors"
	"fmt"

	"dcasim/internal/model"
)

var (
	// ErrInvalidSchedule reports malformed or contradictory cadence parameters.
	ErrInvalidSchedule = errors.New("invalid schedule")
	// ErrInvalidInvestment reports a non-positive net investment per purchase.
	ErrInvalidInvestment = errors.New("investment after fee must be positive")
	// ErrOutOfRange reports a start date that precedes all available data.
	ErrOutOfRange = errors.New("start date precedes available data")
)

// Simulate runs a dollar-cost-averaging plan against a price series and
// returns one record per executed purchase, in date order.
//
// The requested start date is padded back to the latest trading date on or
// before it. Candidate purchase dates run from there to the series end at the
// configured cadence; candidates that are not trading dates are dropped.
// Returns an empty sequence when no candidate survives the filter.
//
// Accounting note: CumulativeInvestment counts the gross amount each period
// while only investment−fee buys shares. The fee total is reported separately
// in CumulativeFees and is not folded back into CumulativeInvestment.
func Simulate(series *model.PriceSeries, p model.ScheduleParams) ([]model.SimulationRecord, error) {
	if series == nil || series.Len() == 0 {
		return nil, fmt.Errorf("simulate: empty price series")
	}

	step, err := stepFunc(p)
	if err != nil {
		return nil, err
	}

	net := p.Investment - p.Fee
	if net <= 0 {
		return nil, fmt.Errorf("%w: investment %.2f, fee %.2f", ErrInvalidInvestment, p.Investment, p.Fee)
	}

	start, ok := series.AlignTo(p.StartDate)
	if !ok {
		return nil, fmt.Errorf("%w: %s is before first trading date %s", ErrOutOfRange,
			model.Day(p.StartDate).Format("2006-01-02"), series.FirstDate().Format("2006-01-02"))
	}

	candidates := candidateDates(start, series.LastDate(), step)
	dates := filterTradingDates(series, candidates)

	records := make([]model.SimulationRecord, 0, len(dates))
	cumShares := 0.0
	for i, d := range dates {
		price, _ := series.At(d)
		shares := net / price
		cumShares += shares
		records = append(records, model.SimulationRecord{
			Date:                 d,
			CumulativeInvestment: p.Investment * float64(i+1),
			SharesPurchased:      shares,
			CumulativeShares:     cumShares,
			PortfolioValue:       cumShares * price,
			CumulativeFees:       p.Fee * float64(i+1),
		})
	}
	return records, nil
}
