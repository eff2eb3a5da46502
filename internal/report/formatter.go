package report

import (
	"fmt"
	"strings"

	"dcasim/internal/ledger"
	"dcasim/internal/model"
	"dcasim/internal/provider"
	"dcasim/internal/simulator"
)

// Rounding happens only here: money to two decimals, shares to four. The
// engine itself never rounds.

// FormatRecords renders the per-purchase table for one run.
func FormatRecords(ticker string, records []model.SimulationRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("DCA simulation: %s (%d purchases)\n", ticker, len(records)))
	if len(records) == 0 {
		b.WriteString("  no purchases occurred in the selected period\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%-12s %14s %12s %14s %14s %12s\n",
		"Date", "Invested", "Shares", "Cum Shares", "Value", "Fees"))
	for _, r := range records {
		b.WriteString(fmt.Sprintf("%-12s %14.2f %12.4f %14.4f %14.2f %12.2f\n",
			r.Date.Format("2006-01-02"), r.CumulativeInvestment, r.SharesPurchased,
			r.CumulativeShares, r.PortfolioValue, r.CumulativeFees))
	}
	return b.String()
}

// FormatSummary renders the headline metrics of one run.
func FormatSummary(ticker string, s simulator.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Summary for %s\n", ticker))
	b.WriteString(fmt.Sprintf("  purchases:       %d\n", s.Purchases))
	b.WriteString(fmt.Sprintf("  total invested:  %.2f\n", s.TotalInvested))
	b.WriteString(fmt.Sprintf("  portfolio value: %.2f\n", s.PortfolioValue))
	b.WriteString(fmt.Sprintf("  fees paid:       %.2f\n", s.TotalFees))
	b.WriteString(fmt.Sprintf("  change:          %+.2f%%\n", s.PercentIncrease))
	return b.String()
}

// cadenceLabel describes a row's cadence in one word or phrase.
func cadenceLabel(r ledger.Row) string {
	if r.CustomInterval > 0 {
		return fmt.Sprintf("every %d bdays", r.CustomInterval)
	}
	return string(r.Frequency)
}

// FormatLedger renders the cross-run comparison table in insertion order.
func FormatLedger(rows []ledger.Row) string {
	var b strings.Builder
	b.WriteString("Simulation results\n")
	b.WriteString(fmt.Sprintf("%-10s %-12s %12s %-16s %8s %10s\n",
		ledger.Columns[0], ledger.Columns[1], ledger.Columns[2], "Cadence",
		ledger.Columns[5], "Change %"))
	if len(rows) == 0 {
		b.WriteString("  (empty)\n")
		return b.String()
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-10s %-12s %12.2f %-16s %8.2f %+10.2f\n",
			r.Ticker, r.StartDate.Format("2006-01-02"), r.Investment,
			cadenceLabel(r), r.Fee, r.PercentageIncrease))
	}
	return b.String()
}

// FormatSearchResults renders ticker search candidates.
func FormatSearchResults(query string, results []provider.SearchResult) string {
	var b strings.Builder
	if len(results) == 0 {
		b.WriteString(fmt.Sprintf("No tickers found for %q\n", query))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("Tickers matching %q:\n", query))
	for _, r := range results {
		b.WriteString(fmt.Sprintf("  %-10s %s\n", r.Symbol, r.Name))
	}
	return b.String()
}
