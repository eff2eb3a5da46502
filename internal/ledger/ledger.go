package ledger

import (
	"sync"
	"time"

	"dcasim/internal/model"
)

// Columns is the fixed column order of the results table. It does not change
// across inserts or clears.
var Columns = []string{
	"Ticker", "Start Date", "Investment", "Frequency",
	"Custom Interval", "Fee", "Percentage Increase",
}

// Row is one completed simulation summary. Rows are never mutated after
// insertion; the only removal mechanism is a full Clear.
type Row struct {
	Ticker             string
	StartDate          time.Time
	Investment         float64
	Frequency          model.Frequency
	CustomInterval     int
	Fee                float64
	PercentageIncrease float64
}

// Ledger accumulates one row per completed simulation run. It is the only
// process-wide shared state in the system, so all access goes through the
// mutex; pass it explicitly to whoever needs it rather than keeping a global.
type Ledger struct {
	mu   sync.Mutex
	rows []Row
}

// New returns an empty ledger.
func New() *Ledger { return &Ledger{} }

// AddRow appends a pre-computed summary row. It computes nothing itself.
func (l *Ledger) AddRow(r Row) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows = append(l.rows, r)
}

// Rows returns a copy of all rows in insertion order.
func (l *Ledger) Rows() []Row {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Row, len(l.rows))
	copy(out, l.rows)
	return out
}

// Len returns the number of rows.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.rows)
}

// Clear discards all rows. The column schema is unaffected.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows = nil
}
