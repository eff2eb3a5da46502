package pricecache

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"dcasim/internal/model"
)

// SQLiteCache persists fetched daily closes to a SQLite database.
type SQLiteCache struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteCache opens (or creates) the SQLite database and runs migrations.
func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so a daemon refresh can write while a one-shot run reads.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &SQLiteCache{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite price cache opened: %s", dbPath)
	return c, nil
}

func (c *SQLiteCache) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_closes (
			ticker TEXT NOT NULL,
			date   TEXT NOT NULL,
			close  REAL NOT NULL,
			PRIMARY KEY (ticker, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_closes_ticker ON daily_closes(ticker)`,
	}
	for _, s := range stmts {
		if _, err := c.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Load returns the cached series for ticker, or (nil, nil) when nothing is
// cached yet.
func (c *SQLiteCache) Load(ticker string) (*model.PriceSeries, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows, err := c.db.Query(
		`SELECT date, close FROM daily_closes WHERE ticker = ? ORDER BY date`, ticker)
	if err != nil {
		return nil, fmt.Errorf("query daily closes: %w", err)
	}
	defer rows.Close()

	var points []model.PricePoint
	for rows.Next() {
		var dateStr string
		var c float64
		if err := rows.Scan(&dateStr, &c); err != nil {
			return nil, fmt.Errorf("scan daily close: %w", err)
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse cached date %q: %w", dateStr, err)
		}
		points = append(points, model.PricePoint{Date: date, Close: c})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, nil
	}
	return model.NewPriceSeries(ticker, points)
}

// Store upserts all points of the series in one transaction.
func (c *SQLiteCache) Store(series *model.PriceSeries) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin store: %w", err)
	}
	stmt, err := tx.Prepare(
		`INSERT OR REPLACE INTO daily_closes (ticker, date, close) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare store: %w", err)
	}
	defer stmt.Close()

	for _, p := range series.Points() {
		if _, err := stmt.Exec(series.Ticker, p.Date.Format("2006-01-02"), p.Close); err != nil {
			tx.Rollback()
			return fmt.Errorf("store %s %s: %w", series.Ticker, p.Date.Format("2006-01-02"), err)
		}
	}
	return tx.Commit()
}

func (c *SQLiteCache) Close() error {
	log.Println("[INFO] closing sqlite price cache")
	return c.db.Close()
}
