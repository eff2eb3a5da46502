package provider

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"dcasim/internal/model"
	"dcasim/internal/pricecache"
)

// ErrDataUnavailable reports that a ticker's price history could not be
// obtained, either because the symbol is unknown or the source is unreachable.
var ErrDataUnavailable = errors.New("market data unavailable")

// staleAfter is how old a cached series' last close may be before a refetch.
// Wide enough to cover a weekend plus a holiday.
const staleAfter = 4 * 24 * time.Hour

// Provider hands out price series, consulting an in-memory map and the disk
// cache before going to the network. Series are immutable, so cached values
// are shared freely with callers.
type Provider struct {
	fetcher Fetcher
	cache   pricecache.Cache
	from    time.Time

	mu  sync.Mutex
	mem map[string]*model.PriceSeries
}

// New creates a Provider that fetches history from the given start date.
func New(fetcher Fetcher, cache pricecache.Cache, from time.Time) *Provider {
	return &Provider{
		fetcher: fetcher,
		cache:   cache,
		from:    model.Day(from),
		mem:     make(map[string]*model.PriceSeries),
	}
}

// GetSeries returns the daily price series for ticker.
func (p *Provider) GetSeries(ticker string) (*model.PriceSeries, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s, ok := p.mem[ticker]; ok {
		return s, nil
	}

	cached, err := p.cache.Load(ticker)
	if err != nil {
		log.Printf("[WARN] price cache load %s: %v", ticker, err)
	}
	if cached != nil && p.fresh(cached) {
		p.mem[ticker] = cached
		return cached, nil
	}

	points, err := p.fetcher.FetchDailyCloses(ticker, p.from)
	if err != nil {
		// A stale disk copy beats no data at all.
		if cached != nil {
			log.Printf("[WARN] fetch %s failed (%v), serving stale cache through %s",
				ticker, err, cached.LastDate().Format("2006-01-02"))
			p.mem[ticker] = cached
			return cached, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, ticker, err)
	}
	series, err := model.NewPriceSeries(ticker, points)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	if err := p.cache.Store(series); err != nil {
		log.Printf("[WARN] price cache store %s: %v", ticker, err)
	}
	p.mem[ticker] = series
	return series, nil
}

// fresh reports whether the cached series is recent enough to reuse without
// a refetch. A first close after the requested start is fine: it means the
// instrument listed later than the history window begins.
func (p *Provider) fresh(s *model.PriceSeries) bool {
	return time.Since(s.LastDate()) < staleAfter
}

// ClearCache drops the in-memory series map. The disk cache is untouched.
func (p *Provider) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mem = make(map[string]*model.PriceSeries)
}
