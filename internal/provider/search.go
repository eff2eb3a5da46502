package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// SearchResult is one ticker candidate for a free-text query.
type SearchResult struct {
	Symbol string
	Name   string
}

// TickerSearch resolves company-name queries to ticker symbols via the Yahoo
// Finance search API.
type TickerSearch struct {
	Client *http.Client
}

// NewTickerSearch creates a search client with optional proxy support.
func NewTickerSearch(proxyURL string) *TickerSearch {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TickerSearch{
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

// Search returns (symbol, name) candidates for the query, restricted to
// equities and ETFs. It never fails: network or decode problems are logged
// and yield an empty result.
func (s *TickerSearch) Search(query string) []SearchResult {
	if query == "" {
		return nil
	}
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v1/finance/search?q=%s&quotesCount=10&newsCount=0",
		url.QueryEscape(query))

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		log.Printf("[WARN] ticker search request: %v", err)
		return nil
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		log.Printf("[WARN] ticker search: %v", err)
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[WARN] ticker search read body: %v", err)
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[WARN] ticker search: status %d", resp.StatusCode)
		return nil
	}

	var result struct {
		Quotes []struct {
			Symbol    string `json:"symbol"`
			ShortName string `json:"shortname"`
			QuoteType string `json:"quoteType"`
		} `json:"quotes"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		log.Printf("[WARN] ticker search decode: %v", err)
		return nil
	}

	results := make([]SearchResult, 0, len(result.Quotes))
	for _, q := range result.Quotes {
		if q.QuoteType != "EQUITY" && q.QuoteType != "ETF" {
			continue
		}
		results = append(results, SearchResult{Symbol: q.Symbol, Name: q.ShortName})
	}
	return results
}
