package pricecache

import "dcasim/internal/model"

// Cache stores fetched daily price series so repeated runs skip the network.
// Load returns (nil, nil) on a cache miss.
type Cache interface {
	Load(ticker string) (*model.PriceSeries, error)
	Store(series *model.PriceSeries) error
	Close() error
}
