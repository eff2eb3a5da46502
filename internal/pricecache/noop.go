package pricecache

import "dcasim/internal/model"

// NoopCache is a no-op implementation used when SQLite is not configured.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (n *NoopCache) Load(_ string) (*model.PriceSeries, error) { return nil, nil }
func (n *NoopCache) Store(_ *model.PriceSeries) error          { return nil }
func (n *NoopCache) Close() error                              { return nil }
