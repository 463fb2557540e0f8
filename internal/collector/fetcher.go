package collector

import "github.com/phinics77/back-tracking/internal/model"

// Fetcher defines the interface for fetching daily chart data.
type Fetcher interface {
	// FetchDailyChart returns the raw parallel arrays for the symbol
	// over the given upstream range (e.g. "1y", "10y").
	FetchDailyChart(symbol, rng string) (*model.RawChart, error)
	Name() string
}
