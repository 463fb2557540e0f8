package collector

import (
	"fmt"
	"time"

	"github.com/phinics77/back-tracking/internal/backtrack"
	"github.com/phinics77/back-tracking/internal/model"
	"github.com/phinics77/back-tracking/internal/series"
)

// chartRange covers the longest lookback in the period table.
const chartRange = "10y"

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Chart *model.RawChart
	Price float64
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyChart(symbol, _ string) (*model.RawChart, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Chart != nil {
		return m.Chart, nil
	}
	return GenerateMockChart(symbol, m.Price, 300), nil
}

// GenerateMockChart builds a gentle daily ramp ending at basePrice today.
func GenerateMockChart(symbol string, basePrice float64, days int) *model.RawChart {
	chart := &model.RawChart{
		Symbol:     symbol,
		Timestamps: make([]int64, days),
		Adjusted:   make([]*float64, days),
		Raw:        make([]*float64, days),
	}
	now := time.Now()
	for i := 0; i < days; i++ {
		p := basePrice * (1 + float64(i-(days-1))*0.0005)
		v := p
		chart.Timestamps[i] = now.AddDate(0, 0, -(days - 1 - i)).Unix()
		chart.Adjusted[i] = &v
		chart.Raw[i] = &v
	}
	return chart
}

// Collector orchestrates fetching, normalization and evaluation.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol}
}

// Collect fetches the daily chart and evaluates every lookback period
// against the given investment amount.
func (c *Collector) Collect(investment float64, now time.Time) (*model.Report, error) {
	chart, err := c.Fetcher.FetchDailyChart(c.Symbol, chartRange)
	if err != nil {
		return nil, fmt.Errorf("fetch daily chart: %w", err)
	}

	norm, err := series.Normalize(chart.Timestamps, chart.Adjusted, chart.Raw)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", c.Symbol, err)
	}

	return &model.Report{
		Symbol:       c.Symbol,
		CurrentPrice: norm.CurrentRawPrice,
		Investment:   investment,
		Results:      backtrack.Evaluate(norm.Points, norm.CurrentRawPrice, investment, backtrack.Periods, now),
		Chart:        norm.Chart,
		GeneratedAt:  now,
	}, nil
}
