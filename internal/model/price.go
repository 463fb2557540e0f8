package model

// PricePoint is one daily observation from the upstream chart.
// A nil price means the upstream reported null for that day (market
// holiday, missing adjclose). Such points keep their index in the
// series but are excluded from baseline matching and averaging.
type PricePoint struct {
	Timestamp int64
	Adjusted  *float64
	Raw       *float64
}

// RawChart carries the parallel arrays exactly as the chart envelope
// delivers them. Adjusted is nil when the upstream omits the adjclose
// block entirely.
type RawChart struct {
	Symbol     string
	Timestamps []int64
	Adjusted   []*float64
	Raw        []*float64
}

// ChartPoint is a down-sampled view of the series for visualization.
type ChartPoint struct {
	DisplayDate string  `json:"date"`
	Price       float64 `json:"price"`
}
