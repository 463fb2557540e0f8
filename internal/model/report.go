package model

import "time"

// Report is one full evaluation, handed to rendering, the HTTP API and
// the recorder. Results may be shorter than the period table: periods
// with no resolvable baseline are omitted.
type Report struct {
	Symbol       string         `json:"symbol"`
	CurrentPrice float64        `json:"current_price"`
	Investment   float64        `json:"investment"`
	Results      []PeriodResult `json:"results"`
	Chart        []ChartPoint   `json:"chart"`
	GeneratedAt  time.Time      `json:"generated_at"`
}
