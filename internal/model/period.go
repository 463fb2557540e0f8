package model

// Lookback selects the baseline-price strategy for a period. It is a
// closed sum: either DaysBack or YearAverage, dispatched once per
// PeriodSpec by the evaluator.
type Lookback interface {
	lookback()
}

// DaysBack resolves the baseline to the trading day nearest to n days ago.
type DaysBack int

// YearAverage resolves the baseline to the mean price over the calendar
// year n years before the current one.
type YearAverage int

func (DaysBack) lookback()    {}
func (YearAverage) lookback() {}

// PeriodSpec names one lookback period.
type PeriodSpec struct {
	Label    string
	Lookback Lookback
}

// PeriodResult is the return calculation for one resolvable period.
// BaselinePrice is the raw (actually quoted) historical price; the
// adjusted baseline is only used internally for the share count.
type PeriodResult struct {
	Label             string  `json:"label"`
	BaselinePrice     float64 `json:"baseline_price"`
	ImpliedShares     float64 `json:"implied_shares"`
	CurrentValue      float64 `json:"current_value"`
	Profit            float64 `json:"profit"`
	ProfitRatePercent float64 `json:"profit_rate_percent"`
	IsProfit          bool    `json:"is_profit"`
	UsedYearAverage   bool    `json:"used_year_average"`
}
