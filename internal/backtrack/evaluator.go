// Package backtrack computes what a one-time historical purchase would
// be worth today, for each entry of a fixed lookback-period table.
//
// Share counts are derived from the adjusted price track so that splits
// and dividends do not distort them; the baseline shown to callers is
// the raw price the asset actually traded at.
package backtrack

import (
	"time"

	"github.com/phinics77/back-tracking/internal/model"
)

const daySeconds = 86400

// Evaluate produces one PeriodResult per resolvable period, in period
// order. Periods whose baseline cannot be resolved (no qualifying
// point, or a zero/absent price) are omitted rather than erroring: a
// short series legitimately cannot answer a ten-year lookback.
//
// Pure and deterministic: identical inputs, including now, give
// identical results. When investment is zero the implied share count is
// zero and ProfitRatePercent is reported as zero instead of NaN.
func Evaluate(points []model.PricePoint, currentRawPrice, investment float64, periods []model.PeriodSpec, now time.Time) []model.PeriodResult {
	results := make([]model.PeriodResult, 0, len(periods))
	for _, spec := range periods {
		var adjBase, rawBase float64
		var ok, yearAvg bool
		switch lb := spec.Lookback.(type) {
		case model.DaysBack:
			adjBase, rawBase, ok = nearestBaseline(points, now.Unix()-int64(lb)*daySeconds)
		case model.YearAverage:
			adjBase, rawBase, ok = yearAverageBaseline(points, now.UTC().Year()-int(lb))
			yearAvg = true
		}
		if !ok || adjBase <= 0 || rawBase <= 0 {
			continue
		}

		shares := investment / adjBase
		value := shares * currentRawPrice
		profit := value - investment
		rate := 0.0
		if investment != 0 {
			rate = profit / investment * 100
		}
		results = append(results, model.PeriodResult{
			Label:             spec.Label,
			BaselinePrice:     rawBase,
			ImpliedShares:     shares,
			CurrentValue:      value,
			Profit:            profit,
			ProfitRatePercent: rate,
			IsProfit:          profit >= 0,
			UsedYearAverage:   yearAvg,
		})
	}
	return results
}

// nearestBaseline selects the point with minimum |timestamp-target|
// among points with a present adjusted price. The scan is chronological,
// so ties keep the earlier point.
func nearestBaseline(points []model.PricePoint, target int64) (adj, raw float64, ok bool) {
	best := -1
	var bestDiff int64
	for i, p := range points {
		if p.Adjusted == nil {
			continue
		}
		diff := p.Timestamp - target
		if diff < 0 {
			diff = -diff
		}
		if best == -1 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	if points[best].Raw == nil {
		return 0, 0, false
	}
	return *points[best].Adjusted, *points[best].Raw, true
}

// yearAverageBaseline averages the adjusted and raw tracks separately
// over the given UTC calendar year, counting only points with both
// prices present. Year boundaries are UTC so results do not depend on
// the caller's timezone.
func yearAverageBaseline(points []model.PricePoint, year int) (adj, raw float64, ok bool) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()

	var adjSum, rawSum float64
	n := 0
	for _, p := range points {
		if p.Timestamp < start || p.Timestamp > end {
			continue
		}
		if p.Adjusted == nil || p.Raw == nil {
			continue
		}
		adjSum += *p.Adjusted
		rawSum += *p.Raw
		n++
	}
	if n == 0 {
		return 0, 0, false
	}
	return adjSum / float64(n), rawSum / float64(n), true
}
