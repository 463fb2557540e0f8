package backtrack

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phinics77/back-tracking/internal/model"
)

func fp(v float64) *float64 { return &v }

// dailySeries builds one point per day from start (days ago) up to now,
// with prices interpolated linearly from first to last.
func dailySeries(now time.Time, days int, first, last float64) []model.PricePoint {
	points := make([]model.PricePoint, days+1)
	for i := 0; i <= days; i++ {
		price := first + (last-first)*float64(i)/float64(days)
		points[i] = model.PricePoint{
			Timestamp: now.AddDate(0, 0, i-days).Unix(),
			Adjusted:  fp(price),
			Raw:       fp(price),
		}
	}
	return points
}

func TestEvaluate_SevenDaysBack(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	points := dailySeries(now, 7, 100, 150)

	periods := []model.PeriodSpec{{Label: "一周前", Lookback: model.DaysBack(7)}}
	results := Evaluate(points, 150, 1000, periods, now)

	require.Len(t, results, 1)
	r := results[0]
	assert.InDelta(t, 100, r.BaselinePrice, 1e-9)
	assert.InDelta(t, 10, r.ImpliedShares, 1e-9)
	assert.InDelta(t, 1500, r.CurrentValue, 1e-9)
	assert.InDelta(t, 500, r.Profit, 1e-9)
	assert.InDelta(t, 50, r.ProfitRatePercent, 1e-9)
	assert.True(t, r.IsProfit)
	assert.False(t, r.UsedYearAverage)
}

func TestEvaluate_YearAverage(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	year := 2024 // two years back
	points := []model.PricePoint{
		{Timestamp: time.Date(year, 2, 1, 0, 0, 0, 0, time.UTC).Unix(), Adjusted: fp(10), Raw: fp(11)},
		{Timestamp: time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC).Unix(), Adjusted: fp(20), Raw: fp(21)},
		{Timestamp: time.Date(year, 11, 1, 0, 0, 0, 0, time.UTC).Unix(), Adjusted: fp(30), Raw: fp(31)},
	}

	periods := []model.PeriodSpec{{Label: "两年前(年均)", Lookback: model.YearAverage(2)}}
	results := Evaluate(points, 40, 1000, periods, now)

	require.Len(t, results, 1)
	r := results[0]
	// displayed baseline is the raw average, shares use the adjusted average
	assert.InDelta(t, 21, r.BaselinePrice, 1e-9)
	assert.InDelta(t, 1000.0/20, r.ImpliedShares, 1e-9)
	assert.InDelta(t, 1000.0/20*40, r.CurrentValue, 1e-9)
	assert.True(t, r.UsedYearAverage)
}

func TestEvaluate_YearAveragePartialPoints(t *testing.T) {
	// points missing either track do not contribute to the average
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	points := []model.PricePoint{
		{Timestamp: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Unix(), Adjusted: fp(10), Raw: fp(11)},
		{Timestamp: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).Unix(), Adjusted: nil, Raw: fp(999)},
		{Timestamp: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC).Unix(), Adjusted: fp(30), Raw: nil},
	}

	periods := []model.PeriodSpec{{Label: "两年前(年均)", Lookback: model.YearAverage(2)}}
	results := Evaluate(points, 40, 1000, periods, now)

	require.Len(t, results, 1)
	assert.InDelta(t, 11, results[0].BaselinePrice, 1e-9)
	assert.InDelta(t, 100, results[0].ImpliedShares, 1e-9)
}

func TestEvaluate_DegradedAdjustedEqualsRaw(t *testing.T) {
	// upstream with no adjclose: normalizer maps adjusted to raw, so
	// shares come from the raw baseline
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	points := dailySeries(now, 30, 50, 60)

	periods := []model.PeriodSpec{{Label: "一月前", Lookback: model.DaysBack(30)}}
	results := Evaluate(points, 60, 600, periods, now)

	require.Len(t, results, 1)
	assert.InDelta(t, 50, results[0].BaselinePrice, 1e-9)
	assert.InDelta(t, 12, results[0].ImpliedShares, 1e-9)
}

func TestEvaluate_UnresolvablePeriodOmitted(t *testing.T) {
	// series only reaches three years back, the 15-year average has no
	// qualifying points
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	points := dailySeries(now, 3*365, 80, 120)

	periods := []model.PeriodSpec{
		{Label: "一周前", Lookback: model.DaysBack(7)},
		{Label: "十五年前(年均)", Lookback: model.YearAverage(15)},
	}
	results := Evaluate(points, 120, 1000, periods, now)

	require.Len(t, results, 1)
	assert.Equal(t, "一周前", results[0].Label)
}

func TestEvaluate_FullTableLongSeries(t *testing.T) {
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	points := dailySeries(now, 11*365, 10, 200)

	results := Evaluate(points, 200, 1000, Periods, now)

	require.Len(t, results, len(Periods))
	for i, r := range results {
		assert.Equal(t, Periods[i].Label, r.Label, "order must follow the period table")
	}
}

func TestEvaluate_TieBreakEarlierPoint(t *testing.T) {
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	target := now.Unix() - 7*86400
	points := []model.PricePoint{
		{Timestamp: target - 3600, Adjusted: fp(100), Raw: fp(100)},
		{Timestamp: target + 3600, Adjusted: fp(200), Raw: fp(200)},
	}

	periods := []model.PeriodSpec{{Label: "一周前", Lookback: model.DaysBack(7)}}
	results := Evaluate(points, 100, 1000, periods, now)

	require.Len(t, results, 1)
	assert.InDelta(t, 100, results[0].BaselinePrice, 1e-9)
}

func TestEvaluate_NearestSkipsAbsentAdjusted(t *testing.T) {
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	target := now.Unix() - 7*86400
	points := []model.PricePoint{
		{Timestamp: target, Adjusted: nil, Raw: fp(100)}, // exact hit, but unusable
		{Timestamp: target + 2*86400, Adjusted: fp(110), Raw: fp(111)},
	}

	periods := []model.PeriodSpec{{Label: "一周前", Lookback: model.DaysBack(7)}}
	results := Evaluate(points, 120, 1000, periods, now)

	require.Len(t, results, 1)
	assert.InDelta(t, 111, results[0].BaselinePrice, 1e-9)
}

func TestEvaluate_SkipZeroOrAbsentBaseline(t *testing.T) {
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	target := now.Unix() - 7*86400
	periods := []model.PeriodSpec{{Label: "一周前", Lookback: model.DaysBack(7)}}

	// zero adjusted baseline must not divide
	zero := []model.PricePoint{{Timestamp: target, Adjusted: fp(0), Raw: fp(100)}}
	assert.Empty(t, Evaluate(zero, 100, 1000, periods, now))

	// chosen point without a raw price has no displayable baseline
	noRaw := []model.PricePoint{{Timestamp: target, Adjusted: fp(100), Raw: nil}}
	assert.Empty(t, Evaluate(noRaw, 100, 1000, periods, now))

	// no adjusted prices at all
	allNil := []model.PricePoint{{Timestamp: target, Adjusted: nil, Raw: fp(100)}}
	assert.Empty(t, Evaluate(allNil, 100, 1000, periods, now))

	// empty series
	assert.Empty(t, Evaluate(nil, 100, 1000, periods, now))
}

func TestEvaluate_ZeroInvestment(t *testing.T) {
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	points := dailySeries(now, 7, 100, 150)

	periods := []model.PeriodSpec{{Label: "一周前", Lookback: model.DaysBack(7)}}
	results := Evaluate(points, 150, 0, periods, now)

	require.Len(t, results, 1)
	r := results[0]
	assert.Zero(t, r.ImpliedShares)
	assert.Zero(t, r.CurrentValue)
	assert.Zero(t, r.Profit)
	assert.False(t, math.IsNaN(r.ProfitRatePercent))
	assert.Zero(t, r.ProfitRatePercent)
	assert.True(t, r.IsProfit)
}

func TestEvaluate_Idempotent(t *testing.T) {
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	points := dailySeries(now, 11*365, 10, 200)

	first := Evaluate(points, 200, 1234.56, Periods, now)
	second := Evaluate(points, 200, 1234.56, Periods, now)
	assert.Equal(t, first, second)
}

func TestEvaluate_InvariantsHold(t *testing.T) {
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	points := dailySeries(now, 11*365, 300, 120) // a losing position
	investment := 5000.0

	results := Evaluate(points, 120, investment, Periods, now)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.InDelta(t, r.ImpliedShares*120, r.CurrentValue, 1e-9)
		assert.InDelta(t, r.CurrentValue-investment, r.Profit, 1e-9)
		assert.Equal(t, r.Profit >= 0, r.IsProfit)
	}
}
