package backtrack

import "github.com/phinics77/back-tracking/internal/model"

// Periods is the fixed lookback table: five nearest-trading-day periods
// and four calendar-year averages.
var Periods = []model.PeriodSpec{
	{Label: "一周前", Lookback: model.DaysBack(7)},
	{Label: "一月前", Lookback: model.DaysBack(30)},
	{Label: "三月前", Lookback: model.DaysBack(90)},
	{Label: "半年前", Lookback: model.DaysBack(180)},
	{Label: "一年前", Lookback: model.DaysBack(365)},
	{Label: "两年前(年均)", Lookback: model.YearAverage(2)},
	{Label: "三年前(年均)", Lookback: model.YearAverage(3)},
	{Label: "五年前(年均)", Lookback: model.YearAverage(5)},
	{Label: "十年前(年均)", Lookback: model.YearAverage(10)},
}
