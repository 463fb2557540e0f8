package backtrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phinics77/back-tracking/internal/model"
)

func TestPeriods_Table(t *testing.T) {
	require.Len(t, Periods, 9)

	wantDays := []int{7, 30, 90, 180, 365}
	for i, n := range wantDays {
		lb, ok := Periods[i].Lookback.(model.DaysBack)
		require.True(t, ok, "period %d must be a days-back lookup", i)
		assert.Equal(t, model.DaysBack(n), lb)
	}

	wantYears := []int{2, 3, 5, 10}
	for i, n := range wantYears {
		lb, ok := Periods[5+i].Lookback.(model.YearAverage)
		require.True(t, ok, "period %d must be a year average", 5+i)
		assert.Equal(t, model.YearAverage(n), lb)
	}

	seen := map[string]bool{}
	for _, p := range Periods {
		assert.NotEmpty(t, p.Label)
		assert.False(t, seen[p.Label], "duplicate label %s", p.Label)
		seen[p.Label] = true
	}
}
