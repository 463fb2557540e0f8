package series

import (
	"fmt"
	"time"

	"github.com/phinics77/back-tracking/internal/model"
)

// chartTargetPoints caps the display sample size.
const chartTargetPoints = 100

// Normalized is the cleaned output of Normalize.
type Normalized struct {
	Points []model.PricePoint
	Chart  []model.ChartPoint
	// CurrentRawPrice is the last raw sample, the real tradable price.
	// Zero only when Points is empty.
	CurrentRawPrice float64
}

// Normalize aligns the parallel arrays of a chart response into a
// PricePoint sequence plus a display sample.
//
// Mismatched lengths and a null final raw price are fatal input-shape
// errors. An entirely missing adjusted array is not: the adjusted track
// falls back to the raw track element-wise, trading accuracy around
// splits/dividends for availability. Empty input yields empty output.
func Normalize(timestamps []int64, adjusted, raw []*float64) (*Normalized, error) {
	if len(raw) != len(timestamps) {
		return nil, fmt.Errorf("series: raw length %d != timestamp length %d", len(raw), len(timestamps))
	}
	if len(adjusted) > 0 && len(adjusted) != len(timestamps) {
		return nil, fmt.Errorf("series: adjusted length %d != timestamp length %d", len(adjusted), len(timestamps))
	}
	if len(timestamps) == 0 {
		return &Normalized{}, nil
	}
	last := raw[len(raw)-1]
	if last == nil {
		return nil, fmt.Errorf("series: current price unavailable, final raw sample is null")
	}

	adj := adjusted
	if len(adj) == 0 {
		adj = raw
	}
	points := make([]model.PricePoint, len(timestamps))
	for i, ts := range timestamps {
		points[i] = model.PricePoint{Timestamp: ts, Adjusted: adj[i], Raw: raw[i]}
	}

	return &Normalized{
		Points:          points,
		Chart:           sampleChart(points),
		CurrentRawPrice: *last,
	}, nil
}

// sampleChart picks roughly chartTargetPoints evenly strided points
// whose adjusted price is present. Cosmetic only: the evaluator never
// reads the sample, so the stride cannot influence any result.
func sampleChart(points []model.PricePoint) []model.ChartPoint {
	stride := len(points) / chartTargetPoints
	if stride < 1 {
		stride = 1
	}
	var out []model.ChartPoint
	for i := 0; i < len(points); i += stride {
		p := points[i]
		if p.Adjusted == nil {
			continue
		}
		out = append(out, model.ChartPoint{
			DisplayDate: time.Unix(p.Timestamp, 0).UTC().Format("2006-01-02"),
			Price:       *p.Adjusted,
		})
	}
	return out
}
