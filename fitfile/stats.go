package fitfile

import (
	"errors"
	"math"
	"sort"
)

// ErrNoHeartRate reports a series with nothing to summarize.
var ErrNoHeartRate = errors.New("no heart-rate data found")

// Summary holds descriptive statistics over a heart-rate series.
type Summary struct {
	Mean   float64
	Min    float64
	Max    float64
	Q1     float64
	Median float64
	Q3     float64
}

// Summarize computes mean, min, max and quartiles over the heart-rate values
// of the series. An empty series returns ErrNoHeartRate.
func Summarize(series Series) (Summary, error) {
	if len(series) == 0 {
		return Summary{}, ErrNoHeartRate
	}

	sorted := series.Values()
	sort.Float64s(sorted)
	n := len(sorted)

	mean := 0.0
	for _, v := range sorted {
		mean += v
	}
	mean /= float64(n)

	return Summary{
		Mean:   mean,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.50),
		Q3:     quantile(sorted, 0.75),
	}, nil
}

// quantile estimates the p-th quantile of a sorted slice by linear
// interpolation between order statistics: h = p*(n-1), interpolating
// between s[floor(h)] and s[floor(h)+1].
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo < 0 {
		lo = 0
	}
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
