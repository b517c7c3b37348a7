package fitfile

import "fmt"

// DefaultBins matches the bin count of the distribution chart.
const DefaultBins = 20

// Histogram buckets heart-rate values into equal-width bins.
type Histogram struct {
	Labels []string
	Counts []int
	edges  []float64
}

// NewHistogram buckets the series into bins equal-width bins over the value
// range. A series with a single distinct value collapses into one bin; an
// empty series returns an empty histogram.
func NewHistogram(series Series, bins int) Histogram {
	if len(series) == 0 {
		return Histogram{}
	}
	if bins < 1 {
		bins = DefaultBins
	}

	min := float64(series[0].HeartRate)
	max := min
	for _, sample := range series[1:] {
		v := float64(sample.HeartRate)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return Histogram{
			Labels: []string{fmt.Sprintf("%.0f", min)},
			Counts: []int{len(series)},
			edges:  []float64{min, max},
		}
	}

	width := (max - min) / float64(bins)
	h := Histogram{
		Labels: make([]string, bins),
		Counts: make([]int, bins),
		edges:  make([]float64, bins+1),
	}
	for i := 0; i < bins; i++ {
		lo := min + float64(i)*width
		h.edges[i] = lo
		h.Labels[i] = fmt.Sprintf("%.0f-%.0f", lo, lo+width)
	}
	h.edges[bins] = max

	for _, sample := range series {
		h.Counts[h.BinIndex(float64(sample.HeartRate))]++
	}
	return h
}

// BinIndex returns the bin a value falls into. The maximum value belongs to
// the last bin, values outside the range clamp to the nearest bin.
func (h Histogram) BinIndex(v float64) int {
	if len(h.Counts) == 0 {
		return 0
	}
	last := len(h.Counts) - 1
	if v <= h.edges[0] {
		return 0
	}
	if v >= h.edges[len(h.edges)-1] {
		return last
	}
	width := (h.edges[len(h.edges)-1] - h.edges[0]) / float64(len(h.Counts))
	idx := int((v - h.edges[0]) / width)
	if idx > last {
		idx = last
	}
	return idx
}
