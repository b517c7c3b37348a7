package fitfile

import "testing"

func TestHistogramCountsSumToSampleCount(t *testing.T) {
	series := seriesFromValues(60, 62, 64, 66, 70, 75, 80, 80, 61, 73)
	h := NewHistogram(series, 5)

	if len(h.Counts) != 5 {
		t.Fatalf("expected 5 bins, got %d", len(h.Counts))
	}
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	if total != len(series) {
		t.Errorf("expected counts to sum to %d, got %d", len(series), total)
	}
}

func TestHistogramMaxValueInLastBin(t *testing.T) {
	series := seriesFromValues(60, 70, 80)
	h := NewHistogram(series, 4)

	if h.Counts[len(h.Counts)-1] != 1 {
		t.Errorf("expected the max value in the last bin: %#v", h.Counts)
	}
	if h.BinIndex(80) != len(h.Counts)-1 {
		t.Errorf("BinIndex(max) = %d, want %d", h.BinIndex(80), len(h.Counts)-1)
	}
}

func TestHistogramSingleValueSeries(t *testing.T) {
	h := NewHistogram(seriesFromValues(72, 72, 72), 20)
	if len(h.Counts) != 1 {
		t.Fatalf("expected one bin for a degenerate range, got %d", len(h.Counts))
	}
	if h.Counts[0] != 3 {
		t.Errorf("expected 3 samples in the only bin, got %d", h.Counts[0])
	}
}

func TestHistogramEmptySeries(t *testing.T) {
	h := NewHistogram(nil, 20)
	if len(h.Counts) != 0 || len(h.Labels) != 0 {
		t.Errorf("expected an empty histogram, got %#v", h)
	}
}

func TestHistogramInvalidBinCountFallsBack(t *testing.T) {
	series := seriesFromValues(60, 70, 80, 90)
	h := NewHistogram(series, 0)
	if len(h.Counts) != DefaultBins {
		t.Errorf("expected %d bins, got %d", DefaultBins, len(h.Counts))
	}
}
