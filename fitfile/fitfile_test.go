package fitfile

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/tormoder/fit"
)

func TestDecodeMalformedInput(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not a FIT file")))
	if err == nil {
		t.Fatal("expected a decode error for garbage input")
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	_, err := Decode(bytes.NewReader(nil))
	if err == nil {
		t.Fatal("expected a decode error for empty input")
	}
}

func TestSeriesFromRecordsSkipsMissingHeartRate(t *testing.T) {
	base := time.Date(2023, 9, 21, 8, 0, 0, 0, time.UTC)
	records := []*fit.RecordMsg{
		{Timestamp: base, HeartRate: 95},
		{Timestamp: base.Add(1 * time.Second), HeartRate: math.MaxUint8}, // no reading
		nil,
		{Timestamp: base.Add(2 * time.Second), HeartRate: 102},
	}

	series := seriesFromRecords(records)
	if len(series) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(series))
	}
	if series[0].HeartRate != 95 || series[1].HeartRate != 102 {
		t.Errorf("unexpected heart rates: %#v", series)
	}
}

func TestSeriesFromRecordsOrdersByTimestamp(t *testing.T) {
	base := time.Date(2023, 9, 21, 8, 0, 0, 0, time.UTC)
	records := []*fit.RecordMsg{
		{Timestamp: base.Add(2 * time.Second), HeartRate: 110},
		{Timestamp: base, HeartRate: 90},
		{Timestamp: base.Add(1 * time.Second), HeartRate: 100},
	}

	series := seriesFromRecords(records)
	for i := 1; i < len(series); i++ {
		if series[i].Timestamp.Before(series[i-1].Timestamp) {
			t.Fatalf("series out of order at %d: %#v", i, series)
		}
	}
	if series[0].HeartRate != 90 || series[2].HeartRate != 110 {
		t.Errorf("unexpected ordering: %#v", series)
	}
}

func TestSeriesFromRecordsEmpty(t *testing.T) {
	if got := seriesFromRecords(nil); len(got) != 0 {
		t.Fatalf("expected empty series, got %#v", got)
	}
}
