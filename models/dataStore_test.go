package models

import (
	"testing"
	"time"

	"github.com/fitdash/fitfile"
)

func testSeries() fitfile.Series {
	start := time.Date(2023, 9, 21, 8, 0, 0, 0, time.UTC)
	return fitfile.Series{
		{Timestamp: start, HeartRate: 90},
		{Timestamp: start.Add(time.Second), HeartRate: 100},
	}
}

func TestDataStorePutGet(t *testing.T) {
	store := NewDataStore()
	series := testSeries()
	summary, err := fitfile.Summarize(series)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	act := store.Put("morning_run.fit", series, summary, fitfile.NewHistogram(series, 5))
	if act.ID == "" {
		t.Fatal("expected a generated activity id")
	}

	got, ok := store.Get(act.ID)
	if !ok {
		t.Fatalf("activity %s not found", act.ID)
	}
	if got.Name != "morning_run.fit" {
		t.Errorf("expected name morning_run.fit, got %s", got.Name)
	}
	if len(got.Series) != 2 {
		t.Errorf("expected 2 samples, got %d", len(got.Series))
	}
}

func TestDataStoreGetUnknown(t *testing.T) {
	store := NewDataStore()
	if _, ok := store.Get("nope"); ok {
		t.Error("expected a miss for an unknown id")
	}
}

func TestDataStoreRecentNewestFirst(t *testing.T) {
	store := NewDataStore()
	series := testSeries()
	summary, _ := fitfile.Summarize(series)

	first := store.Put("a.fit", series, summary, fitfile.Histogram{})
	second := store.Put("b.fit", series, summary, fitfile.Histogram{})

	recent := store.Recent(10)
	if len(recent) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(recent))
	}
	if recent[0].ID != second.ID || recent[1].ID != first.ID {
		t.Errorf("expected newest first, got %s then %s", recent[0].ID, recent[1].ID)
	}

	if got := store.Recent(1); len(got) != 1 || got[0].ID != second.ID {
		t.Errorf("expected limit to cap the list: %#v", got)
	}
}

func TestActivityChartData(t *testing.T) {
	series := testSeries()
	act := &Activity{Name: "ride.fit", Series: series}

	data := act.ChartData()
	if len(data.XAxis) != 2 {
		t.Fatalf("expected 2 x-axis entries, got %d", len(data.XAxis))
	}
	if data.XAxis[0] != "08:00:00" {
		t.Errorf("expected formatted timestamp, got %q", data.XAxis[0])
	}
	if hr := data.Series["Heart Rate"]; len(hr) != 2 || hr[1] != 100 {
		t.Errorf("unexpected series values: %#v", data.Series)
	}
}

func TestActivityChartDataIndexFallback(t *testing.T) {
	series := fitfile.Series{
		{HeartRate: 80}, // no timestamp on the record
		{Timestamp: time.Date(2023, 9, 21, 8, 0, 1, 0, time.UTC), HeartRate: 85},
	}
	act := &Activity{Name: "ride.fit", Series: series}

	data := act.ChartData()
	if data.XAxis[0] != "0" {
		t.Errorf("expected point-index fallback %q, got %q", "0", data.XAxis[0])
	}
	if data.XAxis[1] != "08:00:01" {
		t.Errorf("expected formatted timestamp, got %q", data.XAxis[1])
	}
}
