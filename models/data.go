package models

import (
	"strconv"
	"time"

	"github.com/fitdash/fitfile"
)

type ChartData struct {
	Title    string
	Subtitle string
	XAxis    []string
	Series   map[string][]int
}

// Activity is one parsed FIT upload held for the current session.
type Activity struct {
	ID        string
	Name      string
	LoadedAt  time.Time
	Series    fitfile.Series
	Summary   fitfile.Summary
	Histogram fitfile.Histogram
}

// ChartData flattens the heart-rate series for the time-series chart.
func (a *Activity) ChartData() ChartData {
	xAxis := make([]string, len(a.Series))
	values := make([]int, len(a.Series))
	for i, sample := range a.Series {
		if sample.Timestamp.IsZero() {
			// Fall back to the sample index when the record had no timestamp.
			xAxis[i] = strconv.Itoa(i)
		} else {
			xAxis[i] = sample.Timestamp.Format("15:04:05")
		}
		values[i] = sample.HeartRate
	}

	return ChartData{
		Title:    "Heart Rate Over Time",
		Subtitle: a.Name,
		XAxis:    xAxis,
		Series:   map[string][]int{"Heart Rate": values},
	}
}
