// Package fitfile extracts heart-rate samples from Garmin FIT activity files
// and computes descriptive statistics over them.
package fitfile

import (
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/tormoder/fit"
)

// Sample is a single timestamped heart-rate reading.
type Sample struct {
	Timestamp time.Time
	HeartRate int
}

// Series is an ordered sequence of heart-rate samples.
type Series []Sample

// Decode reads a FIT activity container and returns its heart-rate series.
// Records without a heart-rate reading are skipped. The returned series may
// be empty if the activity carries no heart-rate data at all.
func Decode(r io.Reader) (Series, error) {
	decoded, err := fit.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode FIT file: %w", err)
	}

	activity, err := decoded.Activity()
	if err != nil {
		return nil, fmt.Errorf("activity FIT expected: %w", err)
	}

	return seriesFromRecords(activity.Records), nil
}

// seriesFromRecords pulls the valid heart-rate readings out of the record
// messages and orders them by timestamp.
func seriesFromRecords(records []*fit.RecordMsg) Series {
	series := make(Series, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		// 0xFF is the FIT invalid-value sentinel for heart rate.
		if rec.HeartRate == math.MaxUint8 {
			continue
		}
		series = append(series, Sample{
			Timestamp: validTimeOrZero(rec.Timestamp),
			HeartRate: int(rec.HeartRate),
		})
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})

	return series
}

// Values returns the heart-rate values of the series in order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, sample := range s {
		values[i] = float64(sample.HeartRate)
	}
	return values
}

func validTimeOrZero(t time.Time) time.Time {
	if t.IsZero() || fit.IsBaseTime(t) {
		return time.Time{}
	}
	return t
}
