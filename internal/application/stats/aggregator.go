package stats

import (
	"time"

	"github.com/sangkips/cafeteria-pos/internal/domain/enum"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/pkg/apperror"
)

// Point is one (label, value) pair of a chart series
type Point struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// Series is an ordered, gap-filled chart line
type Series []Point

// Total sums every point of the series.
func (s Series) Total() float64 {
	var total float64
	for _, p := range s {
		total += p.Y
	}
	return total
}

// Aggregate sums samples into the buckets of tf ending at now. Every bucket
// is emitted, zero when nothing matched. ALL with no samples yields an empty
// series.
func Aggregate(samples []repository.TimeSample, tf enum.TimeFrame, now time.Time) (Series, error) {
	if !tf.IsValid() {
		return nil, apperror.NewBadRequestError("unknown timeframe: " + tf.String())
	}

	var buckets []Bucket
	if tf == enum.TimeFrameAll {
		buckets = PlanAll(samples, now)
	} else {
		buckets = Plan(tf, now)
	}

	values := make([]float64, len(buckets))
	cutoff, hasCutoff := recencyCutoff(tf, now)
	for _, s := range samples {
		idx := locate(buckets, s.Timestamp)
		if idx < 0 {
			if !hasCutoff || !s.Timestamp.After(cutoff) {
				continue
			}
			idx = nearest(buckets, s.Timestamp)
		}
		values[idx] += s.Value
	}

	series := make(Series, len(buckets))
	for i, b := range buckets {
		series[i] = Point{X: b.Label, Y: values[i]}
	}
	return series, nil
}

// locate returns the first bucket containing t, or -1.
func locate(buckets []Bucket, t time.Time) int {
	for i, b := range buckets {
		if b.Contains(t) {
			return i
		}
	}
	return -1
}

// nearest clamps t to the first or last bucket.
func nearest(buckets []Bucket, t time.Time) int {
	if len(buckets) == 0 {
		return -1
	}
	if t.Before(buckets[0].Start) {
		return 0
	}
	return len(buckets) - 1
}

// recencyCutoff is the instant a sample must be strictly after to be kept
// when it misses every bucket. MONTH and ALL have none.
func recencyCutoff(tf enum.TimeFrame, now time.Time) (time.Time, bool) {
	switch tf {
	case enum.TimeFrameDay:
		return now.Add(-24 * time.Hour), true
	case enum.TimeFrameWeek:
		return now.AddDate(0, 0, -7), true
	case enum.TimeFrameYear:
		return now.AddDate(0, -12, 0), true
	default:
		return time.Time{}, false
	}
}
