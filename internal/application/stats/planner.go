package stats

import (
	"sort"
	"time"

	"github.com/sangkips/cafeteria-pos/internal/domain/enum"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
)

// Bucket counts per fixed timeframe
const (
	DayBuckets   = 24
	WeekBuckets  = 7
	MonthBuckets = 5
	YearBuckets  = 12
	AllBuckets   = 10
)

// monthPeriodDays is the width of one MONTH bucket.
const monthPeriodDays = 6

// Bucket is one time sub-range of a reporting window. It covers
// [Start, End) unless Closed, in which case End is included.
type Bucket struct {
	Key    string
	Label  string
	Start  time.Time
	End    time.Time
	Closed bool
}

// Contains reports whether t falls in the bucket.
func (b Bucket) Contains(t time.Time) bool {
	if t.Before(b.Start) {
		return false
	}
	if b.Closed {
		return !t.After(b.End)
	}
	return t.Before(b.End)
}

// Plan returns the ascending buckets of a fixed timeframe ending at now.
// ALL is data driven and returns nil here; see PlanAll.
func Plan(tf enum.TimeFrame, now time.Time) []Bucket {
	switch tf {
	case enum.TimeFrameDay:
		return planDay(now)
	case enum.TimeFrameWeek:
		return planWeek(now)
	case enum.TimeFrameMonth:
		return planMonth(now)
	case enum.TimeFrameYear:
		return planYear(now)
	default:
		return nil
	}
}

func planDay(now time.Time) []Bucket {
	y, m, d := now.Date()
	current := time.Date(y, m, d, now.Hour(), 0, 0, 0, now.Location())

	buckets := make([]Bucket, 0, DayBuckets)
	for i := DayBuckets - 1; i >= 0; i-- {
		start := current.Add(-time.Duration(i) * time.Hour)
		buckets = append(buckets, Bucket{
			Key:   start.Format("2006-01-02 15:00"),
			Label: start.Format("15:00"),
			Start: start,
			End:   start.Add(time.Hour),
		})
	}
	return buckets
}

func planWeek(now time.Time) []Bucket {
	today := StartOfDay(now)

	buckets := make([]Bucket, 0, WeekBuckets)
	for i := WeekBuckets - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		buckets = append(buckets, Bucket{
			Key:   DayKey(start),
			Label: start.Format("Mon 02"),
			Start: start,
			End:   start.AddDate(0, 0, 1),
		})
	}
	return buckets
}

// planMonth builds five closed six-day periods. Period i ends on the day of
// now-(4-i)*6d and starts five days earlier, so periods tile the last 30 days.
func planMonth(now time.Time) []Bucket {
	buckets := make([]Bucket, 0, MonthBuckets)
	for i := 0; i < MonthBuckets; i++ {
		end := now.AddDate(0, 0, -(MonthBuckets-1-i)*monthPeriodDays)
		start := end.AddDate(0, 0, -(monthPeriodDays - 1))
		buckets = append(buckets, Bucket{
			Key:    DayKey(start),
			Label:  start.Format("01-02") + " - " + end.Format("01-02"),
			Start:  StartOfDay(start),
			End:    EndOfDay(end),
			Closed: true,
		})
	}
	return buckets
}

func planYear(now time.Time) []Bucket {
	current := StartOfMonth(now)

	buckets := make([]Bucket, 0, YearBuckets)
	for i := YearBuckets - 1; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)
		buckets = append(buckets, Bucket{
			Key:   start.Format("2006-01"),
			Label: start.Format("Jan 2006"),
			Start: start,
			End:   start.AddDate(0, 1, 0),
		})
	}
	return buckets
}

// PlanAll splits the span from the earliest sample to now into ten equal
// intervals of whole days. With fewer than ten samples, or less than one day
// of history, it falls back to one bucket per distinct day present.
func PlanAll(samples []repository.TimeSample, now time.Time) []Bucket {
	if len(samples) == 0 {
		return nil
	}
	sorted := sortedSamples(samples)
	first := sorted[0].Timestamp

	totalDays := WholeDaysBetween(first, now.In(first.Location()))
	if len(sorted) < AllBuckets || totalDays <= 0 {
		return planDistinctDays(sorted)
	}

	intervalDays := (totalDays + AllBuckets - 1) / AllBuckets
	buckets := make([]Bucket, 0, AllBuckets)
	for i := 0; i < AllBuckets; i++ {
		start := first.AddDate(0, 0, i*intervalDays)
		b := Bucket{
			Key:   DayKey(start),
			Label: DayKey(start),
			Start: start,
			End:   first.AddDate(0, 0, (i+1)*intervalDays),
		}
		if i == AllBuckets-1 {
			// samples dated on the final boundary day still belong here
			b.End = EndOfDay(b.End)
			b.Closed = true
		}
		buckets = append(buckets, b)
	}
	return buckets
}

func planDistinctDays(sorted []repository.TimeSample) []Bucket {
	var buckets []Bucket
	seen := make(map[string]bool)
	for _, s := range sorted {
		key := DayKey(s.Timestamp)
		if seen[key] {
			continue
		}
		seen[key] = true
		start := StartOfDay(s.Timestamp)
		buckets = append(buckets, Bucket{
			Key:   key,
			Label: key,
			Start: start,
			End:   start.AddDate(0, 0, 1),
		})
	}
	return buckets
}

func sortedSamples(samples []repository.TimeSample) []repository.TimeSample {
	sorted := make([]repository.TimeSample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// FetchWindow returns the SQL grain and the order date range to load for a
// timeframe. The range is a little wider than the buckets; the aggregator
// drops what falls outside. ALL has no window.
func FetchWindow(tf enum.TimeFrame, now time.Time) (repository.Grain, *repository.TimeWindow) {
	switch tf {
	case enum.TimeFrameDay:
		return repository.GrainHour, &repository.TimeWindow{Start: now.Add(-25 * time.Hour), End: now}
	case enum.TimeFrameWeek:
		return repository.GrainDay, &repository.TimeWindow{Start: StartOfDay(now.AddDate(0, 0, -7)), End: EndOfDay(now)}
	case enum.TimeFrameMonth:
		return repository.GrainDay, &repository.TimeWindow{Start: StartOfDay(now.AddDate(0, 0, -30)), End: EndOfDay(now)}
	case enum.TimeFrameYear:
		return repository.GrainMonth, &repository.TimeWindow{Start: StartOfMonth(now.AddDate(0, -12, 0)), End: EndOfDay(now)}
	default:
		return repository.GrainDay, nil
	}
}
