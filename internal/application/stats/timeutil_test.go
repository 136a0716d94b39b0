package stats

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
)

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestWholeDaysBetween(t *testing.T) {
	loc := berlin(t)

	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", time.Date(2024, 6, 10, 8, 0, 0, 0, loc), time.Date(2024, 6, 10, 23, 0, 0, 0, loc), 0},
		{"partial day", time.Date(2024, 6, 9, 14, 0, 0, 0, loc), time.Date(2024, 6, 10, 10, 0, 0, 0, loc), 0},
		{"spring forward", time.Date(2024, 3, 30, 0, 30, 0, 0, loc), time.Date(2024, 4, 1, 0, 30, 0, 0, loc), 2},
		{"fall back", time.Date(2024, 10, 26, 12, 0, 0, 0, loc), time.Date(2024, 10, 28, 12, 0, 0, 0, loc), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WholeDaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("expected %d days, got %d", tt.want, got)
			}
		})
	}
}

func TestPlanAll_SpanAcrossSpringForward(t *testing.T) {
	loc := berlin(t)
	first := time.Date(2024, 3, 11, 0, 30, 0, 0, loc)
	now := time.Date(2024, 4, 1, 0, 30, 0, 0, loc)

	samples := make([]repository.TimeSample, AllBuckets)
	for i := range samples {
		samples[i] = repository.TimeSample{Timestamp: first.AddDate(0, 0, i), Value: 1}
	}

	buckets := PlanAll(samples, now)
	if len(buckets) != AllBuckets {
		t.Fatalf("expected %d buckets, got %d", AllBuckets, len(buckets))
	}
	// 21 days split in ten gives three day intervals
	if want := first.AddDate(0, 0, 3); !buckets[1].Start.Equal(want) {
		t.Errorf("expected second bucket to start %v, got %v", want, buckets[1].Start)
	}
}
