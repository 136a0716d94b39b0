package repository

import (
	"strings"
	"testing"
	"time"

	domainRepo "github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/pkg/apperror"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var business = time.FixedZone("CEST", 2*60*60)

func dbFor(d gorm.Dialector) *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{Dialector: d}}
}

func TestParseBucket(t *testing.T) {
	tests := []struct {
		grain domainRepo.Grain
		key   string
		want  time.Time
	}{
		{domainRepo.GrainHour, "2024-06-10 14:00:00", time.Date(2024, 6, 10, 14, 0, 0, 0, business)},
		{domainRepo.GrainDay, "2024-06-10", time.Date(2024, 6, 10, 0, 0, 0, 0, business)},
		{domainRepo.GrainMonth, "2024-06", time.Date(2024, 6, 1, 0, 0, 0, 0, business)},
	}

	for _, tt := range tests {
		t.Run(string(tt.grain), func(t *testing.T) {
			got, err := parseBucket(tt.grain, tt.key, business)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if got.Location() != business {
				t.Errorf("expected location %v, got %v", business, got.Location())
			}
		})
	}
}

func TestParseBucket_Malformed(t *testing.T) {
	if _, err := parseBucket(domainRepo.GrainDay, "10/06/2024", business); err == nil {
		t.Errorf("expected malformed key to fail")
	}
	if _, err := parseBucket(domainRepo.GrainHour, "2024-06-10", business); err == nil {
		t.Errorf("expected day key to fail for hour grain")
	}
}

func TestBucketSamples_FailsWholeQuery(t *testing.T) {
	rows := []bucketRow{
		{Bucket: "2024-06-09", Value: 7},
		{Bucket: "garbage", Value: 12.5},
		{Bucket: "2024-06-10", Value: 3},
	}

	samples, err := bucketSamples("order totals", domainRepo.GrainDay, rows, business)
	if err == nil {
		t.Fatalf("expected error for unreadable bucket key")
	}
	if !apperror.IsStoreQuery(err) {
		t.Errorf("expected store query error, got %v", err)
	}
	if samples != nil {
		t.Errorf("expected no partial results, got %v", samples)
	}
}

func TestBucketSamples(t *testing.T) {
	rows := []bucketRow{{Bucket: "2024-05", Value: 40}, {Bucket: "2024-06", Value: 2.5}}

	samples, err := bucketSamples("order totals", domainRepo.GrainMonth, rows, business)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if want := time.Date(2024, 6, 1, 0, 0, 0, 0, business); !samples[1].Timestamp.Equal(want) || samples[1].Value != 2.5 {
		t.Errorf("unexpected sample %+v", samples[1])
	}
}

func TestBucketExpr(t *testing.T) {
	pg := dbFor(postgres.New(postgres.Config{DSN: "host=localhost"}))
	my := dbFor(mysql.New(mysql.Config{DSN: "user:pass@tcp(localhost:3306)/db"}))

	tests := []struct {
		name  string
		db    *gorm.DB
		grain domainRepo.Grain
		want  string
	}{
		{"postgres hour", pg, domainRepo.GrainHour, "to_char(o.date, 'YYYY-MM-DD HH24:00:00')"},
		{"postgres day", pg, domainRepo.GrainDay, "to_char(o.date, 'YYYY-MM-DD')"},
		{"postgres month", pg, domainRepo.GrainMonth, "to_char(o.date, 'YYYY-MM')"},
		{"mysql hour", my, domainRepo.GrainHour, "DATE_FORMAT(o.date, '%Y-%m-%d %H:00:00')"},
		{"mysql day", my, domainRepo.GrainDay, "DATE_FORMAT(o.date, '%Y-%m-%d')"},
		{"mysql month", my, domainRepo.GrainMonth, "DATE_FORMAT(o.date, '%Y-%m')"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bucketExpr(tt.db, tt.grain, "o.date")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBucketExpr_UnknownGrain(t *testing.T) {
	pg := dbFor(postgres.New(postgres.Config{DSN: "host=localhost"}))

	_, err := bucketExpr(pg, domainRepo.Grain("week"), "o.date")
	if err == nil || !strings.Contains(err.Error(), "unknown grain") {
		t.Errorf("expected unknown grain error, got %v", err)
	}
}
