package service

import (
	"context"
	"time"

	"github.com/sangkips/cafeteria-pos/internal/application/stats"
	"github.com/sangkips/cafeteria-pos/internal/domain/enum"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/pkg/apperror"
)

// TopProductsLimit caps the product sales chart
const TopProductsLimit = 10

// StatsService provides the chart series of the back office
type StatsService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewStatsService creates a new stats service
func NewStatsService(analyticsRepo repository.AnalyticsRepository) *StatsService {
	return &StatsService{analyticsRepo: analyticsRepo}
}

// ProductSalesPoint is one bar of the product sales chart
type ProductSalesPoint struct {
	ID    int    `json:"id"`
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Revenue returns the revenue series of tf ending at now
func (s *StatsService) Revenue(ctx context.Context, tf enum.TimeFrame, now time.Time) (stats.Series, error) {
	return s.series(ctx, tf, now, s.analyticsRepo.OrderTotals)
}

// OrderCount returns the order count series of tf ending at now
func (s *StatsService) OrderCount(ctx context.Context, tf enum.TimeFrame, now time.Time) (stats.Series, error) {
	return s.series(ctx, tf, now, s.analyticsRepo.OrderCounts)
}

type sampleQuery func(ctx context.Context, grain repository.Grain, window *repository.TimeWindow) ([]repository.TimeSample, error)

func (s *StatsService) series(ctx context.Context, tf enum.TimeFrame, now time.Time, query sampleQuery) (stats.Series, error) {
	if !tf.IsValid() {
		return nil, apperror.NewBadRequestError("unknown timeframe: " + tf.String())
	}

	grain, window := stats.FetchWindow(tf, now)
	samples, err := query(ctx, grain, window)
	if err != nil {
		return nil, err
	}
	return stats.Aggregate(samples, tf, now)
}

// TopProducts returns the best selling products by quantity between the
// start of start's day and the end of end's day.
func (s *StatsService) TopProducts(ctx context.Context, start, end time.Time) ([]ProductSalesPoint, error) {
	from := stats.StartOfDay(start)
	to := stats.EndOfDay(end)
	if from.After(to) {
		return nil, apperror.NewInvalidRangeError("start date must not be after end date")
	}

	rows, err := s.analyticsRepo.TopProductsByQuantity(ctx, from, to, TopProductsLimit)
	if err != nil {
		return nil, err
	}

	points := make([]ProductSalesPoint, len(rows))
	for i, row := range rows {
		points[i] = ProductSalesPoint{ID: i, Value: row.TotalQuantity, Label: row.ItemName}
	}
	return points, nil
}

// DailySales returns the revenue of day
func (s *StatsService) DailySales(ctx context.Context, day time.Time) (float64, error) {
	return s.analyticsRepo.SalesTotal(ctx, stats.StartOfDay(day), stats.EndOfDay(day))
}

// MultipleDaysSales returns the revenue of every requested day keyed by
// YYYY-MM-DD. Days without orders map to 0.
func (s *StatsService) MultipleDaysSales(ctx context.Context, days []time.Time) (map[string]float64, error) {
	result := make(map[string]float64, len(days))
	for _, day := range days {
		key := stats.DayKey(day)
		if _, done := result[key]; done {
			continue
		}
		total, err := s.DailySales(ctx, day)
		if err != nil {
			return nil, err
		}
		result[key] = total
	}
	return result, nil
}
