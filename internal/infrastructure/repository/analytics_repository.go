package repository

import (
	"context"
	"time"

	domainRepo "github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/pkg/apperror"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db  *gorm.DB
	loc *time.Location
}

// NewAnalyticsRepository creates a new analytics repository. Bucket keys and
// order dates are read in loc.
func NewAnalyticsRepository(db *gorm.DB, loc *time.Location) domainRepo.AnalyticsRepository {
	if loc == nil {
		loc = time.Local
	}
	return &analyticsRepository{db: db, loc: loc}
}

type bucketRow struct {
	Bucket string
	Value  float64
}

func (r *analyticsRepository) OrderTotals(ctx context.Context, grain domainRepo.Grain, window *domainRepo.TimeWindow) ([]domainRepo.TimeSample, error) {
	return r.orderBuckets(ctx, "order totals", grain, window, "COALESCE(SUM(o.total_price), 0) / 100.0")
}

func (r *analyticsRepository) OrderCounts(ctx context.Context, grain domainRepo.Grain, window *domainRepo.TimeWindow) ([]domainRepo.TimeSample, error) {
	return r.orderBuckets(ctx, "order counts", grain, window, "COUNT(*)")
}

func (r *analyticsRepository) orderBuckets(ctx context.Context, op string, grain domainRepo.Grain, window *domainRepo.TimeWindow, aggregate string) ([]domainRepo.TimeSample, error) {
	expr, err := bucketExpr(r.db, grain, "o.date")
	if err != nil {
		return nil, apperror.NewStoreQueryError(op, err)
	}

	query := r.db.WithContext(ctx).
		Table("orders AS o").
		Select(expr + " AS bucket, " + aggregate + " AS value")
	if window != nil {
		query = query.Where("o.date BETWEEN ? AND ?", window.Start, window.End)
	}

	var rows []bucketRow
	if err := query.Group("bucket").Order("bucket ASC").Scan(&rows).Error; err != nil {
		return nil, apperror.NewStoreQueryError(op, err)
	}

	return bucketSamples(op, grain, rows, r.loc)
}

// bucketSamples converts bucket rows to samples. One unreadable key fails the
// whole query.
func bucketSamples(op string, grain domainRepo.Grain, rows []bucketRow, loc *time.Location) ([]domainRepo.TimeSample, error) {
	samples := make([]domainRepo.TimeSample, 0, len(rows))
	for _, row := range rows {
		ts, err := parseBucket(grain, row.Bucket, loc)
		if err != nil {
			return nil, apperror.NewStoreQueryError(op, err)
		}
		samples = append(samples, domainRepo.TimeSample{Timestamp: ts, Value: row.Value})
	}
	return samples, nil
}

func (r *analyticsRepository) TopProductsByQuantity(ctx context.Context, start, end time.Time, limit int) ([]domainRepo.ProductQuantity, error) {
	var results []domainRepo.ProductQuantity

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			oi.item_name AS item_name,
			COALESCE(SUM(oi.quantity), 0) AS total_quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.date BETWEEN ? AND ?
		GROUP BY oi.item_name
		ORDER BY total_quantity DESC, oi.item_name ASC
		LIMIT ?
	`, start, end, limit).Scan(&results).Error

	if err != nil {
		return nil, apperror.NewStoreQueryError("top products", err)
	}
	return results, nil
}

func (r *analyticsRepository) OrderLinesInRange(ctx context.Context, start, end time.Time) ([]domainRepo.OrderLine, error) {
	var results []domainRepo.OrderLine

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.id AS order_id,
			o.date AS order_date,
			oi.item_name AS item_name,
			oi.item_price / 100.0 AS item_price,
			oi.quantity AS quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.date BETWEEN ? AND ?
		ORDER BY o.date ASC, oi.id ASC
	`, start, end).Scan(&results).Error

	if err != nil {
		return nil, apperror.NewStoreQueryError("order lines", err)
	}
	for i := range results {
		results[i].OrderDate = results[i].OrderDate.In(r.loc)
	}
	return results, nil
}

func (r *analyticsRepository) SalesSummary(ctx context.Context, start, end time.Time) ([]domainRepo.SummaryRow, error) {
	var results []domainRepo.SummaryRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			oi.item_name AS item_name,
			oi.item_price / 100.0 AS item_price,
			COALESCE(SUM(oi.quantity), 0) AS total_quantity,
			COALESCE(SUM(oi.item_price * oi.quantity), 0) / 100.0 AS total_revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.date BETWEEN ? AND ?
		GROUP BY oi.item_name, oi.item_price
		ORDER BY total_revenue DESC, oi.item_name ASC, oi.item_price ASC
	`, start, end).Scan(&results).Error

	if err != nil {
		return nil, apperror.NewStoreQueryError("sales summary", err)
	}
	return results, nil
}

func (r *analyticsRepository) SalesTotal(ctx context.Context, start, end time.Time) (float64, error) {
	var total float64

	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(o.total_price), 0) / 100.0
		FROM orders o
		WHERE o.date BETWEEN ? AND ?
	`, start, end).Scan(&total).Error

	if err != nil {
		return 0, apperror.NewStoreQueryError("sales total", err)
	}
	return total, nil
}
