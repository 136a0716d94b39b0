package repository

import (
	"context"
	"time"
)

// Grain selects the SQL bucketing of order aggregates
type Grain string

const (
	GrainHour  Grain = "hour"
	GrainDay   Grain = "day"
	GrainMonth Grain = "month"
)

// TimeWindow is an inclusive [Start, End] range on order dates.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// TimeSample is one aggregated bucket row: the start of the bucket in the
// business location and its summed total or count.
type TimeSample struct {
	Timestamp time.Time
	Value     float64
}

// ProductQuantity represents a product's sold quantity in a range
type ProductQuantity struct {
	ItemName      string
	TotalQuantity int
}

// OrderLine is an order line joined with its parent order
type OrderLine struct {
	OrderID   string
	OrderDate time.Time
	ItemName  string
	ItemPrice float64
	Quantity  int
}

// SummaryRow is the aggregate of one (item name, item price) pair
type SummaryRow struct {
	ItemName      string  `json:"item_name"`
	ItemPrice     float64 `json:"item_price"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// AnalyticsRepository defines the read-only aggregation queries used by
// statistics and reports. Missing numeric fields are returned as 0.
type AnalyticsRepository interface {
	// OrderTotals returns SUM(total_price) per bucket, ascending. A nil
	// window covers all orders.
	OrderTotals(ctx context.Context, grain Grain, window *TimeWindow) ([]TimeSample, error)

	// OrderCounts returns COUNT(*) per bucket, ascending.
	OrderCounts(ctx context.Context, grain Grain, window *TimeWindow) ([]TimeSample, error)

	// TopProductsByQuantity returns the best sellers by quantity in [start, end]
	TopProductsByQuantity(ctx context.Context, start, end time.Time, limit int) ([]ProductQuantity, error)

	// OrderLinesInRange returns every order line whose order date is in [start, end]
	OrderLinesInRange(ctx context.Context, start, end time.Time) ([]OrderLine, error)

	// SalesSummary groups lines in [start, end] by (item_name, item_price),
	// ordered by total revenue descending, then item name and price ascending.
	SalesSummary(ctx context.Context, start, end time.Time) ([]SummaryRow, error)

	// SalesTotal returns SUM(total_price) for orders in [start, end]
	SalesTotal(ctx context.Context, start, end time.Time) (float64, error)
}
