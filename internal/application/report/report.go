package report

import (
	"context"
	"time"

	"github.com/sangkips/cafeteria-pos/internal/application/stats"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/pkg/apperror"
)

// DailySale is the quantity and revenue of one product on one day
type DailySale struct {
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// ProductWeekStat is one product's sales across a week
type ProductWeekStat struct {
	Name          string               `json:"name"`
	Price         float64              `json:"price"`
	TotalQuantity int                  `json:"totalQuantity"`
	TotalRevenue  float64              `json:"totalRevenue"`
	DailySales    map[string]DailySale `json:"dailySales"`
}

// Day returns the sales of day, zero when the product did not sell that day.
func (p ProductWeekStat) Day(day string) DailySale {
	return p.DailySales[day]
}

// WeeklyReport is the per-product breakdown of a seven day window
type WeeklyReport struct {
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	WeekDays    []string          `json:"weekDays"`
	Products    []ProductWeekStat `json:"products"`
	WeeklyTotal float64           `json:"weeklyTotal"`
}

// IsEmpty reports whether nothing sold during the week.
func (r *WeeklyReport) IsEmpty() bool {
	return len(r.Products) == 0
}

// Builder assembles weekly reports and sales summaries from the store
type Builder struct {
	repo repository.AnalyticsRepository
}

// NewBuilder creates a new report builder
func NewBuilder(repo repository.AnalyticsRepository) *Builder {
	return &Builder{repo: repo}
}

// Weekly builds the report of the seven days starting at weekStart.
// Products keep the order in which they first appear.
func (b *Builder) Weekly(ctx context.Context, weekStart time.Time) (*WeeklyReport, error) {
	start := stats.StartOfDay(weekStart)
	end := start.AddDate(0, 0, 6)

	report := &WeeklyReport{
		StartDate: stats.DayKey(start),
		EndDate:   stats.DayKey(end),
		WeekDays:  make([]string, 7),
		Products:  []ProductWeekStat{},
	}
	for i := range report.WeekDays {
		report.WeekDays[i] = stats.DayKey(start.AddDate(0, 0, i))
	}

	lines, err := b.repo.OrderLinesInRange(ctx, start, stats.EndOfDay(end))
	if err != nil {
		return nil, storeError("order lines in range", err)
	}

	index := make(map[string]int)
	for _, line := range lines {
		i, ok := index[line.ItemName]
		if !ok {
			i = len(report.Products)
			index[line.ItemName] = i
			report.Products = append(report.Products, ProductWeekStat{
				Name:       line.ItemName,
				Price:      line.ItemPrice,
				DailySales: make(map[string]DailySale),
			})
		}

		p := &report.Products[i]
		revenue := line.ItemPrice * float64(line.Quantity)
		day := stats.DayKey(line.OrderDate)

		sale := p.DailySales[day]
		sale.Quantity += line.Quantity
		sale.Revenue += revenue
		p.DailySales[day] = sale

		p.TotalQuantity += line.Quantity
		p.TotalRevenue += revenue
		report.WeeklyTotal += revenue
	}

	return report, nil
}

// Summary returns per (item, price) totals for orders dated in [start, end],
// highest revenue first. Callers extend end to the end of its day when the
// last day must be included. An empty range yields an empty slice.
func (b *Builder) Summary(ctx context.Context, start, end time.Time) ([]repository.SummaryRow, error) {
	if start.After(end) {
		return nil, apperror.NewInvalidRangeError("start date must not be after end date")
	}

	rows, err := b.repo.SalesSummary(ctx, start, end)
	if err != nil {
		return nil, storeError("sales summary", err)
	}
	if rows == nil {
		rows = []repository.SummaryRow{}
	}
	return rows, nil
}

func storeError(operation string, err error) error {
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewStoreQueryError(operation, err)
}
