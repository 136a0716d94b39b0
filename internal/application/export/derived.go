package export

import (
	"github.com/sangkips/cafeteria-pos/internal/application/report"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
)

// WeeklyStats are the display reductions over a weekly report
type WeeklyStats struct {
	BestSelling *report.ProductWeekStat
	// MostProfitable is nil when it is the best seller as well
	MostProfitable *report.ProductWeekStat
	TotalItems     int
	ProductCount   int
}

// ComputeWeeklyStats picks the best seller by quantity and the most profitable
// product by revenue. On ties the later product wins.
func ComputeWeeklyStats(r *report.WeeklyReport) WeeklyStats {
	st := WeeklyStats{ProductCount: len(r.Products)}
	if len(r.Products) == 0 {
		return st
	}

	best, profit := &r.Products[0], &r.Products[0]
	for i := range r.Products {
		p := &r.Products[i]
		st.TotalItems += p.TotalQuantity
		if p.TotalQuantity >= best.TotalQuantity {
			best = p
		}
		if p.TotalRevenue >= profit.TotalRevenue {
			profit = p
		}
	}

	st.BestSelling = best
	if profit.Name != best.Name {
		st.MostProfitable = profit
	}
	return st
}

// SummaryStats are the display reductions over a sales summary
type SummaryStats struct {
	TotalRevenue   float64
	TotalQuantity  int
	ProductCount   int
	AverageRevenue float64
	Top            []repository.SummaryRow
}

// ComputeSummaryStats expects rows ordered by revenue, highest first.
func ComputeSummaryStats(rows []repository.SummaryRow) SummaryStats {
	st := SummaryStats{ProductCount: len(rows)}
	for _, r := range rows {
		st.TotalRevenue += r.TotalRevenue
		st.TotalQuantity += r.TotalQuantity
	}
	if len(rows) > 0 {
		st.AverageRevenue = st.TotalRevenue / float64(len(rows))
	}
	top := 3
	if len(rows) < top {
		top = len(rows)
	}
	st.Top = rows[:top]
	return st
}
