package export

import (
	"time"

	"github.com/sangkips/cafeteria-pos/internal/application/report"
	"github.com/sangkips/cafeteria-pos/internal/application/stats"
	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
)

// WeeklyRows flattens a weekly report into one row per product with
// <weekday>_qty and <weekday>_rev columns for each day of the week.
func WeeklyRows(r *report.WeeklyReport, lang *Lang, loc *time.Location) []Row {
	rows := make([]Row, 0, len(r.Products))
	for _, p := range r.Products {
		row := Row{
			{Key: "name", Value: p.Name},
			{Key: "price", Value: p.Price},
			{Key: "totalQuantity", Value: p.TotalQuantity},
			{Key: "totalRevenue", Value: p.TotalRevenue},
		}
		for _, day := range r.WeekDays {
			label := day
			if t, err := stats.ParseDay(day, loc); err == nil {
				label = lang.Weekday(t)
			}
			sale := p.Day(day)
			row = append(row,
				Field{Key: label + "_qty", Value: sale.Quantity},
				Field{Key: label + "_rev", Value: sale.Revenue},
			)
		}
		rows = append(rows, row)
	}
	return rows
}

// SummaryRows keeps the store column names of the sales summary.
func SummaryRows(summary []repository.SummaryRow) []Row {
	rows := make([]Row, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, Row{
			{Key: "item_name", Value: s.ItemName},
			{Key: "item_price", Value: s.ItemPrice},
			{Key: "total_quantity", Value: s.TotalQuantity},
			{Key: "total_revenue", Value: s.TotalRevenue},
		})
	}
	return rows
}

type orderLineCell struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderRows renders one row per order with its lines as a JSON cell.
func OrderRows(orders []entity.Order) []Row {
	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		lines := make([]orderLineCell, 0, len(o.Items))
		for _, it := range o.Items {
			lines = append(lines, orderLineCell{
				Name:     it.ItemName,
				Price:    float64(it.ItemPrice) / 100,
				Quantity: it.Quantity,
			})
		}
		rows = append(rows, Row{
			{Key: "id", Value: o.ID.String()},
			{Key: "date", Value: o.Date},
			{Key: "totalPrice", Value: o.GetTotalDecimal()},
			{Key: "items", Value: lines},
		})
	}
	return rows
}

// ProductRows renders the catalog.
func ProductRows(items []entity.Item) []Row {
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, Row{
			{Key: "id", Value: it.ID.String()},
			{Key: "name", Value: it.Name},
			{Key: "price", Value: it.GetPriceDecimal()},
			{Key: "group", Value: it.GroupName()},
		})
	}
	return rows
}
