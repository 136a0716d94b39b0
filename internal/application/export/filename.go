package export

import (
	"time"

	"github.com/sangkips/cafeteria-pos/internal/application/stats"
	"github.com/sangkips/cafeteria-pos/internal/domain/enum"
)

// WeeklyFileName returns weeklyReport-<monday>_to_<sunday>.<ext>
func WeeklyFileName(monday, sunday time.Time, format enum.ExportFormat) string {
	return "weeklyReport-" + stats.DayKey(monday) + "_to_" + stats.DayKey(sunday) + "." + format.Extension()
}

// SummaryFileName returns salesSummary-<from>-to-<to>.<ext>
func SummaryFileName(from, to time.Time, format enum.ExportFormat) string {
	return "salesSummary-" + stats.DayKey(from) + "-to-" + stats.DayKey(to) + "." + format.Extension()
}

// OrdersFileName returns allOrders-<today>.<ext>
func OrdersFileName(today time.Time, format enum.ExportFormat) string {
	return "allOrders-" + stats.DayKey(today) + "." + format.Extension()
}

// ProductsFileName returns productCatalog-<today>.<ext>
func ProductsFileName(today time.Time, format enum.ExportFormat) string {
	return "productCatalog-" + stats.DayKey(today) + "." + format.Extension()
}

// ISOWeek returns the Monday and Sunday of the ISO week containing t.
func ISOWeek(t time.Time) (monday, sunday time.Time) {
	day := stats.StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	monday = day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}
