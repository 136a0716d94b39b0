package export

import (
	"encoding/json"

	"github.com/sangkips/cafeteria-pos/internal/application/report"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
)

// WeeklyEnvelope is the JSON export of a weekly report
type WeeklyEnvelope struct {
	ReportDate    string                   `json:"reportDate"`
	WeekStartDate string                   `json:"weekStartDate"`
	WeekEndDate   string                   `json:"weekEndDate"`
	WeeklyTotal   float64                  `json:"weeklyTotal"`
	Products      []report.ProductWeekStat `json:"products"`
}

// SummaryEnvelope is the JSON export of a sales summary
type SummaryEnvelope struct {
	FromDate string                  `json:"fromDate"`
	ToDate   string                  `json:"toDate"`
	Data     []repository.SummaryRow `json:"data"`
}

// NewWeeklyEnvelope wraps r. reportDate is the date the user asked for,
// the week bounds come from the report.
func NewWeeklyEnvelope(reportDate string, r *report.WeeklyReport) WeeklyEnvelope {
	return WeeklyEnvelope{
		ReportDate:    reportDate,
		WeekStartDate: r.StartDate,
		WeekEndDate:   r.EndDate,
		WeeklyTotal:   r.WeeklyTotal,
		Products:      r.Products,
	}
}

// ToJSON encodes v indented by two spaces.
func ToJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
