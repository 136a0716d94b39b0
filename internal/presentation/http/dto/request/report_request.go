package request

// TimeFrameRequest selects a chart timeframe
type TimeFrameRequest struct {
	TimeFrame string `form:"timeframe" binding:"required"`
}

// DateRangeRequest represents an inclusive day range
type DateRangeRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

// WeeklyReportRequest selects the week of a weekly report
type WeeklyReportRequest struct {
	WeekStart string `form:"week_start" binding:"required"`
}

// ExportRequest selects the export representation
type ExportRequest struct {
	Format string `form:"format" binding:"required"`
	Locale string `form:"locale"`
}
