package handler

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/cafeteria-pos/internal/application/service"
	"github.com/sangkips/cafeteria-pos/internal/domain/enum"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/response"
	"go.uber.org/zap"
)

// ReportHandler serves reports and file exports
type ReportHandler struct {
	reportService *service.ReportService
	clock         Clock
	tempDir       string
	logger        *zap.Logger
}

// NewReportHandler creates a new report handler. PDF exports are written
// to tempDir and removed once streamed.
func NewReportHandler(reportService *service.ReportService, clock Clock, tempDir string, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{reportService: reportService, clock: clock, tempDir: tempDir, logger: logger}
}

// Weekly returns the weekly report starting at week_start
func (h *ReportHandler) Weekly(c *gin.Context) {
	var req request.WeeklyReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "week_start is required")
		return
	}
	weekStart, err := h.clock.ParseDay("week_start", req.WeekStart)
	if err != nil {
		response.Error(c, err)
		return
	}

	r, err := h.reportService.WeeklyReport(c.Request.Context(), weekStart)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Weekly report retrieved successfully", r)
}

// Summary returns the sales summary of a date range
func (h *ReportHandler) Summary(c *gin.Context) {
	var req request.DateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "start_date and end_date are required")
		return
	}
	from, to, err := h.clock.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	rows, err := h.reportService.SalesSummary(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales summary retrieved successfully", rows)
}

// ExportWeekly exports the week containing week_start
func (h *ReportHandler) ExportWeekly(c *gin.Context) {
	var req request.WeeklyReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "week_start is required")
		return
	}
	day, err := h.clock.ParseDay("week_start", req.WeekStart)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.export(c, func(opts service.ExportOptions) (*service.ExportFile, error) {
		return h.reportService.ExportWeekly(c.Request.Context(), day, opts)
	})
}

// ExportSummary exports the sales summary of a date range
func (h *ReportHandler) ExportSummary(c *gin.Context) {
	var req request.DateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "start_date and end_date are required")
		return
	}
	from, to, err := h.clock.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.export(c, func(opts service.ExportOptions) (*service.ExportFile, error) {
		return h.reportService.ExportSummary(c.Request.Context(), from, to, opts)
	})
}

// ExportOrders exports every order
func (h *ReportHandler) ExportOrders(c *gin.Context) {
	h.export(c, func(opts service.ExportOptions) (*service.ExportFile, error) {
		return h.reportService.ExportOrders(c.Request.Context(), opts)
	})
}

// ExportProducts exports the catalog
func (h *ReportHandler) ExportProducts(c *gin.Context) {
	h.export(c, func(opts service.ExportOptions) (*service.ExportFile, error) {
		return h.reportService.ExportProducts(c.Request.Context(), opts)
	})
}

func (h *ReportHandler) export(c *gin.Context, run func(service.ExportOptions) (*service.ExportFile, error)) {
	var req request.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "format is required")
		return
	}
	format, err := enum.ParseExportFormat(req.Format)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	opts := service.ExportOptions{Format: format, Locale: req.Locale, Now: h.clock.Current()}

	if format != enum.ExportFormatPDF {
		file, err := run(opts)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Attachment(c, file.FileName, file.ContentType, file.Data)
		return
	}

	out, err := os.CreateTemp(h.tempDir, "cafeteria-export-*.pdf")
	if err != nil {
		response.Error(c, err)
		return
	}
	opts.OutputPath = out.Name()
	out.Close()
	defer func() {
		if err := os.Remove(opts.OutputPath); err != nil && !os.IsNotExist(err) {
			h.logger.Warn("failed to remove exported pdf", zap.String("path", opts.OutputPath), zap.Error(err))
		}
	}()

	file, err := run(opts)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Type", file.ContentType)
	c.FileAttachment(opts.OutputPath, file.FileName)
}
