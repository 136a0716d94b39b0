package service

import (
	"context"
	"time"

	"github.com/sangkips/cafeteria-pos/internal/application/export"
	"github.com/sangkips/cafeteria-pos/internal/application/report"
	"github.com/sangkips/cafeteria-pos/internal/application/stats"
	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
	"github.com/sangkips/cafeteria-pos/internal/domain/enum"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/pkg/apperror"
	"go.uber.org/zap"
)

// Sheet names of tabular exports
const (
	sheetWeekly   = "Weekly Report"
	sheetSummary  = "Sales Summary"
	sheetOrders   = "Orders"
	sheetProducts = "Products"
)

// ReportService builds sales reports and their exports
type ReportService struct {
	builder       *report.Builder
	orderRepo     repository.OrderRepository
	itemRepo      repository.ItemRepository
	settings      *SettingsService
	catalog       *export.Catalog
	html          *export.HTMLRenderer
	pdf           *export.PDFWriter
	loc           *time.Location
	defaultLocale string
	logger        *zap.Logger
}

// ReportServiceConfig groups the collaborators of ReportService
type ReportServiceConfig struct {
	Builder       *report.Builder
	OrderRepo     repository.OrderRepository
	ItemRepo      repository.ItemRepository
	Settings      *SettingsService
	Catalog       *export.Catalog
	HTML          *export.HTMLRenderer
	PDF           *export.PDFWriter
	Location      *time.Location
	DefaultLocale string
	Logger        *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(cfg ReportServiceConfig) *ReportService {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = entity.DefaultLanguage
	}
	return &ReportService{
		builder:       cfg.Builder,
		orderRepo:     cfg.OrderRepo,
		itemRepo:      cfg.ItemRepo,
		settings:      cfg.Settings,
		catalog:       cfg.Catalog,
		html:          cfg.HTML,
		pdf:           cfg.PDF,
		loc:           cfg.Location,
		defaultLocale: cfg.DefaultLocale,
		logger:        cfg.Logger,
	}
}

// ExportOptions controls one export
type ExportOptions struct {
	Format enum.ExportFormat
	// Locale of PDF and weekday headers. Empty uses the stored language.
	Locale string
	// OutputPath receives PDF exports. Other formats are returned in memory.
	OutputPath string
	Now        time.Time
}

// ExportFile is a finished export
type ExportFile struct {
	FileName    string
	ContentType string
	// Data is nil for PDF, which is written to ExportOptions.OutputPath.
	Data []byte
}

// WeeklyReport returns the report of the seven days from weekStart
func (s *ReportService) WeeklyReport(ctx context.Context, weekStart time.Time) (*report.WeeklyReport, error) {
	return s.builder.Weekly(ctx, weekStart)
}

// SalesSummary returns the per product summary from the start of from's
// day to the end of to's day.
func (s *ReportService) SalesSummary(ctx context.Context, from, to time.Time) ([]repository.SummaryRow, error) {
	return s.builder.Summary(ctx, stats.StartOfDay(from), stats.EndOfDay(to))
}

// ExportWeekly exports the ISO week containing day
func (s *ReportService) ExportWeekly(ctx context.Context, day time.Time, opts ExportOptions) (*ExportFile, error) {
	monday, sunday := export.ISOWeek(day.In(s.loc))
	r, err := s.builder.Weekly(ctx, monday)
	if err != nil {
		return nil, err
	}

	locale := s.locale(ctx, opts.Locale)
	file := &ExportFile{
		FileName:    export.WeeklyFileName(monday, sunday, opts.Format),
		ContentType: opts.Format.ContentType(),
	}

	switch {
	case opts.Format == enum.ExportFormatJSON:
		file.Data, err = export.ToJSON(export.NewWeeklyEnvelope(stats.DayKey(day), r))
	case opts.Format.IsTabular():
		file.Data, err = export.EncodeRows(export.WeeklyRows(r, s.catalog.Lang(locale), s.loc), opts.Format, sheetWeekly)
	case opts.Format == enum.ExportFormatPDF:
		s.logger.Info("exporting weekly report to pdf",
			zap.String("week_start", r.StartDate), zap.String("locale", locale))
		err = s.writePDF(ctx, opts, func() (string, error) {
			return s.html.Weekly(r, locale, s.now(opts))
		})
	default:
		return nil, unsupportedFormat(opts.Format)
	}
	if err != nil {
		return nil, s.exportError("weekly", err)
	}
	return file, nil
}

// ExportSummary exports the sales summary of [from, to]
func (s *ReportService) ExportSummary(ctx context.Context, from, to time.Time, opts ExportOptions) (*ExportFile, error) {
	rows, err := s.SalesSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}

	locale := s.locale(ctx, opts.Locale)
	file := &ExportFile{
		FileName:    export.SummaryFileName(from, to, opts.Format),
		ContentType: opts.Format.ContentType(),
	}

	switch {
	case opts.Format == enum.ExportFormatJSON:
		file.Data, err = export.ToJSON(export.SummaryEnvelope{
			FromDate: stats.DayKey(from),
			ToDate:   stats.DayKey(to),
			Data:     rows,
		})
	case opts.Format.IsTabular():
		file.Data, err = export.EncodeRows(export.SummaryRows(rows), opts.Format, sheetSummary)
	case opts.Format == enum.ExportFormatPDF:
		s.logger.Info("exporting sales summary to pdf",
			zap.String("from", stats.DayKey(from)), zap.String("to", stats.DayKey(to)), zap.String("locale", locale))
		err = s.writePDF(ctx, opts, func() (string, error) {
			return s.html.Summary(rows, from, to, locale, s.now(opts))
		})
	default:
		return nil, unsupportedFormat(opts.Format)
	}
	if err != nil {
		return nil, s.exportError("summary", err)
	}
	return file, nil
}

// ExportOrders exports every stored order, newest first
func (s *ReportService) ExportOrders(ctx context.Context, opts ExportOptions) (*ExportFile, error) {
	if opts.Format == enum.ExportFormatPDF {
		return nil, unsupportedFormat(opts.Format)
	}
	orders, err := s.orderRepo.List(ctx, nil, nil)
	if err != nil {
		return nil, apperror.NewStoreQueryError("list orders", err)
	}

	file := &ExportFile{
		FileName:    export.OrdersFileName(s.now(opts), opts.Format),
		ContentType: opts.Format.ContentType(),
	}
	if opts.Format == enum.ExportFormatJSON {
		if orders == nil {
			orders = []entity.Order{}
		}
		file.Data, err = export.ToJSON(orders)
	} else {
		file.Data, err = export.EncodeRows(export.OrderRows(orders), opts.Format, sheetOrders)
	}
	if err != nil {
		return nil, s.exportError("orders", err)
	}
	return file, nil
}

// ExportProducts exports the catalog
func (s *ReportService) ExportProducts(ctx context.Context, opts ExportOptions) (*ExportFile, error) {
	if opts.Format == enum.ExportFormatPDF {
		return nil, unsupportedFormat(opts.Format)
	}
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, apperror.NewStoreQueryError("list products", err)
	}

	file := &ExportFile{
		FileName:    export.ProductsFileName(s.now(opts), opts.Format),
		ContentType: opts.Format.ContentType(),
	}
	if opts.Format == enum.ExportFormatJSON {
		if items == nil {
			items = []entity.Item{}
		}
		file.Data, err = export.ToJSON(items)
	} else {
		file.Data, err = export.EncodeRows(export.ProductRows(items), opts.Format, sheetProducts)
	}
	if err != nil {
		return nil, s.exportError("products", err)
	}
	return file, nil
}

func (s *ReportService) writePDF(ctx context.Context, opts ExportOptions, render func() (string, error)) error {
	if opts.OutputPath == "" {
		return apperror.NewBadRequestError("PDF export requires an output path")
	}
	markup, err := render()
	if err != nil {
		return apperror.NewRenderingError(err)
	}
	return s.pdf.Write(ctx, markup, opts.OutputPath)
}

// locale picks the requested locale, else the stored language, else the
// configured default.
func (s *ReportService) locale(ctx context.Context, requested string) string {
	if requested != "" {
		return requested
	}
	if s.settings != nil {
		lang, err := s.settings.Language(ctx)
		if err == nil {
			return lang
		}
		s.logger.Warn("failed to read language setting", zap.Error(err))
	}
	return s.defaultLocale
}

func (s *ReportService) now(opts ExportOptions) time.Time {
	if opts.Now.IsZero() {
		return time.Now().In(s.loc)
	}
	return opts.Now.In(s.loc)
}

func (s *ReportService) exportError(kind string, err error) error {
	s.logger.Error("export failed", zap.String("report", kind), zap.Error(err))
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewRenderingError(err)
}

func unsupportedFormat(f enum.ExportFormat) error {
	return apperror.NewBadRequestError("unsupported export format: " + f.String())
}
