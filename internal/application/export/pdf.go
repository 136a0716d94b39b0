package export

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/sangkips/cafeteria-pos/pkg/apperror"
	"go.uber.org/zap"
)

// Surface loads a document from a file URL and prints it to A4 PDF with
// background graphics.
type Surface interface {
	PrintToPDF(ctx context.Context, fileURL string) ([]byte, error)
}

// PDFWriter materializes report markup as a PDF file
type PDFWriter struct {
	surface Surface
	tempDir string
	logger  *zap.Logger
	now     func() time.Time
}

// NewPDFWriter creates a writer staging markup in tempDir.
func NewPDFWriter(surface Surface, tempDir string, logger *zap.Logger) *PDFWriter {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDFWriter{surface: surface, tempDir: tempDir, logger: logger, now: time.Now}
}

// Write renders html through the surface into outputPath. The staged HTML
// file is removed whether or not rendering succeeds.
func (w *PDFWriter) Write(ctx context.Context, html, outputPath string) error {
	staged, err := os.CreateTemp(w.tempDir, fmt.Sprintf("cafeteria-report-%d-*.html", w.now().UnixMilli()))
	if err != nil {
		return apperror.NewRenderingError(fmt.Errorf("stage html: %w", err))
	}
	tempPath := staged.Name()
	defer func() {
		if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
			w.logger.Warn("failed to remove staged report", zap.String("path", tempPath), zap.Error(err))
		}
	}()

	_, err = staged.WriteString(html)
	if closeErr := staged.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return apperror.NewRenderingError(fmt.Errorf("stage html: %w", err))
	}

	abs, err := filepath.Abs(tempPath)
	if err != nil {
		return apperror.NewRenderingError(err)
	}
	fileURL := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()

	data, err := w.surface.PrintToPDF(ctx, fileURL)
	if err != nil {
		return apperror.NewRenderingError(err)
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return apperror.NewRenderingError(fmt.Errorf("write pdf: %w", err))
	}

	w.logger.Info("pdf generated", zap.String("path", outputPath), zap.Int("bytes", len(data)))
	return nil
}
