package enum

import (
	"fmt"
	"strings"
)

// ExportFormat is the target representation of an export.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatJSON ExportFormat = "json"
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatODS  ExportFormat = "ods"
	ExportFormatPDF  ExportFormat = "pdf"
)

func (f ExportFormat) String() string {
	return string(f)
}

// Extension is the file extension used in export file names.
func (f ExportFormat) Extension() string {
	return string(f)
}

// ContentType is the MIME type of the rendered payload.
func (f ExportFormat) ContentType() string {
	switch f {
	case ExportFormatCSV:
		return "text/csv; charset=utf-8"
	case ExportFormatJSON:
		return "application/json"
	case ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ExportFormatODS:
		return "application/vnd.oasis.opendocument.spreadsheet"
	case ExportFormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// IsTabular reports whether the format is a flat row set (CSV and sheets).
func (f ExportFormat) IsTabular() bool {
	return f == ExportFormatCSV || f == ExportFormatXLSX || f == ExportFormatODS
}

// ParseExportFormat accepts any casing; an empty string is an error.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case ExportFormatCSV, ExportFormatJSON, ExportFormatXLSX, ExportFormatODS, ExportFormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}
