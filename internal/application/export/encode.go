package export

import (
	"fmt"

	"github.com/sangkips/cafeteria-pos/internal/domain/enum"
)

// EncodeRows serializes a row set in a tabular format.
func EncodeRows(rows []Row, format enum.ExportFormat, sheetName string) ([]byte, error) {
	switch format {
	case enum.ExportFormatCSV:
		return []byte(ToCSV(rows, true)), nil
	case enum.ExportFormatXLSX:
		return ToXLSX(rows, sheetName)
	case enum.ExportFormatODS:
		return ToODS(rows, sheetName)
	default:
		return nil, fmt.Errorf("format %s is not tabular", format)
	}
}
