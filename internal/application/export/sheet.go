package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ToXLSX writes rows to a single sheet workbook with a bold header row.
// Numbers stay numbers; composite values are written as their JSON text.
func ToXLSX(rows []Row, sheetName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	headers := Headers(rows)
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: write header: %w", err)
		}
	}

	if len(headers) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("xlsx: header style: %w", err)
		}
		if err := f.SetRowStyle(sheetName, 1, 1, style); err != nil {
			return nil, fmt.Errorf("xlsx: header style: %w", err)
		}
	}

	for r, row := range rows {
		for col, h := range headers {
			v, _ := row.Get(h)
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("xlsx: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, sheetValue(v)); err != nil {
				return nil, fmt.Errorf("xlsx: write %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetValue keeps numbers and booleans native and turns the rest into text.
func sheetValue(v any) any {
	switch v.(type) {
	case int, int64, float64, bool:
		return v
	default:
		return CellText(v)
	}
}
