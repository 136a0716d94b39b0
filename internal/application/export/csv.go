package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Field is one named cell of a row
type Field struct {
	Key   string
	Value any
}

// Row is an ordered set of named cells. Column order comes from the first
// row of a row set.
type Row []Field

// Get returns the value stored under key.
func (r Row) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Headers returns the column names of a row set.
func Headers(rows []Row) []string {
	if len(rows) == 0 {
		return nil
	}
	headers := make([]string, len(rows[0]))
	for i, f := range rows[0] {
		headers[i] = f.Key
	}
	return headers
}

// ToCSV renders rows as comma separated text with \n line endings and no
// BOM. An empty row set yields an empty string.
func ToCSV(rows []Row, includeHeader bool) string {
	if len(rows) == 0 {
		return ""
	}
	headers := Headers(rows)

	lines := make([]string, 0, len(rows)+1)
	if includeHeader {
		cells := make([]string, len(headers))
		for i, h := range headers {
			cells[i] = escapeCell(h)
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	for _, row := range rows {
		cells := make([]string, len(headers))
		for i, h := range headers {
			v, _ := row.Get(h)
			cells[i] = escapeCell(CellText(v))
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

// CellText converts a value to its cell text. Nil is empty and composite
// values are encoded as JSON.
func CellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	case fmt.Stringer:
		return val.String()
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

func escapeCell(cell string) string {
	cell = strings.ReplaceAll(cell, `"`, `""`)
	if strings.ContainsAny(cell, "\",\n\r") {
		return `"` + cell + `"`
	}
	return cell
}
