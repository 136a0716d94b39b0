package enum

import (
	"encoding/json"
	"testing"
)

func TestParseTimeFrame(t *testing.T) {
	for _, in := range []string{"day", "WEEK", " Month ", "year", "All"} {
		if _, err := ParseTimeFrame(in); err != nil {
			t.Errorf("ParseTimeFrame(%q) failed: %v", in, err)
		}
	}
	if _, err := ParseTimeFrame("quarter"); err == nil {
		t.Errorf("expected unknown timeframe to fail")
	}

	var tf TimeFrame
	if err := json.Unmarshal([]byte(`"YEAR"`), &tf); err != nil || tf != TimeFrameYear {
		t.Errorf("expected year, got %q (%v)", tf, err)
	}
}

func TestParseExportFormat(t *testing.T) {
	f, err := ParseExportFormat("XLSX")
	if err != nil || f != ExportFormatXLSX {
		t.Fatalf("expected xlsx, got %q (%v)", f, err)
	}
	if !f.IsTabular() || ExportFormatJSON.IsTabular() {
		t.Errorf("unexpected tabular classification")
	}
	if _, err := ParseExportFormat(""); err == nil {
		t.Errorf("expected empty format to fail")
	}
}
