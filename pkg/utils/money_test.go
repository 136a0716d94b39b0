package utils

import "testing"

func TestToCents(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{2.0, 200},
		{0.1 + 0.2, 30},
		{19.995, 2000},
		{1.005, 101},
		{0, 0},
	}
	for _, tt := range tests {
		if got := ToCents(tt.in); got != tt.want {
			t.Errorf("ToCents(%v): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestFromCentsAndFormat(t *testing.T) {
	if got := FromCents(1250); got != 12.5 {
		t.Errorf("expected 12.5, got %v", got)
	}
	if got := FormatMoney(6); got != "6.00" {
		t.Errorf("expected 6.00, got %q", got)
	}
	if got := FormatMoney(2.345); got != "2.35" {
		t.Errorf("expected 2.35, got %q", got)
	}
}
