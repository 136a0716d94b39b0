package printer

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestColumns_PadsToWidth(t *testing.T) {
	doc := NewDocument(20)
	doc.Columns("3x Café", "7.50")

	line := lastLine(doc.Bytes())
	if got := len([]rune(line)); got != 20 {
		t.Errorf("expected 20 runes, got %d (%q)", got, line)
	}
	if !strings.HasPrefix(line, "3x Café") || !strings.HasSuffix(line, "7.50") {
		t.Errorf("unexpected line %q", line)
	}
}

func TestColumns_TruncatesLongNames(t *testing.T) {
	doc := NewDocument(16)
	doc.Columns("1x Chocolate croissant", "2.10")

	line := lastLine(doc.Bytes())
	if got := len([]rune(line)); got != 16 {
		t.Errorf("expected 16 runes, got %d (%q)", got, line)
	}
	if !strings.HasSuffix(line, " 2.10") {
		t.Errorf("expected total kept, got %q", line)
	}
}

func TestNew(t *testing.T) {
	p, err := New(Config{Type: "none"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Kind() != "none" || p.IsConnected(context.Background()) {
		t.Errorf("expected disconnected null printer")
	}
	if _, err := New(Config{Type: "usb"}); err == nil {
		t.Errorf("expected missing usb path to fail")
	}
	if _, err := New(Config{Type: "bluetooth"}); err == nil {
		t.Errorf("expected unknown type to fail")
	}
}

func lastLine(b []byte) string {
	b = bytes.TrimPrefix(b, []byte{ESC, '@'})
	lines := bytes.Split(bytes.TrimRight(b, "\n"), []byte{LF})
	return string(lines[len(lines)-1])
}
