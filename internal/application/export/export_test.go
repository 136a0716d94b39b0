package export

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sangkips/cafeteria-pos/internal/application/report"
	"github.com/sangkips/cafeteria-pos/internal/domain/enum"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/pkg/apperror"
	"github.com/xuri/excelize/v2"
)

func coffeeReport() *report.WeeklyReport {
	return &report.WeeklyReport{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-09",
		WeekDays:  []string{"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07", "2024-06-08", "2024-06-09"},
		Products: []report.ProductWeekStat{{
			Name:          "Coffee",
			Price:         2.0,
			TotalQuantity: 3,
			TotalRevenue:  6.0,
			DailySales:    map[string]report.DailySale{"2024-06-05": {Quantity: 3, Revenue: 6.0}},
		}},
		WeeklyTotal: 6.0,
	}
}

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}

func TestToCSV_RoundTrip(t *testing.T) {
	rows := []Row{
		{{Key: "name", Value: "Coffee"}, {Key: "price", Value: 2.5}, {Key: "qty", Value: 3}},
		{{Key: "name", Value: "Tea, green"}, {Key: "price", Value: 1.0}, {Key: "qty", Value: 12}},
	}

	out := ToCSV(rows, true)
	if strings.Contains(out, "\r") || strings.HasPrefix(out, "\ufeff") {
		t.Errorf("expected plain \\n output without BOM, got %q", out)
	}
	if !strings.Contains(out, `"Tea, green"`) {
		t.Errorf("expected comma cell to be quoted, got %q", out)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}
	want := [][]string{
		{"name", "price", "qty"},
		{"Coffee", "2.5", "3"},
		{"Tea, green", "1", "12"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("expected %v, got %v", want, records)
	}
}

func TestToCSV_Escaping(t *testing.T) {
	rows := []Row{
		{{Key: "note", Value: `say "hi"`}, {Key: "missing", Value: nil}, {Key: "items", Value: []int{1, 2}}},
	}

	out := ToCSV(rows, false)
	if out != `"say ""hi""",,"[1,2]"` {
		t.Errorf("unexpected escaped row %q", out)
	}
	if ToCSV(nil, true) != "" {
		t.Error("expected empty output for no rows")
	}
}

func TestWeeklyRows(t *testing.T) {
	lang := newCatalog(t).Lang("en")
	rows := WeeklyRows(coffeeReport(), lang, time.UTC)
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}

	headers := Headers(rows)
	if len(headers) != 4+14 || headers[4] != "Mon_qty" || headers[5] != "Mon_rev" || headers[17] != "Sun_rev" {
		t.Errorf("unexpected headers %v", headers)
	}
	if v, _ := rows[0].Get("Wed_qty"); v != 3 {
		t.Errorf("expected Wed_qty 3, got %v", v)
	}
	if v, _ := rows[0].Get("Wed_rev"); v != 6.0 {
		t.Errorf("expected Wed_rev 6, got %v", v)
	}
	if v, _ := rows[0].Get("Mon_qty"); v != 0 {
		t.Errorf("expected missing day to read 0, got %v", v)
	}
}

func TestLang(t *testing.T) {
	c := newCatalog(t)

	if got := c.Lang("xx").Locale(); got != FallbackLocale {
		t.Errorf("expected fallback locale, got %s", got)
	}
	if got := c.Lang("fr-FR").Text("title"); got != "Rapport Hebdomadaire de Ventes" {
		t.Errorf("unexpected french title %q", got)
	}
	if got := c.Lang("en").Text("periodRange", "01/06/2024", "09/06/2024"); got != "Period from 01/06/2024 to 09/06/2024" {
		t.Errorf("unexpected period text %q", got)
	}
	if got := c.Lang("ja").Text("at"); got != "" {
		t.Errorf("expected empty connector for ja, got %q", got)
	}
	if got := c.Lang("en").Text("nope"); got != "nope" {
		t.Errorf("expected unknown key echoed, got %q", got)
	}
	if !c.Lang("ar").RightToLeft() {
		t.Error("expected arabic to be right to left")
	}
}

func TestComputeWeeklyStats(t *testing.T) {
	r := &report.WeeklyReport{Products: []report.ProductWeekStat{
		{Name: "Tea", TotalQuantity: 10, TotalRevenue: 15},
		{Name: "Sandwich", TotalQuantity: 4, TotalRevenue: 18},
	}}

	st := ComputeWeeklyStats(r)
	if st.BestSelling.Name != "Tea" || st.MostProfitable == nil || st.MostProfitable.Name != "Sandwich" {
		t.Errorf("unexpected leaders %+v", st)
	}
	if st.TotalItems != 14 || st.ProductCount != 2 {
		t.Errorf("unexpected totals %+v", st)
	}

	same := ComputeWeeklyStats(coffeeReport())
	if same.MostProfitable != nil {
		t.Error("expected most profitable hidden when it is the best seller")
	}

	if empty := ComputeWeeklyStats(&report.WeeklyReport{}); empty.BestSelling != nil {
		t.Error("expected no best seller on an empty report")
	}
}

func TestComputeSummaryStats(t *testing.T) {
	rows := []repository.SummaryRow{
		{ItemName: "A", TotalQuantity: 1, TotalRevenue: 10},
		{ItemName: "B", TotalQuantity: 2, TotalRevenue: 6},
		{ItemName: "C", TotalQuantity: 3, TotalRevenue: 4},
		{ItemName: "D", TotalQuantity: 4, TotalRevenue: 0},
	}

	st := ComputeSummaryStats(rows)
	if st.TotalRevenue != 20 || st.TotalQuantity != 10 || st.AverageRevenue != 5 || len(st.Top) != 3 {
		t.Errorf("unexpected summary stats %+v", st)
	}
	if empty := ComputeSummaryStats(nil); empty.AverageRevenue != 0 || len(empty.Top) != 0 {
		t.Errorf("unexpected empty stats %+v", empty)
	}
}

func TestHTMLRenderer_Weekly(t *testing.T) {
	h := NewHTMLRenderer(newCatalog(t), "€", time.UTC)
	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

	html, err := h.Weekly(coffeeReport(), "en", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Weekly Sales Report", "03/06/2024", "09/06/2024", "6.00€", "(2.00€)", "Wed", "05/06", "Best-selling product", `lang="en"`} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in weekly html", want)
		}
	}
	if strings.Contains(html, "Most profitable product") {
		t.Error("expected most profitable block hidden")
	}
	if strings.Contains(html, "No sales data available") {
		t.Error("expected no empty-state block")
	}

	empty := coffeeReport()
	empty.Products = nil
	empty.WeeklyTotal = 0
	html, err = h.Weekly(empty, "de", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "keine Verkaufsdaten") {
		t.Error("expected localized empty-state block")
	}
}

func TestHTMLRenderer_Summary(t *testing.T) {
	h := NewHTMLRenderer(newCatalog(t), "€", time.UTC)
	rows := []repository.SummaryRow{
		{ItemName: "Sandwich <XL>", ItemPrice: 4.5, TotalQuantity: 4, TotalRevenue: 18},
		{ItemName: "Coffee", ItemPrice: 2, TotalQuantity: 6, TotalRevenue: 12},
	}
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)

	html, err := h.Summary(rows, from, to, "fr", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Résumé des Ventes", "Période du 01/06/2024 au 09/06/2024", "30.00€", "15.00€", "Sandwich &lt;XL&gt;"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in summary html", want)
		}
	}
}

type fakeSurface struct {
	err      error
	gotURL   string
	sawHTML  string
	pdfBytes []byte
}

func (f *fakeSurface) PrintToPDF(_ context.Context, fileURL string) ([]byte, error) {
	f.gotURL = fileURL
	path := strings.TrimPrefix(fileURL, "file://")
	if b, err := os.ReadFile(path); err == nil {
		f.sawHTML = string(b)
	}
	return f.pdfBytes, f.err
}

func TestPDFWriter_Success(t *testing.T) {
	dir := t.TempDir()
	surface := &fakeSurface{pdfBytes: []byte("%PDF-1.4")}
	w := NewPDFWriter(surface, dir, nil)
	w.now = func() time.Time { return time.UnixMilli(1718000000000) }

	out := filepath.Join(dir, "report.pdf")
	if err := w.Write(context.Background(), "<html>ok</html>", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if name := filepath.Base(surface.gotURL); !strings.HasPrefix(name, "cafeteria-report-1718000000000-") || !strings.HasSuffix(name, ".html") {
		t.Errorf("unexpected staged url %s", surface.gotURL)
	}
	if surface.sawHTML != "<html>ok</html>" {
		t.Errorf("expected surface to load the staged markup, got %q", surface.sawHTML)
	}
	if b, _ := os.ReadFile(out); string(b) != "%PDF-1.4" {
		t.Errorf("unexpected pdf output %q", b)
	}
	assertNoStagedFiles(t, dir)
}

func TestPDFWriter_SurfaceFailure(t *testing.T) {
	dir := t.TempDir()
	w := NewPDFWriter(&fakeSurface{err: errors.New("page crashed")}, dir, nil)

	out := filepath.Join(dir, "report.pdf")
	err := w.Write(context.Background(), "<html/>", out)
	if !apperror.IsRendering(err) {
		t.Fatalf("expected rendering error, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("expected no output file on failure")
	}
	assertNoStagedFiles(t, dir)
}

// echoSurface returns the staged markup as the document once every caller
// has loaded its own file.
type echoSurface struct {
	arrived sync.WaitGroup
}

func (s *echoSurface) PrintToPDF(_ context.Context, fileURL string) ([]byte, error) {
	s.arrived.Done()
	s.arrived.Wait()
	return os.ReadFile(strings.TrimPrefix(fileURL, "file://"))
}

func TestPDFWriter_ConcurrentExports(t *testing.T) {
	dir := t.TempDir()
	surface := &echoSurface{}
	w := NewPDFWriter(surface, dir, nil)
	w.now = func() time.Time { return time.UnixMilli(1718000000000) }

	docs := []string{"<html>A</html>", "<html>B</html>"}
	surface.arrived.Add(len(docs))

	errs := make([]error, len(docs))
	var wg sync.WaitGroup
	for i, html := range docs {
		wg.Add(1)
		go func(i int, html string) {
			defer wg.Done()
			errs[i] = w.Write(context.Background(), html, filepath.Join(dir, fmt.Sprintf("report-%d.pdf", i)))
		}(i, html)
	}
	wg.Wait()

	for i, html := range docs {
		if errs[i] != nil {
			t.Fatalf("export %d failed: %v", i, errs[i])
		}
		b, _ := os.ReadFile(filepath.Join(dir, fmt.Sprintf("report-%d.pdf", i)))
		if string(b) != html {
			t.Errorf("export %d: expected %q, got %q", i, html, b)
		}
	}
	assertNoStagedFiles(t, dir)
}

func assertNoStagedFiles(t *testing.T, dir string) {
	t.Helper()
	matches, _ := filepath.Glob(filepath.Join(dir, "cafeteria-report-*.html"))
	if len(matches) != 0 {
		t.Errorf("expected staged html removed, found %v", matches)
	}
}

func TestToXLSX(t *testing.T) {
	rows := SummaryRows([]repository.SummaryRow{
		{ItemName: "Coffee", ItemPrice: 2, TotalQuantity: 6, TotalRevenue: 12},
		{ItemName: "Tea", ItemPrice: 1.5, TotalQuantity: 2, TotalRevenue: 3},
	})

	b, err := ToXLSX(rows, "Summary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected header plus 2 rows, got %v", got)
	}
	if !reflect.DeepEqual(got[0], []string{"item_name", "item_price", "total_quantity", "total_revenue"}) {
		t.Errorf("unexpected header %v", got[0])
	}
	if got[1][0] != "Coffee" || got[2][0] != "Tea" {
		t.Errorf("unexpected item names %v", got)
	}

	if got[1][2] != "6" || got[2][1] != "1.5" {
		t.Errorf("unexpected numeric cells %v", got)
	}
}

func TestToODS(t *testing.T) {
	rows := []Row{{{Key: "name", Value: "Tea & Milk"}, {Key: "price", Value: 2.5}}}

	b, err := ToODS(rows, "Products")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		t.Fatalf("failed to open ods: %v", err)
	}
	if zr.File[0].Name != "mimetype" || zr.File[0].Method != zip.Store {
		t.Errorf("expected stored mimetype first, got %s (%d)", zr.File[0].Name, zr.File[0].Method)
	}

	var content string
	for _, f := range zr.File {
		if f.Name != "content.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open content.xml: %v", err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		content = string(data)
	}
	for _, want := range []string{`table:name="Products"`, "Tea &amp; Milk", `office:value="2.5"`, "<text:p>name</text:p>"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in content.xml", want)
		}
	}
}

func TestEncodeRows_RejectsPDF(t *testing.T) {
	if _, err := EncodeRows(nil, enum.ExportFormatPDF, ""); err == nil {
		t.Error("expected pdf to be rejected as a row format")
	}
}

func TestFileNames(t *testing.T) {
	mon, sun := ISOWeek(time.Date(2024, 6, 9, 18, 0, 0, 0, time.UTC))
	if got := WeeklyFileName(mon, sun, enum.ExportFormatCSV); got != "weeklyReport-2024-06-03_to_2024-06-09.csv" {
		t.Errorf("unexpected weekly file name %s", got)
	}

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	if got := SummaryFileName(from, to, enum.ExportFormatPDF); got != "salesSummary-2024-05-01-to-2024-05-31.pdf" {
		t.Errorf("unexpected summary file name %s", got)
	}
	if got := OrdersFileName(to, enum.ExportFormatJSON); got != "allOrders-2024-05-31.json" {
		t.Errorf("unexpected orders file name %s", got)
	}
	if got := ProductsFileName(to, enum.ExportFormatODS); got != "productCatalog-2024-05-31.ods" {
		t.Errorf("unexpected products file name %s", got)
	}
}
