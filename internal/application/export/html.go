package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/sangkips/cafeteria-pos/internal/application/report"
	"github.com/sangkips/cafeteria-pos/internal/application/stats"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/pkg/utils"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// displayDate is the period format printed on reports
const displayDate = "02/01/2006"

var baseTemplates = template.Must(template.New("reports").Funcs(template.FuncMap{
	"t":     func(key string, _ ...string) string { return key },
	"money": func(v float64) string { return utils.FormatMoney(v) },
	"rank":  func(i int) int { return i + 1 },
}).ParseFS(templateFS, "templates/*.html.tmpl"))

// HTMLRenderer produces the printable markup of reports
type HTMLRenderer struct {
	catalog  *Catalog
	currency string
	loc      *time.Location
}

// NewHTMLRenderer creates a renderer printing amounts with currency.
func NewHTMLRenderer(catalog *Catalog, currency string, loc *time.Location) *HTMLRenderer {
	if loc == nil {
		loc = time.Local
	}
	return &HTMLRenderer{catalog: catalog, currency: currency, loc: loc}
}

type dayHeader struct {
	Name string
	Date string
}

type weeklyProductRow struct {
	Name          string
	Price         float64
	Quantities    []int
	TotalQuantity int
	TotalRevenue  float64
}

type weeklyView struct {
	Locale        string
	RTL           bool
	Start         string
	End           string
	WeeklyTotal   float64
	Days          []dayHeader
	Products      []weeklyProductRow
	HasData       bool
	Stats         WeeklyStats
	GeneratedDate string
	GeneratedTime string
}

type summaryView struct {
	Locale        string
	RTL           bool
	Period        string
	Rows          []repository.SummaryRow
	Stats         SummaryStats
	GeneratedDate string
	GeneratedTime string
}

// Weekly renders the weekly report in locale. Days without sales read 0.
func (h *HTMLRenderer) Weekly(r *report.WeeklyReport, locale string, now time.Time) (string, error) {
	lang := h.catalog.Lang(locale)

	view := weeklyView{
		Locale:        lang.Locale(),
		RTL:           lang.RightToLeft(),
		Start:         h.displayDay(r.StartDate),
		End:           h.displayDay(r.EndDate),
		WeeklyTotal:   r.WeeklyTotal,
		HasData:       !r.IsEmpty(),
		Stats:         ComputeWeeklyStats(r),
		GeneratedDate: lang.ShortDate(now),
		GeneratedTime: lang.ShortTime(now),
	}
	for _, day := range r.WeekDays {
		t, err := stats.ParseDay(day, h.loc)
		if err != nil {
			return "", fmt.Errorf("weekly report day %q: %w", day, err)
		}
		view.Days = append(view.Days, dayHeader{Name: lang.Weekday(t), Date: t.Format("02/01")})
	}
	for _, p := range r.Products {
		row := weeklyProductRow{
			Name:          p.Name,
			Price:         p.Price,
			TotalQuantity: p.TotalQuantity,
			TotalRevenue:  p.TotalRevenue,
		}
		for _, day := range r.WeekDays {
			row.Quantities = append(row.Quantities, p.Day(day).Quantity)
		}
		view.Products = append(view.Products, row)
	}

	return h.execute("weekly.html.tmpl", lang, view)
}

// Summary renders a sales summary for [from, to] in locale.
func (h *HTMLRenderer) Summary(rows []repository.SummaryRow, from, to time.Time, locale string, now time.Time) (string, error) {
	lang := h.catalog.Lang(locale)

	view := summaryView{
		Locale:        lang.Locale(),
		RTL:           lang.RightToLeft(),
		Period:        lang.Text("periodRange", from.Format(displayDate), to.Format(displayDate)),
		Rows:          rows,
		Stats:         ComputeSummaryStats(rows),
		GeneratedDate: lang.ShortDate(now),
		GeneratedTime: lang.ShortTime(now),
	}
	return h.execute("summary.html.tmpl", lang, view)
}

func (h *HTMLRenderer) execute(name string, lang *Lang, view any) (string, error) {
	tmpl, err := baseTemplates.Clone()
	if err != nil {
		return "", fmt.Errorf("clone templates: %w", err)
	}
	tmpl.Funcs(template.FuncMap{
		"t":     lang.Text,
		"money": h.money,
	})

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, view); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (h *HTMLRenderer) money(v float64) string {
	return utils.FormatMoney(v) + h.currency
}

func (h *HTMLRenderer) displayDay(day string) string {
	t, err := stats.ParseDay(day, h.loc)
	if err != nil {
		return day
	}
	return t.Format(displayDate)
}
