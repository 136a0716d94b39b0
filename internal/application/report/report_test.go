package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/pkg/apperror"
)

type fakeAnalytics struct {
	lines   []repository.OrderLine
	summary []repository.SummaryRow
	err     error

	gotStart, gotEnd time.Time
}

func (f *fakeAnalytics) OrderTotals(context.Context, repository.Grain, *repository.TimeWindow) ([]repository.TimeSample, error) {
	return nil, f.err
}

func (f *fakeAnalytics) OrderCounts(context.Context, repository.Grain, *repository.TimeWindow) ([]repository.TimeSample, error) {
	return nil, f.err
}

func (f *fakeAnalytics) TopProductsByQuantity(context.Context, time.Time, time.Time, int) ([]repository.ProductQuantity, error) {
	return nil, f.err
}

func (f *fakeAnalytics) OrderLinesInRange(_ context.Context, start, end time.Time) ([]repository.OrderLine, error) {
	f.gotStart, f.gotEnd = start, end
	return f.lines, f.err
}

func (f *fakeAnalytics) SalesSummary(_ context.Context, start, end time.Time) ([]repository.SummaryRow, error) {
	f.gotStart, f.gotEnd = start, end
	return f.summary, f.err
}

func (f *fakeAnalytics) SalesTotal(context.Context, time.Time, time.Time) (float64, error) {
	return 0, f.err
}

func day(d, h int) time.Time {
	return time.Date(2024, 6, d, h, 0, 0, 0, time.UTC)
}

func TestWeekly_CoffeeScenario(t *testing.T) {
	repo := &fakeAnalytics{lines: []repository.OrderLine{
		{OrderID: "o1", OrderDate: day(5, 9), ItemName: "Coffee", ItemPrice: 2.0, Quantity: 3},
	}}

	r, err := NewBuilder(repo).Weekly(context.Background(), day(3, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.StartDate != "2024-06-03" || r.EndDate != "2024-06-09" {
		t.Errorf("unexpected window %s..%s", r.StartDate, r.EndDate)
	}
	if len(r.WeekDays) != 7 || r.WeekDays[6] != "2024-06-09" {
		t.Errorf("unexpected week days %v", r.WeekDays)
	}
	if !repo.gotEnd.Equal(time.Date(2024, 6, 9, 23, 59, 59, 999999999, time.UTC)) {
		t.Errorf("expected query through end of Sunday, got %v", repo.gotEnd)
	}
	if len(r.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(r.Products))
	}

	p := r.Products[0]
	if p.Name != "Coffee" || p.Price != 2.0 || p.TotalQuantity != 3 || p.TotalRevenue != 6.0 {
		t.Errorf("unexpected product %+v", p)
	}
	if got := p.Day("2024-06-05"); got != (DailySale{Quantity: 3, Revenue: 6.0}) {
		t.Errorf("unexpected daily sale %+v", got)
	}
	if got := p.Day("2024-06-04"); got != (DailySale{}) {
		t.Errorf("expected missing day to read zero, got %+v", got)
	}
	if r.WeeklyTotal != 6.0 {
		t.Errorf("expected weekly total 6, got %v", r.WeeklyTotal)
	}
}

func TestWeekly_TotalsIdentity(t *testing.T) {
	repo := &fakeAnalytics{lines: []repository.OrderLine{
		{OrderDate: day(3, 8), ItemName: "Tea", ItemPrice: 1.5, Quantity: 2},
		{OrderDate: day(4, 8), ItemName: "Coffee", ItemPrice: 2.0, Quantity: 1},
		{OrderDate: day(4, 12), ItemName: "Tea", ItemPrice: 1.5, Quantity: 4},
		{OrderDate: day(9, 22), ItemName: "Sandwich", ItemPrice: 4.25, Quantity: 2},
	}}

	r, err := NewBuilder(repo).Weekly(context.Background(), day(3, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := []string{"Tea", "Coffee", "Sandwich"}
	var sum float64
	for i, p := range r.Products {
		if p.Name != names[i] {
			t.Errorf("expected first-appearance order %v, got %s at %d", names, p.Name, i)
		}
		var rev float64
		var qty int
		for _, s := range p.DailySales {
			rev += s.Revenue
			qty += s.Quantity
		}
		if rev != p.TotalRevenue || qty != p.TotalQuantity {
			t.Errorf("%s: daily sales do not add up to totals", p.Name)
		}
		sum += p.TotalRevenue
	}
	if sum != r.WeeklyTotal {
		t.Errorf("expected weekly total %v, got %v", sum, r.WeeklyTotal)
	}
	if r.Products[0].TotalQuantity != 6 {
		t.Errorf("expected Tea quantity 6, got %d", r.Products[0].TotalQuantity)
	}
}

func TestWeekly_Empty(t *testing.T) {
	r, err := NewBuilder(&fakeAnalytics{}).Weekly(context.Background(), day(3, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.IsEmpty() || r.Products == nil || r.WeeklyTotal != 0 {
		t.Errorf("expected empty non-nil report, got %+v", r)
	}
}

func TestWeekly_StoreError(t *testing.T) {
	_, err := NewBuilder(&fakeAnalytics{err: errors.New("connection reset")}).Weekly(context.Background(), day(3, 0))
	if !apperror.IsStoreQuery(err) {
		t.Errorf("expected store query error, got %v", err)
	}
}

func TestSummary(t *testing.T) {
	rows := []repository.SummaryRow{
		{ItemName: "Sandwich", ItemPrice: 4.5, TotalQuantity: 4, TotalRevenue: 18},
		{ItemName: "Coffee", ItemPrice: 2, TotalQuantity: 6, TotalRevenue: 12},
		{ItemName: "Tea", ItemPrice: 1.5, TotalQuantity: 8, TotalRevenue: 12},
	}
	repo := &fakeAnalytics{summary: rows}

	got, err := NewBuilder(repo).Summary(context.Background(), day(1, 0), day(9, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].TotalRevenue > got[i-1].TotalRevenue {
			t.Errorf("summary not ordered by revenue at %d", i)
		}
	}
	if !repo.gotEnd.Equal(day(9, 0)) {
		t.Errorf("expected end passed through unchanged, got %v", repo.gotEnd)
	}
}

func TestSummary_EmptyIsNotError(t *testing.T) {
	got, err := NewBuilder(&fakeAnalytics{}).Summary(context.Background(), day(1, 0), day(9, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}

	_, err = NewBuilder(&fakeAnalytics{err: errors.New("boom")}).Summary(context.Background(), day(1, 0), day(9, 0))
	if !apperror.IsStoreQuery(err) {
		t.Errorf("expected store query error, got %v", err)
	}
}

func TestSummary_InvalidRange(t *testing.T) {
	repo := &fakeAnalytics{}
	_, err := NewBuilder(repo).Summary(context.Background(), day(9, 0), day(1, 0))
	if !apperror.IsInvalidRange(err) {
		t.Errorf("expected invalid range error, got %v", err)
	}
	if !repo.gotStart.IsZero() {
		t.Error("expected no query for an invalid range")
	}
}
