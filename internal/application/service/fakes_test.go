package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
)

type fakeAnalytics struct {
	samples []repository.TimeSample
	top     []repository.ProductQuantity
	lines   []repository.OrderLine
	summary []repository.SummaryRow
	totals  map[string]float64
	err     error

	gotGrain         repository.Grain
	gotWindow        *repository.TimeWindow
	gotStart, gotEnd time.Time
	gotLimit         int
}

func (f *fakeAnalytics) OrderTotals(_ context.Context, grain repository.Grain, window *repository.TimeWindow) ([]repository.TimeSample, error) {
	f.gotGrain, f.gotWindow = grain, window
	return f.samples, f.err
}

func (f *fakeAnalytics) OrderCounts(_ context.Context, grain repository.Grain, window *repository.TimeWindow) ([]repository.TimeSample, error) {
	f.gotGrain, f.gotWindow = grain, window
	return f.samples, f.err
}

func (f *fakeAnalytics) TopProductsByQuantity(_ context.Context, start, end time.Time, limit int) ([]repository.ProductQuantity, error) {
	f.gotStart, f.gotEnd, f.gotLimit = start, end, limit
	return f.top, f.err
}

func (f *fakeAnalytics) OrderLinesInRange(_ context.Context, start, end time.Time) ([]repository.OrderLine, error) {
	f.gotStart, f.gotEnd = start, end
	return f.lines, f.err
}

func (f *fakeAnalytics) SalesSummary(_ context.Context, start, end time.Time) ([]repository.SummaryRow, error) {
	f.gotStart, f.gotEnd = start, end
	return f.summary, f.err
}

func (f *fakeAnalytics) SalesTotal(_ context.Context, start, _ time.Time) (float64, error) {
	return f.totals[start.Format("2006-01-02")], f.err
}

type fakeSettings struct {
	values map[string]string
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{values: make(map[string]string)}
}

func (f *fakeSettings) Get(_ context.Context, key string) (*entity.Setting, error) {
	v, ok := f.values[key]
	if !ok {
		return nil, nil
	}
	return &entity.Setting{Key: key, Value: v}, nil
}

func (f *fakeSettings) Set(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeSettings) SetIfAbsent(_ context.Context, key, value string) error {
	if _, ok := f.values[key]; !ok {
		f.values[key] = value
	}
	return nil
}

type fakeOrders struct {
	orders []entity.Order
}

func (f *fakeOrders) Create(_ context.Context, order *entity.Order) error {
	f.orders = append([]entity.Order{*order}, f.orders...)
	return nil
}

func (f *fakeOrders) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrders) List(context.Context, *time.Time, *time.Time) ([]entity.Order, error) {
	return f.orders, nil
}

type fakeItems struct {
	items      map[uuid.UUID]*entity.Item
	lastFilter *repository.ItemFilterParams
}

func newFakeItems() *fakeItems {
	return &fakeItems{items: make(map[uuid.UUID]*entity.Item)}
}

func (f *fakeItems) Create(_ context.Context, item *entity.Item, group string) error {
	item.Groups = nil
	if group != "" {
		item.Groups = []entity.GroupItem{{GroupName: group, ItemID: item.ID}}
	}
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakeItems) GetByID(_ context.Context, id uuid.UUID) (*entity.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (f *fakeItems) Update(ctx context.Context, item *entity.Item, group string) error {
	return f.Create(ctx, item, group)
}

func (f *fakeItems) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeItems) List(context.Context) ([]entity.Item, error) {
	var out []entity.Item
	for _, it := range f.items {
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeItems) ListForRegister(ctx context.Context, params *repository.ItemFilterParams) ([]entity.Item, error) {
	f.lastFilter = params
	return f.List(ctx)
}

func (f *fakeItems) Groups(context.Context) ([]string, error) {
	return nil, nil
}

type fakeImages struct {
	saved   map[string][]byte
	deleted []string
}

func newFakeImages() *fakeImages {
	return &fakeImages{saved: make(map[string][]byte)}
}

func (f *fakeImages) Save(_ context.Context, name string, data []byte, _ string) (string, error) {
	loc := "/images/" + name
	f.saved[loc] = data
	return loc, nil
}

func (f *fakeImages) Delete(_ context.Context, location string) error {
	f.deleted = append(f.deleted, location)
	delete(f.saved, location)
	return nil
}
