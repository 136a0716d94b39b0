package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/cafeteria-pos/internal/application/stats"
	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/pkg/apperror"
	"github.com/sangkips/cafeteria-pos/pkg/pagination"
	"github.com/sangkips/cafeteria-pos/pkg/utils"
)

// OrderService handles order capture and history
type OrderService struct {
	orderRepo repository.OrderRepository
	loc       *time.Location
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, loc *time.Location) *OrderService {
	if loc == nil {
		loc = time.Local
	}
	return &OrderService{orderRepo: orderRepo, loc: loc}
}

// OrderItemInput represents an item in an order
type OrderItemInput struct {
	Name     string
	Price    float64
	Quantity int
}

// SaveOrderInput represents the order sent by the register
type SaveOrderInput struct {
	// Date accepts T or space separated timestamps
	Date       string
	TotalPrice float64
	Items      []OrderItemInput
}

// SaveOrder stores an order with its lines and returns it
func (s *OrderService) SaveOrder(ctx context.Context, input *SaveOrderInput) (*entity.Order, error) {
	date, err := stats.ParseTimestamp(input.Date, s.loc)
	if err != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "date", Message: "Invalid order date"}})
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "items", Message: "An order needs at least one item"}})
	}

	order := &entity.Order{
		ID:         uuid.New(),
		Date:       date,
		TotalPrice: utils.ToCents(input.TotalPrice),
		Items:      make([]entity.OrderItem, 0, len(input.Items)),
	}
	for i, it := range input.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" || it.Quantity <= 0 || it.Price < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{{
				Field:   "items",
				Message: "Item " + strconv.Itoa(i+1) + " needs a name, a positive quantity and a price",
			}})
		}
		order.Items = append(order.Items, entity.OrderItem{
			ItemName:  name,
			ItemPrice: utils.ToCents(it.Price),
			Quantity:  it.Quantity,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder retrieves an order with its lines
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// History groups orders by calendar day, newest day first, and pages over
// days.
func (s *OrderService) History(ctx context.Context, params pagination.PaginationParams) (*pagination.PaginatedResult[entity.DayOrders], error) {
	orders, err := s.orderRepo.List(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	return pagination.Slice(GroupByDay(orders, s.loc), params), nil
}

// AllOrders returns every order, newest first
func (s *OrderService) AllOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.orderRepo.List(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	return orders, nil
}

// GroupByDay buckets orders sorted newest first into days, keeping that
// order.
func GroupByDay(orders []entity.Order, loc *time.Location) []entity.DayOrders {
	days := make([]entity.DayOrders, 0)
	index := make(map[string]int)
	for _, o := range orders {
		key := stats.DayKey(o.Date.In(loc))
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, entity.DayOrders{Day: key})
		}
		days[i].Orders = append(days[i].Orders, o)
		days[i].Total = utils.FromCents(utils.ToCents(days[i].Total) + o.TotalPrice)
	}
	return days
}
