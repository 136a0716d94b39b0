package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/cafeteria-pos/internal/application/service"
	"github.com/sangkips/cafeteria-pos/internal/application/stats"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/response"
	"github.com/sangkips/cafeteria-pos/pkg/pagination"
)

// OrderHandler handles order capture, history and daily sales
type OrderHandler struct {
	orderService *service.OrderService
	statsService *service.StatsService
	clock        Clock
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, statsService *service.StatsService, clock Clock) *OrderHandler {
	return &OrderHandler{orderService: orderService, statsService: statsService, clock: clock}
}

// Save stores an order sent by the register
func (h *OrderHandler) Save(c *gin.Context) {
	var req request.SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	input := &service.SaveOrderInput{
		Date:       req.Date,
		TotalPrice: req.TotalPrice,
		Items:      make([]service.OrderItemInput, len(req.Items)),
	}
	for i, it := range req.Items {
		input.Items[i] = service.OrderItemInput{Name: it.Name, Price: it.Price, Quantity: it.Quantity}
	}

	order, err := h.orderService.SaveOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order saved successfully", gin.H{"id": order.ID})
}

// History lists orders grouped by day
func (h *OrderHandler) History(c *gin.Context) {
	var req request.HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.orderService.History(c.Request.Context(), pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Order history retrieved successfully", result)
}

// Get returns one order with its lines
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := GetIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// DailySales returns the revenue of one day
func (h *OrderHandler) DailySales(c *gin.Context) {
	day, err := h.clock.ParseDay("date", c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	total, err := h.statsService.DailySales(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Daily sales retrieved successfully", gin.H{"date": stats.DayKey(day), "total": total})
}

// MultipleDaysSales returns the revenue of each requested day
func (h *OrderHandler) MultipleDaysSales(c *gin.Context) {
	var req request.MultipleDaysSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	days := make([]time.Time, 0, len(req.Dates))
	for _, d := range req.Dates {
		day, err := h.clock.ParseDay("date", d)
		if err != nil {
			response.Error(c, err)
			return
		}
		days = append(days, day)
	}

	totals, err := h.statsService.MultipleDaysSales(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales retrieved successfully", totals)
}
