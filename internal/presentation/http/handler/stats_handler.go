package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/cafeteria-pos/internal/application/service"
	"github.com/sangkips/cafeteria-pos/internal/domain/enum"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/response"
)

// StatsHandler serves the dashboard charts
type StatsHandler struct {
	statsService *service.StatsService
	clock        Clock
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService, clock Clock) *StatsHandler {
	return &StatsHandler{statsService: statsService, clock: clock}
}

// Revenue returns the revenue series of a timeframe
func (h *StatsHandler) Revenue(c *gin.Context) {
	tf, ok := h.bindTimeFrame(c)
	if !ok {
		return
	}

	series, err := h.statsService.Revenue(c.Request.Context(), tf, h.clock.Current())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Revenue retrieved successfully", series)
}

// Orders returns the order count series of a timeframe
func (h *StatsHandler) Orders(c *gin.Context) {
	tf, ok := h.bindTimeFrame(c)
	if !ok {
		return
	}

	series, err := h.statsService.OrderCount(c.Request.Context(), tf, h.clock.Current())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order counts retrieved successfully", series)
}

// Products returns the best sellers of a date range
func (h *StatsHandler) Products(c *gin.Context) {
	var req request.DateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "start_date and end_date are required")
		return
	}

	from, to, err := h.clock.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	points, err := h.statsService.TopProducts(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product sales retrieved successfully", points)
}

func (h *StatsHandler) bindTimeFrame(c *gin.Context) (enum.TimeFrame, bool) {
	var req request.TimeFrameRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "timeframe is required")
		return "", false
	}

	tf, err := enum.ParseTimeFrame(req.TimeFrame)
	if err != nil {
		response.BadRequest(c, err.Error())
		return "", false
	}
	return tf, true
}
