package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/cafeteria-pos/internal/application/service"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/response"
)

// AuthHandler handles manager authentication
type AuthHandler struct {
	authService *service.AuthService
	clock       Clock
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, clock Clock) *AuthHandler {
	return &AuthHandler{authService: authService, clock: clock}
}

// Login exchanges the manager PIN for a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "PIN is required")
		return
	}

	out, err := h.authService.Login(c.Request.Context(), req.PIN, h.clock.Current())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", out)
}

// ChangePIN replaces the manager PIN
func (h *AuthHandler) ChangePIN(c *gin.Context) {
	var req request.ChangePINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.authService.ChangePIN(c.Request.Context(), req.CurrentPIN, req.NewPIN); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "PIN changed successfully", nil)
}
