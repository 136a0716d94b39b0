package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/cafeteria-pos/internal/application/service"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetLanguage returns the preferred language
func (h *SettingsHandler) GetLanguage(c *gin.Context) {
	lang, err := h.settingsService.Language(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Language retrieved successfully", gin.H{"language": lang})
}

// SetLanguage stores the preferred language
func (h *SettingsHandler) SetLanguage(c *gin.Context) {
	var req request.LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	lang, err := h.settingsService.SetLanguage(c.Request.Context(), req.Language)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Language updated successfully", gin.H{"language": lang})
}

// Get returns one setting
func (h *SettingsHandler) Get(c *gin.Context) {
	setting, err := h.settingsService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Setting retrieved successfully", setting)
}

// Set stores one setting
func (h *SettingsHandler) Set(c *gin.Context) {
	var req request.SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	setting, err := h.settingsService.Set(c.Request.Context(), c.Param("key"), req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Setting updated successfully", setting)
}
