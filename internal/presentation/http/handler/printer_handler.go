package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/cafeteria-pos/internal/application/service"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
	clock          Clock
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService, clock Clock) *PrinterHandler {
	return &PrinterHandler{printerService: printerService, clock: clock}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.printerService.GetStatus(c.Request.Context())
	response.OK(c, "Printer status retrieved", status)
}

// TestPrint sends a test page to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint(c.Request.Context(), h.clock.Current())
	if err != nil {
		// Return the receipt data anyway (useful when printer type is "none")
		response.OK(c, "Test print completed (printer may be disabled)", gin.H{
			"receipt": receipt,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Test page sent to printer", gin.H{
		"receipt": receipt,
	})
}

// PrintOrder prints the receipt of an order.
func (h *PrinterHandler) PrintOrder(c *gin.Context) {
	id, err := GetIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.printerService.PrintOrderReceipt(c.Request.Context(), id)
	if err != nil {
		// If receipt was built but printing failed, return receipt with warning
		if receipt != nil {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": receipt,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, "Order receipt printed successfully", gin.H{
		"receipt": receipt,
	})
}
