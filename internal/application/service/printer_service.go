package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
	"github.com/sangkips/cafeteria-pos/pkg/printer"
	"github.com/sangkips/cafeteria-pos/pkg/utils"
	"go.uber.org/zap"
)

// receiptDateLayout is the order date printed on receipts
const receiptDateLayout = "02/01/2006 15:04"

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer   printer.Printer
	orders    *OrderService
	storeName string
	charWidth int
	logger    *zap.Logger
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, orders *OrderService, storeName string, charWidth int, logger *zap.Logger) *PrinterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PrinterService{
		printer:   p,
		orders:    orders,
		storeName: storeName,
		charWidth: charWidth,
		logger:    logger,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus(ctx context.Context) *PrinterStatus {
	kind := s.printer.Kind()
	return &PrinterStatus{
		Configured: kind != "none",
		Connected:  s.printer.IsConnected(ctx),
		Type:       kind,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt so the handler can show it when no printer is configured.
func (s *PrinterService) TestPrint(ctx context.Context, now time.Time) (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header:  entity.ReceiptHeader{StoreName: s.storeName},
		OrderID: "TEST",
		Date:    now.Format(receiptDateLayout),
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 2.50, Total: 2.50},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 1.25, Total: 2.50},
		},
		Total: 5.00,
	}

	if err := s.printer.Print(ctx, FormatReceipt(receipt, s.charWidth)); err != nil {
		s.logger.Error("test print failed", zap.String("printer", s.printer.Kind()), zap.Error(err))
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// PrintOrderReceipt fetches an order and prints its receipt.
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, orderID uuid.UUID) (*entity.Receipt, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.Date = order.Date.In(s.orders.loc)
	receipt := entity.NewReceipt(s.storeName, order, receiptDateLayout)
	if err := s.printer.Print(ctx, FormatReceipt(receipt, s.charWidth)); err != nil {
		s.logger.Error("failed to print receipt", zap.String("order_id", orderID.String()), zap.Error(err))
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt, charWidth int) []byte {
	doc := printer.NewDocument(charWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false).
		Text(r.Date)

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	for _, item := range r.Items {
		doc.Columns(fmt.Sprintf("%dx %s", item.Quantity, item.Name), utils.FormatMoney(item.Total))
		if item.Quantity > 1 {
			doc.Text("  @ " + utils.FormatMoney(item.UnitPrice))
		}
	}

	doc.Separator('-').
		SetBold(true).
		Columns("TOTAL", utils.FormatMoney(r.Total)).
		SetBold(false).
		Separator('-')

	doc.SetAlign(printer.AlignCenter).
		Text("Order " + shortID(r.OrderID)).
		Text("Thank you!").
		SetAlign(printer.AlignLeft)

	doc.Feed(3).
		PartialCut()

	return doc.Bytes()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
