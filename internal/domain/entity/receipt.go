package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a printable view of an order, composed at print time.
type Receipt struct {
	Header  ReceiptHeader `json:"header"`
	OrderID string        `json:"order_id"`
	Date    string        `json:"date"`
	Items   []ReceiptItem `json:"items"`
	Total   float64       `json:"total"`
}

// NewReceipt builds a receipt from a stored order.
func NewReceipt(storeName string, order *Order, dateLayout string) *Receipt {
	r := &Receipt{
		Header:  ReceiptHeader{StoreName: storeName},
		OrderID: order.ID.String(),
		Date:    order.Date.Format(dateLayout),
		Total:   order.GetTotalDecimal(),
	}
	for _, it := range order.Items {
		r.Items = append(r.Items, ReceiptItem{
			Name:      it.ItemName,
			Quantity:  it.Quantity,
			UnitPrice: float64(it.ItemPrice) / 100,
			Total:     float64(it.LineTotal()) / 100,
		})
	}
	return r
}
