package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order represents a sale captured at the register
type Order struct {
	ID         uuid.UUID   `gorm:"type:char(36);primaryKey" json:"id"`
	Date       time.Time   `gorm:"column:date;not null;index" json:"date"`
	TotalPrice int64       `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt  time.Time   `json:"created_at"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		TotalPrice float64 `json:"total_price"`
	}{
		Alias:      Alias(o),
		TotalPrice: float64(o.TotalPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetTotalDecimal returns the total as a decimal
func (o *Order) GetTotalDecimal() float64 {
	return float64(o.TotalPrice) / 100
}

// OrderItem is one line of an order. Name and price are copied from the
// catalog at capture time so later catalog edits do not rewrite history.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:char(36);not null;index" json:"order_id"`
	ItemName  string    `gorm:"size:255;not null;index" json:"item_name"`
	ItemPrice int64     `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		ItemPrice float64 `json:"item_price"`
	}{
		Alias:     Alias(oi),
		ItemPrice: float64(oi.ItemPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order line
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal returns price times quantity in cents
func (oi *OrderItem) LineTotal() int64 {
	return oi.ItemPrice * int64(oi.Quantity)
}

// DayOrders groups the orders of one calendar day for the history view
type DayOrders struct {
	Day    string  `json:"day"`
	Total  float64 `json:"total"`
	Orders []Order `json:"orders"`
}
