package request

// OrderItemRequest represents one line of a captured order
type OrderItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

// SaveOrderRequest represents the order sent by the register
type SaveOrderRequest struct {
	Date       string             `json:"date" binding:"required"`
	TotalPrice float64            `json:"totalPrice" binding:"min=0"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// HistoryRequest represents order history paging
type HistoryRequest struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

// MultipleDaysSalesRequest represents a set of days to total
type MultipleDaysSalesRequest struct {
	Dates []string `json:"dates" binding:"required"`
}
