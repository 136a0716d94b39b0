package request

// ProductRequest represents a product creation or update request
type ProductRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=255"`
	Price float64 `json:"price" binding:"min=0"`
	Group string  `json:"group" binding:"omitempty,max=100"`
	// Image is a base64 payload or data URL
	Image string `json:"image"`
}

// RegisterItemsRequest represents the register item filter
type RegisterItemsRequest struct {
	Groups string `form:"groups"` // comma separated
	Search string `form:"search"`
}
