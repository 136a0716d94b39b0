package request

// LoginRequest represents the manager login request
type LoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// ChangePINRequest represents a manager PIN change
type ChangePINRequest struct {
	CurrentPIN string `json:"current_pin" binding:"required"`
	NewPIN     string `json:"new_pin" binding:"required,min=4,max=32"`
}
