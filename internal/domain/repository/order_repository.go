package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// Create stores the order and all of its lines in one transaction
	Create(ctx context.Context, order *entity.Order) error
	// GetByID returns nil, nil when the order does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// List returns every order with its lines, newest first. Nil bounds are open.
	List(ctx context.Context, from, to *time.Time) ([]entity.Order, error)
}
