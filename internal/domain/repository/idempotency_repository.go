package repository

import (
	"context"
	"time"

	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// GetByKey retrieves a live idempotency key for a register. Returns nil, nil when absent.
	GetByKey(ctx context.Context, key, clientID string) (*entity.IdempotencyKey, error)
	// Create stores a new idempotency key
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	// DeleteExpired removes keys that expired before now
	DeleteExpired(ctx context.Context, now time.Time) error
}
