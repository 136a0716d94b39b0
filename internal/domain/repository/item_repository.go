package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
)

// ItemRepository defines the interface for catalog data operations
type ItemRepository interface {
	// Create stores the item and, when group is not empty, its group link
	Create(ctx context.Context, item *entity.Item, group string) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	// Update saves the item and replaces its group links with group
	Update(ctx context.Context, item *entity.Item, group string) error
	// Delete removes the item and its group links
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns every item with its groups, ordered by name
	List(ctx context.Context) ([]entity.Item, error)
	// ListForRegister filters by group names (any) and a case-insensitive name search
	ListForRegister(ctx context.Context, params *ItemFilterParams) ([]entity.Item, error)
	// Groups returns the distinct group names, sorted
	Groups(ctx context.Context) ([]string, error)
}

// ItemFilterParams contains filtering parameters for register item queries
type ItemFilterParams struct {
	Groups []string
	Search string
}
