package repository

import (
	"context"

	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
)

// SettingsRepository defines the interface for key/value settings
type SettingsRepository interface {
	// Get returns nil, nil when the key is not set
	Get(ctx context.Context, key string) (*entity.Setting, error)
	Set(ctx context.Context, key, value string) error
	// SetIfAbsent stores the value only when the key does not exist yet
	SetIfAbsent(ctx context.Context, key, value string) error
}
