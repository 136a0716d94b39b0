package storage

import (
	"fmt"

	"github.com/sangkips/cafeteria-pos/internal/config"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
)

// New selects the image store for the configured driver
func New(cfg *config.StorageConfig) (repository.ImageStore, error) {
	switch cfg.Driver {
	case "local", "":
		return NewLocalStore(cfg.Path)
	case "s3":
		return NewS3Store(cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q (use local or s3)", cfg.Driver)
	}
}
