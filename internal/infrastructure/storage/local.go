package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
)

type localStore struct {
	root string
}

// NewLocalStore keeps images as files under root
func NewLocalStore(root string) (repository.ImageStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", root, err)
	}
	return &localStore{root: root}, nil
}

func (s *localStore) Save(ctx context.Context, name string, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean, err := objectName(name)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.root, clean)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", path, err)
	}
	return path, nil
}

func (s *localStore) Delete(_ context.Context, location string) error {
	if location == "" {
		return nil
	}
	rel, err := filepath.Rel(s.root, location)
	if err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("storage: %s is outside the image directory", location)
	}
	if err := os.Remove(location); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: remove %s: %w", location, err)
	}
	return nil
}

// objectName rejects names that would escape the store
func objectName(name string) (string, error) {
	clean := filepath.Base(filepath.Clean("/" + name))
	if clean == "/" || clean == "." || clean == "" {
		return "", fmt.Errorf("storage: invalid object name %q", name)
	}
	return clean, nil
}
