package repository

import "context"

// ImageStore persists product images outside the database
type ImageStore interface {
	// Save stores data under name and returns the location to keep on the item
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
	// Delete removes a previously saved image. Missing objects are not an error.
	Delete(ctx context.Context, location string) error
}
