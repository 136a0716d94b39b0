package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sangkips/cafeteria-pos/internal/config"
)

func TestLocalStore_SaveAndDelete(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	loc, err := store.Save(ctx, "../../etc/espresso.png", []byte("png"), "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Dir(loc) != root || filepath.Base(loc) != "espresso.png" {
		t.Errorf("expected file inside %s, got %s", root, loc)
	}
	if data, err := os.ReadFile(loc); err != nil || string(data) != "png" {
		t.Fatalf("expected saved bytes, got %q (%v)", data, err)
	}

	if err := store.Delete(ctx, loc); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if _, err := os.Stat(loc); !os.IsNotExist(err) {
		t.Errorf("expected file removed, got %v", err)
	}
	if err := store.Delete(ctx, loc); err != nil {
		t.Errorf("expected deleting a missing file to succeed, got %v", err)
	}
	if err := store.Delete(ctx, "/etc/passwd"); err == nil {
		t.Errorf("expected delete outside root to fail")
	}
}

func TestS3Store_KeyFor(t *testing.T) {
	store, err := NewS3Store(config.S3Config{
		Endpoint:  "minio.local:9000",
		Region:    "us-east-1",
		Bucket:    "cafeteria",
		AccessKey: "ak",
		SecretKey: "sk",
		PublicURL: "https://cdn.example.com/",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := store.(*s3Store)

	key, ok := s.keyFor("https://cdn.example.com/products/latte.png")
	if !ok || key != "products/latte.png" {
		t.Errorf("expected products/latte.png, got %q (%v)", key, ok)
	}
	if _, ok := s.keyFor("/var/images/latte.png"); ok {
		t.Errorf("expected foreign location to be ignored")
	}
}

func TestNew(t *testing.T) {
	if _, err := New(&config.StorageConfig{Driver: "ftp"}); err == nil {
		t.Errorf("expected unknown driver to fail")
	}
	if _, err := New(&config.StorageConfig{Driver: "s3"}); err == nil {
		t.Errorf("expected incomplete s3 config to fail")
	}
	if _, err := New(&config.StorageConfig{Driver: "local", Path: t.TempDir()}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
