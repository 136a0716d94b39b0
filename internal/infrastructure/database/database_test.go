package database

import (
	"testing"

	"github.com/sangkips/cafeteria-pos/internal/config"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		driver  string
		want    string
		wantErr bool
	}{
		{driver: "postgres", want: "postgres"},
		{driver: "", want: "postgres"},
		{driver: "mysql", want: "mysql"},
		{driver: "sqlite", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := Dialector(&config.DatabaseConfig{Driver: tt.driver, Host: "localhost", Port: "5432"})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for driver %q", tt.driver)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Name() != tt.want {
				t.Errorf("expected dialect %s, got %s", tt.want, d.Name())
			}
		})
	}
}
