package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStoreQueryError_Unwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("revenue: %w", NewStoreQueryError("order totals", cause))

	if !IsStoreQuery(err) {
		t.Fatalf("expected store query kind, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause to be reachable")
	}
	if got := GetAppError(err).Code; got != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", got)
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
		code int
	}{
		{"invalid range", NewInvalidRangeError("end before start"), KindInvalidRange, http.StatusBadRequest},
		{"rendering", NewRenderingError(errors.New("load failed")), KindRendering, http.StatusBadGateway},
		{"not found", NewNotFoundError("Order"), KindGeneric, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := GetAppError(tt.err)
			if appErr.Kind != tt.kind {
				t.Errorf("expected kind %q, got %q", tt.kind, appErr.Kind)
			}
			if appErr.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, appErr.Code)
			}
		})
	}
}

func TestGetAppError_PlainError(t *testing.T) {
	appErr := GetAppError(errors.New("boom"))
	if appErr.Code != http.StatusInternalServerError || appErr.Message != "boom" {
		t.Errorf("unexpected conversion: %+v", appErr)
	}
	if IsRendering(errors.New("boom")) {
		t.Errorf("plain error must not classify as rendering")
	}
}
