package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/cafeteria-pos/internal/config"
	"github.com/sangkips/cafeteria-pos/pkg/utils"
	"go.uber.org/zap"
)

func newTestRouter(ping func(context.Context) error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		App:       config.AppConfig{Name: "cafeteria-pos"},
		RateLimit: config.RateLimitConfig{Requests: 100, Duration: 60},
	}
	return Setup(&Handlers{}, &Deps{
		JWTManager: utils.NewJWTManager("secret", "cafeteria-pos", time.Hour),
		Cfg:        cfg,
		Logger:     zap.NewNop(),
		Ping:       ping,
	})
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name string
		ping func(context.Context) error
		want int
	}{
		{name: "no ping", ping: nil, want: http.StatusOK},
		{name: "store up", ping: func(context.Context) error { return nil }, want: http.StatusOK},
		{name: "store down", ping: func(context.Context) error { return errors.New("refused") }, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.ping)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestManagerRoutesRequireToken(t *testing.T) {
	router := newTestRouter(nil)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/products"},
		{http.MethodGet, "/api/v1/stats/revenue?timeframe=DAY"},
		{http.MethodGet, "/api/v1/exports/orders?format=csv"},
		{http.MethodPut, "/api/v1/settings/language"},
		{http.MethodPost, "/api/v1/printer/test"},
	}
	for _, p := range paths {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", p.method, p.path, w.Code)
		}
	}
}

func TestFallbackResponses(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"unknown route", http.MethodGet, "/api/v1/nope", http.StatusNotFound},
		{"wrong method", http.MethodDelete, "/api/v1/health", http.StatusMethodNotAllowed},
		// the register group handler is nil here, so the call panics
		{"recovered panic", http.MethodGet, "/api/v1/register/groups", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
			if !strings.Contains(w.Body.String(), `"success":false`) {
				t.Errorf("expected error envelope, got %s", w.Body.String())
			}
		})
	}
}
