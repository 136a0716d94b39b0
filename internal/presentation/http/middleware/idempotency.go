package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/response"
	"go.uber.org/zap"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// RegisterIDHeader identifies the register sending the request
	RegisterIDHeader = "X-Register-ID"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo   repository.IdempotencyRepository
	Logger *zap.Logger
	Now    func() time.Time
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// ClientID scopes per-client state to the register header, else the client IP
func ClientID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(RegisterIDHeader)); id != "" {
		return id
	}
	return c.ClientIP()
}

// Idempotency replays the stored response of a request already processed
// with the same key. Only successful responses are stored.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		idempotencyKey := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if idempotencyKey == "" {
			c.Next()
			return
		}
		clientID := ClientID(c)

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Failed to read request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		sum := sha256.Sum256(body)
		requestHash := hex.EncodeToString(sum[:])

		existing, err := config.Repo.GetByKey(c.Request.Context(), idempotencyKey, clientID)
		if err != nil {
			config.Logger.Warn("idempotency lookup failed", zap.String("client_id", clientID), zap.Error(err))
			c.Next()
			return
		}

		if existing != nil && !existing.IsExpired(config.Now()) {
			if existing.RequestHash != "" && existing.RequestHash != requestHash {
				response.ErrorWithCode(c, http.StatusUnprocessableEntity, "Idempotency-Key was already used with a different request")
				c.Abort()
				return
			}
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		now := config.Now()
		ikey := &entity.IdempotencyKey{
			Key:          idempotencyKey,
			ClientID:     clientID,
			Endpoint:     c.Request.Method + " " + c.FullPath(),
			RequestHash:  requestHash,
			ResponseCode: status,
			ResponseBody: blw.body.String(),
			CreatedAt:    now,
			ExpiresAt:    now.Add(IdempotencyKeyTTL),
		}
		if err := config.Repo.Create(c.Request.Context(), ikey); err != nil {
			config.Logger.Warn("failed to store idempotency key", zap.String("client_id", clientID), zap.Error(err))
		}
	}
}
