package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/cafeteria-pos/internal/presentation/http/dto/response"
	"github.com/sangkips/cafeteria-pos/pkg/utils"
)

// AuthMiddleware requires a valid manager session token
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		if claims.Role != utils.RoleManager {
			response.Forbidden(c, "Manager access required")
			c.Abort()
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
