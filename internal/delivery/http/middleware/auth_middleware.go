package middleware

import (
	"net/http"
	"strings"

	"go-talented-backend/config"
	"go-talented-backend/internal/delivery/http/response"
	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/apperror"
	"go-talented-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and places the caller's
// identity and role on the gin context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.KindForbidden,
				"Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(cfg.JWTSecret, tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, apperror.KindForbidden,
				"Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserRole), claims.Role)

		c.Next()
	}
}

// RequireRole rejects callers whose role does not match.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyUserRole)) != role {
			response.Error(c, http.StatusForbidden, apperror.KindForbidden,
				"Your role cannot access this resource", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
