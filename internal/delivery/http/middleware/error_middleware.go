package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-talented-backend/internal/delivery/http/response"
	"go-talented-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors appended to the gin context into the
// standard JSON error envelope. Internal errors are logged server-side
// and never exposed to clients.
func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= 500 {
				log.Error("request failed", "path", c.FullPath(), "kind", appErr.Kind, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Kind, appErr.Message, nil)
			return
		}

		log.Error("unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, apperror.KindStorageUnavailable,
			"An unexpected error occurred. Please try again later.", nil)
	}
}
