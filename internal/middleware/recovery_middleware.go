// internal/middleware/recovery_middleware.go
package middleware

import (
	"net/http"

	xerrors "hrconsole-gateway/internal/pkg/errors"
	"hrconsole-gateway/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware turns a handler panic into a logged 500. Install it
// after LoggingMiddleware so the access log still records the 500.
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", GetRequestID(c)),
					zap.Stack("stack"),
				)
				response.Error(c, http.StatusInternalServerError, xerrors.MsgInternal)
			}
		}()
		c.Next()
	}
}
