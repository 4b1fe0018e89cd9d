// internal/handlers/gateway/gateway_handler.go
package gateway

import (
	"context"
	"io"
	"net/http"

	"hrconsole-gateway/internal/middleware"
	xerrors "hrconsole-gateway/internal/pkg/errors"
	"hrconsole-gateway/internal/pkg/response"
	"hrconsole-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Forwarder sends an authenticated request to the upstream API.
type Forwarder interface {
	Forward(ctx context.Context, in *http.Request, upstreamPath, token string) (*http.Response, error)
}

// GatewayHandler lets browser code reach the upstream API with the
// HttpOnly access token it cannot read itself.
type GatewayHandler struct {
	upstream Forwarder
	logger   *zap.Logger
}

func NewGatewayHandler(upstream Forwarder, logger *zap.Logger) *GatewayHandler {
	return &GatewayHandler{
		upstream: upstream,
		logger:   logger,
	}
}

// Response headers the browser must not see from upstream.
var dropResponseHeaders = map[string]bool{
	"Set-Cookie":        true,
	"Connection":        true,
	"Keep-Alive":        true,
	"Transfer-Encoding": true,
	"Content-Length":    true,
}

// Forward relays the request to {api}/api/v1/<path>.
func (h *GatewayHandler) Forward(c *gin.Context) {
	token := session.AccessToken(c.Request)
	if token == "" {
		response.Unauthorized(c, xerrors.MsgUnauthorized)
		return
	}

	path := c.Param("path")
	resp, err := h.upstream.Forward(c.Request.Context(), c.Request, path, token)
	if err != nil {
		fields := []zap.Field{
			zap.String("path", path),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		}
		if xerrors.IsInternal(err) {
			h.logger.Error("upstream call failed", fields...)
		} else {
			h.logger.Warn("upstream call refused", fields...)
		}
		response.FromError(c, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		fields := []zap.Field{zap.String("path", path)}
		if user, ok := middleware.GetUser(c); ok {
			fields = append(fields, zap.Int64("user_id", user.UserID))
		}
		h.logger.Info("upstream rejected session token", fields...)
		response.FromError(c, xerrors.ErrUnauthorized)
		return
	}

	for k, vv := range resp.Header {
		if dropResponseHeaders[k] {
			continue
		}
		for _, v := range vv {
			c.Writer.Header().Add(k, v)
		}
	}
	c.Status(resp.StatusCode)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		h.logger.Warn("failed to relay upstream body",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}
