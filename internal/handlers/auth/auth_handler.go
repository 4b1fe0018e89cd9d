// internal/handlers/auth/auth_handler.go
package auth

import (
	"context"
	"net/http"

	"hrconsole-gateway/internal/domain/auth"
	xerrors "hrconsole-gateway/internal/pkg/errors"
	"hrconsole-gateway/internal/pkg/response"
	"hrconsole-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Relay is the credential relay the handler delegates to.
type Relay interface {
	Login(ctx context.Context, req *auth.LoginRequest, clientIP string) (*auth.LoginResult, error)
}

type AuthHandler struct {
	relay   Relay
	cookies *session.CookieStore
	logger  *zap.Logger
}

func NewAuthHandler(relay Relay, cookies *session.CookieStore, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		relay:   relay,
		cookies: cookies,
		logger:  logger,
	}
}

// ========== Login ==========

// Login relays credentials upstream and, on success, issues the session cookies.
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, xerrors.MsgCredentialsRequired)
		return
	}

	result, err := h.relay.Login(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		h.logFailure(c, req.Email, err)
		response.FromError(c, err)
		return
	}

	if err := h.cookies.Write(c.Writer, result); err != nil {
		h.logFailure(c, req.Email, err)
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, auth.LoginResponse{
		Success: true,
		User:    result.User,
	})
}

func (h *AuthHandler) logFailure(c *gin.Context, email string, err error) {
	fields := []zap.Field{
		zap.String("email", email),
		zap.String("ip", c.ClientIP()),
		zap.Error(err),
	}
	if xerrors.IsInternal(err) {
		h.logger.Error("login relay failed", fields...)
		return
	}
	h.logger.Info("login rejected", fields...)
}

// ========== Logout ==========

// Logout clears the session cookies. It succeeds with or without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.Clear(c.Writer)
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
