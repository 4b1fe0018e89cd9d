// internal/app/router.go
package app

import (
	"net/http"

	authHandler "hrconsole-gateway/internal/handlers/auth"
	gatewayHandler "hrconsole-gateway/internal/handlers/gateway"
	pageHandler "hrconsole-gateway/internal/handlers/pages"
	profileHandler "hrconsole-gateway/internal/handlers/profile"
	"hrconsole-gateway/internal/middleware"
	"hrconsole-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	ProfileHandler *profileHandler.ProfileHandler
	GatewayHandler *gatewayHandler.GatewayHandler
	PageHandler    *pageHandler.PageHandler
	SessionReader  *session.Reader
}

// SetupRouter registers the API routes and the page fallback. The route
// guard must already be installed on r so it also covers NoRoute.
func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== Auth ====================
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", h.AuthHandler.Login)
		authRoutes.POST("/logout", h.AuthHandler.Logout)
	}

	// ==================== Session ====================
	api.GET("/profile", h.ProfileHandler.Get)

	// ==================== Upstream Pass-through ====================
	upstream := api.Group("/upstream")
	upstream.Use(middleware.SessionContext(h.SessionReader))
	{
		upstream.Any("/*path", h.GatewayHandler.Forward)
	}

	// ==================== Pages ====================
	r.NoRoute(h.PageHandler.Serve)
}
