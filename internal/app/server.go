// internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"hrconsole-gateway/internal/config"
	"hrconsole-gateway/internal/db"
	authHandler "hrconsole-gateway/internal/handlers/auth"
	gatewayHandler "hrconsole-gateway/internal/handlers/gateway"
	pageHandler "hrconsole-gateway/internal/handlers/pages"
	profileHandler "hrconsole-gateway/internal/handlers/profile"
	"hrconsole-gateway/internal/middleware"
	"hrconsole-gateway/internal/pkg/session"
	"hrconsole-gateway/internal/pkg/upstream"
	authUsecase "hrconsole-gateway/internal/service/auth"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg     config.AppConfig
	engine  *gin.Engine
	logger  *zap.Logger
	redis   *redis.Client
	httpSrv *http.Server
}

// NewServer wires every component. Redis is only contacted when
// REDIS_ADDR is configured.
func NewServer(cfg config.AppConfig, logger *zap.Logger) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{cfg: cfg, logger: logger, engine: gin.New()}

	// ClientIP keys the login limiter, so forwarded headers are only
	// believed from configured proxies.
	if err := s.engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	// ----- Redis (optional) -----
	var limiter authUsecase.AttemptLimiter
	if cfg.RedisAddr != "" {
		client, err := db.NewRedisClient(db.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			PoolSize: 10,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		s.redis = client
		limiter = session.NewLoginLimiter(client)
		logger.Info("login throttling enabled", zap.String("redis_addr", cfg.RedisAddr))
	}

	// ----- Upstream -----
	upstreamClient := upstream.NewClient(cfg.APIBaseURL, cfg.UpstreamTimeout)

	// ----- Session -----
	cookies := session.NewCookieStore(cfg.IsProduction())
	reader := session.NewReader(logger)

	// ----- Services (Usecases) -----
	authService := authUsecase.NewAuthService(upstreamClient, limiter, logger)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RequestID(),
		middleware.LoggingMiddleware(logger),
		middleware.RecoveryMiddleware(logger),
		middleware.RouteGuard(middleware.GuardConfig{
			ProtectedPrefixes: cfg.ProtectedPrefixes,
			AuthPrefixes:      cfg.AuthPrefixes,
		}),
	)

	// ----- Router -----
	SetupRouter(s.engine, &Handlers{
		AuthHandler:    authHandler.NewAuthHandler(authService, cookies, logger),
		ProfileHandler: profileHandler.NewProfileHandler(reader),
		GatewayHandler: gatewayHandler.NewGatewayHandler(upstreamClient, logger),
		PageHandler:    pageHandler.NewPageHandler(cfg.WebRoot),
		SessionReader:  reader,
	})

	s.httpSrv = &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: s.engine,
	}
	return s, nil
}

// Handler exposes the routed engine.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("server running",
		zap.String("addr", s.cfg.HTTPAddr),
		zap.String("upstream", s.cfg.APIBaseURL),
		zap.String("env", s.cfg.Env),
	)
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and releases the Redis pool.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpSrv.Shutdown(ctx)
	if s.redis != nil {
		if cerr := s.redis.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
