// internal/service/auth/auth.go
package auth

import (
	"context"
	"errors"

	"hrconsole-gateway/internal/domain/auth"
	xerrors "hrconsole-gateway/internal/pkg/errors"

	"go.uber.org/zap"
)

// IdentityProvider is the upstream identity service as seen by the relay.
type IdentityProvider interface {
	Login(ctx context.Context, email, password string) (*auth.UpstreamLoginData, error)
}

// AttemptLimiter throttles repeated failed logins. Optional.
type AttemptLimiter interface {
	Allow(ctx context.Context, ip, email string) (bool, error)
	RecordFailure(ctx context.Context, ip, email string) error
	Reset(ctx context.Context, ip, email string) error
}

type AuthService struct {
	identity IdentityProvider
	limiter  AttemptLimiter
	logger   *zap.Logger
}

// NewAuthService builds the credential relay. limiter may be nil.
func NewAuthService(identity IdentityProvider, limiter AttemptLimiter, logger *zap.Logger) *AuthService {
	return &AuthService{
		identity: identity,
		limiter:  limiter,
		logger:   logger,
	}
}

// ========== Login ==========

// Login relays the credentials upstream and returns the session material
// to be written into cookies.
func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest, clientIP string) (*auth.LoginResult, error) {
	if req == nil || req.Email == "" || req.Password == "" {
		return nil, xerrors.NewValidation(xerrors.MsgCredentialsRequired)
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, clientIP, req.Email)
		if err != nil {
			s.logger.Warn("login limiter unavailable, allowing attempt", zap.Error(err))
		} else if !allowed {
			s.logger.Warn("login throttled",
				zap.String("email", req.Email),
				zap.String("ip", clientIP),
			)
			return nil, xerrors.ErrRateLimited
		}
	}

	data, err := s.identity.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.recordFailure(ctx, err, clientIP, req.Email)
		return nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, clientIP, req.Email); err != nil {
			s.logger.Warn("failed to reset login attempts", zap.Error(err))
		}
	}

	user := auth.NewUserInfo(data)
	s.logger.Info("user logged in",
		zap.Int64("user_id", user.UserID),
		zap.String("email", user.Email),
	)

	return &auth.LoginResult{
		User:         user,
		AccessToken:  data.Token,
		RefreshToken: data.RefreshToken,
	}, nil
}

// recordFailure counts upstream rejections only; transport failures are
// not the user's fault.
func (s *AuthService) recordFailure(ctx context.Context, err error, ip, email string) {
	var rejected *xerrors.UpstreamAuthError
	if s.limiter == nil || !errors.As(err, &rejected) {
		return
	}
	if err := s.limiter.RecordFailure(ctx, ip, email); err != nil {
		s.logger.Warn("failed to record login attempt", zap.Error(err))
	}
}
