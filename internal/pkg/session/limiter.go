// internal/pkg/session/limiter.go
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxLoginFailures   = 5
	loginFailureWindow = 15 * time.Minute
)

// LoginLimiter counts failed logins per client IP and email in Redis.
type LoginLimiter struct {
	client      redis.Cmdable
	maxAttempts int64
	window      time.Duration
}

func NewLoginLimiter(client redis.Cmdable) *LoginLimiter {
	return &LoginLimiter{
		client:      client,
		maxAttempts: maxLoginFailures,
		window:      loginFailureWindow,
	}
}

func loginKey(ip, email string) string {
	return fmt.Sprintf("ratelimit:login:%s:%s", ip, strings.ToLower(email))
}

// Allow reports whether another login attempt may be relayed upstream.
func (l *LoginLimiter) Allow(ctx context.Context, ip, email string) (bool, error) {
	count, err := l.client.Get(ctx, loginKey(ip, email)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read login attempts: %w", err)
	}
	return count < l.maxAttempts, nil
}

// RecordFailure increments the failure counter, starting the window on the
// first failure.
func (l *LoginLimiter) RecordFailure(ctx context.Context, ip, email string) error {
	key := loginKey(ip, email)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to increment login attempt: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("failed to set login attempt window: %w", err)
		}
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, ip, email string) error {
	return l.client.Del(ctx, loginKey(ip, email)).Err()
}
