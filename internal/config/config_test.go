package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "APP_ENV", "WEB_ROOT", "NEXT_PUBLIC_API_URL", "UPSTREAM_TIMEOUT",
		"PROTECTED_PREFIXES", "AUTH_PREFIXES", "REDIS_ADDR", "REDIS_PASS", "TRUSTED_PROXIES",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, "http://localhost:3030", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, []string{"/employees", "/settings"}, cfg.ProtectedPrefixes)
	assert.Equal(t, []string{"/sign-in", "/sign-up", "/forgot-password"}, cfg.AuthPrefixes)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.RedisAddr)
	assert.Nil(t, cfg.TrustedProxies)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "Production")
	t.Setenv("NEXT_PUBLIC_API_URL", "https://hr.example.com/")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("PROTECTED_PREFIXES", " /employees , /jobs,, ")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://hr.example.com", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, []string{"/employees", "/jobs"}, cfg.ProtectedPrefixes)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.TrustedProxies)
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	assert.Equal(t, 15*time.Second, Load().UpstreamTimeout)
}
