package config

import (
	"os"
	"strings"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr string
	Env      string
	WebRoot  string

	// TrustedProxies whose X-Forwarded-For is believed. Empty trusts none.
	TrustedProxies []string

	// Upstream HR API gateway
	APIBaseURL      string
	UpstreamTimeout time.Duration

	// Route guard
	ProtectedPrefixes []string
	AuthPrefixes      []string

	// Redis (optional, enables login throttling)
	RedisAddr string
	RedisPass string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":3000"),
		Env:      strings.ToLower(getEnv("APP_ENV", "development")),
		WebRoot:  getEnv("WEB_ROOT", ""),

		TrustedProxies: getEnvSlice("TRUSTED_PROXIES", nil),

		APIBaseURL:      strings.TrimRight(getEnv("NEXT_PUBLIC_API_URL", "http://localhost:3030"), "/"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 15*time.Second),

		ProtectedPrefixes: getEnvSlice("PROTECTED_PREFIXES", []string{"/employees", "/settings"}),
		AuthPrefixes:      getEnvSlice("AUTH_PREFIXES", []string{"/sign-in", "/sign-up", "/forgot-password"}),

		RedisAddr: getEnv("REDIS_ADDR", ""),
		RedisPass: getEnv("REDIS_PASS", ""),
	}
}

// IsProduction reports whether cookies must carry the Secure flag.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
