package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hrconsole-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testGuard = GuardConfig{
	ProtectedPrefixes: []string{"/employees", "/settings"},
	AuthPrefixes:      []string{"/sign-in", "/sign-up", "/forgot-password"},
}

func newGuardedEngine() *gin.Engine {
	r := gin.New()
	r.Use(RouteGuard(testGuard))
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusOK, "page:"+c.Request.URL.Path)
	})
	return r
}

func TestRouteGuard(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		withToken    bool
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "protected without token redirects to sign-in",
			path:         "/employees",
			wantStatus:   http.StatusTemporaryRedirect,
			wantLocation: "/sign-in?redirect=%2Femployees",
		},
		{
			name:         "nested protected path keeps full path",
			path:         "/settings/profile",
			wantStatus:   http.StatusTemporaryRedirect,
			wantLocation: "/sign-in?redirect=%2Fsettings%2Fprofile",
		},
		{
			name:       "protected with token passes",
			path:       "/employees/12",
			withToken:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:         "auth page with token redirects home",
			path:         "/sign-in",
			withToken:    true,
			wantStatus:   http.StatusTemporaryRedirect,
			wantLocation: "/",
		},
		{
			name:         "forgot password with token redirects home",
			path:         "/forgot-password",
			withToken:    true,
			wantStatus:   http.StatusTemporaryRedirect,
			wantLocation: "/",
		},
		{
			name:       "auth page without token passes",
			path:       "/sign-up",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unclassified path without token passes",
			path:       "/jobs",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unclassified path with token passes",
			path:       "/",
			withToken:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "api paths are excluded",
			path:       "/api/profile",
			wantStatus: http.StatusOK,
		},
		{
			name:       "static assets are excluded",
			path:       "/_next/static/chunk.js",
			wantStatus: http.StatusOK,
		},
		{
			name:       "image assets are excluded",
			path:       "/_next/image/logo.png",
			withToken:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "favicon is excluded",
			path:       "/favicon.ico",
			wantStatus: http.StatusOK,
		},
	}

	r := newGuardedEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.withToken {
				req.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: "T1"})
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "page:"+tt.path, rec.Body.String())
			}
		})
	}
}

func TestGuardDecideIgnoresTokenContents(t *testing.T) {
	// Any non-empty value counts; the guard never validates tokens.
	assert.Equal(t, GuardAllow, testGuard.Decide("/employees", true))
	assert.Equal(t, GuardRedirectToSignIn, testGuard.Decide("/employees", false))
	assert.Equal(t, GuardRedirectHome, testGuard.Decide("/sign-in", true))
	assert.Equal(t, GuardAllow, testGuard.Decide("/sign-in", false))
}

func TestGuardEmptyTokenCookieCountsAsAbsent(t *testing.T) {
	r := newGuardedEngine()
	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	req.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: ""})
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
}
