// internal/middleware/route_guard.go
package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"hrconsole-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// Paths the guard never evaluates.
var guardExcludedPrefixes = []string{"/api", "/_next/static", "/_next/image", "/favicon.ico"}

const (
	signInPath = "/sign-in"
	homePath   = "/"
)

type GuardConfig struct {
	ProtectedPrefixes []string
	AuthPrefixes      []string
}

// GuardAction is the outcome of evaluating one request.
type GuardAction int

const (
	GuardAllow GuardAction = iota
	GuardRedirectToSignIn
	GuardRedirectHome
)

// Decide applies the page-access table to a path and the presence of the
// access-token cookie. It is a UX fast path; the upstream API still
// authorizes every call.
func (g GuardConfig) Decide(path string, hasToken bool) GuardAction {
	if hasPrefix(path, guardExcludedPrefixes) {
		return GuardAllow
	}
	if hasPrefix(path, g.ProtectedPrefixes) && !hasToken {
		return GuardRedirectToSignIn
	}
	if hasPrefix(path, g.AuthPrefixes) && hasToken {
		return GuardRedirectHome
	}
	return GuardAllow
}

// RouteGuard redirects anonymous visitors away from protected pages and
// signed-in visitors away from the sign-in pages.
func RouteGuard(cfg GuardConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		switch cfg.Decide(path, session.HasAccessToken(c.Request)) {
		case GuardRedirectToSignIn:
			q := url.Values{}
			q.Set("redirect", path)
			c.Redirect(http.StatusTemporaryRedirect, signInPath+"?"+q.Encode())
			c.Abort()
		case GuardRedirectHome:
			c.Redirect(http.StatusTemporaryRedirect, homePath)
			c.Abort()
		default:
			c.Next()
		}
	}
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
