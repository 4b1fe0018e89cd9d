// internal/middleware/session_context.go
package middleware

import (
	"hrconsole-gateway/internal/domain/auth"
	"hrconsole-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

const contextKeyUser = "session_user"

// SessionContext reads the session profile once and stores it on the gin
// context for downstream handlers. Requests without a session pass through.
func SessionContext(reader *session.Reader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := reader.Current(c.Request); ok {
			c.Set(contextKeyUser, user)
		}
		c.Next()
	}
}

// GetUser returns the profile stored by SessionContext.
func GetUser(c *gin.Context) (*auth.UserInfo, bool) {
	v, exists := c.Get(contextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*auth.UserInfo)
	return user, ok
}

// IsAuthenticated checks if request is authenticated
func IsAuthenticated(c *gin.Context) bool {
	_, ok := GetUser(c)
	return ok
}
