// internal/pkg/session/reader.go
package session

import (
	"net/http"

	"hrconsole-gateway/internal/domain/auth"

	"go.uber.org/zap"
)

// Reader rebuilds the current user's profile from the request cookies.
type Reader struct {
	logger *zap.Logger
}

func NewReader(logger *zap.Logger) *Reader {
	return &Reader{logger: logger}
}

// Current returns the profile stored in user_info. A missing or unreadable
// cookie yields (nil, false); it is never an error for the caller.
func (r *Reader) Current(req *http.Request) (*auth.UserInfo, bool) {
	c, err := req.Cookie(UserInfoCookie)
	if err != nil || c.Value == "" {
		return nil, false
	}

	info, err := DecodeUserInfo(c.Value)
	if err != nil {
		r.logger.Warn("discarding unreadable session cookie",
			zap.String("cookie", UserInfoCookie),
			zap.Error(err),
		)
		return nil, false
	}

	return info, true
}
