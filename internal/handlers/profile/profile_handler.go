// internal/handlers/profile/profile_handler.go
package profile

import (
	"net/http"

	"hrconsole-gateway/internal/domain/auth"
	xerrors "hrconsole-gateway/internal/pkg/errors"
	"hrconsole-gateway/internal/pkg/response"
	"hrconsole-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	reader *session.Reader
}

func NewProfileHandler(reader *session.Reader) *ProfileHandler {
	return &ProfileHandler{reader: reader}
}

// Get returns the signed-in user's profile from the session cookie.
func (h *ProfileHandler) Get(c *gin.Context) {
	user, ok := h.reader.Current(c.Request)
	if !ok {
		response.Unauthorized(c, xerrors.MsgNotAuthenticated)
		return
	}

	response.JSON(c, http.StatusOK, auth.ProfileResponse{
		Success: true,
		Data:    *user,
	})
}
