// internal/pkg/response/response.go
package response

import (
	"net/http"

	xerrors "hrconsole-gateway/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the envelope for every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON sends body with the given status.
func JSON(c *gin.Context, status int, body interface{}) {
	c.JSON(status, body)
}

// Error sends a standardized error response.
func Error(c *gin.Context, code int, message string) {
	// Abort first so later handlers in the chain never run.
	c.Abort()
	c.JSON(code, ErrorBody{Error: message})
}

// FromError renders err through the error taxonomy. Internal causes are
// never written to the client.
func FromError(c *gin.Context, err error) {
	Error(c, xerrors.HTTPStatus(err), xerrors.PublicMessage(err))
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, xerrors.MsgNotFound)
}
