package xerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common reusable application errors
var (
	ErrNoSession         = errors.New("no session")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrMalformedUpstream = errors.New("malformed upstream response")
	ErrRateLimited       = errors.New("too many requests")
	ErrNotFound          = errors.New("not found")
)

// Client-facing messages.
const (
	MsgCredentialsRequired = "Email and password are required"
	MsgLoginFailed         = "Login failed"
	MsgInternal            = "Internal server error"
	MsgNotAuthenticated    = "Not authenticated"
	MsgUnauthorized        = "Unauthorized"
	MsgBadUpstream         = "Invalid response from authentication service"
	MsgRateLimited         = "Too many login attempts, try again later"
	MsgNotFound            = "Not found"
)

// ValidationError is a client-fixable input problem.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidation returns a ValidationError with the given message.
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// UpstreamAuthError carries the identity service's rejection through to the client.
type UpstreamAuthError struct {
	Status  int
	Message string
}

func (e *UpstreamAuthError) Error() string {
	return fmt.Sprintf("upstream rejected login (%d): %s", e.Status, e.Message)
}

// InternalRelayError wraps a failure talking to the upstream. Its cause is
// for logs only.
type InternalRelayError struct {
	Op  string
	Err error
}

func (e *InternalRelayError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalRelayError) Unwrap() error { return e.Err }

// NewInternal wraps err as an InternalRelayError.
func NewInternal(op string, err error) error {
	return &InternalRelayError{Op: op, Err: err}
}

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// HTTPStatus maps err to the status code the client sees.
func HTTPStatus(err error) int {
	var validation *ValidationError
	var upstream *UpstreamAuthError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &upstream):
		if upstream.Status < 400 || upstream.Status > 599 {
			return http.StatusBadGateway
		}
		return upstream.Status
	case errors.Is(err, ErrNoSession), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMalformedUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage maps err to the message the client sees. Anything not in
// the taxonomy collapses to the generic internal message.
func PublicMessage(err error) string {
	var validation *ValidationError
	var upstream *UpstreamAuthError

	switch {
	case errors.As(err, &validation):
		return validation.Message
	case errors.As(err, &upstream):
		if upstream.Message == "" {
			return MsgLoginFailed
		}
		return upstream.Message
	case errors.Is(err, ErrNoSession):
		return MsgNotAuthenticated
	case errors.Is(err, ErrUnauthorized):
		return MsgUnauthorized
	case errors.Is(err, ErrRateLimited):
		return MsgRateLimited
	case errors.Is(err, ErrNotFound):
		return MsgNotFound
	case errors.Is(err, ErrMalformedUpstream):
		return MsgBadUpstream
	default:
		return MsgInternal
	}
}

// IsInternal reports whether err should be logged with its full cause.
func IsInternal(err error) bool {
	return HTTPStatus(err) >= http.StatusInternalServerError
}
