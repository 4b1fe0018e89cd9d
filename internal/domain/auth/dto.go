// internal/domain/auth/dto.go
package auth

// LoginRequest is the body accepted by the login relay.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo is the profile record kept in the user_info cookie and
// returned to the browser.
type UserInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	UserID    int64  `json:"userId"`
}

// LoginResponse successful login response
type LoginResponse struct {
	Success bool     `json:"success"`
	User    UserInfo `json:"user"`
}

// ProfileResponse is returned by the profile endpoint.
type ProfileResponse struct {
	Success bool     `json:"success"`
	Data    UserInfo `json:"data"`
}

// UpstreamLoginRequest is forwarded unchanged to the identity service.
type UpstreamLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpstreamLoginResponse is the identity service's success envelope.
type UpstreamLoginResponse struct {
	Data *UpstreamLoginData `json:"data"`
}

type UpstreamLoginData struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	EmployeeID   int64  `json:"employeeId"`
}

// UpstreamErrorResponse is the identity service's failure body.
type UpstreamErrorResponse struct {
	Message string `json:"message"`
}
