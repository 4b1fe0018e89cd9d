// internal/domain/auth/entity.go
package auth

import "strings"

// LoginResult is what a successful relay hands back to the handler:
// the profile plus the two credentials that go into cookies.
type LoginResult struct {
	User         UserInfo
	AccessToken  string
	RefreshToken string
}

// NewUserInfo builds the session profile from the upstream login data.
// The employee identifier doubles as the user identifier.
func NewUserInfo(data *UpstreamLoginData) UserInfo {
	first, last := SplitFullName(data.FullName)
	return UserInfo{
		Email:     data.Email,
		FirstName: first,
		LastName:  last,
		FullName:  data.FullName,
		UserID:    data.EmployeeID,
	}
}

// SplitFullName returns the first whitespace-separated token as the first
// name and the remaining tokens, joined by single spaces, as the last name.
func SplitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
