// internal/pkg/session/cookies.go
package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"hrconsole-gateway/internal/domain/auth"
)

// Session cookie names.
const (
	AccessTokenCookie  = "auth_token"
	RefreshTokenCookie = "refresh_token"
	UserInfoCookie     = "user_info"
)

// Session cookie lifetimes.
const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour
	UserInfoTTL     = 24 * time.Hour
)

// CookieStore writes and clears the three cookies that make up a browser
// session. All of them are HttpOnly; none is ever readable from script.
type CookieStore struct {
	secure bool
}

func NewCookieStore(secure bool) *CookieStore {
	return &CookieStore{secure: secure}
}

// Write sets auth_token, refresh_token and user_info on w. The profile is
// encoded before anything is written, so either all three cookies are set
// or none is.
func (s *CookieStore) Write(w http.ResponseWriter, result *auth.LoginResult) error {
	value, err := EncodeUserInfo(result.User)
	if err != nil {
		return err
	}

	http.SetCookie(w, s.cookie(AccessTokenCookie, result.AccessToken, AccessTokenTTL))
	http.SetCookie(w, s.cookie(RefreshTokenCookie, result.RefreshToken, RefreshTokenTTL))
	http.SetCookie(w, s.cookie(UserInfoCookie, value, UserInfoTTL))
	return nil
}

// Clear expires all three session cookies.
func (s *CookieStore) Clear(w http.ResponseWriter) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie, UserInfoCookie} {
		c := s.cookie(name, "", 0)
		c.MaxAge = -1
		http.SetCookie(w, c)
	}
}

func (s *CookieStore) cookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// AccessToken returns the auth_token cookie value, or "" when absent.
func AccessToken(r *http.Request) string {
	c, err := r.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// HasAccessToken reports whether the request carries an auth_token cookie.
// Presence only: the token itself is never inspected.
func HasAccessToken(r *http.Request) bool {
	return AccessToken(r) != ""
}

// EncodeUserInfo serializes the profile for the user_info cookie. The JSON
// is query-escaped because raw quotes and commas are not valid cookie octets.
func EncodeUserInfo(info auth.UserInfo) (string, error) {
	raw, err := json.Marshal(info)
	if err != nil {
		return "", fmt.Errorf("encode user info: %w", err)
	}
	return url.QueryEscape(string(raw)), nil
}

// DecodeUserInfo reverses EncodeUserInfo.
func DecodeUserInfo(value string) (*auth.UserInfo, error) {
	raw, err := url.QueryUnescape(value)
	if err != nil {
		return nil, fmt.Errorf("unescape user info: %w", err)
	}

	var info auth.UserInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	return &info, nil
}
