// internal/pkg/upstream/client.go
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"hrconsole-gateway/internal/domain/auth"
	xerrors "hrconsole-gateway/internal/pkg/errors"
)

const loginPath = "/api/v1/user-service/auth/login"

// Client talks to the upstream HR API gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for baseURL. A zero timeout leaves requests
// bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Login relays the credentials to the identity service and returns the
// login data from its success envelope.
func (c *Client) Login(ctx context.Context, email, password string) (*auth.UpstreamLoginData, error) {
	payload, err := json.Marshal(auth.UpstreamLoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, xerrors.NewInternal("encode login request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(payload))
	if err != nil {
		return nil, xerrors.NewInternal("build login request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, xerrors.NewInternal("call identity service", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, xerrors.NewInternal("read identity service response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &xerrors.UpstreamAuthError{
			Status:  resp.StatusCode,
			Message: upstreamMessage(body),
		}
	}

	var envelope auth.UpstreamLoginResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, xerrors.NewInternal("decode identity service response", err)
	}

	if err := validateLoginData(envelope.Data); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// upstreamMessage pulls "message" out of an error body, falling back to
// the generic login failure text.
func upstreamMessage(body []byte) string {
	var e auth.UpstreamErrorResponse
	if err := json.Unmarshal(body, &e); err != nil || e.Message == "" {
		return xerrors.MsgLoginFailed
	}
	return e.Message
}

func validateLoginData(data *auth.UpstreamLoginData) error {
	switch {
	case data == nil:
		return xerrors.Wrap(xerrors.ErrMalformedUpstream, "missing data")
	case data.Token == "":
		return xerrors.Wrap(xerrors.ErrMalformedUpstream, "missing data.token")
	case data.RefreshToken == "":
		return xerrors.Wrap(xerrors.ErrMalformedUpstream, "missing data.refreshToken")
	case data.Email == "":
		return xerrors.Wrap(xerrors.ErrMalformedUpstream, "missing data.email")
	}
	return nil
}

// Forward replays in against {base}/api/v1/{upstreamPath} with the bearer
// token and returns the raw response. The caller owns resp.Body.
//
// A path with a ".." segment is rejected with ErrNotFound before anything
// is sent, so callers can never reach outside /api/v1.
func (c *Client) Forward(ctx context.Context, in *http.Request, upstreamPath, token string) (*http.Response, error) {
	rel, err := forwardPath(upstreamPath)
	if err != nil {
		return nil, err
	}

	target := c.baseURL + "/api/v1/" + rel
	if in.URL.RawQuery != "" {
		target += "?" + in.URL.RawQuery
	}

	body := in.Body
	if body == nil || in.ContentLength == 0 {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, in.Method, target, body)
	if err != nil {
		return nil, xerrors.NewInternal("build upstream request", err)
	}
	// -1 (unknown) still streams chunked; a known length is sent as-is.
	req.ContentLength = in.ContentLength
	if body == http.NoBody {
		req.ContentLength = 0
	}

	copyHeaders(req.Header, in.Header)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, xerrors.NewInternal(fmt.Sprintf("call upstream %s", rel), err)
	}
	return resp, nil
}

// forwardPath cleans p into a path relative to /api/v1. A trailing slash
// survives cleaning since some upstream routes distinguish it.
func forwardPath(p string) (string, error) {
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", xerrors.Wrap(xerrors.ErrNotFound, fmt.Sprintf("upstream path %q escapes /api/v1", p))
		}
	}

	cleaned := strings.TrimPrefix(path.Clean("/"+p), "/")
	if cleaned != "" && strings.HasSuffix(p, "/") {
		cleaned += "/"
	}
	return cleaned, nil
}

// Request headers never forwarded: hop-by-hop plus the browser's own
// credentials, which the bearer token replaces.
var skipHeaders = map[string]bool{
	"Authorization":       true,
	"Cookie":              true,
	"Connection":          true,
	"Keep-Alive":          true,
	"Proxy-Authorization": true,
	"Te":                  true,
	"Trailer":             true,
	"Transfer-Encoding":   true,
	"Upgrade":             true,
	"Host":                true,
}

func copyHeaders(dst, src http.Header) {
	for k, vv := range src {
		if skipHeaders[http.CanonicalHeaderKey(k)] {
			continue
		}
		for _, v := range vv {
			dst.Add(k, v)
		}
	}
}
