package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReaderCurrent(t *testing.T) {
	encoded, err := EncodeUserInfo(sampleResult().User)
	require.NoError(t, err)

	tests := []struct {
		name    string
		cookie  *http.Cookie
		wantOK  bool
		wantNil bool
	}{
		{name: "no cookie", cookie: nil, wantNil: true},
		{name: "empty cookie", cookie: &http.Cookie{Name: UserInfoCookie, Value: ""}, wantNil: true},
		{name: "not json", cookie: &http.Cookie{Name: UserInfoCookie, Value: "not-json"}, wantNil: true},
		{name: "bad escape", cookie: &http.Cookie{Name: UserInfoCookie, Value: "%zz"}, wantNil: true},
		{name: "valid", cookie: &http.Cookie{Name: UserInfoCookie, Value: encoded}, wantOK: true},
	}

	reader := NewReader(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			info, ok := reader.Current(req)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantNil {
				assert.Nil(t, info)
				return
			}
			require.NotNil(t, info)
			assert.Equal(t, sampleResult().User, *info)
		})
	}
}

func TestReaderCurrentIsIdempotent(t *testing.T) {
	encoded, err := EncodeUserInfo(sampleResult().User)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(&http.Cookie{Name: UserInfoCookie, Value: encoded})

	reader := NewReader(zap.NewNop())
	first, ok1 := reader.Current(req)
	second, ok2 := reader.Current(req)

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, *first, *second)
}
