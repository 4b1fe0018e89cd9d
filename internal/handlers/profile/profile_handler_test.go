package profile

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hrconsole-gateway/internal/domain/auth"
	"hrconsole-gateway/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProfileGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	encoded, err := session.EncodeUserInfo(auth.UserInfo{
		Email:     "a@b.com",
		FirstName: "A",
		LastName:  "B",
		FullName:  "A B",
		UserID:    42,
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no session",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Not authenticated"}`,
		},
		{
			name:       "corrupt session",
			cookie:     &http.Cookie{Name: session.UserInfoCookie, Value: "%7Bbroken"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Not authenticated"}`,
		},
		{
			name:       "valid session",
			cookie:     &http.Cookie{Name: session.UserInfoCookie, Value: encoded},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"data":{"email":"a@b.com","firstName":"A","lastName":"B","fullName":"A B","userId":42}}`,
		},
	}

	r := gin.New()
	r.GET("/api/profile", NewProfileHandler(session.NewReader(zap.NewNop())).Get)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
