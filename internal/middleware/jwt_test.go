package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaughan-dsouza/salesdesk/internal/models"
	"github.com/vaughan-dsouza/salesdesk/internal/utils"
)

const testSecret = "test-secret"

func TestAuth(t *testing.T) {
	valid, _, err := utils.GenerateToken("user-1", "alice@example.com", testSecret, time.Hour)
	require.NoError(t, err)
	expired, _, err := utils.GenerateToken("user-1", "alice@example.com", testSecret, -time.Minute)
	require.NoError(t, err)
	foreign, _, err := utils.GenerateToken("user-1", "alice@example.com", "other-secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "raw token", header: valid, wantStatus: http.StatusOK},
		{name: "bearer token", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + valid, wantStatus: http.StatusOK},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized, wantBody: `{"message":"Access denied"}`},
		{name: "bearer without token", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantBody: `{"message":"Access denied"}`},
		{name: "garbage", header: "not-a-token", wantStatus: http.StatusUnauthorized, wantBody: `{"message":"Invalid token"}`},
		{name: "expired", header: expired, wantStatus: http.StatusUnauthorized, wantBody: `{"message":"Invalid token"}`},
		{name: "wrong secret", header: foreign, wantStatus: http.StatusUnauthorized, wantBody: `{"message":"Invalid token"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := utils.IdentityFromContext(r.Context())
				require.True(t, ok)
				got = id
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/sales", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			Auth(testSecret)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
				return
			}
			assert.Equal(t, models.Identity{UserID: "user-1", Email: "alice@example.com"}, got)
		})
	}
}
