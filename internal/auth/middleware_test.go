package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threaddit/internal/httputil"
)

func TestRequireAuth(t *testing.T) {
	pasetoService := testPasetoService(t)
	mw := NewMiddleware(pasetoService)

	var gotUserID int64
	var gotUsername string
	protected := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		username, ok := GetUsernameFromContext(r.Context())
		require.True(t, ok)

		gotUserID = userID
		gotUsername = username
		w.WriteHeader(http.StatusOK)
	}))

	validToken, err := pasetoService.CreateToken(7, "alice", time.Hour)
	require.NoError(t, err)

	expiredToken, err := pasetoService.CreateToken(7, "alice", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantCode   string
	}{
		{"missing header", "", http.StatusUnauthorized, httputil.CodeMissingAuth},
		{"not bearer", "Basic abc123", http.StatusUnauthorized, httputil.CodeInvalidAuthHeader},
		{"malformed header", "Bearer", http.StatusUnauthorized, httputil.CodeInvalidAuthHeader},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized, httputil.CodeInvalidToken},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized, httputil.CodeTokenExpired},
		{"valid token", "Bearer " + validToken, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}

	assert.Equal(t, int64(7), gotUserID)
	assert.Equal(t, "alice", gotUsername)
}
