package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapos/duka/internal/server/handlers"
	"github.com/dukapos/duka/internal/server/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	svc := jwt.NewService("test-secret", time.Hour)

	var gotUserID, gotUsername string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value(handlers.UserIDKey).(string)
		gotUsername, _ = r.Context().Value(handlers.UsernameKey).(string)
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(logger, svc)(next)

	token, _, err := svc.GenerateAccessToken("u-1", "amina")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID, gotUsername = "", ""

			req := httptest.NewRequest(http.MethodGet, "/api/v1/sync/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "u-1", gotUserID)
				assert.Equal(t, "amina", gotUsername)
			} else {
				assert.Empty(t, gotUserID)
			}
		})
	}
}
