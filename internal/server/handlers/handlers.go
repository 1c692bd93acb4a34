package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dukapos/duka/pkg/api"
)

// contextKey is a dedicated type for request context keys
type contextKey string

// Context keys populated by the auth middleware
const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
)

// UserIDFromContext returns the authenticated user ID, if present.
func UserIDFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(UserIDKey).(string)
	return id, ok && id != ""
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError sends an api.ErrorResponse with the given status.
func writeError(logger *slog.Logger, w http.ResponseWriter, status int, message string) {
	writeJSON(logger, w, status, api.ErrorResponse{Message: message})
}
