package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dukapos/duka/internal/server/storage"
	"github.com/dukapos/duka/pkg/api"
)

// memUsers is an in-memory UserStorage for handler tests.
type memUsers struct {
	users map[string]*storage.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]*storage.User)}
}

func (m *memUsers) CreateUser(ctx context.Context, user *storage.User) error {
	if _, ok := m.users[user.Username]; ok {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *memUsers) GetUserByUsername(ctx context.Context, username string) (*storage.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *memUsers) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	for _, user := range m.users {
		if user.ID == userID {
			user.LastLogin = &at
			return nil
		}
	}
	return storage.ErrUserNotFound
}

type fakeIssuer struct{}

func (fakeIssuer) GenerateAccessToken(userID, username string) (string, int64, error) {
	return "tok-" + userID, 3600, nil
}

func newTestAuthHandler(users storage.UserStorage) *AuthHandler {
	return NewAuthHandler(slog.New(slog.DiscardHandler), users, fakeIssuer{})
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	users := newMemUsers()
	h := newTestAuthHandler(users)

	rec := postJSON(t, h.Register, "/api/v1/auth/register", api.RegisterRequest{
		Username: "amina",
		Password: "long-enough-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "amina", resp.Username)
	assert.NotEmpty(t, resp.UserID)

	// The password is stored hashed, never in the clear.
	stored := users.users["amina"]
	require.NotNil(t, stored)
	assert.NotContains(t, stored.PasswordHash, "long-enough-pass")
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("long-enough-pass")))
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	h := newTestAuthHandler(newMemUsers())

	tests := []struct {
		name string
		req  api.RegisterRequest
		want int
	}{
		{"bad username", api.RegisterRequest{Username: "No Caps", Password: "long-enough-pass"}, http.StatusBadRequest},
		{"short password", api.RegisterRequest{Username: "amina", Password: "short"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Register, "/api/v1/auth/register", tt.req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	h := newTestAuthHandler(newMemUsers())

	first := postJSON(t, h.Register, "/api/v1/auth/register", api.RegisterRequest{
		Username: "amina", Password: "long-enough-pass",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, h.Register, "/api/v1/auth/register", api.RegisterRequest{
		Username: "amina", Password: "long-enough-pass",
	})
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	users := newMemUsers()
	hash, err := bcrypt.GenerateFromPassword([]byte("long-enough-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.CreateUser(context.Background(), &storage.User{
		ID:           "u-1",
		Username:     "amina",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}))

	h := newTestAuthHandler(users)

	rec := postJSON(t, h.Login, "/api/v1/auth/login", api.LoginRequest{
		Username: "amina", Password: "long-enough-pass",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok-u-1", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "u-1", resp.UserID)
	assert.NotNil(t, users.users["amina"].LastLogin)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	users := newMemUsers()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-pass-123"), bcrypt.MinCost)
	_ = users.CreateUser(context.Background(), &storage.User{
		ID: "u-1", Username: "amina", PasswordHash: string(hash),
	})

	h := newTestAuthHandler(users)

	// Unknown user and wrong password look identical to the caller.
	unknown := postJSON(t, h.Login, "/api/v1/auth/login", api.LoginRequest{
		Username: "nobody", Password: "whatever-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)

	wrong := postJSON(t, h.Login, "/api/v1/auth/login", api.LoginRequest{
		Username: "amina", Password: "wrong-pass-123",
	})
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
}
