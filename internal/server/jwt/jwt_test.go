package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	svc := NewService("test-secret-key", time.Hour)

	token, expiresIn, err := svc.GenerateAccessToken("u-1", "amina")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID())
	assert.Equal(t, "amina", claims.Username)
}

func TestService_ValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := NewService("secret-a", time.Hour).GenerateAccessToken("u-1", "amina")
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestService_ValidateRejectsExpired(t *testing.T) {
	svc := NewService("test-secret-key", -time.Minute)

	token, _, err := svc.GenerateAccessToken("u-1", "amina")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestService_ValidateRejectsGarbage(t *testing.T) {
	svc := NewService("test-secret-key", time.Hour)

	_, err := svc.ValidateAccessToken("not.a.token")
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken("")
	assert.Error(t, err)
}
