package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapos/duka/internal/client/iocli"
)

// scriptedPasswords mocks ReadPassword with a fixed answer sequence.
func scriptedPasswords(answers ...string) *iocli.IOMock {
	return &iocli.IOMock{
		ReadPasswordFunc: func(prompt string) (string, error) {
			if len(answers) == 0 {
				return "", errors.New("no scripted password left")
			}
			next := answers[0]
			answers = answers[1:]
			return next, nil
		},
	}
}

func TestConfirmPassword(t *testing.T) {
	io := scriptedPasswords("secret-pass", "secret-pass")

	password, err := confirmPassword(io)
	require.NoError(t, err)
	assert.Equal(t, "secret-pass", password)
	assert.Len(t, io.ReadPasswordCalls(), 2)
}

func TestConfirmPassword_Mismatch(t *testing.T) {
	io := scriptedPasswords("secret-pass", "other-pass")

	_, err := confirmPassword(io)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
}

func TestConfirmPassword_ReadError(t *testing.T) {
	io := &iocli.IOMock{
		ReadPasswordFunc: func(prompt string) (string, error) {
			return "", errors.New("terminal gone")
		},
	}

	_, err := confirmPassword(io)
	require.Error(t, err)
}
