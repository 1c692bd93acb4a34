package storage

import (
	"context"
	"time"
)

// User is one account on the remote store.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// UserStorage defines the interface for account persistence.
type UserStorage interface {
	// CreateUser stores a new user.
	// Returns ErrUserAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, user *User) error

	// GetUserByUsername retrieves a user by username.
	// Returns ErrUserNotFound when absent.
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// UpdateLastLogin stamps a successful login.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}
