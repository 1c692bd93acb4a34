package storage

import (
	"context"
	"time"
)

// SyncError is one collection's unresolved replication error.
type SyncError struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the cached identity token attached to sync requests. The
// identity provider itself is external; this is only the "am I currently
// authorized" credential.
type Session struct {
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session token is past its expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

//go:generate moq -out state_mock.go . StateStore

// StateStore is the small key-value area kept outside the document store.
// It survives document-store teardown so the UI can show unresolved sync
// problems after a reload before the replication engines re-report status.
// Losing it causes at worst a redundant resync indicator, never data loss.
type StateStore interface {
	// SetSyncError records a collection's unresolved replication error.
	SetSyncError(ctx context.Context, collection string, e SyncError) error

	// ClearSyncError removes a collection's error record after a
	// successful cycle.
	ClearSyncError(ctx context.Context, collection string) error

	// SyncErrors returns the current unresolved errors by collection.
	SyncErrors(ctx context.Context) (map[string]SyncError, error)

	// SetInitError records a failure to establish replication during
	// initialization.
	SetInitError(ctx context.Context, message string) error

	// InitError returns the recorded init error, or "" when none.
	InitError(ctx context.Context) (string, error)

	// ClearInitError removes the init error record.
	ClearInitError(ctx context.Context) error

	// SetInitialSyncComplete records the last known good full sync.
	SetInitialSyncComplete(ctx context.Context, at time.Time) error

	// InitialSyncComplete returns the last known good full sync, ok false
	// when no full sync has completed yet.
	InitialSyncComplete(ctx context.Context) (at time.Time, ok bool, err error)

	// SaveSession caches the identity token.
	SaveSession(ctx context.Context, s *Session) error

	// GetSession returns the cached token.
	// Returns ErrSessionNotFound when absent.
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession drops the cached token (logout).
	DeleteSession(ctx context.Context) error

	// Close releases the underlying handle.
	Close() error
}
