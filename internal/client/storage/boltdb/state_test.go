package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapos/duka/internal/client/storage"
)

func createTestState(t *testing.T) *State {
	t.Helper()

	state, err := OpenState(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, state.Close()) })

	return state
}

func TestState_SyncErrors(t *testing.T) {
	state := createTestState(t)
	ctx := context.Background()

	errs, err := state.SyncErrors(ctx)
	require.NoError(t, err)
	assert.Empty(t, errs)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, state.SetSyncError(ctx, "orders", storage.SyncError{
		Message:   "pull failed: 500",
		Timestamp: now,
	}))
	require.NoError(t, state.SetSyncError(ctx, "products", storage.SyncError{
		Message:   "connection refused",
		Timestamp: now,
	}))

	errs, err = state.SyncErrors(ctx)
	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, "pull failed: 500", errs["orders"].Message)
	assert.True(t, errs["orders"].Timestamp.Equal(now))

	// Re-recording overwrites, one slot per collection.
	require.NoError(t, state.SetSyncError(ctx, "orders", storage.SyncError{
		Message:   "push failed: 503",
		Timestamp: now.Add(time.Minute),
	}))
	errs, err = state.SyncErrors(ctx)
	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, "push failed: 503", errs["orders"].Message)

	require.NoError(t, state.ClearSyncError(ctx, "orders"))
	// Clearing an absent record is fine.
	require.NoError(t, state.ClearSyncError(ctx, "orders"))

	errs, err = state.SyncErrors(ctx)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	_, ok := errs["products"]
	assert.True(t, ok)
}

func TestState_InitError(t *testing.T) {
	state := createTestState(t)
	ctx := context.Background()

	msg, err := state.InitError(ctx)
	require.NoError(t, err)
	assert.Empty(t, msg)

	require.NoError(t, state.SetInitError(ctx, "no session"))
	msg, err = state.InitError(ctx)
	require.NoError(t, err)
	assert.Equal(t, "no session", msg)

	require.NoError(t, state.ClearInitError(ctx))
	msg, err = state.InitError(ctx)
	require.NoError(t, err)
	assert.Empty(t, msg)
}

func TestState_InitialSyncComplete(t *testing.T) {
	state := createTestState(t)
	ctx := context.Background()

	_, done, err := state.InitialSyncComplete(ctx)
	require.NoError(t, err)
	assert.False(t, done)

	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, state.SetInitialSyncComplete(ctx, at))

	got, done, err := state.InitialSyncComplete(ctx)
	require.NoError(t, err)
	require.True(t, done)
	assert.True(t, got.Equal(at))
}

func TestState_Session(t *testing.T) {
	state := createTestState(t)
	ctx := context.Background()

	_, err := state.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	sess := &storage.Session{
		UserID:      "u-1",
		Username:    "amina",
		AccessToken: "token-123",
		ExpiresAt:   time.Now().Add(time.Hour).UTC(),
	}
	require.NoError(t, state.SaveSession(ctx, sess))

	got, err := state.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "amina", got.Username)
	assert.Equal(t, "token-123", got.AccessToken)
	assert.False(t, got.Expired())

	require.NoError(t, state.DeleteSession(ctx))
	_, err = state.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestState_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.db")
	ctx := context.Background()

	state, err := OpenState(ctx, path)
	require.NoError(t, err)
	require.NoError(t, state.SetSyncError(ctx, "orders", storage.SyncError{
		Message:   "offline",
		Timestamp: time.Now().UTC(),
	}))
	require.NoError(t, state.Close())

	reopened, err := OpenState(ctx, path)
	require.NoError(t, err)
	defer func() { require.NoError(t, reopened.Close()) }()

	errs, err := reopened.SyncErrors(ctx)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "offline", errs["orders"].Message)
}
