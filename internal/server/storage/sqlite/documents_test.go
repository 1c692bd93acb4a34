package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapos/duka/internal/models"
)

func pushedDoc(id string, modified time.Time, fields map[string]any) models.Document {
	doc := models.Document{models.FieldID: id}
	for k, v := range fields {
		doc[k] = v
	}
	if !modified.IsZero() {
		doc.SetModified(modified)
	}
	return doc
}

func TestStorage_Upsert_New(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	doc := pushedDoc("o-1", time.Now().UTC(), map[string]any{"total": 120.0})

	stored, saved, err := store.Upsert(ctx, "u-1", "orders", doc)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, "o-1", stored.ID())
	assert.Equal(t, 120.0, stored["total"])

	// The stored copy carries a server-assigned stamp.
	at, ok := stored.Modified()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().UTC(), at, 5*time.Second)
}

func TestStorage_Upsert_StaleLoses(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	first := pushedDoc("o-1", time.Now().UTC(), map[string]any{"total": 120.0})
	stored, saved, err := store.Upsert(ctx, "u-1", "orders", first)
	require.NoError(t, err)
	require.True(t, saved)
	storedAt, _ := stored.Modified()

	// A second device pushes an older copy: the stored one wins and is
	// echoed back for the client to reconcile.
	stale := pushedDoc("o-1", storedAt.Add(-time.Minute), map[string]any{"total": 1.0})
	echoed, saved, err := store.Upsert(ctx, "u-1", "orders", stale)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, 120.0, echoed["total"])
}

func TestStorage_Upsert_NewerWins(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	first := pushedDoc("o-1", time.Now().UTC(), map[string]any{"total": 120.0})
	stored, _, err := store.Upsert(ctx, "u-1", "orders", first)
	require.NoError(t, err)
	storedAt, _ := stored.Modified()

	newer := pushedDoc("o-1", storedAt.Add(time.Minute), map[string]any{"total": 200.0})
	echoed, saved, err := store.Upsert(ctx, "u-1", "orders", newer)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, 200.0, echoed["total"])

	// The new server stamp stays strictly above the previous one so the
	// pull cursor picks the change up.
	newAt, _ := echoed.Modified()
	assert.True(t, newAt.After(storedAt))
}

func TestStorage_Upsert_IsolatedByUserAndCollection(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, _, err := store.Upsert(ctx, "u-1", "orders",
		pushedDoc("x-1", time.Now().UTC(), map[string]any{"total": 10.0}))
	require.NoError(t, err)

	otherUser, err := store.Since(ctx, "u-2", "orders", "", "", 10)
	require.NoError(t, err)
	assert.Empty(t, otherUser)

	otherCollection, err := store.Since(ctx, "u-1", "products", "", "", 10)
	require.NoError(t, err)
	assert.Empty(t, otherCollection)
}

func TestStorage_Since_CursorAndOrdering(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	base := time.Now().UTC()
	var stamps []string
	for i, id := range []string{"o-1", "o-2", "o-3"} {
		stored, _, err := store.Upsert(ctx, "u-1", "orders",
			pushedDoc(id, base.Add(time.Duration(i)*time.Second), map[string]any{"n": float64(i)}))
		require.NoError(t, err)
		at, _ := stored.Modified()
		stamps = append(stamps, models.FormatTime(at))
	}

	// Soft-deleted rows replicate too.
	deleted := pushedDoc("o-4", base.Add(time.Hour), map[string]any{models.FieldDeleted: true})
	_, _, err := store.Upsert(ctx, "u-1", "orders", deleted)
	require.NoError(t, err)

	all, err := store.Since(ctx, "u-1", "orders", "", "", 10)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "o-1", all[0].ID())
	assert.True(t, all[3].Deleted())

	// Strictly after the second row's stamp.
	rest, err := store.Since(ctx, "u-1", "orders", stamps[1], "o-2", 10)
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, "o-3", rest[0].ID())
	assert.Equal(t, "o-4", rest[1].ID())

	// Limit caps the batch.
	page, err := store.Since(ctx, "u-1", "orders", "", "", 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestStorage_Upsert_UnstampedIncomingLosesToStored(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, _, err := store.Upsert(ctx, "u-1", "orders",
		pushedDoc("o-1", time.Now().UTC(), map[string]any{"total": 50.0}))
	require.NoError(t, err)

	unstamped := pushedDoc("o-1", time.Time{}, map[string]any{"total": 75.0})
	echoed, saved, err := store.Upsert(ctx, "u-1", "orders", unstamped)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, 50.0, echoed["total"])
}
