package boltdb

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapos/duka/internal/client/storage"
	"github.com/dukapos/duka/internal/models"
	"github.com/dukapos/duka/internal/query"
	"github.com/dukapos/duka/internal/schema"
)

// createTestStorage opens a temporary store with a products collection.
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	err = store.DefineCollection(ctx, "products", schema.Schema{
		Required: []string{"id", "name"},
		Fields: map[string]schema.Kind{
			"name":  schema.KindString,
			"stock": schema.KindNumber,
		},
	})
	require.NoError(t, err)

	return store
}

func testProduct(id, name string, stock float64) models.Document {
	return models.Document{
		models.FieldID: id,
		"name":         name,
		"stock":        stock,
	}
}

// recorder captures change notifications.
type recorder struct {
	mu          sync.Mutex
	collections []string
}

func (r *recorder) Publish(collection string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collections = append(r.collections, collection)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.collections)
}

func TestStorage_Insert(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	doc := testProduct("p-1", "Rice 5kg", 12)
	require.NoError(t, store.Insert(ctx, "products", doc))

	got, err := store.Get(ctx, "products", "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Rice 5kg", got["name"])

	_, ok := got.Modified()
	assert.True(t, ok, "insert must stamp _modified")

	// The caller's copy is not mutated by the stamp.
	_, ok = doc.Modified()
	assert.False(t, ok)
}

func TestStorage_Insert_DuplicateKey(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "products", testProduct("p-1", "Rice", 1)))

	err := store.Insert(ctx, "products", testProduct("p-1", "Other", 2))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestStorage_Insert_DuplicateOverSoftDeleted(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "products", testProduct("p-1", "Rice", 1)))
	require.NoError(t, store.SoftDelete(ctx, "products", "p-1"))

	// A soft-deleted document still occupies its key.
	err := store.Insert(ctx, "products", testProduct("p-1", "Rice", 1))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	// Recovery path: patch the deleted document back to life.
	_, err = store.Patch(ctx, "products", "p-1", models.Document{
		models.FieldDeleted: false,
		"stock":             5.0,
	})
	require.NoError(t, err)

	docs, err := store.Find(ctx, "products", query.All())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, 5.0, docs[0]["stock"])
}

func TestStorage_Insert_SchemaViolation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	err := store.Insert(ctx, "products", models.Document{models.FieldID: "p-1"})
	assert.ErrorIs(t, err, storage.ErrSchema)

	err = store.Insert(ctx, "products", models.Document{"name": "no id"})
	assert.ErrorIs(t, err, storage.ErrSchema)

	err = store.Insert(ctx, "unknown", testProduct("p-1", "Rice", 1))
	assert.ErrorIs(t, err, storage.ErrUnknownCollection)
}

func TestStorage_Patch(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "products", testProduct("p-1", "Rice", 12)))
	before, err := store.Get(ctx, "products", "p-1")
	require.NoError(t, err)
	beforeStamp, _ := before.Modified()

	updated, err := store.Patch(ctx, "products", "p-1", models.Document{"stock": 7.0})
	require.NoError(t, err)
	assert.Equal(t, 7.0, updated["stock"])
	assert.Equal(t, "Rice", updated["name"], "untouched fields survive a patch")

	afterStamp, ok := updated.Modified()
	require.True(t, ok)
	assert.True(t, afterStamp.After(beforeStamp), "patch must advance _modified")
}

func TestStorage_Patch_Errors(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.Patch(ctx, "products", "missing", models.Document{"stock": 1.0})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Insert(ctx, "products", testProduct("p-1", "Rice", 1)))

	_, err = store.Patch(ctx, "products", "p-1", models.Document{models.FieldID: "p-2"})
	assert.ErrorIs(t, err, storage.ErrSchema)

	_, err = store.Patch(ctx, "products", "p-1", models.Document{"stock": "seven"})
	assert.ErrorIs(t, err, storage.ErrSchema)
}

func TestStorage_SoftDelete(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "products", testProduct("p-1", "Rice", 1)))
	require.NoError(t, store.SoftDelete(ctx, "products", "p-1"))

	// Gone from queries.
	docs, err := store.Find(ctx, "products", query.All())
	require.NoError(t, err)
	assert.Empty(t, docs)

	// Still present for replication.
	got, err := store.Get(ctx, "products", "p-1")
	require.NoError(t, err)
	assert.True(t, got.Deleted())

	assert.ErrorIs(t, store.SoftDelete(ctx, "products", "missing"), storage.ErrNotFound)
}

func TestStorage_Find_Selector(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "products", testProduct("p-2", "Sugar 1kg", 3)))
	require.NoError(t, store.Insert(ctx, "products", testProduct("p-1", "Rice 5kg", 12)))
	require.NoError(t, store.Insert(ctx, "products", testProduct("p-3", "Salt", 0)))

	low, err := store.Find(ctx, "products", query.Where(query.Lte("stock", 3)))
	require.NoError(t, err)
	require.Len(t, low, 2)
	// Ordered by primary key.
	assert.Equal(t, "p-2", low[0].ID())
	assert.Equal(t, "p-3", low[1].ID())
}

func TestStorage_ApplyRemote_LastWriterWins(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "products", testProduct("p-1", "Rice", 12)))
	local, err := store.Get(ctx, "products", "p-1")
	require.NoError(t, err)
	localStamp, _ := local.Modified()

	stale := testProduct("p-1", "Rice (stale)", 2)
	stale.SetModified(localStamp.Add(-time.Minute))

	fresh := testProduct("p-1", "Rice (fresh)", 9)
	fresh.SetModified(localStamp.Add(time.Minute))

	created := testProduct("p-9", "Maize flour", 4)
	created.SetModified(localStamp)

	applied, err := store.ApplyRemote(ctx, "products",
		[]models.Document{stale, fresh, created})
	require.NoError(t, err)
	assert.Equal(t, 2, applied, "stale copy must be skipped")

	got, err := store.Get(ctx, "products", "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Rice (fresh)", got["name"])

	_, err = store.Get(ctx, "products", "p-9")
	assert.NoError(t, err)
}

func TestStorage_ApplyRemote_EqualStampRemoteWins(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "products", testProduct("p-1", "Local", 1)))
	local, err := store.Get(ctx, "products", "p-1")
	require.NoError(t, err)
	stamp, _ := local.Modified()

	remote := testProduct("p-1", "Remote", 2)
	remote.SetModified(stamp)

	applied, err := store.ApplyRemote(ctx, "products", []models.Document{remote})
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	got, err := store.Get(ctx, "products", "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Remote", got["name"])
}

func TestStorage_ApplyRemote_Idempotent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	batch := []models.Document{
		testProduct("p-1", "Rice", 12),
		testProduct("p-2", "Maize flour", 4),
	}
	for i := range batch {
		batch[i].SetModified(time.Now().UTC())
	}

	_, err := store.ApplyRemote(ctx, "products", batch)
	require.NoError(t, err)
	first, err := store.Find(ctx, "products", query.All())
	require.NoError(t, err)

	// Replaying the same batch must not change state or duplicate rows.
	_, err = store.ApplyRemote(ctx, "products", batch)
	require.NoError(t, err)
	second, err := store.Find(ctx, "products", query.All())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, second, 2)
}

func TestStorage_ApplyRemote_BatchAtomic(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	good := testProduct("p-1", "Rice", 1)
	good.SetModified(time.Now().UTC())
	bad := models.Document{models.FieldID: "p-2"} // missing required name
	bad.SetModified(time.Now().UTC())

	_, err := store.ApplyRemote(ctx, "products", []models.Document{good, bad})
	require.ErrorIs(t, err, storage.ErrSchema)

	// Nothing from the failed batch landed.
	_, err = store.Get(ctx, "products", "p-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_ModifiedAfter(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "products", testProduct("p-1", "Rice", 1)))
	first, err := store.Get(ctx, "products", "p-1")
	require.NoError(t, err)
	watermark, _ := first.Modified()

	require.NoError(t, store.Insert(ctx, "products", testProduct("p-2", "Sugar", 2)))
	require.NoError(t, store.SoftDelete(ctx, "products", "p-1"))

	changed, err := store.ModifiedAfter(ctx, "products", watermark)
	require.NoError(t, err)
	require.Len(t, changed, 2, "soft-deleted documents replicate too")

	// Ordered by _modified ascending.
	a, _ := changed[0].Modified()
	b, _ := changed[1].Modified()
	assert.True(t, a.Before(b) || a.Equal(b))

	// Strictly-after cursor: nothing at or before the watermark.
	for _, doc := range changed {
		at, _ := doc.Modified()
		assert.True(t, at.After(watermark))
	}
}

func TestStorage_MonotonicStamps(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "products", testProduct("p-1", "Rice", 1)))

	var prev time.Time
	for i := 0; i < 5; i++ {
		doc, err := store.Patch(ctx, "products", "p-1", models.Document{"stock": float64(i)})
		require.NoError(t, err)
		at, ok := doc.Modified()
		require.True(t, ok)
		assert.True(t, at.After(prev), "stamps must strictly increase")
		prev = at
	}
}

func TestStorage_NotifiesAfterCommit(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	rec := &recorder{}
	store.SetNotifier(rec)

	require.NoError(t, store.Insert(ctx, "products", testProduct("p-1", "Rice", 1)))
	_, err := store.Patch(ctx, "products", "p-1", models.Document{"stock": 2.0})
	require.NoError(t, err)
	require.NoError(t, store.SoftDelete(ctx, "products", "p-1"))
	assert.Equal(t, 3, rec.count())

	// A failed mutation must not notify.
	err = store.Insert(ctx, "products", testProduct("p-1", "Rice", 1))
	require.Error(t, err)
	assert.Equal(t, 3, rec.count())

	// An apply that changes nothing must not notify either.
	stale := testProduct("p-1", "Old", 0)
	stale.SetModified(time.Now().Add(-time.Hour))
	applied, err := store.ApplyRemote(ctx, "products", []models.Document{stale})
	require.NoError(t, err)
	assert.Zero(t, applied)
	assert.Equal(t, 3, rec.count())
}
