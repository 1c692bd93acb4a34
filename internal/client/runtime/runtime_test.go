package runtime

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapos/duka/internal/models"
	"github.com/dukapos/duka/internal/query"
)

func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	return New(Config{
		DataDir:     t.TempDir(),
		SettleDelay: time.Millisecond,
	}, slog.New(slog.DiscardHandler))
}

func TestRuntime_InitializeLocalOnly(t *testing.T) {
	rt := newTestRuntime(t)
	ctx := context.Background()

	handle, err := rt.Initialize(ctx)
	require.NoError(t, err)
	defer func() { require.NoError(t, rt.Teardown(ctx)) }()

	// No server configured: usable, but not replicating.
	assert.False(t, handle.Replicating())

	msg, err := handle.State().InitError(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, msg, "the startup failure must be recorded, not returned")

	// Every known collection is defined and writable.
	assert.Len(t, handle.Store().Collections(), len(models.Collections()))
	require.NoError(t, handle.Store().Insert(ctx, models.CollectionProducts, models.Document{
		models.FieldID: "p-1",
		"name":         "Rice 5kg",
	}))
}

func TestRuntime_ConcurrentInitializeSharesHandle(t *testing.T) {
	rt := newTestRuntime(t)
	ctx := context.Background()

	const callers = 8
	handles := make([]*Handle, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h, err := rt.Initialize(ctx)
			assert.NoError(t, err)
			handles[i] = h
		}(i)
	}
	wg.Wait()
	defer func() { require.NoError(t, rt.Teardown(ctx)) }()

	for i := 1; i < callers; i++ {
		assert.Same(t, handles[0], handles[i], "every caller must get the same handle")
	}
}

func TestRuntime_InitializeIsIdempotent(t *testing.T) {
	rt := newTestRuntime(t)
	ctx := context.Background()

	first, err := rt.Initialize(ctx)
	require.NoError(t, err)
	second, err := rt.Initialize(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)

	require.NoError(t, rt.Teardown(ctx))
}

func TestRuntime_TeardownThenReinitialize(t *testing.T) {
	rt := newTestRuntime(t)
	ctx := context.Background()

	handle, err := rt.Initialize(ctx)
	require.NoError(t, err)
	require.NoError(t, handle.Store().Insert(ctx, models.CollectionOrders, models.Document{
		models.FieldID: "o-1",
		"total":        120.0,
	}))

	require.NoError(t, rt.Teardown(ctx))
	assert.Nil(t, rt.Current())
	// Double teardown is a no-op.
	require.NoError(t, rt.Teardown(ctx))

	// A new session reopens the same files and sees the data.
	reopened, err := rt.Initialize(ctx)
	require.NoError(t, err)
	defer func() { require.NoError(t, rt.Teardown(ctx)) }()

	doc, err := reopened.Store().Get(ctx, models.CollectionOrders, "o-1")
	require.NoError(t, err)
	assert.Equal(t, 120.0, doc["total"])
}

func TestRuntime_SubscribeThroughHandle(t *testing.T) {
	rt := newTestRuntime(t)
	ctx := context.Background()

	handle, err := rt.Initialize(ctx)
	require.NoError(t, err)
	defer func() { require.NoError(t, rt.Teardown(ctx)) }()

	var mu sync.Mutex
	var snapshots [][]models.Document
	sub, err := handle.Subscribe(ctx, models.CollectionProducts, query.All(),
		func(docs []models.Document) {
			mu.Lock()
			snapshots = append(snapshots, docs)
			mu.Unlock()
		})
	require.NoError(t, err)
	defer sub.Cancel()

	require.NoError(t, handle.Store().Insert(ctx, models.CollectionProducts, models.Document{
		models.FieldID: "p-1",
		"name":         "Rice 5kg",
	}))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, snapshots, 2, "initial snapshot plus one change")
	assert.Empty(t, snapshots[0])
	require.Len(t, snapshots[1], 1)
	assert.Equal(t, "p-1", snapshots[1][0].ID())
}
