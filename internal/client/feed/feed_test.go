package feed

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapos/duka/internal/models"
	"github.com/dukapos/duka/internal/query"
)

// cannedReader mocks Find over a shared per-collection result map, so a
// test can mutate the map and republish.
func cannedReader(docs map[string][]models.Document) *ReaderMock {
	return &ReaderMock{
		FindFunc: func(ctx context.Context, collection string, sel query.Selector) ([]models.Document, error) {
			var out []models.Document
			for _, doc := range docs[collection] {
				if sel.Matches(doc) {
					out = append(out, doc)
				}
			}
			return out, nil
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestFeed_SubscribeDeliversSnapshot(t *testing.T) {
	reader := cannedReader(map[string][]models.Document{
		"products": {
			{models.FieldID: "p-1", "stock": 2.0},
			{models.FieldID: "p-2", "stock": 9.0},
		},
	})
	f := New(reader, testLogger())

	var got [][]models.Document
	sub, err := f.Subscribe(context.Background(), "products",
		query.Where(query.Lt("stock", 5)),
		func(docs []models.Document) { got = append(got, docs) })
	require.NoError(t, err)
	defer sub.Cancel()

	// The initial snapshot arrives before Subscribe returns.
	require.Len(t, got, 1)
	require.Len(t, got[0], 1)
	assert.Equal(t, "p-1", got[0][0].ID())

	require.Len(t, reader.FindCalls(), 1)
	assert.Equal(t, "products", reader.FindCalls()[0].Collection)
}

func TestFeed_SubscribeFailsOnReaderError(t *testing.T) {
	reader := &ReaderMock{
		FindFunc: func(ctx context.Context, collection string, sel query.Selector) ([]models.Document, error) {
			return nil, errors.New("closed")
		},
	}
	f := New(reader, testLogger())

	_, err := f.Subscribe(context.Background(), "products", query.All(),
		func([]models.Document) { t.Fatal("callback must not fire") })
	assert.Error(t, err)
}

func TestFeed_PublishReEvaluates(t *testing.T) {
	docs := map[string][]models.Document{
		"orders": {{models.FieldID: "o-1"}},
	}
	f := New(cannedReader(docs), testLogger())

	var calls int
	var last []models.Document
	sub, err := f.Subscribe(context.Background(), "orders", query.All(),
		func(result []models.Document) {
			calls++
			last = result
		})
	require.NoError(t, err)
	defer sub.Cancel()
	require.Equal(t, 1, calls)

	docs["orders"] = append(docs["orders"], models.Document{models.FieldID: "o-2"})
	f.Publish("orders")

	assert.Equal(t, 2, calls)
	assert.Len(t, last, 2, "callback receives the full fresh result set")

	// Changes in other collections do not reach this subscriber.
	f.Publish("products")
	assert.Equal(t, 2, calls)
}

func TestFeed_CancelStopsDelivery(t *testing.T) {
	f := New(cannedReader(map[string][]models.Document{}), testLogger())

	var calls int
	sub, err := f.Subscribe(context.Background(), "orders", query.All(),
		func([]models.Document) { calls++ })
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	sub.Cancel()
	sub.Cancel() // idempotent

	f.Publish("orders")
	assert.Equal(t, 1, calls, "no callbacks after cancel")
}

func TestFeed_CancelFromInsideCallback(t *testing.T) {
	f := New(cannedReader(map[string][]models.Document{}), testLogger())

	var calls int
	var sub *Subscription
	sub, err := f.Subscribe(context.Background(), "orders", query.All(),
		func([]models.Document) {
			calls++
			if sub != nil {
				sub.Cancel()
			}
		})
	require.NoError(t, err)

	f.Publish("orders")
	f.Publish("orders")
	assert.Equal(t, 2, calls, "cancel inside a callback takes effect for later publishes")
}

func TestFeed_IndependentSubscribers(t *testing.T) {
	docs := map[string][]models.Document{
		"orders": {
			{models.FieldID: "o-1", "status": "open"},
			{models.FieldID: "o-2", "status": "paid"},
		},
	}
	f := New(cannedReader(docs), testLogger())

	var open, paid int
	s1, err := f.Subscribe(context.Background(), "orders",
		query.Where(query.Eq("status", "open")),
		func(result []models.Document) { open = len(result) })
	require.NoError(t, err)
	defer s1.Cancel()

	s2, err := f.Subscribe(context.Background(), "orders",
		query.Where(query.Eq("status", "paid")),
		func(result []models.Document) { paid = len(result) })
	require.NoError(t, err)
	defer s2.Cancel()

	docs["orders"][1]["status"] = "open"
	f.Publish("orders")

	assert.Equal(t, 2, open)
	assert.Equal(t, 0, paid)
}
