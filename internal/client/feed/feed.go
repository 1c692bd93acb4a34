// Package feed delivers reactive query notifications: a subscriber
// registers a collection and selector and receives the current full result
// set whenever any document in that collection changes.
package feed

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dukapos/duka/internal/models"
	"github.com/dukapos/duka/internal/query"
)

//go:generate moq -out reader_mock.go . Reader

// Reader is the read access the feed needs to build result sets. The
// document store implements it.
type Reader interface {
	Find(ctx context.Context, collection string, sel query.Selector) ([]models.Document, error)
}

// Callback receives the current full result set, not a diff.
type Callback func(docs []models.Document)

// Feed fans out collection change notifications to subscribers.
// Notifications fire in commit order: the store publishes from the
// mutating goroutine after each committed write.
type Feed struct {
	reader Reader
	logger *slog.Logger
	mu     sync.Mutex
	subs   map[string][]*Subscription
}

// New creates a feed reading result sets through reader.
func New(reader Reader, logger *slog.Logger) *Feed {
	return &Feed{
		reader: reader,
		logger: logger,
		subs:   make(map[string][]*Subscription),
	}
}

// Subscription is the disposable handle returned by Subscribe. Callers
// hold it and release it with Cancel.
type Subscription struct {
	feed       *Feed
	collection string
	sel        query.Selector
	fn         Callback
	cancelled  atomic.Bool
}

// Subscribe registers a callback for a collection and delivers the current
// snapshot before returning. Safe to call from inside another
// subscription's callback.
func (f *Feed) Subscribe(ctx context.Context, collection string, sel query.Selector, fn Callback) (*Subscription, error) {
	sub := &Subscription{
		feed:       f,
		collection: collection,
		sel:        sel,
		fn:         fn,
	}

	docs, err := f.reader.Find(ctx, collection, sel)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.subs[collection] = append(f.subs[collection], sub)
	f.mu.Unlock()

	fn(docs)
	return sub, nil
}

// Cancel stops further callbacks. Synchronous, idempotent, and safe to
// call during another callback's execution.
func (s *Subscription) Cancel() {
	if s.cancelled.Swap(true) {
		return
	}
	s.feed.remove(s)
}

func (f *Feed) remove(sub *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()

	subs := f.subs[sub.collection]
	for i, candidate := range subs {
		if candidate == sub {
			f.subs[sub.collection] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
}

// Publish re-evaluates every subscription on the collection and invokes
// its callback with the fresh result set. Runs on the publishing
// goroutine; the lock is not held during callbacks so subscriptions may be
// created or cancelled from inside a handler.
func (f *Feed) Publish(collection string) {
	f.mu.Lock()
	subs := append([]*Subscription(nil), f.subs[collection]...)
	f.mu.Unlock()

	for _, sub := range subs {
		if sub.cancelled.Load() {
			continue
		}

		docs, err := f.reader.Find(context.Background(), collection, sub.sel)
		if err != nil {
			f.logger.Warn("change feed query failed",
				"collection", collection,
				"error", err)
			continue
		}

		if sub.cancelled.Load() {
			continue
		}
		sub.fn(docs)
	}
}
