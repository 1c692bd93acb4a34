package boltdb

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/dukapos/duka/internal/client/storage"
	"github.com/dukapos/duka/internal/schema"
	"github.com/dukapos/duka/internal/validation"
)

// Storage is the BoltDB-backed document store. One bucket per collection;
// documents are stored as JSON keyed by primary key. Writers are serialized
// by the underlying bolt transaction, readers run concurrently.
type Storage struct {
	db       *bbolt.DB
	mu       sync.RWMutex
	schemas  map[string]schema.Schema
	notifier storage.Notifier
	closed   bool
}

// New opens (or creates) the named document store file.
// Returns ErrStorageUnavailable when the file cannot be opened, e.g. a
// still-held lock from a session that has not finished tearing down.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrStorageUnavailable, err)
	}

	return &Storage{
		db:      db,
		schemas: make(map[string]schema.Schema),
	}, nil
}

// SetNotifier wires the change feed. Must be called before the store is
// handed to writers.
func (s *Storage) SetNotifier(n storage.Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

// DefineCollection registers a collection and creates its bucket.
func (s *Storage) DefineCollection(ctx context.Context, name string, sch schema.Schema) error {
	if err := validation.ValidateCollection(name); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrSchema, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to define collection %q: %w", name, err)
	}

	s.schemas[name] = sch
	return nil
}

// Collections returns the defined collection names, sorted.
func (s *Storage) Collections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.schemas))
	for name := range s.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close releases the storage handle. Safe to call more than once.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// schemaFor returns the registered schema for a collection.
func (s *Storage) schemaFor(collection string) (schema.Schema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return schema.Schema{}, storage.ErrStorageClosed
	}

	sch, ok := s.schemas[collection]
	if !ok {
		return schema.Schema{}, fmt.Errorf("%w: %q", storage.ErrUnknownCollection, collection)
	}
	return sch, nil
}

// notify fires the change feed for a collection after a committed mutation.
// Runs on the mutating goroutine so the caller's own immediate re-read
// observes a consistent feed.
func (s *Storage) notify(collection string) {
	s.mu.RLock()
	n := s.notifier
	s.mu.RUnlock()

	if n != nil {
		n.Publish(collection)
	}
}
