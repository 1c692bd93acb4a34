package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/dukapos/duka/internal/client/storage"
	"github.com/dukapos/duka/internal/models"
)

var (
	// State store bucket names
	bucketSyncErrors = []byte("sync_errors")
	bucketFlags      = []byte("flags")
	bucketSession    = []byte("session")

	// Flag keys
	keyInitError           = []byte("init_error")
	keyInitialSyncComplete = []byte("initial_sync_complete")

	sessionKey = []byte("current")
)

// State is the BoltDB-backed key-value area kept outside the document
// store. It lives in its own file so it survives document-store teardown
// on logout and is readable again before replication re-reports status.
type State struct {
	db     *bbolt.DB
	mu     sync.Mutex
	closed bool
}

// OpenState opens (or creates) the named state file and its buckets.
func OpenState(ctx context.Context, dbPath string) (*State, error) {
	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrStorageUnavailable, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketSyncErrors, bucketFlags, bucketSession} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize state buckets: %w", err)
	}

	return &State{db: db}, nil
}

// Close releases the state file handle. Safe to call more than once.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// SetSyncError records a collection's unresolved replication error.
func (s *State) SetSyncError(ctx context.Context, collection string, e storage.SyncError) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal sync error: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncErrors)
		if bucket == nil {
			return fmt.Errorf("sync_errors bucket not found")
		}
		return bucket.Put([]byte(collection), data)
	})
}

// ClearSyncError removes a collection's error record.
func (s *State) ClearSyncError(ctx context.Context, collection string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncErrors)
		if bucket == nil {
			return fmt.Errorf("sync_errors bucket not found")
		}
		return bucket.Delete([]byte(collection))
	})
}

// SyncErrors returns all unresolved errors keyed by collection.
func (s *State) SyncErrors(ctx context.Context) (map[string]storage.SyncError, error) {
	errs := make(map[string]storage.SyncError)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncErrors)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var e storage.SyncError
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("failed to unmarshal sync error: %w", err)
			}
			errs[string(k)] = e
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return errs, nil
}

// SetInitError records a replication setup failure from initialization.
func (s *State) SetInitError(ctx context.Context, message string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFlags)
		if bucket == nil {
			return fmt.Errorf("flags bucket not found")
		}
		return bucket.Put(keyInitError, []byte(message))
	})
}

// InitError returns the recorded init error, "" when none.
func (s *State) InitError(ctx context.Context) (string, error) {
	var message string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFlags)
		if bucket == nil {
			return nil
		}
		message = string(bucket.Get(keyInitError))
		return nil
	})
	if err != nil {
		return "", err
	}

	return message, nil
}

// ClearInitError removes the init error record.
func (s *State) ClearInitError(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFlags)
		if bucket == nil {
			return fmt.Errorf("flags bucket not found")
		}
		return bucket.Delete(keyInitError)
	})
}

// SetInitialSyncComplete records the last known good full sync. Advisory:
// used to avoid a cold "syncing" spinner on reopen, never for correctness.
func (s *State) SetInitialSyncComplete(ctx context.Context, at time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFlags)
		if bucket == nil {
			return fmt.Errorf("flags bucket not found")
		}
		return bucket.Put(keyInitialSyncComplete, []byte(models.FormatTime(at)))
	})
}

// InitialSyncComplete returns the last known good full sync.
func (s *State) InitialSyncComplete(ctx context.Context) (time.Time, bool, error) {
	var raw []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFlags)
		if bucket == nil {
			return nil
		}
		if v := bucket.Get(keyInitialSyncComplete); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return time.Time{}, false, err
	}

	if raw == nil {
		return time.Time{}, false, nil
	}

	at, err := models.ParseTime(string(raw))
	if err != nil {
		// A corrupt advisory flag is equivalent to its absence.
		return time.Time{}, false, nil
	}
	return at, true, nil
}

// SaveSession caches the identity token.
func (s *State) SaveSession(ctx context.Context, sess *storage.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}
		return bucket.Put(sessionKey, data)
	})
}

// GetSession returns the cached identity token.
func (s *State) GetSession(ctx context.Context) (*storage.Session, error) {
	var sess *storage.Session

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return storage.ErrSessionNotFound
		}

		data := bucket.Get(sessionKey)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		sess = &storage.Session{}
		if err := json.Unmarshal(data, sess); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sess, nil
}

// DeleteSession drops the cached token.
func (s *State) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return storage.ErrSessionNotFound
		}
		return bucket.Delete(sessionKey)
	})
}
