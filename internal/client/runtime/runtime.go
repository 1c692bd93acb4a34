// Package runtime owns the lifecycle of the local store and its
// replication: single-flight initialization, access to the current handle,
// and ordered teardown on sign-out.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	clientapi "github.com/dukapos/duka/internal/client/api"
	"github.com/dukapos/duka/internal/client/feed"
	"github.com/dukapos/duka/internal/client/replication"
	"github.com/dukapos/duka/internal/client/storage"
	"github.com/dukapos/duka/internal/client/storage/boltdb"
	"github.com/dukapos/duka/internal/models"
	"github.com/dukapos/duka/internal/query"
)

// Config tunes the runtime.
type Config struct {
	// DataDir holds the document store and state files.
	DataDir string
	// ServerURL is the remote store base URL. Empty means local-only.
	ServerURL string
	// Replication tuning, zero values use engine defaults.
	Interval   time.Duration
	RetryDelay time.Duration
	BatchSize  int
	// SettleDelay is the pause after releasing storage during teardown so
	// the file lock is fully released before a new session reopens it.
	SettleDelay time.Duration
}

func (c *Config) applyDefaults() {
	if c.SettleDelay <= 0 {
		c.SettleDelay = 200 * time.Millisecond
	}
}

// Handle bundles one open store instance with its feed and coordinator.
// It is the entire surface the rest of the application consumes.
type Handle struct {
	store *boltdb.Storage
	state *boltdb.State
	feed  *feed.Feed
	coord *replication.Coordinator
	// replicating is false when init recorded an error instead of
	// starting the engines; the store still works local-only.
	replicating bool
}

// Store returns the document store for direct reads and writes.
func (h *Handle) Store() storage.DocumentStore {
	return h.store
}

// State returns the persisted sync-state area.
func (h *Handle) State() storage.StateStore {
	return h.state
}

// Subscribe registers a change feed callback; the callback receives the
// current snapshot immediately and the full result set on every change.
func (h *Handle) Subscribe(ctx context.Context, collection string, sel query.Selector, fn feed.Callback) (*feed.Subscription, error) {
	return h.feed.Subscribe(ctx, collection, sel, fn)
}

// TriggerResync nudges every engine to sync now.
func (h *Handle) TriggerResync() {
	h.coord.TriggerResync()
}

// TriggerImmediateSync nudges one engine to push now.
func (h *Handle) TriggerImmediateSync(collection string) error {
	return h.coord.TriggerImmediateSync(collection)
}

// SyncErrors returns the persisted unresolved error map.
func (h *Handle) SyncErrors(ctx context.Context) (map[string]storage.SyncError, error) {
	return h.coord.Errors(ctx)
}

// Health reports one collection's sync status.
func (h *Handle) Health(collection string) replication.Health {
	return h.coord.Health(collection)
}

// HealthAll reports every collection's sync status.
func (h *Handle) HealthAll() map[string]replication.Health {
	return h.coord.HealthAll()
}

// Replicating reports whether the sync engines are running; false means
// the session is local-only (see the recorded init error).
func (h *Handle) Replicating() bool {
	return h.replicating
}

// Runtime is the explicit owner of the store handle and the single-flight
// initialization guard. Constructed once and passed by reference; there
// are no package-level singletons.
type Runtime struct {
	cfg    Config
	logger *slog.Logger
	init   singleflight.Group

	mu     sync.Mutex
	handle *Handle
}

// New creates a runtime. Nothing is opened until Initialize.
func New(cfg Config, logger *slog.Logger) *Runtime {
	cfg.applyDefaults()
	return &Runtime{cfg: cfg, logger: logger}
}

// Current returns the open handle without blocking, nil when the store is
// not open. For callers that must not wait (UI render paths).
func (r *Runtime) Current() *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.handle
}

// Initialize opens the document store, defines all collections and starts
// replication. Concurrent calls collapse into one in-flight attempt and
// every caller receives the same handle. A replication setup failure does
// not fail initialization: the store remains usable local-only and the
// failure is recorded as the init error.
func (r *Runtime) Initialize(ctx context.Context) (*Handle, error) {
	if h := r.Current(); h != nil {
		return h, nil
	}

	v, err, _ := r.init.Do("init", func() (any, error) {
		if h := r.Current(); h != nil {
			return h, nil
		}
		return r.open(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Handle), nil
}

func (r *Runtime) open(ctx context.Context) (*Handle, error) {
	state, err := boltdb.OpenState(ctx, filepath.Join(r.cfg.DataDir, "state.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}

	store, err := boltdb.New(ctx, filepath.Join(r.cfg.DataDir, "duka.db"))
	if err != nil {
		state.Close()
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	for name, sch := range models.Schemas() {
		if err := store.DefineCollection(ctx, name, sch); err != nil {
			store.Close()
			state.Close()
			return nil, fmt.Errorf("failed to define collection %q: %w", name, err)
		}
	}

	changeFeed := feed.New(store, r.logger)
	store.SetNotifier(changeFeed)

	cfg := replication.Config{
		Interval:   r.cfg.Interval,
		RetryDelay: r.cfg.RetryDelay,
		BatchSize:  r.cfg.BatchSize,
	}
	client := clientapi.NewClient(r.cfg.ServerURL)
	coord := replication.NewCoordinator(cfg, store, state, client, &sessionTokens{state: state}, r.logger)

	handle := &Handle{
		store: store,
		state: state,
		feed:  changeFeed,
		coord: coord,
	}

	if err := r.startReplication(ctx, state, coord, store.Collections()); err != nil {
		// The store stays usable offline; the failure is surfaced through
		// the recorded init error, not the caller.
		r.logger.Warn("replication not started", "error", err)
		if serr := state.SetInitError(ctx, err.Error()); serr != nil {
			r.logger.Warn("failed to record init error", "error", serr)
		}
	} else {
		handle.replicating = true
		if cerr := state.ClearInitError(ctx); cerr != nil {
			r.logger.Warn("failed to clear init error", "error", cerr)
		}
	}

	r.mu.Lock()
	r.handle = handle
	r.mu.Unlock()

	r.logger.Info("store initialized",
		"collections", len(store.Collections()),
		"replicating", handle.replicating)
	return handle, nil
}

// startReplication verifies credentials exist and starts the engines.
func (r *Runtime) startReplication(ctx context.Context, state storage.StateStore, coord *replication.Coordinator, collections []string) error {
	if r.cfg.ServerURL == "" {
		return fmt.Errorf("no server configured")
	}

	sess, err := state.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("no session: %w", err)
	}
	if sess.Expired() {
		return fmt.Errorf("session expired")
	}

	return coord.StartAll(collections)
}

// Teardown cancels replication, closes the document store, releases the
// state handle and clears the guard, in that order, then waits the settle
// delay so a following Initialize does not race the storage lock release.
func (r *Runtime) Teardown(ctx context.Context) error {
	r.mu.Lock()
	handle := r.handle
	r.handle = nil
	r.mu.Unlock()

	if handle == nil {
		return nil
	}

	if err := handle.coord.StopAll(ctx); err != nil {
		return fmt.Errorf("failed to stop replication: %w", err)
	}
	if err := handle.store.Close(); err != nil {
		return fmt.Errorf("failed to close document store: %w", err)
	}
	if err := handle.state.Close(); err != nil {
		return fmt.Errorf("failed to close state store: %w", err)
	}

	time.Sleep(r.cfg.SettleDelay)

	r.logger.Info("store torn down")
	return nil
}

// sessionTokens supplies the cached identity token to the engines.
type sessionTokens struct {
	state storage.StateStore
}

func (s *sessionTokens) Token(ctx context.Context) (string, error) {
	sess, err := s.state.GetSession(ctx)
	if err != nil {
		return "", err
	}
	if sess.Expired() {
		return "", fmt.Errorf("session expired")
	}
	return sess.AccessToken, nil
}
