package replication

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dukapos/duka/internal/client/storage"
)

// Coordinator owns the set of active replication engines for a store
// instance: startup, teardown, forced resync, immediate push, and the
// persisted per-collection error map that survives restarts.
type Coordinator struct {
	cfg    Config
	store  storage.DocumentStore
	state  storage.StateStore
	client SyncAPI
	tokens TokenSource
	logger *slog.Logger

	mu       sync.Mutex
	engines  map[string]*Engine
	events   chan Event
	cancel   context.CancelFunc
	group    *errgroup.Group
	consumed chan struct{}
	synced   map[string]bool
	started  bool
}

// NewCoordinator creates a coordinator. cfg.Collection is ignored; the
// remaining tuning applies to every engine.
func NewCoordinator(cfg Config, store storage.DocumentStore, state storage.StateStore, client SyncAPI, tokens TokenSource, logger *slog.Logger) *Coordinator {
	cfg.applyDefaults()
	return &Coordinator{
		cfg:    cfg,
		store:  store,
		state:  state,
		client: client,
		tokens: tokens,
		logger: logger,
	}
}

// StartAll creates and starts one engine per collection. Idempotent:
// calling while already started is a no-op.
func (c *Coordinator) StartAll(collections []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	runCtx, cancel := context.WithCancel(context.Background())

	c.cancel = cancel
	c.events = make(chan Event, 64)
	c.engines = make(map[string]*Engine, len(collections))
	c.synced = make(map[string]bool, len(collections))
	c.consumed = make(chan struct{})
	c.group, _ = errgroup.WithContext(runCtx)

	for _, collection := range collections {
		cfg := c.cfg
		cfg.Collection = collection

		engine := NewEngine(cfg, c.store, c.client, c.tokens, c.events, c.logger)
		c.engines[collection] = engine

		c.group.Go(func() error {
			engine.Run(runCtx)
			return nil
		})
	}

	go c.consumeEvents()

	c.started = true
	c.logger.Info("replication started", "collections", len(collections))
	return nil
}

// StopAll cancels every engine and waits for them to wind down. Used
// before store teardown; in-flight requests abort via context.
func (c *Coordinator) StopAll(ctx context.Context) error {
	c.mu.Lock()
	if !c.started {
		c.mu.Unlock()
		return nil
	}
	cancel, group, events, consumed := c.cancel, c.group, c.events, c.consumed
	c.started = false
	c.mu.Unlock()

	cancel()
	if err := group.Wait(); err != nil {
		return fmt.Errorf("engine shutdown: %w", err)
	}

	// All writers are gone; drain the consumer.
	close(events)
	select {
	case <-consumed:
	case <-ctx.Done():
		return ctx.Err()
	}

	c.logger.Info("replication stopped")
	return nil
}

// TriggerResync asks every engine to attempt a pull+push cycle now,
// regardless of its wait or retry state.
func (c *Coordinator) TriggerResync() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, engine := range c.engines {
		engine.TriggerResync()
	}
}

// TriggerImmediateSync asks one engine to push now, bypassing its
// interval, for latency-sensitive writes.
func (c *Coordinator) TriggerImmediateSync(collection string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	engine, ok := c.engines[collection]
	if !ok {
		return fmt.Errorf("%w: %q", storage.ErrUnknownCollection, collection)
	}
	engine.TriggerPush()
	return nil
}

// Errors returns the persisted unresolved error map.
func (c *Coordinator) Errors(ctx context.Context) (map[string]storage.SyncError, error) {
	return c.state.SyncErrors(ctx)
}

// Health reports one collection's sync status, HealthInitializing for an
// unknown or not-yet-started collection.
func (c *Coordinator) Health(collection string) Health {
	c.mu.Lock()
	defer c.mu.Unlock()

	engine, ok := c.engines[collection]
	if !ok {
		return HealthInitializing
	}
	return engine.Health()
}

// HealthAll reports every engine's sync status.
func (c *Coordinator) HealthAll() map[string]Health {
	c.mu.Lock()
	defer c.mu.Unlock()

	health := make(map[string]Health, len(c.engines))
	for name, engine := range c.engines {
		health[name] = engine.Health()
	}
	return health
}

// consumeEvents mirrors engine events into the persisted state store so a
// reload before the engines re-report still shows prior unresolved errors.
func (c *Coordinator) consumeEvents() {
	defer close(c.consumed)

	ctx := context.Background()

	for ev := range c.events {
		switch ev.Type {
		case EventError:
			record := storage.SyncError{Message: ev.Message, Timestamp: ev.Timestamp}
			if err := c.state.SetSyncError(ctx, ev.Collection, record); err != nil {
				c.logger.Warn("failed to persist sync error",
					"collection", ev.Collection,
					"error", err)
			}

		case EventRecovered, EventSynced:
			if err := c.state.ClearSyncError(ctx, ev.Collection); err != nil {
				c.logger.Warn("failed to clear sync error",
					"collection", ev.Collection,
					"error", err)
			}
			if ev.Type == EventSynced {
				c.markSynced(ctx, ev.Collection)
			}
		}
	}
}

// markSynced records per-collection first successes and flips the
// advisory initial_sync_complete flag once every collection has synced.
func (c *Coordinator) markSynced(ctx context.Context, collection string) {
	c.mu.Lock()
	already := c.synced[collection]
	c.synced[collection] = true
	complete := len(c.synced) == len(c.engines)
	c.mu.Unlock()

	if already || !complete {
		return
	}

	if err := c.state.SetInitialSyncComplete(ctx, time.Now()); err != nil {
		c.logger.Warn("failed to record initial sync", "error", err)
	} else {
		c.logger.Info("initial sync complete")
	}
}
