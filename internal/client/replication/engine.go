// Package replication keeps local collections converged with the remote
// authoritative store: one engine per collection runs pull and push cycles
// against a checkpoint, retries failures indefinitely, and reports health
// through an event stream; the coordinator owns the set of engines.
package replication

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	clientapi "github.com/dukapos/duka/internal/client/api"
	"github.com/dukapos/duka/internal/client/storage"
	"github.com/dukapos/duka/internal/models"
	"github.com/dukapos/duka/pkg/api"
)

//go:generate moq -out api_mock.go . SyncAPI TokenSource

// SyncAPI is the slice of the remote store client the engine needs.
type SyncAPI interface {
	Pull(ctx context.Context, token, collection, since, sinceID string, limit int) (*api.PullResponse, error)
	Push(ctx context.Context, token, collection string, req api.PushRequest) (*api.PushResponse, error)
}

// TokenSource supplies the current identity credential. Identity itself is
// external; the engine only needs a token to attach to requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Checkpoint is the pull-side cursor: the largest (_modified, id) pair
// applied so far. In-memory only; losing it causes a full resync, which is
// safe because applying a batch twice is idempotent.
type Checkpoint struct {
	Modified time.Time
	ID       string
}

// Less orders checkpoints by (_modified, id).
func (c Checkpoint) Less(other Checkpoint) bool {
	if c.Modified.Equal(other.Modified) {
		return c.ID < other.ID
	}
	return c.Modified.Before(other.Modified)
}

// IsZero reports whether no document has been pulled yet.
func (c Checkpoint) IsZero() bool {
	return c.Modified.IsZero() && c.ID == ""
}

// Config tunes one replication engine.
type Config struct {
	Collection string
	// Interval between steady-state sync cycles.
	Interval time.Duration
	// RetryDelay is the fixed delay before retrying a failed cycle.
	// Deliberately not exponential: prompt recovery matters more here
	// than backoff discipline.
	RetryDelay time.Duration
	// BatchSize bounds pull and push batch sizes.
	BatchSize int
}

func (c *Config) applyDefaults() {
	if c.Interval <= 0 {
		c.Interval = 30 * time.Second
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = 5 * time.Second
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 100
	}
}

// Engine replicates one collection bidirectionally. Created by the
// coordinator; lives as long as its owning document store instance.
type Engine struct {
	cfg    Config
	store  storage.DocumentStore
	client SyncAPI
	tokens TokenSource
	events chan<- Event
	logger *slog.Logger

	state   atomic.Int32
	resyncC chan struct{}
	pushC   chan struct{}

	mu         sync.Mutex
	checkpoint Checkpoint
	pushMark   time.Time
	failing    bool
	offline    bool
	everSynced bool
}

// NewEngine creates an engine for cfg.Collection. Events are emitted on
// the shared coordinator channel.
func NewEngine(cfg Config, store storage.DocumentStore, client SyncAPI, tokens TokenSource, events chan<- Event, logger *slog.Logger) *Engine {
	cfg.applyDefaults()
	return &Engine{
		cfg:     cfg,
		store:   store,
		client:  client,
		tokens:  tokens,
		events:  events,
		logger:  logger.With("collection", cfg.Collection),
		resyncC: make(chan struct{}, 1),
		pushC:   make(chan struct{}, 1),
	}
}

// Collection returns the replicated collection name.
func (e *Engine) Collection() string {
	return e.cfg.Collection
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Health derives the consumer-facing status from the last cycle outcome.
// Syncing is only reported before the first success so steady-state reads
// stay "synced" between ticks.
func (e *Engine) Health() Health {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case e.failing && e.offline:
		return HealthOffline
	case e.failing:
		return HealthError
	case e.everSynced:
		return HealthSynced
	case e.State() == StateActive || e.State() == StateRetrying:
		return HealthSyncing
	default:
		return HealthInitializing
	}
}

// TriggerResync asks for an immediate full pull+push cycle, breaking any
// retry or interval wait. Non-blocking; coalesces with a pending trigger.
func (e *Engine) TriggerResync() {
	select {
	case e.resyncC <- struct{}{}:
	default:
	}
}

// TriggerPush asks for an immediate push, bypassing the interval, for
// latency-sensitive writes. Non-blocking.
func (e *Engine) TriggerPush() {
	select {
	case e.pushC <- struct{}{}:
	default:
	}
}

// Run drives the replication loop until ctx is cancelled. Never returns an
// error: failures degrade to local-only operation and retry forever.
func (e *Engine) Run(ctx context.Context) {
	e.state.Store(int32(StateStarting))
	e.logger.Info("replication starting",
		"interval", e.cfg.Interval,
		"batch_size", e.cfg.BatchSize)

	ticker := time.NewTicker(e.cfg.Interval)
	defer ticker.Stop()

	for {
		e.state.Store(int32(StateActive))

		if err := e.cycle(ctx); err != nil {
			if ctx.Err() != nil {
				break
			}
			e.failed(err)

			e.state.Store(int32(StateRetrying))
			select {
			case <-ctx.Done():
			case <-time.After(e.cfg.RetryDelay):
			case <-e.resyncC:
			}
			if ctx.Err() != nil {
				break
			}
			continue
		}

		e.succeeded()

		select {
		case <-ctx.Done():
		case <-ticker.C:
		case <-e.resyncC:
		case <-e.pushC:
			// Push-only fast path; errors here follow the same retry
			// route as a full cycle.
			if err := e.push(ctx); err != nil && ctx.Err() == nil {
				e.failed(err)
				e.state.Store(int32(StateRetrying))
				select {
				case <-ctx.Done():
				case <-time.After(e.cfg.RetryDelay):
				case <-e.resyncC:
				}
			} else if ctx.Err() == nil {
				e.succeeded()
			}
		}
		if ctx.Err() != nil {
			break
		}
	}

	e.state.Store(int32(StateCancelled))
	e.logger.Info("replication cancelled")
}

// cycle performs one pull followed by one push.
func (e *Engine) cycle(ctx context.Context) error {
	if err := e.pull(ctx); err != nil {
		return fmt.Errorf("pull: %w", err)
	}
	if err := e.push(ctx); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

// pull drains remote changes newer than the checkpoint in bounded batches.
// Each batch applies atomically; the checkpoint only advances after a
// batch commits, so a failed batch is re-pulled intact.
func (e *Engine) pull(ctx context.Context) error {
	token, err := e.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("no credentials: %w", err)
	}

	for {
		cp := e.currentCheckpoint()

		since, sinceID := "", ""
		if !cp.IsZero() {
			since = models.FormatTime(cp.Modified)
			sinceID = cp.ID
		}

		resp, err := e.client.Pull(ctx, token, e.cfg.Collection, since, sinceID, e.cfg.BatchSize)
		if err != nil {
			return err
		}

		docs := make([]models.Document, 0, len(resp.Documents))
		next := cp
		for _, raw := range resp.Documents {
			doc := models.FromRemote(raw)
			docs = append(docs, doc)

			if at, ok := doc.Modified(); ok {
				seen := Checkpoint{Modified: at, ID: doc.ID()}
				if next.Less(seen) {
					next = seen
				}
			}
		}

		if len(docs) > 0 {
			applied, err := e.store.ApplyRemote(ctx, e.cfg.Collection, docs)
			if err != nil {
				return err
			}
			e.advanceCheckpoint(next)
			e.logger.Debug("pulled batch",
				"received", len(docs),
				"applied", applied,
				"checkpoint", models.FormatTime(next.Modified))
		}

		if len(resp.Documents) < e.cfg.BatchSize {
			return nil
		}

		// A full batch must advance the cursor; a remote that replays
		// the same rows would otherwise keep this loop spinning. Bail
		// out to the retry path instead.
		if !cp.Less(next) {
			return fmt.Errorf("pull stalled: full batch did not advance cursor past %s/%s", since, sinceID)
		}
	}
}

// push sends local documents modified after the push watermark and
// reconciles the server-confirmed copies so the same write is not
// re-pushed next cycle.
func (e *Engine) push(ctx context.Context) error {
	token, err := e.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("no credentials: %w", err)
	}

	e.mu.Lock()
	mark := e.pushMark
	e.mu.Unlock()

	docs, err := e.store.ModifiedAfter(ctx, e.cfg.Collection, mark)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}

	for start := 0; start < len(docs); start += e.cfg.BatchSize {
		end := start + e.cfg.BatchSize
		if end > len(docs) {
			end = len(docs)
		}

		batch := make([]api.RawDocument, 0, end-start)
		for _, doc := range docs[start:end] {
			out := doc.Clone()
			if _, ok := out.Modified(); !ok {
				out.SetModified(time.Now())
			}
			batch = append(batch, out.ToRemote())
		}

		resp, err := e.client.Push(ctx, token, e.cfg.Collection, api.PushRequest{Documents: batch})
		if err != nil {
			return err
		}

		confirmed := make([]models.Document, 0, len(resp.Documents))
		newMark := mark
		for _, raw := range resp.Documents {
			doc := models.FromRemote(raw)
			confirmed = append(confirmed, doc)
			if at, ok := doc.Modified(); ok && at.After(newMark) {
				newMark = at
			}
		}

		if len(confirmed) > 0 {
			if _, err := e.store.ApplyRemote(ctx, e.cfg.Collection, confirmed); err != nil {
				return err
			}
		}

		e.mu.Lock()
		if newMark.After(e.pushMark) {
			e.pushMark = newMark
		}
		mark = e.pushMark
		e.mu.Unlock()

		e.logger.Debug("pushed batch", "sent", len(batch), "confirmed", len(confirmed))
	}

	return nil
}

func (e *Engine) currentCheckpoint() Checkpoint {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.checkpoint
}

// advanceCheckpoint moves the cursor forward, never backward.
func (e *Engine) advanceCheckpoint(next Checkpoint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.checkpoint.Less(next) {
		e.checkpoint = next
	}
}

// failed records a cycle failure and emits an error event.
func (e *Engine) failed(err error) {
	offline := !clientapi.IsRemote(err)

	e.mu.Lock()
	e.failing = true
	e.offline = offline
	e.mu.Unlock()

	e.logger.Warn("sync cycle failed", "error", err, "offline", offline)

	e.emit(Event{
		Collection: e.cfg.Collection,
		Type:       EventError,
		Message:    err.Error(),
		Offline:    offline,
		Timestamp:  time.Now(),
	})
}

// succeeded records a successful cycle, emitting a recovery event when it
// ends a failure streak.
func (e *Engine) succeeded() {
	e.mu.Lock()
	wasFailing := e.failing
	e.failing = false
	e.offline = false
	e.everSynced = true
	e.mu.Unlock()

	if wasFailing {
		e.logger.Info("sync recovered")
		e.emit(Event{
			Collection: e.cfg.Collection,
			Type:       EventRecovered,
			Timestamp:  time.Now(),
		})
	}

	e.emit(Event{
		Collection: e.cfg.Collection,
		Type:       EventSynced,
		Timestamp:  time.Now(),
	})
}

// emit delivers an event without ever blocking the sync loop. The health
// fields above remain authoritative if the channel is saturated.
func (e *Engine) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
		e.logger.Debug("event channel full, dropping event", "type", ev.Type)
	}
}
