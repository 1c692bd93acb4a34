package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dukapos/duka/internal/client/iocli"
	"github.com/dukapos/duka/internal/client/storage"
	"github.com/dukapos/duka/internal/client/storage/boltdb"
)

// RunStatus shows the session, the recorded startup error if any, and the
// per-collection unresolved sync errors.
func RunStatus(ctx context.Context, io iocli.IO, dataDir string) error {
	state, err := boltdb.OpenState(ctx, filepath.Join(dataDir, "state.db"))
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer state.Close()

	sess, err := state.GetSession(ctx)
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		io.Println("Session: none (run 'duka login')")
	case err != nil:
		return fmt.Errorf("failed to read session: %w", err)
	case sess.Expired():
		io.Printf("Session: %s (expired %s)\n", sess.Username, sess.ExpiresAt.Format(time.RFC3339))
	default:
		io.Printf("Session: %s (expires %s)\n", sess.Username, sess.ExpiresAt.Format(time.RFC3339))
	}

	if msg, err := state.InitError(ctx); err == nil && msg != "" {
		io.Printf("Startup: replication not running: %s\n", msg)
	}

	if at, done, err := state.InitialSyncComplete(ctx); err == nil {
		if done {
			io.Printf("Initial sync: complete (%s)\n", at.Format(time.RFC3339))
		} else {
			io.Println("Initial sync: pending")
		}
	}

	syncErrors, err := state.SyncErrors(ctx)
	if err != nil {
		return fmt.Errorf("failed to read sync errors: %w", err)
	}
	if len(syncErrors) == 0 {
		io.Println("Sync errors: none")
		return nil
	}

	io.Printf("Sync errors: %d\n", len(syncErrors))
	for collection, e := range syncErrors {
		io.Printf("  %-16s %s (%s)\n", collection, e.Message, e.Timestamp.Format(time.RFC3339))
	}

	return nil
}
