package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dukapos/duka/internal/client/iocli"
	"github.com/dukapos/duka/internal/client/storage"
	"github.com/dukapos/duka/internal/client/storage/boltdb"
)

// RunLogout drops the stored session. Local data stays on disk.
func RunLogout(ctx context.Context, io iocli.IO, dataDir string) error {
	state, err := boltdb.OpenState(ctx, filepath.Join(dataDir, "state.db"))
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer state.Close()

	if err := state.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			io.Println("No active session.")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	io.Println("Logged out. Local data is kept on disk.")
	return nil
}
