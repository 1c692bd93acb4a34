package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	clientapi "github.com/dukapos/duka/internal/client/api"
	"github.com/dukapos/duka/internal/client/iocli"
	"github.com/dukapos/duka/internal/client/storage"
	"github.com/dukapos/duka/internal/client/storage/boltdb"
	"github.com/dukapos/duka/pkg/api"
)

// RunLogin authenticates against the sync server and stores the session
// so replication can pick it up on the next start.
func RunLogin(ctx context.Context, io iocli.IO, client *clientapi.Client, dataDir string) error {
	io.Println("=== Login ===")

	username, err := io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	resp, err := client.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	state, err := boltdb.OpenState(ctx, filepath.Join(dataDir, "state.db"))
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer state.Close()

	sess := &storage.Session{
		UserID:      resp.UserID,
		Username:    username,
		AccessToken: resp.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
	if err := state.SaveSession(ctx, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	io.Println()
	io.Printf("Logged in as %s\n", username)
	io.Printf("Session expires at %s\n", sess.ExpiresAt.Format(time.RFC3339))

	return nil
}
