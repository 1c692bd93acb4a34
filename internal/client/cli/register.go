package cli

import (
	"context"
	"fmt"

	clientapi "github.com/dukapos/duka/internal/client/api"
	"github.com/dukapos/duka/internal/client/iocli"
	"github.com/dukapos/duka/internal/validation"
	"github.com/dukapos/duka/pkg/api"
)

// RunRegister creates an account on the sync server.
func RunRegister(ctx context.Context, io iocli.IO, client *clientapi.Client) error {
	io.Println("=== Register ===")

	username, err := io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if err := validation.ValidateUsername(username); err != nil {
		return err
	}

	password, err := confirmPassword(io)
	if err != nil {
		return err
	}

	resp, err := client.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	io.Println()
	io.Printf("Account created: %s (%s)\n", resp.Username, resp.UserID)
	io.Println("Run 'duka login' to start a session.")

	return nil
}
