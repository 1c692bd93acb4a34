// Package cli implements the one-shot terminal commands. Each command
// opens what it needs, does its work and releases the storage lock on
// exit, so a following command (or the app runtime) can reopen the files.
package cli

import (
	"fmt"

	"github.com/dukapos/duka/internal/client/iocli"
)

// PrintUsage prints the command reference.
func PrintUsage() {
	fmt.Println(`Usage: duka [flags] <command> [arguments]

Commands:
  register                       Create an account on the sync server
  login                          Authenticate and store the session
  logout                         Drop the stored session
  status                         Show session and sync state
  sync                           Run a full sync cycle and wait for it
  list <collection>              List documents in a collection
  get <collection> <id>          Show one document
  add <collection> <json>        Insert a document (id generated if absent)
  patch <collection> <id> <json> Merge fields into a document
  delete <collection> <id>       Soft-delete a document
  watch <collection>             Stream collection changes until interrupted

Flags:
  -server   Sync server URL (default http://localhost:8080)
  -data     Data directory for local databases (default .)
  -version  Show version information`)
}

// confirmPassword prompts twice and checks both entries match.
func confirmPassword(io iocli.IO) (string, error) {
	password, err := io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := io.ReadPassword("Confirm password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}

	return password, nil
}
