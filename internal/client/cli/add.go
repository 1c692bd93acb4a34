package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dukapos/duka/internal/client/iocli"
	"github.com/dukapos/duka/internal/client/runtime"
	"github.com/dukapos/duka/internal/models"
)

// RunAdd inserts a document given as a JSON object. A missing id is
// generated.
func RunAdd(ctx context.Context, io iocli.IO, rt *runtime.Runtime, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: add <collection> <json>")
	}
	collection := args[0]

	var doc models.Document
	if err := json.Unmarshal([]byte(args[1]), &doc); err != nil {
		return fmt.Errorf("invalid document JSON: %w", err)
	}
	if doc.ID() == "" {
		doc[models.FieldID] = uuid.New().String()
	}

	handle, err := rt.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() { _ = rt.Teardown(context.Background()) }()

	if err := handle.Store().Insert(ctx, collection, doc); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	io.Printf("Added %s/%s\n", collection, doc.ID())
	return nil
}

// RunPatch merges the given JSON fields into an existing document.
func RunPatch(ctx context.Context, io iocli.IO, rt *runtime.Runtime, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: patch <collection> <id> <json>")
	}
	collection, id := args[0], args[1]

	var fields map[string]any
	if err := json.Unmarshal([]byte(args[2]), &fields); err != nil {
		return fmt.Errorf("invalid patch JSON: %w", err)
	}

	handle, err := rt.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() { _ = rt.Teardown(context.Background()) }()

	updated, err := handle.Store().Patch(ctx, collection, id, fields)
	if err != nil {
		return fmt.Errorf("failed to patch %s/%s: %w", collection, id, err)
	}

	io.Printf("Patched %s/%s\n", collection, updated.ID())
	return nil
}
