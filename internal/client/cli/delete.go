package cli

import (
	"context"
	"fmt"

	"github.com/dukapos/duka/internal/client/iocli"
	"github.com/dukapos/duka/internal/client/runtime"
)

// RunDelete soft-deletes a document: it disappears from queries and the
// deletion replicates like any other write.
func RunDelete(ctx context.Context, io iocli.IO, rt *runtime.Runtime, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: delete <collection> <id>")
	}
	collection, id := args[0], args[1]

	handle, err := rt.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() { _ = rt.Teardown(context.Background()) }()

	if err := handle.Store().SoftDelete(ctx, collection, id); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}

	io.Printf("Deleted %s/%s\n", collection, id)
	return nil
}
