package cli

import (
	"context"
	"fmt"

	"github.com/dukapos/duka/internal/client/iocli"
	"github.com/dukapos/duka/internal/client/runtime"
)

// RunGet prints one document by id, soft-deleted included.
func RunGet(ctx context.Context, io iocli.IO, rt *runtime.Runtime, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: get <collection> <id>")
	}
	collection, id := args[0], args[1]

	handle, err := rt.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() { _ = rt.Teardown(context.Background()) }()

	doc, err := handle.Store().Get(ctx, collection, id)
	if err != nil {
		return fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}

	return printDocument(io, doc, true)
}
