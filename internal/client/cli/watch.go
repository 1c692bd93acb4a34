package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dukapos/duka/internal/client/iocli"
	"github.com/dukapos/duka/internal/client/runtime"
	"github.com/dukapos/duka/internal/models"
	"github.com/dukapos/duka/internal/query"
)

// RunWatch subscribes to a collection and prints the result set on every
// change until the context is cancelled.
func RunWatch(ctx context.Context, io iocli.IO, rt *runtime.Runtime, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: watch <collection>")
	}
	collection := args[0]

	handle, err := rt.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() { _ = rt.Teardown(context.Background()) }()

	sub, err := handle.Subscribe(ctx, collection, query.All(), func(docs []models.Document) {
		io.Printf("[%s] %s: %d document(s)\n",
			time.Now().Format("15:04:05"), collection, len(docs))
		for _, doc := range docs {
			_ = printDocument(io, doc, false)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", collection, err)
	}
	defer sub.Cancel()

	io.Printf("Watching %s, Ctrl-C to stop.\n", collection)
	<-ctx.Done()

	return nil
}
