package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dukapos/duka/internal/client/iocli"
	"github.com/dukapos/duka/internal/client/runtime"
	"github.com/dukapos/duka/internal/models"
	"github.com/dukapos/duka/internal/query"
)

// RunList prints every live document in a collection, one JSON object per
// line, ordered by id.
func RunList(ctx context.Context, io iocli.IO, rt *runtime.Runtime, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: list <collection>")
	}
	collection := args[0]

	handle, err := rt.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() { _ = rt.Teardown(context.Background()) }()

	docs, err := handle.Store().Find(ctx, collection, query.All())
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", collection, err)
	}

	if len(docs) == 0 {
		io.Printf("No documents in %s\n", collection)
		return nil
	}

	for _, doc := range docs {
		if err := printDocument(io, doc, false); err != nil {
			return err
		}
	}
	io.Printf("%d document(s)\n", len(docs))

	return nil
}

// printDocument renders one document as JSON, indented when pretty is set.
func printDocument(io iocli.IO, doc models.Document, pretty bool) error {
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(doc, "", "  ")
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	io.Println(string(out))
	return nil
}
