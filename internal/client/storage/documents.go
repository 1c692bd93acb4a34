package storage

import (
	"context"
	"time"

	"github.com/dukapos/duka/internal/models"
	"github.com/dukapos/duka/internal/query"
	"github.com/dukapos/duka/internal/schema"
)

// Notifier receives a notification after every committed mutation of a
// collection. The change feed implements it.
type Notifier interface {
	Publish(collection string)
}

// DocumentStore defines the interface for the local document store: the
// only component domain code reads and writes directly.
type DocumentStore interface {
	// DefineCollection registers a collection and its schema. Idempotent
	// for an identical redefinition.
	DefineCollection(ctx context.Context, name string, sch schema.Schema) error

	// Collections returns the defined collection names.
	Collections() []string

	// Insert stores a new document and stamps _modified.
	// Returns ErrDuplicateKey if the primary key already exists, including
	// soft-deleted documents.
	Insert(ctx context.Context, collection string, doc models.Document) error

	// Patch merges fields into an existing document and stamps _modified.
	// Returns ErrNotFound if the id is absent.
	Patch(ctx context.Context, collection, id string, fields models.Document) (models.Document, error)

	// SoftDelete marks a document deleted. The document stays in storage
	// and keeps replicating.
	SoftDelete(ctx context.Context, collection, id string) error

	// Get returns a document by id, including soft-deleted ones.
	Get(ctx context.Context, collection, id string) (models.Document, error)

	// Find returns the documents matching the selector, excluding
	// soft-deleted ones.
	Find(ctx context.Context, collection string, sel query.Selector) ([]models.Document, error)

	// ApplyRemote merges a batch of already-normalized remote documents
	// using last-writer-wins: an incoming document is applied unless the
	// local copy is strictly newer. The batch commits atomically; applied
	// is the number of documents that replaced or created a local copy.
	ApplyRemote(ctx context.Context, collection string, docs []models.Document) (applied int, err error)

	// ModifiedAfter returns the documents (including soft-deleted ones)
	// whose _modified is strictly after the watermark, ordered by
	// _modified ascending. Used by the push side.
	ModifiedAfter(ctx context.Context, collection string, after time.Time) ([]models.Document, error)

	// Close releases the underlying storage handle. Safe to call twice.
	Close() error
}
