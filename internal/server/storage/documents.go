package storage

import (
	"context"

	"github.com/dukapos/duka/internal/models"
)

// DocumentStorage defines the interface for the authoritative document
// store: per-user, per-collection rows merged with last-writer-wins.
type DocumentStorage interface {
	// Upsert merges one pushed document. When the stored copy is strictly
	// newer the stored copy is returned with saved == false; otherwise the
	// document is written with a server-assigned _modified and the stored
	// result is returned with saved == true.
	Upsert(ctx context.Context, userID, collection string, doc models.Document) (stored models.Document, saved bool, err error)

	// Since returns the user's documents in a collection, soft-deleted
	// included, strictly after the (since, sinceID) cursor, ordered by
	// (_modified, id) ascending, at most limit rows. Empty since means
	// from the beginning.
	Since(ctx context.Context, userID, collection, since, sinceID string, limit int) ([]models.Document, error)
}
