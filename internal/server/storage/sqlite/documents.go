package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dukapos/duka/internal/models"
)

// Upsert merges one pushed document with last-writer-wins semantics.
// The winner gets a server-assigned _modified stamp, kept strictly above
// the stored row's stamp so the pull cursor never skips it.
func (s *Storage) Upsert(
	ctx context.Context, userID, collection string, doc models.Document,
) (models.Document, bool, error) {
	stored, storedModified, err := s.getDocument(ctx, userID, collection, doc.ID())
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to check existing document: %w", err)
	}

	if stored != nil {
		if incoming, ok := doc.Modified(); !ok || !incoming.After(storedModified) {
			return stored, false, nil
		}
	}

	now := time.Now().UTC()
	if stored != nil && !now.After(storedModified) {
		now = storedModified.Add(time.Nanosecond)
	}

	doc = doc.Clone()
	doc.SetModified(now)

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode document: %w", err)
	}

	query := `
		INSERT INTO documents (user_id, collection, id, body, modified, deleted)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, collection, id)
		DO UPDATE SET body = excluded.body, modified = excluded.modified, deleted = excluded.deleted
	`

	_, err = s.db.ExecContext(ctx, query,
		userID,
		collection,
		doc.ID(),
		string(body),
		models.FormatTime(now),
		boolToInt(doc.Deleted()),
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to save document: %w", err)
	}

	return doc, true, nil
}

// Since returns documents strictly after the (since, sinceID) cursor,
// soft-deleted rows included, ordered by (modified, id) ascending.
func (s *Storage) Since(
	ctx context.Context, userID, collection, since, sinceID string, limit int,
) ([]models.Document, error) {
	query := `
		SELECT body
		FROM documents
		WHERE user_id = ? AND collection = ?
		  AND (modified > ? OR (modified = ? AND id > ?))
		ORDER BY modified, id
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, userID, collection, since, since, sinceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}

		var doc models.Document
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return docs, nil
}

func (s *Storage) getDocument(
	ctx context.Context, userID, collection, id string,
) (models.Document, time.Time, error) {
	query := `
		SELECT body, modified
		FROM documents
		WHERE user_id = ? AND collection = ? AND id = ?
	`

	var body, modified string
	err := s.db.QueryRowContext(ctx, query, userID, collection, id).Scan(&body, &modified)
	if err != nil {
		return nil, time.Time{}, err
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to decode document: %w", err)
	}

	ts, err := models.ParseTime(modified)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to parse stored timestamp: %w", err)
	}

	return doc, ts, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
