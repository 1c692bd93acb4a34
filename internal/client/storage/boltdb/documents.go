package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/dukapos/duka/internal/client/storage"
	"github.com/dukapos/duka/internal/models"
	"github.com/dukapos/duka/internal/query"
	"github.com/dukapos/duka/internal/validation"
)

// Insert stores a new document. The primary key must not exist yet;
// soft-deleted documents still occupy their key, callers patch those
// instead.
func (s *Storage) Insert(ctx context.Context, collection string, doc models.Document) error {
	sch, err := s.schemaFor(collection)
	if err != nil {
		return err
	}

	id := doc.ID()
	if err := validation.ValidateKey(id); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrSchema, err)
	}

	d := doc.Clone()

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return fmt.Errorf("%w: %q", storage.ErrUnknownCollection, collection)
		}

		if bucket.Get([]byte(id)) != nil {
			return fmt.Errorf("%w: %s/%s", storage.ErrDuplicateKey, collection, id)
		}

		stampModified(d, time.Time{})

		if err := sch.Validate(d); err != nil {
			return fmt.Errorf("%w: %v", storage.ErrSchema, err)
		}

		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		return bucket.Put([]byte(id), data)
	})
	if err != nil {
		return err
	}

	s.notify(collection)
	return nil
}

// Patch merges fields into an existing document and re-stamps _modified.
func (s *Storage) Patch(ctx context.Context, collection, id string, fields models.Document) (models.Document, error) {
	sch, err := s.schemaFor(collection)
	if err != nil {
		return nil, err
	}

	var merged models.Document

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return fmt.Errorf("%w: %q", storage.ErrUnknownCollection, collection)
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s/%s", storage.ErrNotFound, collection, id)
		}

		var existing models.Document
		if err := json.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("failed to unmarshal document: %w", err)
		}

		for k, v := range fields {
			if k == models.FieldID {
				if vs, ok := v.(string); !ok || vs != id {
					return fmt.Errorf("%w: primary key is immutable", storage.ErrSchema)
				}
				continue
			}
			existing[k] = models.CloneValue(v)
		}

		prev, _ := existing.Modified()
		stampModified(existing, prev)

		if err := sch.Validate(existing); err != nil {
			return fmt.Errorf("%w: %v", storage.ErrSchema, err)
		}

		updated, err := json.Marshal(existing)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		if err := bucket.Put([]byte(id), updated); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}

		merged = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(collection)
	return merged, nil
}

// SoftDelete marks a document deleted and re-stamps _modified so the
// deletion replicates.
func (s *Storage) SoftDelete(ctx context.Context, collection, id string) error {
	if _, err := s.schemaFor(collection); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return fmt.Errorf("%w: %q", storage.ErrUnknownCollection, collection)
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s/%s", storage.ErrNotFound, collection, id)
		}

		var doc models.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to unmarshal document: %w", err)
		}

		doc[models.FieldDeleted] = true
		prev, _ := doc.Modified()
		stampModified(doc, prev)

		updated, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		return bucket.Put([]byte(id), updated)
	})
	if err != nil {
		return err
	}

	s.notify(collection)
	return nil
}

// Get returns a document by id. Soft-deleted documents are returned too;
// domain reads go through Find.
func (s *Storage) Get(ctx context.Context, collection, id string) (models.Document, error) {
	if _, err := s.schemaFor(collection); err != nil {
		return nil, err
	}

	var doc models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return fmt.Errorf("%w: %q", storage.ErrUnknownCollection, collection)
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s/%s", storage.ErrNotFound, collection, id)
		}
		return json.Unmarshal(data, &doc)
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// Find returns the non-deleted documents matching the selector, ordered by
// primary key.
func (s *Storage) Find(ctx context.Context, collection string, sel query.Selector) ([]models.Document, error) {
	if _, err := s.schemaFor(collection); err != nil {
		return nil, err
	}

	var docs []models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return fmt.Errorf("%w: %q", storage.ErrUnknownCollection, collection)
		}

		return bucket.ForEach(func(k, v []byte) error {
			var doc models.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("failed to unmarshal document: %w", err)
			}

			if doc.Deleted() {
				return nil
			}
			if sel.Matches(doc) {
				docs = append(docs, doc)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	// Bucket iteration is already key-ordered, kept explicit for clarity.
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID() < docs[j].ID() })
	return docs, nil
}

// ApplyRemote merges a pulled or push-confirmed batch with last-writer-wins
// semantics. The whole batch commits in one transaction; a validation
// failure discards the batch so a retry sees no partial state.
func (s *Storage) ApplyRemote(ctx context.Context, collection string, docs []models.Document) (int, error) {
	sch, err := s.schemaFor(collection)
	if err != nil {
		return 0, err
	}

	applied := 0

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return fmt.Errorf("%w: %q", storage.ErrUnknownCollection, collection)
		}

		for _, doc := range docs {
			id := doc.ID()
			if err := validation.ValidateKey(id); err != nil {
				return fmt.Errorf("%w: %v", storage.ErrSchema, err)
			}

			if data := bucket.Get([]byte(id)); data != nil {
				var local models.Document
				if err := json.Unmarshal(data, &local); err != nil {
					return fmt.Errorf("failed to unmarshal document: %w", err)
				}

				// The incoming copy wins unless the local one is strictly
				// newer: equal timestamps defer to the remote.
				if local.NewerThan(doc) {
					continue
				}
			}

			if err := sch.Validate(doc); err != nil {
				return fmt.Errorf("%w: %v", storage.ErrSchema, err)
			}

			data, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("failed to marshal document: %w", err)
			}
			if err := bucket.Put([]byte(id), data); err != nil {
				return fmt.Errorf("failed to save document: %w", err)
			}
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if applied > 0 {
		s.notify(collection)
	}
	return applied, nil
}

// ModifiedAfter returns all documents, soft-deleted included, modified
// strictly after the watermark, ordered by _modified ascending.
func (s *Storage) ModifiedAfter(ctx context.Context, collection string, after time.Time) ([]models.Document, error) {
	if _, err := s.schemaFor(collection); err != nil {
		return nil, err
	}

	type stamped struct {
		doc models.Document
		at  time.Time
	}
	var found []stamped

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return fmt.Errorf("%w: %q", storage.ErrUnknownCollection, collection)
		}

		return bucket.ForEach(func(k, v []byte) error {
			var doc models.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("failed to unmarshal document: %w", err)
			}

			at, ok := doc.Modified()
			if !ok || !at.After(after) {
				return nil
			}
			found = append(found, stamped{doc: doc, at: at})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].at.Equal(found[j].at) {
			return found[i].doc.ID() < found[j].doc.ID()
		}
		return found[i].at.Before(found[j].at)
	})

	docs := make([]models.Document, 0, len(found))
	for _, f := range found {
		docs = append(docs, f.doc)
	}
	return docs, nil
}

// stampModified sets _modified to now, bumping past the previous stamp if
// the wall clock has not advanced, so local mutation order is preserved.
func stampModified(doc models.Document, prev time.Time) {
	now := time.Now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	doc.SetModified(now)
}
