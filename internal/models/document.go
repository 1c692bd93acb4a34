package models

import (
	"time"

	"github.com/dukapos/duka/pkg/api"
)

// Replication metadata fields carried by every document in addition to its
// domain fields.
const (
	// FieldID is the primary key, unique within a collection and immutable.
	FieldID = "id"
	// FieldModified is the RFC 3339 timestamp of the last mutation. It is
	// the last-writer-wins tiebreaker and the pull/push cursor.
	FieldModified = "_modified"
	// FieldDeleted is the soft-delete marker. Deleted documents stay in
	// storage and keep replicating; domain reads filter them out.
	FieldDeleted = "_deleted"
)

// Document is one JSON record in a collection. The shape is schema-less
// beyond what the collection's schema pins down, so the representation is a
// plain map over decoded JSON values.
type Document map[string]any

// ID returns the primary key, or "" if absent.
func (d Document) ID() string {
	id, _ := d[FieldID].(string)
	return id
}

// Deleted reports whether the document carries the soft-delete marker.
func (d Document) Deleted() bool {
	del, _ := d[FieldDeleted].(bool)
	return del
}

// Modified returns the parsed _modified timestamp. ok is false when the
// field is absent or not a parseable timestamp.
func (d Document) Modified() (t time.Time, ok bool) {
	s, sok := d[FieldModified].(string)
	if !sok {
		return time.Time{}, false
	}
	t, err := ParseTime(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SetModified stamps the _modified field.
func (d Document) SetModified(t time.Time) {
	d[FieldModified] = FormatTime(t)
}

// NewerThan reports whether d was modified strictly after other. A document
// without a parseable _modified is never newer, so an incoming copy that
// carries a timestamp always wins against it.
func (d Document) NewerThan(other Document) bool {
	dt, dok := d.Modified()
	if !dok {
		return false
	}
	ot, ook := other.Modified()
	if !ook {
		return true
	}
	return dt.After(ot)
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return cloneValue(map[string]any(d)).(map[string]any)
}

// CloneValue deep-copies a decoded JSON value.
func CloneValue(v any) any {
	return cloneValue(v)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = cloneValue(val)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = cloneValue(val)
		}
		return s
	default:
		return v
	}
}

// FromRemote normalizes a raw remote document into the local
// representation. The remote serialization cannot distinguish SQL NULL from
// "field never set", and the local schema treats null as a type violation
// for typed fields, so null-valued top-level fields are stripped.
func FromRemote(raw api.RawDocument) Document {
	doc := make(Document, len(raw))
	for k, v := range raw {
		if v == nil {
			continue
		}
		doc[k] = cloneValue(v)
	}
	return doc
}

// ToRemote converts a local document into wire form.
func (d Document) ToRemote() api.RawDocument {
	return api.RawDocument(d.Clone())
}

// FormatTime renders a timestamp in the canonical _modified encoding:
// RFC 3339 UTC with nanosecond precision.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTime parses a _modified value. Accepts any RFC 3339 precision so
// server-assigned and locally assigned stamps compare correctly.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
