package storage

import "errors"

// Common client storage errors
var (
	// ErrStorageUnavailable indicates the local persistence layer could not
	// be opened (locked file, bad permissions, full disk). Fatal to the
	// session; recovery needs user action.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrStorageClosed indicates the store was already closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrUnknownCollection indicates an operation on a collection that was
	// never defined
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrSchema indicates a document violates its collection schema
	ErrSchema = errors.New("schema violation")

	// ErrDuplicateKey indicates an insert with a primary key that already
	// exists (soft-deleted documents count; patch instead)
	ErrDuplicateKey = errors.New("duplicate primary key")

	// ErrNotFound indicates the document does not exist
	ErrNotFound = errors.New("document not found")

	// ErrSessionNotFound indicates no cached session exists
	ErrSessionNotFound = errors.New("session not found")
)
