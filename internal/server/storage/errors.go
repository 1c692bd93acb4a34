package storage

import "errors"

// Common server storage errors
var (
	// ErrUserNotFound indicates the user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates the username is taken
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrDocumentNotFound indicates the document does not exist
	ErrDocumentNotFound = errors.New("document not found")
)
