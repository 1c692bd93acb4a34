package validation

import (
	"fmt"
	"regexp"
)

// CollectionPattern defines the accepted collection name format: lowercase
// letters, digits and underscores, 1-64 characters, starting with a letter.
var CollectionPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// MaxKeyLen is the maximum primary key length in bytes.
const MaxKeyLen = 128

// ValidateCollection checks that a collection name is usable as a bucket
// and table name.
func ValidateCollection(name string) error {
	if name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}

	if !CollectionPattern.MatchString(name) {
		return fmt.Errorf("collection name %q must match %s", name, CollectionPattern)
	}

	return nil
}

// UsernamePattern defines the accepted username format.
var UsernamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]{2,63}$`)

// ValidateUsername checks that a username is acceptable for registration:
// 3-64 characters, lowercase letters, digits, underscore or hyphen,
// starting with a letter.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username must be 3-64 lowercase letters, digits, '_' or '-', starting with a letter")
	}

	return nil
}

// ValidateKey checks that a document primary key is non-empty and bounded.
func ValidateKey(id string) error {
	if id == "" {
		return fmt.Errorf("document id cannot be empty")
	}

	if len(id) > MaxKeyLen {
		return fmt.Errorf("document id must not exceed %d bytes", MaxKeyLen)
	}

	return nil
}
