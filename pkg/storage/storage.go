// Package storage defines the key-value contract shared by the persistence backends.
package storage

import "errors"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("not found")

// KV is the contract for key-value persistence.
// Keys are opaque strings; values are raw bytes (JSON by convention).
// This allows swapping between file, SQLite, or in-memory backends.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close releases any resources held by the backend.
	Close() error
}
