// Package kv provides the flat key-value slots the document store persists
// into: one opaque serialized value per key, read and written whole.
package kv

import "errors"

var ErrKeyNotFound = errors.New("key not found")

// Store is a minimal synchronous key-value store.
type Store interface {
	// Get returns the raw value stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)
	// Set stores val under key, replacing any previous value.
	Set(key string, val []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
