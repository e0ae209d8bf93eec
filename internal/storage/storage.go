// Package storage provides the key-value persistence layer for postboard.
package storage

import "errors"

// Fixed keys used by the board and theme stores.
const (
	ThemeKey = "theme-preference"
	PostsKey = "posts-data"
)

// ErrStoreClosed is returned when operations are attempted on a closed store.
var ErrStoreClosed = errors.New("storage is closed")

// Store is a string key-value store. Values survive process restarts.
type Store interface {
	// Get returns the value for key. The second return is false when
	// the key has never been set.
	Get(key string) (string, bool, error)

	// Set writes the value for key, overwriting any prior value.
	Set(key, value string) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases file handles and resources.
	Close() error
}
