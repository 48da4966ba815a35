package storage

import "errors"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// KV is the durable key-value surface the client persists through. All
// calls are synchronous from the caller's point of view.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
