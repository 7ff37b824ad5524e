// Package metadata stores small key/value records that must survive a
// client restart, such as the logged-in user id.
//
// Three backends are provided: SQLite (default), diskv (one file per key)
// and an in-memory map for tests and throwaway sessions.
package metadata

import (
	"context"
)

// Repository is a durable key/value store.
//
// Get returns (nil, nil) for an absent key. Delete of an absent key is not
// an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
