// Package storage provides the key-value persistence contract used by the
// collection stores. Each entity collection is persisted as one JSON document
// under a versioned key; renaming a key abandons the old data instead of
// migrating it.
package storage

import "context"

// Store is the key-value persistence contract.
// Get must not fail on a missing key; it reports absence through ok.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
