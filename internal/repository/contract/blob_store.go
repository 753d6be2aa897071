package contract

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("blob store: key not found")

// BlobStore is the persistence contract: a key-value store holding the
// full serialized post collection under a single fixed key. Every write
// is a full overwrite.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}
