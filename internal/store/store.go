// Package store is the record store underneath the ledger: a flat key to
// serialized-value map with no multi-key transactions. Every logical ledger
// operation is several independent round trips against it.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written or was deleted.
var ErrNotFound = errors.New("record not found")

// Store is the read/write contract the ledger relies on.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
