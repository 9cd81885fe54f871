package domain

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get for absent keys.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the persistence substrate: a string-keyed store of UTF-8
// JSON text. It is injected rather than imported so the workout store can be
// exercised against an in-memory implementation in tests.
//
// The store offers no transactions and no cross-key consistency; callers are
// expected not to issue overlapping writes to the same key, and aggregation
// reads may observe a concurrent write partially.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Keys returns every key matching the glob-style pattern (e.g. "workout:*").
	Keys(ctx context.Context, pattern string) ([]string, error)
}
