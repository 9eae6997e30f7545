package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by [Store.Get] when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is the minimal key-value surface the engine needs. Implementations
// must treat Delete of an absent key as a no-op and must be safe for
// concurrent use.
//
// Any error other than [ErrNotFound] is interpreted by callers as the store
// being unavailable; the engine degrades to in-memory operation rather than
// failing the user-facing call.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
