// Package state implements the durable key/value store the session layer
// persists into. It is the local stand-in for a browser's localStorage:
// independently keyed records, written fire-and-forget, surviving process
// restarts.
package state

import "context"

// Store is a keyed blob store. Get returns (nil, nil) for an absent key so
// callers can treat "missing" and "empty" uniformly. GetMany reads several
// keys as one consistent snapshot; absent keys are left out of the result.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetMany(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
