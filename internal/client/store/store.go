// Package store provides the client's persistent key/value cache, holding
// the (obfuscated) credential and the cached user identity between runs.
//
// Every operation is a full-value overwrite or delete; values are never
// partially updated. Callers that need read-then-write atomicity across
// multiple keys serialize access themselves.
package store

import "context"

// Store is the persistent key/value cache contract. Get returns nil (not an
// error) for a missing key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}
