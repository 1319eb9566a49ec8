package interfaces

import "context"

// IKeyValueStore abstracts the durable medium behind the configuration store.
//
// The configuration store only needs whole-document reads and writes:
//   - Get returns found=false when the key was never written
//   - Set overwrites unconditionally (last writer wins)
//
// Implementations: DynamoDB, MongoDB, SQLite, plain files and memory.

type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
