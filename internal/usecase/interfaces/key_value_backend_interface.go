package interfaces

import "context"

// IKeyValueBackend is the fallible storage beneath IPersistenceStore
// (memory, DynamoDB or Redis).
//
// Get returns (nil, nil) when the key does not exist.
type IKeyValueBackend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
