package interfaces

import (
	"context"
	"encoding/json"
)

// IPersistenceStore is the key/value storage a quote session keeps its form and
// overrides in.
//
// It is total: implementations never surface a failure to the caller. An absent
// or unreadable value reads as (nil, false) and a failed write is dropped.
type IPersistenceStore interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool)
	Set(ctx context.Context, key string, value json.RawMessage)
	Clear(ctx context.Context, key string)
}

// ISessionStoreFactory hands out a store scoped to one session id.
type ISessionStoreFactory interface {
	ForSession(sessionID string) IPersistenceStore
}
