package storage

import (
	"context"
	"encoding/json"
)

// Store is a durable key-value store. Each key holds one JSON document that
// is written whole on every save.
//
// Load reports absent keys as (nil, false, nil). Callers are expected to
// treat payloads that fail to unmarshal the same way they treat absent keys,
// so a corrupt record never prevents startup.
type Store interface {
	Load(ctx context.Context, key string) (json.RawMessage, bool, error)
	Save(ctx context.Context, key string, value any) error
}
