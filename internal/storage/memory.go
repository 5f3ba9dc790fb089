package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is an in-memory Store. State is lost on process exit; it is
// used by tests and as the fallback backend.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]json.RawMessage),
	}
}

// Load returns the stored document for key
func (ms *MemoryStore) Load(ctx context.Context, key string) (json.RawMessage, bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	raw, ok := ms.data[key]
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

// Save serializes value and stores it under key
func (ms *MemoryStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ms.mu.Lock()
	ms.data[key] = raw
	ms.mu.Unlock()
	return nil
}

// SetRaw stores an arbitrary payload under key without marshaling.
// Tests use it to simulate corrupt persisted data.
func (ms *MemoryStore) SetRaw(key string, raw []byte) {
	ms.mu.Lock()
	ms.data[key] = raw
	ms.mu.Unlock()
}
