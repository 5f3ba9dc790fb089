package mocks

import (
	"context"
	"encoding/json"
	"sync"
)

// MockStore is a mock implementation of storage.Store for testing
type MockStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage

	// For tracking calls in tests
	SaveCalls []SaveCall
	LoadCalls []string
	SaveErr   error
	LoadErr   error
}

// SaveCall records parameters passed to Save
type SaveCall struct {
	Key   string
	Value any
}

// NewMockStore creates a new MockStore
func NewMockStore() *MockStore {
	return &MockStore{
		data:      make(map[string]json.RawMessage),
		SaveCalls: make([]SaveCall, 0),
	}
}

// Load returns the stored document, recording the call
func (m *MockStore) Load(ctx context.Context, key string) (json.RawMessage, bool, error) {
	m.mu.Lock()
	m.LoadCalls = append(m.LoadCalls, key)
	m.mu.Unlock()

	if m.LoadErr != nil {
		return nil, false, m.LoadErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

// Save serializes and stores the value, recording the call
func (m *MockStore) Save(ctx context.Context, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveCalls = append(m.SaveCalls, SaveCall{Key: key, Value: value})

	if m.SaveErr != nil {
		return m.SaveErr
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

// SetRaw stores an arbitrary payload under key without marshaling
func (m *MockStore) SetRaw(key string, raw []byte) {
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
}

// Stored returns the current raw payload for key
func (m *MockStore) Stored(key string) (json.RawMessage, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[key]
	return raw, ok
}
