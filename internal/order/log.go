package order

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/example/shopvista/internal/storage"
)

// Log is the append-only order history, most recent first. Records are
// never mutated after they are appended; growth is unbounded.
type Log struct {
	mu     sync.RWMutex
	kv     storage.Store
	key    string
	orders []Order
}

// NewLog loads any previously persisted order history. An absent or
// malformed record starts the log empty.
func NewLog(ctx context.Context, kv storage.Store, key string) *Log {
	l := &Log{kv: kv, key: key}

	raw, ok, err := kv.Load(ctx, key)
	if err != nil {
		log.Printf("[Orders] Failed to load order log: %v", err)
		return l
	}
	if !ok {
		return l
	}
	if err := json.Unmarshal(raw, &l.orders); err != nil {
		log.Printf("[Orders] Discarding malformed order log: %v", err)
		l.orders = nil
	}
	return l
}

// Reload re-reads the persisted log, replacing the in-memory copy. A
// reader in another process uses this to see orders appended after it
// started.
func (l *Log) Reload(ctx context.Context) {
	raw, ok, err := l.kv.Load(ctx, l.key)
	if err != nil || !ok {
		return
	}

	var orders []Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		log.Printf("[Orders] Ignoring malformed order log on reload: %v", err)
		return
	}

	l.mu.Lock()
	l.orders = orders
	l.mu.Unlock()
}

// Append prepends the order and persists the whole log
func (l *Log) Append(ctx context.Context, o Order) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = append([]Order{o}, l.orders...)
	if err := l.kv.Save(ctx, l.key, l.orders); err != nil {
		log.Printf("[Orders] Failed to persist order log: %v", err)
	}
}

// All returns a copy of the log, most recent first
func (l *Log) All() []Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Get returns the order with the given id
func (l *Log) Get(id string) (Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, o := range l.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// Len returns the number of recorded orders
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}
