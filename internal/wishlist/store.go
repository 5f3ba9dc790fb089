package wishlist

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/example/shopvista/internal/catalog"
	"github.com/example/shopvista/internal/storage"
)

// StorageKey is the default key the wishlist persists under. It is
// distinct from the cart key so the two records never collide.
const StorageKey = "wishlist"

// Store holds the saved-items set, uniqued by catalog item ID. A product
// is either saved or not; there is no quantity and no variant selection.
// Same load/persist discipline as the cart: the whole list is rewritten
// on every mutation, and a bad saved record resets to empty.
type Store struct {
	mu    sync.RWMutex
	kv    storage.Store
	key   string
	items []catalog.Item
}

// NewStore loads any previously persisted wishlist
func NewStore(ctx context.Context, kv storage.Store, key string) *Store {
	s := &Store{kv: kv, key: key}
	s.items = loadItems(ctx, kv, key)
	return s
}

func loadItems(ctx context.Context, kv storage.Store, key string) []catalog.Item {
	raw, ok, err := kv.Load(ctx, key)
	if err != nil {
		log.Printf("[Wishlist] Failed to load saved wishlist: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var items []catalog.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("[Wishlist] Discarding malformed saved wishlist: %v", err)
		return nil
	}

	// Re-unique by ID in case the saved record was tampered with.
	seen := make(map[string]bool, len(items))
	unique := items[:0]
	for _, item := range items {
		if item.ID == "" || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		unique = append(unique, item)
	}
	return unique
}

func (s *Store) persist(ctx context.Context) {
	if err := s.kv.Save(ctx, s.key, s.items); err != nil {
		log.Printf("[Wishlist] Failed to persist wishlist: %v", err)
	}
}

// Toggle removes the item when it is already saved, otherwise appends it.
// It is the only mutation entry point besides Clear; callers wanting an
// idempotent add or remove check Contains first.
func (s *Store) Toggle(ctx context.Context, item catalog.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
	s.items = append(s.items, item)
	s.persist(ctx)
}

// Contains reports whether the item with the given id is saved
func (s *Store) Contains(itemID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

// Clear empties the wishlist
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Items returns a copy of the saved items in insertion order
func (s *Store) Items() []catalog.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of saved items
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
