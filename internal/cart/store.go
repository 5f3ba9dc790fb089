package cart

import (
	"context"
	"encoding/json"
	"log"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/example/shopvista/internal/catalog"
	"github.com/example/shopvista/internal/storage"
)

// StorageKey is the default key the cart persists under
const StorageKey = "cart"

// Line is one row in the cart. LineID is generated once when the line is
// created and never reused. Item is a value snapshot of the catalog record
// so the cart can render without a catalog lookup. Variants maps a variant
// axis (e.g. "Size") to the chosen option; nil means no selection.
type Line struct {
	LineID   string            `json:"line_id"`
	Item     catalog.Item      `json:"item"`
	Quantity int               `json:"quantity"`
	Variants map[string]string `json:"variants,omitempty"`
}

// Store holds the cart lines and the open/closed panel flag. Every line
// mutation rewrites the whole line list to durable storage, so persisted
// state always matches in-memory state once the call returns. The open
// flag is transient UI state and is never persisted.
type Store struct {
	mu    sync.RWMutex
	kv    storage.Store
	key   string
	lines []Line
	open  bool
}

// NewStore loads any previously persisted cart. An absent or malformed
// record starts the cart empty; loading never fails.
func NewStore(ctx context.Context, kv storage.Store, key string) *Store {
	s := &Store{kv: kv, key: key}
	s.lines = loadLines(ctx, kv, key)
	return s
}

func loadLines(ctx context.Context, kv storage.Store, key string) []Line {
	raw, ok, err := kv.Load(ctx, key)
	if err != nil {
		log.Printf("[Cart] Failed to load saved cart: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		log.Printf("[Cart] Discarding malformed saved cart: %v", err)
		return nil
	}

	// Drop rows that violate the line invariants rather than carrying
	// them into live state.
	valid := lines[:0]
	for _, l := range lines {
		if l.LineID == "" || l.Quantity < 1 {
			continue
		}
		valid = append(valid, l)
	}
	return valid
}

// persist writes the full line list. Durability is best-effort: a failed
// save is logged and the in-memory state stands.
func (s *Store) persist(ctx context.Context) {
	if err := s.kv.Save(ctx, s.key, s.lines); err != nil {
		log.Printf("[Cart] Failed to persist cart: %v", err)
	}
}

// sameSelection compares two variant selections structurally. Order is
// irrelevant and a nil map equals an empty one.
func sameSelection(a, b map[string]string) bool {
	return maps.Equal(a, b)
}

// AddItem merges into an existing line when the catalog item and variant
// selection both match, otherwise appends a new line with quantity 1.
// Stock is not checked here; refusing out-of-stock adds is the caller's
// policy.
func (s *Store) AddItem(ctx context.Context, item catalog.Item, variants map[string]string) Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Item.ID == item.ID && sameSelection(s.lines[i].Variants, variants) {
			s.lines[i].Quantity++
			s.persist(ctx)
			return s.lines[i]
		}
	}

	line := Line{
		LineID:   uuid.New().String(),
		Item:     item,
		Quantity: 1,
		Variants: maps.Clone(variants),
	}
	s.lines = append(s.lines, line)
	s.persist(ctx)
	return line
}

// RemoveItem deletes the line with the given id. Unknown ids are a no-op.
func (s *Store) RemoveItem(ctx context.Context, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].LineID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	s.persist(ctx)
}

// SetQuantity replaces a line's quantity, clamping at zero. A clamped
// value of zero removes the line. Unknown ids are a no-op.
func (s *Store) SetQuantity(ctx context.Context, lineID string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].LineID != lineID {
			continue
		}
		if quantity == 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		break
	}
	s.persist(ctx)
}

// Clear empties the cart
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist(ctx)
}

// ToggleOpen flips the cart panel flag without touching storage
func (s *Store) ToggleOpen() {
	s.mu.Lock()
	s.open = !s.open
	s.mu.Unlock()
}

// IsOpen reports the cart panel flag
func (s *Store) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

// Lines returns a copy of the cart lines in insertion order
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	for i := range out {
		out[i].Variants = maps.Clone(out[i].Variants)
	}
	return out
}

// Len returns the number of lines (not the total quantity)
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// TotalItems is the sum of line quantities
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal is the sum of unit price times quantity over all lines
func (s *Store) Subtotal() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, l := range s.lines {
		total += l.Item.Price * l.Quantity
	}
	return total
}

// TotalSavings is the discount earned against original prices. Lines
// without an original price contribute nothing.
func (s *Store) TotalSavings() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, l := range s.lines {
		original := l.Item.OriginalPrice
		if original == 0 {
			original = l.Item.Price
		}
		total += (original - l.Item.Price) * l.Quantity
	}
	return total
}
