package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/shopvista/internal/catalog"
	"github.com/example/shopvista/internal/storage/mocks"
)

func newTestStore() (*Store, *mocks.MockStore) {
	kv := mocks.NewMockStore()
	return NewStore(context.Background(), kv, StorageKey), kv
}

func serum() catalog.Item {
	return catalog.Item{ID: "5", Name: "Natural Glow Serum", Price: 899}
}

func TestStore_ToggleAddsThenRemoves(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	s.Toggle(ctx, serum())
	assert.True(t, s.Contains("5"))
	assert.Equal(t, 1, s.Count())

	// Toggling again restores the original membership.
	s.Toggle(ctx, serum())
	assert.False(t, s.Contains("5"))
	assert.Zero(t, s.Count())
}

func TestStore_ToggleNeverDuplicates(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	s.Toggle(ctx, serum())
	s.Toggle(ctx, catalog.Item{ID: "8", Name: "Designer Handbag", Price: 3999})
	s.Toggle(ctx, serum())
	s.Toggle(ctx, serum())

	assert.Equal(t, 2, s.Count())
	assert.True(t, s.Contains("5"))
	assert.True(t, s.Contains("8"))
}

func TestStore_Contains_UnknownID(t *testing.T) {
	s, _ := newTestStore()

	assert.False(t, s.Contains("missing"))
}

func TestStore_Clear(t *testing.T) {
	s, kv := newTestStore()
	ctx := context.Background()

	s.Toggle(ctx, serum())
	s.Clear(ctx)

	assert.Zero(t, s.Count())
	assert.Empty(t, s.Items())
	// Clear persisted the empty list.
	assert.Len(t, kv.SaveCalls, 2)
}

func TestStore_RoundTrip(t *testing.T) {
	kv := mocks.NewMockStore()
	ctx := context.Background()

	s := NewStore(ctx, kv, StorageKey)
	s.Toggle(ctx, serum())
	s.Toggle(ctx, catalog.Item{ID: "8", Name: "Designer Handbag", Price: 3999})

	reloaded := NewStore(ctx, kv, StorageKey)
	assert.Equal(t, s.Items(), reloaded.Items())
	assert.True(t, reloaded.Contains("5"))
}

func TestStore_MalformedPayloadStartsEmpty(t *testing.T) {
	kv := mocks.NewMockStore()
	kv.SetRaw(StorageKey, []byte("{{{{"))

	s := NewStore(context.Background(), kv, StorageKey)

	assert.Zero(t, s.Count())
}

func TestStore_LoadUniquesByID(t *testing.T) {
	kv := mocks.NewMockStore()
	kv.SetRaw(StorageKey, []byte(`[
		{"id":"5","name":"Natural Glow Serum","price":899},
		{"id":"5","name":"Natural Glow Serum","price":899},
		{"id":"","name":"bad"}
	]`))

	s := NewStore(context.Background(), kv, StorageKey)

	require.Equal(t, 1, s.Count())
	assert.True(t, s.Contains("5"))
}

func TestStore_EveryMutationPersists(t *testing.T) {
	s, kv := newTestStore()
	ctx := context.Background()

	s.Toggle(ctx, serum())
	s.Toggle(ctx, serum())
	s.Clear(ctx)

	assert.Len(t, kv.SaveCalls, 3)
}
