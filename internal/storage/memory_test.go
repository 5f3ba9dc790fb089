package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_LoadAbsent(t *testing.T) {
	ms := NewMemoryStore()

	raw, ok, err := ms.Load(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, raw)
}

func TestMemoryStore_SaveLoad(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	err := ms.Save(ctx, "cart", payload{Name: "test", Count: 3})
	require.NoError(t, err)

	raw, ok, err := ms.Load(ctx, "cart")
	require.NoError(t, err)
	require.True(t, ok)

	var got payload
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, payload{Name: "test", Count: 3}, got)
}

func TestMemoryStore_SaveOverwrites(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, ms.Save(ctx, "k", []int{1, 2}))
	require.NoError(t, ms.Save(ctx, "k", []int{3}))

	raw, ok, err := ms.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, "[3]", string(raw))
}

func TestMemoryStore_KeysIndependent(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, ms.Save(ctx, "cart", []string{"a"}))
	require.NoError(t, ms.Save(ctx, "wishlist", []string{"b"}))

	raw, ok, _ := ms.Load(ctx, "cart")
	require.True(t, ok)
	assert.JSONEq(t, `["a"]`, string(raw))

	raw, ok, _ = ms.Load(ctx, "wishlist")
	require.True(t, ok)
	assert.JSONEq(t, `["b"]`, string(raw))
}
