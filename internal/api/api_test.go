package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/shopvista/internal/cart"
	"github.com/example/shopvista/internal/catalog"
	"github.com/example/shopvista/internal/order"
	"github.com/example/shopvista/internal/storage/mocks"
	"github.com/example/shopvista/internal/wishlist"
)

func newTestServer() *httptest.Server {
	kv := mocks.NewMockStore()
	ctx := context.Background()

	provider := catalog.NewSeededProvider()
	cartStore := cart.NewStore(ctx, kv, cart.StorageKey)
	wishlistStore := wishlist.NewStore(ctx, kv, wishlist.StorageKey)
	orders := order.NewLog(ctx, kv, order.StorageKey)

	handlers := NewHandlers(provider, cartStore, wishlistStore, orders, nil)
	return httptest.NewServer(NewRouter(handlers))
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ============================================
// Product Endpoint Tests
// ============================================

func TestAPI_GetProducts(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/products")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	items := decode[[]catalog.Item](t, resp)
	assert.NotEmpty(t, items)
}

func TestAPI_GetProductsByCategory(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/products?category=electronics")
	require.NoError(t, err)

	items := decode[[]catalog.Item](t, resp)
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, "electronics", item.Category)
	}
}

func TestAPI_GetProduct_NotFound(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/products/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ============================================
// Cart Endpoint Tests
// ============================================

func TestAPI_CartLifecycle(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	// Add product 1 twice: one line, quantity 2.
	resp := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]any{"product_id": "1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]any{"product_id": "1"})
	view := decode[cartView](t, resp)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, 2*4999, view.Subtotal)

	// Set the line quantity, then remove it.
	lineID := view.Lines[0].LineID
	resp = doJSON(t, http.MethodPatch, srv.URL+"/cart/items/"+lineID, map[string]any{"quantity": 5})
	view = decode[cartView](t, resp)
	assert.Equal(t, 5, view.TotalItems)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/cart/items/"+lineID, nil)
	view = decode[cartView](t, resp)
	assert.Empty(t, view.Lines)
}

func TestAPI_AddToCart_DistinctVariants(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]any{"product_id": "2", "variants": map[string]string{"Size": "M"}})
	resp.Body.Close()
	resp = doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]any{"product_id": "2", "variants": map[string]string{"Size": "L"}})

	view := decode[cartView](t, resp)
	assert.Len(t, view.Lines, 2)
}

func TestAPI_AddToCart_OutOfStock(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	// Product 10 is seeded out of stock; the API refuses it even though
	// the cart store itself would accept it.
	resp := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]any{"product_id": "10"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAPI_CartSummarySums(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	// Product 11 costs 799, below the free-shipping threshold.
	resp := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]any{"product_id": "11"})
	view := decode[cartView](t, resp)

	assert.Equal(t, 799, view.Subtotal)
	assert.Equal(t, 49, view.Delivery)
	assert.Equal(t, 799+49, view.GrandTotal)
	assert.Equal(t, 144, view.GST) // round(799 * 0.18)
}

func TestAPI_ToggleCartPanel(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp := doJSON(t, http.MethodPost, srv.URL+"/cart/toggle", nil)
	state := decode[map[string]bool](t, resp)
	assert.True(t, state["is_open"])

	resp = doJSON(t, http.MethodPost, srv.URL+"/cart/toggle", nil)
	state = decode[map[string]bool](t, resp)
	assert.False(t, state["is_open"])
}

// ============================================
// Wishlist Endpoint Tests
// ============================================

func TestAPI_WishlistToggle(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp := doJSON(t, http.MethodPost, srv.URL+"/wishlist/toggle", map[string]any{"product_id": "5"})
	view := decode[wishlistView](t, resp)
	assert.Equal(t, 1, view.Count)

	resp = doJSON(t, http.MethodPost, srv.URL+"/wishlist/toggle", map[string]any{"product_id": "5"})
	view = decode[wishlistView](t, resp)
	assert.Zero(t, view.Count)
}

// ============================================
// Checkout Endpoint Tests
// ============================================

func TestAPI_Checkout_Success(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]any{"product_id": "3"})
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/checkout", map[string]any{
		"name":     "Rohit Kumar",
		"phone":    "9876543210",
		"address":  "12 MG Road",
		"landmark": "Near Park",
		"city":     "Mumbai",
		"pincode":  "400001",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	placed := decode[order.Order](t, resp)

	assert.Equal(t, order.StatusPending, placed.Status)
	assert.Equal(t, 3499, placed.TotalAmount)

	// The cart is now empty and the order shows up in the log.
	getCart, err := http.Get(srv.URL + "/cart")
	require.NoError(t, err)
	view := decode[cartView](t, getCart)
	assert.Empty(t, view.Lines)

	getOrders, err := http.Get(srv.URL + "/orders")
	require.NoError(t, err)
	orders := decode[[]order.Order](t, getOrders)
	require.Len(t, orders, 1)
	assert.Equal(t, placed.ID, orders[0].ID)
}

func TestAPI_Checkout_ValidationErrors(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp := doJSON(t, http.MethodPost, srv.URL+"/cart/items", map[string]any{"product_id": "3"})
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/checkout", map[string]any{
		"name":  "Ro",
		"phone": "12345",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decode[map[string]map[string]string](t, resp)
	assert.Contains(t, body["errors"], "phone")

	// Failed validation left the cart alone.
	getCart, err := http.Get(srv.URL + "/cart")
	require.NoError(t, err)
	view := decode[cartView](t, getCart)
	assert.Len(t, view.Lines, 1)
}

func TestAPI_Checkout_EmptyCart(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp := doJSON(t, http.MethodPost, srv.URL+"/checkout", map[string]any{
		"name":     "Rohit Kumar",
		"phone":    "9876543210",
		"address":  "12 MG Road",
		"landmark": "Near Park",
		"city":     "Mumbai",
		"pincode":  "400001",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ============================================
// Order Endpoint Tests
// ============================================

func TestAPI_GetOrder_NotFound(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/orders/ORD-missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_MethodNotAllowed(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp := doJSON(t, http.MethodPut, srv.URL+"/cart", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
