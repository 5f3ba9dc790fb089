package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"

	"github.com/example/shopvista/internal/cart"
	"github.com/example/shopvista/internal/catalog"
	"github.com/example/shopvista/internal/checkout"
	"github.com/example/shopvista/internal/order"
	"github.com/example/shopvista/internal/wishlist"
)

// Handlers is the storefront's presentation layer: it reads the catalog,
// dispatches intents to the cart and wishlist stores and renders whatever
// state comes back. Stock policy lives here, not in the stores.
type Handlers struct {
	catalog   *catalog.Provider
	cart      *cart.Store
	wishlist  *wishlist.Store
	orders    *order.Log
	publisher checkout.Publisher
}

func NewHandlers(provider *catalog.Provider, cartStore *cart.Store, wishlistStore *wishlist.Store, orders *order.Log, publisher checkout.Publisher) *Handlers {
	return &Handlers{
		catalog:   provider,
		cart:      cartStore,
		wishlist:  wishlistStore,
		orders:    orders,
		publisher: publisher,
	}
}

// Product Handlers

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var items []catalog.Item
	switch {
	case q.Get("category") != "":
		items = h.catalog.ByCategory(q.Get("category"))
	case q.Get("q") != "":
		items = h.catalog.Search(q.Get("q"))
	case q.Get("shelf") == "featured":
		items = h.catalog.Featured()
	case q.Get("shelf") == "trending":
		items = h.catalog.Trending()
	default:
		items = h.catalog.Items()
	}

	if items == nil {
		items = []catalog.Item{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/products/")
	item, ok := h.catalog.Get(id)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Categories())
}

// Cart Handlers

// cartView is the cart plus its derived aggregates and the display sums
// the order summary panel shows. GST and delivery are presentation
// arithmetic over the subtotal.
type cartView struct {
	Lines        []cart.Line `json:"lines"`
	IsOpen       bool        `json:"is_open"`
	TotalItems   int         `json:"total_items"`
	Subtotal     int         `json:"subtotal"`
	TotalSavings int         `json:"total_savings"`
	GST          int         `json:"gst"`
	Delivery     int         `json:"delivery"`
	GrandTotal   int         `json:"grand_total"`
}

func (h *Handlers) cartView() cartView {
	lines := h.cart.Lines()
	if lines == nil {
		lines = []cart.Line{}
	}
	subtotal := h.cart.Subtotal()
	delivery := checkout.DeliveryCharge(subtotal)
	return cartView{
		Lines:        lines,
		IsOpen:       h.cart.IsOpen(),
		TotalItems:   h.cart.TotalItems(),
		Subtotal:     subtotal,
		TotalSavings: h.cart.TotalSavings(),
		GST:          int(math.Round(float64(subtotal) * checkout.GSTRate)),
		Delivery:     delivery,
		GrandTotal:   subtotal + delivery,
	}
}

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartView())
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string            `json:"product_id"`
		Variants  map[string]string `json:"variants,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, ok := h.catalog.Get(req.ProductID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	// Presentation policy: out-of-stock products cannot be added here.
	if !item.InStock {
		http.Error(w, "Product is out of stock", http.StatusConflict)
		return
	}

	h.cart.AddItem(r.Context(), item, req.Variants)
	respondJSON(w, http.StatusOK, h.cartView())
}

func (h *Handlers) UpdateCartLine(w http.ResponseWriter, r *http.Request) {
	lineID := extractPathParam(r.URL.Path, "/cart/items/")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.cart.SetQuantity(r.Context(), lineID, req.Quantity)
	respondJSON(w, http.StatusOK, h.cartView())
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	lineID := extractPathParam(r.URL.Path, "/cart/items/")
	h.cart.RemoveItem(r.Context(), lineID)
	respondJSON(w, http.StatusOK, h.cartView())
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	respondJSON(w, http.StatusOK, h.cartView())
}

func (h *Handlers) ToggleCart(w http.ResponseWriter, r *http.Request) {
	h.cart.ToggleOpen()
	respondJSON(w, http.StatusOK, map[string]bool{"is_open": h.cart.IsOpen()})
}

// Wishlist Handlers

type wishlistView struct {
	Items []catalog.Item `json:"items"`
	Count int            `json:"count"`
}

func (h *Handlers) wishlistView() wishlistView {
	items := h.wishlist.Items()
	if items == nil {
		items = []catalog.Item{}
	}
	return wishlistView{Items: items, Count: h.wishlist.Count()}
}

func (h *Handlers) GetWishlist(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.wishlistView())
}

func (h *Handlers) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, ok := h.catalog.Get(req.ProductID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	h.wishlist.Toggle(r.Context(), item)
	respondJSON(w, http.StatusOK, h.wishlistView())
}

func (h *Handlers) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	h.wishlist.Clear(r.Context())
	respondJSON(w, http.StatusOK, h.wishlistView())
}

// Checkout Handlers

func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	var customer order.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Each checkout attempt is a fresh flow instance in the Editing state.
	flow := checkout.NewFlow(h.cart, h.orders, h.publisher)
	placed, fieldErrs, err := flow.PlaceOrder(r.Context(), customer)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(fieldErrs) > 0 {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fieldErrs})
		return
	}

	respondJSON(w, http.StatusCreated, placed)
}

// Order Handlers

func (h *Handlers) GetOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.orders.All())
}

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/orders/")
	o, ok := h.orders.Get(id)
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

// Helpers

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func extractPathParam(path, prefix string) string {
	return strings.TrimPrefix(path, prefix)
}
