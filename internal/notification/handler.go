package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/example/shopvista/internal/event"
	"github.com/example/shopvista/internal/order"
)

// Sender is the slice of the email service the notifier needs
type Sender interface {
	SendOrderConfirmation(to string, o order.Order) error
}

// Handler turns OrderPlaced events into confirmation emails. Orders
// placed without an email address are skipped.
type Handler struct {
	sender Sender
	orders *order.Log
}

// NewHandler creates a new notification handler. orders may be nil when
// the notifier has no access to the order log; the email is then built
// from the event payload alone.
func NewHandler(sender Sender, orders *order.Log) *Handler {
	return &Handler{
		sender: sender,
		orders: orders,
	}
}

// HandleEvent processes one event from Kafka
func (h *Handler) HandleEvent(ctx context.Context, key, value []byte) error {
	var env struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(value, &env); err != nil {
		log.Printf("[Notifier] Failed to unmarshal event: %v", err)
		return err
	}

	if env.Type != event.TypeOrderPlaced {
		return nil
	}

	var e event.OrderPlaced
	if err := json.Unmarshal(env.Payload, &e); err != nil {
		log.Printf("[Notifier] Failed to unmarshal OrderPlaced event: %v", err)
		return err
	}

	return h.handleOrderPlaced(ctx, e)
}

func (h *Handler) handleOrderPlaced(ctx context.Context, e event.OrderPlaced) error {
	log.Printf("[Notifier] Processing OrderPlaced event for order %s", e.OrderID)

	if e.Email == "" {
		log.Printf("[Notifier] Order %s has no email address, skipping", e.OrderID)
		return nil
	}

	// Prefer the full record from the order log (it carries the delivery
	// address); fall back to rebuilding from the event payload.
	o, ok := h.lookupOrder(ctx, e.OrderID)
	if !ok {
		o = order.Order{
			ID:          e.OrderID,
			CreatedAt:   e.PlacedAt,
			Customer:    order.Customer{Email: e.Email},
			Items:       e.Items,
			TotalAmount: e.TotalAmount,
			Status:      order.StatusPending,
		}
	}

	if err := h.sender.SendOrderConfirmation(e.Email, o); err != nil {
		log.Printf("[Notifier] Failed to send email to %s: %v", e.Email, err)
		return err
	}

	log.Printf("[Notifier] Order confirmation email sent to %s for order %s", e.Email, e.OrderID)
	return nil
}

func (h *Handler) lookupOrder(ctx context.Context, id string) (order.Order, bool) {
	if h.orders == nil {
		return order.Order{}, false
	}
	// The API process appends orders after this one started.
	h.orders.Reload(ctx)
	return h.orders.Get(id)
}
