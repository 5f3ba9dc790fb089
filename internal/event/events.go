package event

import (
	"time"

	"github.com/example/shopvista/internal/order"
)

const TypeOrderPlaced = "OrderPlaced"

// Envelope wraps a published event with its type so consumers can route
// without knowing every payload shape up front.
type Envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// OrderPlaced is published after a successful checkout. Email may be
// empty; the notifier skips such orders.
type OrderPlaced struct {
	OrderID     string       `json:"order_id"`
	Email       string       `json:"email,omitempty"`
	Items       []order.Item `json:"items"`
	TotalAmount int          `json:"total_amount"`
	PlacedAt    time.Time    `json:"placed_at"`
}
