package checkout

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/example/shopvista/internal/cart"
	"github.com/example/shopvista/internal/event"
	"github.com/example/shopvista/internal/order"
)

const (
	// FreeShippingThreshold is the subtotal at which delivery is free, in
	// the same unit as catalog prices.
	FreeShippingThreshold = 999

	// DeliveryFee is the flat charge below the free-shipping threshold
	DeliveryFee = 49

	// GSTRate is display arithmetic for the order summary; it is never
	// part of the payable total.
	GSTRate = 0.18
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrFlowSubmitted = errors.New("checkout flow already submitted")
)

// Publisher announces a placed order. Publishing is best-effort; checkout
// never fails because a publish did.
type Publisher interface {
	Publish(ctx context.Context, key string, evt any) error
}

// Flow turns a validated delivery form plus the current cart into an
// order record. A flow instance moves Editing -> Submitted exactly once;
// a new checkout attempt starts a fresh flow.
type Flow struct {
	cart      *cart.Store
	orders    *order.Log
	publisher Publisher
	now       func() time.Time
	submitted bool
}

// NewFlow creates a flow in the Editing state. publisher may be nil.
func NewFlow(cartStore *cart.Store, orders *order.Log, publisher Publisher) *Flow {
	return &Flow{
		cart:      cartStore,
		orders:    orders,
		publisher: publisher,
		now:       time.Now,
	}
}

// Submitted reports whether the flow has already placed its order
func (f *Flow) Submitted() bool {
	return f.submitted
}

// DeliveryCharge returns the delivery fee for a subtotal
func DeliveryCharge(subtotal int) int {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return DeliveryFee
}

// PlaceOrder validates the form and, on success, appends an order built
// from a snapshot of the current cart, publishes OrderPlaced when a
// publisher is configured, clears the cart and marks the flow submitted.
//
// A non-empty fieldErrs return means validation failed: nothing was
// mutated and the flow stays in Editing. err covers flow misuse, not
// validation.
func (f *Flow) PlaceOrder(ctx context.Context, customer order.Customer) (*order.Order, map[string]string, error) {
	if f.submitted {
		return nil, nil, ErrFlowSubmitted
	}
	if f.cart.Len() == 0 {
		return nil, nil, ErrEmptyCart
	}

	if fieldErrs := Validate(customer); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	subtotal := f.cart.Subtotal()
	total := subtotal + DeliveryCharge(subtotal)

	lines := f.cart.Lines()
	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		image := ""
		if len(l.Item.Images) > 0 {
			image = l.Item.Images[0]
		}
		items = append(items, order.Item{
			ProductID: l.Item.ID,
			Name:      l.Item.Name,
			Price:     l.Item.Price,
			Quantity:  l.Quantity,
			Image:     image,
		})
	}

	o := order.Order{
		ID:          order.NewID(),
		CreatedAt:   f.now(),
		Customer:    customer,
		Items:       items,
		TotalAmount: total,
		Status:      order.StatusPending,
	}

	f.orders.Append(ctx, o)

	if f.publisher != nil {
		evt := event.Envelope{
			Type:       event.TypeOrderPlaced,
			OccurredAt: o.CreatedAt,
			Payload: event.OrderPlaced{
				OrderID:     o.ID,
				Email:       customer.Email,
				Items:       items,
				TotalAmount: total,
				PlacedAt:    o.CreatedAt,
			},
		}
		if err := f.publisher.Publish(ctx, o.ID, evt); err != nil {
			log.Printf("[Checkout] Failed to publish OrderPlaced for %s: %v", o.ID, err)
		}
	}

	f.cart.Clear(ctx)
	f.submitted = true

	return &o, nil, nil
}
