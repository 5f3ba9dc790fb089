package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/shopvista/internal/event"
	"github.com/example/shopvista/internal/order"
)

type fakeSender struct {
	sent []order.Order
	to   []string
	err  error
}

func (f *fakeSender) SendOrderConfirmation(to string, o order.Order) error {
	f.to = append(f.to, to)
	f.sent = append(f.sent, o)
	return f.err
}

func placedEvent(t *testing.T, email string) []byte {
	t.Helper()
	raw, err := json.Marshal(event.Envelope{
		Type:       event.TypeOrderPlaced,
		OccurredAt: time.Now(),
		Payload: event.OrderPlaced{
			OrderID:     "ORD-123",
			Email:       email,
			Items:       []order.Item{{ProductID: "1", Name: "Premium Wireless Headphones", Price: 4999, Quantity: 1}},
			TotalAmount: 4999,
			PlacedAt:    time.Now(),
		},
	})
	require.NoError(t, err)
	return raw
}

func TestHandler_SendsConfirmation(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(sender, nil)

	err := h.HandleEvent(context.Background(), []byte("ORD-123"), placedEvent(t, "rohit@example.com"))

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"rohit@example.com"}, sender.to)
	assert.Equal(t, "ORD-123", sender.sent[0].ID)
	assert.Equal(t, 4999, sender.sent[0].TotalAmount)
}

func TestHandler_SkipsOrdersWithoutEmail(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(sender, nil)

	err := h.HandleEvent(context.Background(), []byte("ORD-123"), placedEvent(t, ""))

	require.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestHandler_IgnoresOtherEventTypes(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(sender, nil)

	raw, err := json.Marshal(event.Envelope{Type: "SomethingElse"})
	require.NoError(t, err)

	require.NoError(t, h.HandleEvent(context.Background(), nil, raw))
	assert.Empty(t, sender.sent)
}

func TestHandler_MalformedEventReturnsError(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(sender, nil)

	err := h.HandleEvent(context.Background(), nil, []byte("garbage"))

	assert.Error(t, err)
	assert.Empty(t, sender.sent)
}
