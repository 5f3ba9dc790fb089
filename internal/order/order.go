package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StorageKey is the key the order log persists under
const StorageKey = "orders"

type Status string

// Orders are created pending. Payment is collected on delivery, so no
// further transition happens inside this system.
const StatusPending Status = "pending"

// Customer is the validated delivery address captured at checkout
type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Landmark string `json:"landmark"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
}

// Item is a value snapshot of one purchased cart line. It is copied out
// of the live cart so later cart mutations cannot rewrite history.
type Item struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

// Order is one immutable record in the order log
type Order struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Customer    Customer  `json:"customer"`
	Items       []Item    `json:"items"`
	TotalAmount int       `json:"total_amount"`
	Status      Status    `json:"status"`
}

// NewID generates an order identifier
func NewID() string {
	return fmt.Sprintf("ORD-%s", uuid.New().String())
}
