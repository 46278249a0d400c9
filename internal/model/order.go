package model

import (
	"time"

	"github.com/google/uuid"
)

// Submitter holds the identity fields a customer provides when placing an
// order. Name and Registration are mandatory; Notes is optional free text.
type Submitter struct {
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Notes        string `json:"notes,omitempty"`
}

// Order represents a persisted order header. The ID is assigned by the
// database on insert.
type Order struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Registration string    `json:"registration" db:"registration"`
	Notes        string    `json:"notes" db:"notes"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// OrderItem represents a line item in an order, referencing one menu item.
type OrderItem struct {
	ID      uuid.UUID `json:"-" db:"id"`
	OrderID uuid.UUID `json:"-" db:"order_id"`
	ItemID  string    `json:"itemId" db:"item_id"`
}

// OrderResponse is the payload returned after a successful submission.
type OrderResponse struct {
	ID    uuid.UUID   `json:"id"`
	Items []CartEntry `json:"items"`
}
