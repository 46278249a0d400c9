package service

import (
	"context"

	"prato/internal/model"
	"prato/internal/session"
)

// AvailabilityChecker reports the current open/closed state of the store.
type AvailabilityChecker interface {
	IsOpen() bool
	Window() *model.OpeningWindow
}

// MenuService defines read operations on the weekly menu.
type MenuService interface {
	// ListByCategory retrieves one menu category ordered by day of week.
	ListByCategory(ctx context.Context, category string) ([]model.MenuItem, error)
}

// CartService defines operations on a session's cart.
type CartService interface {
	// AddItem resolves itemID against the menu and adds it to the
	// session cart. Fails while the store is closed and on duplicates.
	AddItem(ctx context.Context, sess *session.Session, itemID string) error

	// RemoveItem removes the entry with the given id; absent ids are a
	// no-op.
	RemoveItem(sess *session.Session, itemID string)

	// List returns the cart contents in display order.
	List(sess *session.Session) []model.CartEntry
}

// OrderService runs the order submission workflow.
type OrderService interface {
	// Submit validates the submitter and cart and persists the order in
	// two steps. On success the session cart and fields are reset.
	Submit(ctx context.Context, sess *session.Session, submitter model.Submitter) (*model.OrderResponse, error)
}
