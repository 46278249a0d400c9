package repository

import (
	"context"

	"prato/internal/model"
)

// MenuRepository defines read access to the menu and settings tables. Both
// are owned and mutated elsewhere; the service only reads them.
type MenuRepository interface {
	// ListByCategory retrieves the items of one category, ordered
	// ascending by day of week.
	ListByCategory(ctx context.Context, category string) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item, or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)

	// GetOpeningWindow retrieves the configured opening window, or nil
	// when none has been configured yet.
	GetOpeningWindow(ctx context.Context) (*model.OpeningWindow, error)
}

// OrderRepository defines the two order write operations. They are issued
// as separate statements, not inside a shared transaction: a failure in
// CreateOrderItems after CreateOrder succeeded leaves the header row in
// place with no items.
type OrderRepository interface {
	// CreateOrder inserts an order header. The database assigns the id,
	// which is written back into order.ID on success.
	CreateOrder(ctx context.Context, order *model.Order) error

	// CreateOrderItems inserts the line items for an order.
	CreateOrderItems(ctx context.Context, items []model.OrderItem) error
}
