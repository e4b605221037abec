package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhonfrank/bookstore-api/internal/domain"
)

// OrderStore defines the interface for order data persistence.
type OrderStore interface {
	// List retrieves all orders. Returns an empty slice when there are none.
	List(ctx context.Context) ([]*domain.Order, error)

	// GetByID retrieves an order by its unique ID.
	// Returns ErrOrderNotFound if the order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)

	// Create saves a new order to the store.
	Create(ctx context.Context, order *domain.Order) error

	// Update replaces an existing order's fields with the given record.
	// Returns ErrOrderNotFound if the order does not exist.
	Update(ctx context.Context, order *domain.Order) error

	// Delete removes an order by its ID. Details belonging to the order are
	// removed with it.
	// Returns ErrOrderNotFound if the order does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderDetailStore defines the interface for order detail persistence.
// Every operation is scoped by the parent order ID; callers check parent
// existence through OrderStore.GetByID before invoking these, so a miss here
// always means the detail itself is absent.
type OrderDetailStore interface {
	// ListByOrder retrieves all details belonging to the given order.
	// Returns an empty slice when there are none.
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.OrderDetail, error)

	// GetByID retrieves a detail by ID, scoped to the given order.
	// Returns ErrOrderDetailNotFound if no such detail exists under the order.
	GetByID(ctx context.Context, orderID, detailID uuid.UUID) (*domain.OrderDetail, error)

	// Create saves a new detail under its parent order.
	Create(ctx context.Context, detail *domain.OrderDetail) error

	// Update replaces an existing detail's fields, scoped to its order.
	// Returns ErrOrderDetailNotFound if no such detail exists under the order.
	Update(ctx context.Context, detail *domain.OrderDetail) error

	// Delete removes a detail by ID, scoped to the given order.
	// Returns ErrOrderDetailNotFound if no such detail exists under the order.
	Delete(ctx context.Context, orderID, detailID uuid.UUID) error
}
