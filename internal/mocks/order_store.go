package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhonfrank/bookstore-api/internal/domain"
	"github.com/jhonfrank/bookstore-api/internal/store"
)

// MockOrderStore implements store.OrderStore for testing.
type MockOrderStore struct {
	// Function fields for customizable behavior
	ListFn    func(ctx context.Context) ([]*domain.Order, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	CreateFn  func(ctx context.Context, order *domain.Order) error
	UpdateFn  func(ctx context.Context, order *domain.Order) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Data for the default in-memory implementation.
	Orders map[uuid.UUID]*domain.Order
}

// NewMockOrderStore creates a new mock store with initialized defaults.
func NewMockOrderStore() *MockOrderStore {
	return &MockOrderStore{Orders: make(map[uuid.UUID]*domain.Order)}
}

// Ensure MockOrderStore implements store.OrderStore interface
var _ store.OrderStore = (*MockOrderStore)(nil)

// List implements the OrderStore interface.
func (m *MockOrderStore) List(ctx context.Context) ([]*domain.Order, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	orders := make([]*domain.Order, 0, len(m.Orders))
	for _, order := range m.Orders {
		orders = append(orders, order)
	}
	return orders, nil
}

// GetByID implements the OrderStore interface.
func (m *MockOrderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	order, exists := m.Orders[id]
	if !exists {
		return nil, store.ErrOrderNotFound
	}
	return order, nil
}

// Create implements the OrderStore interface.
func (m *MockOrderStore) Create(ctx context.Context, order *domain.Order) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, order)
	}
	m.Orders[order.ID] = order
	return nil
}

// Update implements the OrderStore interface.
func (m *MockOrderStore) Update(ctx context.Context, order *domain.Order) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, order)
	}
	if _, exists := m.Orders[order.ID]; !exists {
		return store.ErrOrderNotFound
	}
	m.Orders[order.ID] = order
	return nil
}

// Delete implements the OrderStore interface.
func (m *MockOrderStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, exists := m.Orders[id]; !exists {
		return store.ErrOrderNotFound
	}
	delete(m.Orders, id)
	return nil
}

// MockOrderDetailStore implements store.OrderDetailStore for testing.
type MockOrderDetailStore struct {
	// Function fields for customizable behavior
	ListByOrderFn func(ctx context.Context, orderID uuid.UUID) ([]*domain.OrderDetail, error)
	GetByIDFn     func(ctx context.Context, orderID, detailID uuid.UUID) (*domain.OrderDetail, error)
	CreateFn      func(ctx context.Context, detail *domain.OrderDetail) error
	UpdateFn      func(ctx context.Context, detail *domain.OrderDetail) error
	DeleteFn      func(ctx context.Context, orderID, detailID uuid.UUID) error

	// Data for the default in-memory implementation.
	Details map[uuid.UUID]*domain.OrderDetail
}

// NewMockOrderDetailStore creates a new mock store with initialized defaults.
func NewMockOrderDetailStore() *MockOrderDetailStore {
	return &MockOrderDetailStore{Details: make(map[uuid.UUID]*domain.OrderDetail)}
}

// Ensure MockOrderDetailStore implements store.OrderDetailStore interface
var _ store.OrderDetailStore = (*MockOrderDetailStore)(nil)

// ListByOrder implements the OrderDetailStore interface.
func (m *MockOrderDetailStore) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.OrderDetail, error) {
	if m.ListByOrderFn != nil {
		return m.ListByOrderFn(ctx, orderID)
	}
	details := make([]*domain.OrderDetail, 0)
	for _, detail := range m.Details {
		if detail.OrderID == orderID {
			details = append(details, detail)
		}
	}
	return details, nil
}

// GetByID implements the OrderDetailStore interface.
func (m *MockOrderDetailStore) GetByID(ctx context.Context, orderID, detailID uuid.UUID) (*domain.OrderDetail, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, orderID, detailID)
	}
	detail, exists := m.Details[detailID]
	if !exists || detail.OrderID != orderID {
		return nil, store.ErrOrderDetailNotFound
	}
	return detail, nil
}

// Create implements the OrderDetailStore interface.
func (m *MockOrderDetailStore) Create(ctx context.Context, detail *domain.OrderDetail) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, detail)
	}
	m.Details[detail.ID] = detail
	return nil
}

// Update implements the OrderDetailStore interface.
func (m *MockOrderDetailStore) Update(ctx context.Context, detail *domain.OrderDetail) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, detail)
	}
	existing, exists := m.Details[detail.ID]
	if !exists || existing.OrderID != detail.OrderID {
		return store.ErrOrderDetailNotFound
	}
	m.Details[detail.ID] = detail
	return nil
}

// Delete implements the OrderDetailStore interface.
func (m *MockOrderDetailStore) Delete(ctx context.Context, orderID, detailID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, orderID, detailID)
	}
	detail, exists := m.Details[detailID]
	if !exists || detail.OrderID != orderID {
		return store.ErrOrderDetailNotFound
	}
	delete(m.Details, detailID)
	return nil
}
