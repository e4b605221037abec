package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhonfrank/bookstore-api/internal/domain"
	"github.com/jhonfrank/bookstore-api/internal/store"
)

// MockBookStore implements store.BookStore for testing.
type MockBookStore struct {
	// Function fields for customizable behavior
	ListFn    func(ctx context.Context) ([]*domain.Book, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	CreateFn  func(ctx context.Context, book *domain.Book) error
	UpdateFn  func(ctx context.Context, book *domain.Book) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Data for the default in-memory implementation.
	Books map[uuid.UUID]*domain.Book
}

// NewMockBookStore creates a new mock store with initialized defaults.
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{Books: make(map[uuid.UUID]*domain.Book)}
}

// Ensure MockBookStore implements store.BookStore interface
var _ store.BookStore = (*MockBookStore)(nil)

// List implements the BookStore interface.
func (m *MockBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	books := make([]*domain.Book, 0, len(m.Books))
	for _, book := range m.Books {
		books = append(books, book)
	}
	return books, nil
}

// GetByID implements the BookStore interface.
func (m *MockBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	book, exists := m.Books[id]
	if !exists {
		return nil, store.ErrBookNotFound
	}
	return book, nil
}

// Create implements the BookStore interface.
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}
	m.Books[book.ID] = book
	return nil
}

// Update implements the BookStore interface.
func (m *MockBookStore) Update(ctx context.Context, book *domain.Book) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, book)
	}
	if _, exists := m.Books[book.ID]; !exists {
		return store.ErrBookNotFound
	}
	m.Books[book.ID] = book
	return nil
}

// Delete implements the BookStore interface.
func (m *MockBookStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, exists := m.Books[id]; !exists {
		return store.ErrBookNotFound
	}
	delete(m.Books, id)
	return nil
}
