package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhonfrank/bookstore-api/internal/domain"
)

// BookStore defines the interface for book data persistence.
type BookStore interface {
	// List retrieves all books. Returns an empty slice when there are none.
	List(ctx context.Context) ([]*domain.Book, error)

	// GetByID retrieves a book by its unique ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)

	// Create saves a new book to the store.
	Create(ctx context.Context, book *domain.Book) error

	// Update replaces an existing book's fields with the given record.
	// Returns ErrBookNotFound if the book does not exist.
	Update(ctx context.Context, book *domain.Book) error

	// Delete removes a book from the store by its ID. Deleting a book does
	// not cascade into order details that reference it.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
