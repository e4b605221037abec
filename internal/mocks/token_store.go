package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhonfrank/bookstore-api/internal/domain"
	"github.com/jhonfrank/bookstore-api/internal/store"
)

// MockTokenStore implements store.TokenStore for testing.
type MockTokenStore struct {
	// Function fields for customizable behavior
	CreateFn              func(ctx context.Context, token *domain.Token) error
	CountByUserFn         func(ctx context.Context, userID uuid.UUID) (int, error)
	FindUserByTokenHashFn func(ctx context.Context, tokenHash string) (*domain.User, error)
	DeleteByUserFn        func(ctx context.Context, userID uuid.UUID) (int, error)

	// Data for the default in-memory implementation.
	Tokens map[uuid.UUID]*domain.Token
	// UsersByID backs FindUserByTokenHash lookups.
	UsersByID map[uuid.UUID]*domain.User
}

// NewMockTokenStore creates a new mock store with initialized defaults.
func NewMockTokenStore() *MockTokenStore {
	return &MockTokenStore{
		Tokens:    make(map[uuid.UUID]*domain.Token),
		UsersByID: make(map[uuid.UUID]*domain.User),
	}
}

// Ensure MockTokenStore implements store.TokenStore interface
var _ store.TokenStore = (*MockTokenStore)(nil)

// Create implements the TokenStore interface.
func (m *MockTokenStore) Create(ctx context.Context, token *domain.Token) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, token)
	}
	m.Tokens[token.ID] = token
	return nil
}

// CountByUser implements the TokenStore interface.
func (m *MockTokenStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountByUserFn != nil {
		return m.CountByUserFn(ctx, userID)
	}
	count := 0
	for _, token := range m.Tokens {
		if token.UserID == userID {
			count++
		}
	}
	return count, nil
}

// FindUserByTokenHash implements the TokenStore interface.
func (m *MockTokenStore) FindUserByTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	if m.FindUserByTokenHashFn != nil {
		return m.FindUserByTokenHashFn(ctx, tokenHash)
	}
	for _, token := range m.Tokens {
		if token.TokenHash == tokenHash {
			if user, ok := m.UsersByID[token.UserID]; ok {
				return user, nil
			}
		}
	}
	return nil, store.ErrTokenNotFound
}

// DeleteByUser implements the TokenStore interface.
func (m *MockTokenStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.DeleteByUserFn != nil {
		return m.DeleteByUserFn(ctx, userID)
	}
	deleted := 0
	for id, token := range m.Tokens {
		if token.UserID == userID {
			delete(m.Tokens, id)
			deleted++
		}
	}
	return deleted, nil
}
