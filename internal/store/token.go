package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhonfrank/bookstore-api/internal/domain"
)

// TokenStore defines the interface for token record persistence.
type TokenStore interface {
	// Create saves a new token record.
	Create(ctx context.Context, token *domain.Token) error

	// CountByUser returns the number of active token records for a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// FindUserByTokenHash resolves a token hash to the user it was issued
	// for. Returns ErrTokenNotFound if no active record matches, which is
	// how revoked tokens are rejected.
	FindUserByTokenHash(ctx context.Context, tokenHash string) (*domain.User, error)

	// DeleteByUser removes all token records belonging to a user and
	// returns the number removed. Deleting zero records is not an error.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
